package domain

import "strings"

// TileType - тип клетки статической карты
type TileType uint8

const (
	TileGrass TileType = iota
	TilePath
	TileWater
	TileFence
	TileHouse
	TileShop
	TileBin
)

var tileTypeNames = map[TileType]string{
	TileGrass: "grass",
	TilePath:  "path",
	TileWater: "water",
	TileFence: "fence",
	TileHouse: "house",
	TileShop:  "shop",
	TileBin:   "bin",
}

func (t TileType) String() string {
	if name, ok := tileTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Blocked возвращает true для непроходимых типов.
// Ящик для отгрузки и дороги/трава проходимы.
func (t TileType) Blocked() bool {
	switch t {
	case TileWater, TileFence, TileHouse, TileShop:
		return true
	default:
		return false
	}
}

// CropKind - вид культуры на грядке
type CropKind string

const (
	CropNone    CropKind = ""
	CropParsnip CropKind = "parsnip"
)

// ParseCrop возвращает культуру по имени. Неизвестные имена -> CropNone.
func ParseCrop(s string) CropKind {
	if strings.ToLower(s) == string(CropParsnip) {
		return CropParsnip
	}
	return CropNone
}

// Weather - погода текущего дня
type Weather uint8

const (
	WeatherSunny Weather = iota
	WeatherCloudy
	WeatherRainy
)

var weatherNames = [...]string{"Sunny", "Cloudy", "Rainy"}

func (w Weather) String() string {
	if int(w) < len(weatherNames) {
		return weatherNames[w]
	}
	return weatherNames[WeatherSunny]
}

// ParseWeather разбирает сохраненное имя погоды.
// Второе значение false, если имя не распознано.
func ParseWeather(s string) (Weather, bool) {
	for i, name := range weatherNames {
		if strings.EqualFold(name, s) {
			return Weather(i), true
		}
	}
	return WeatherSunny, false
}

// Tool - инструмент игрока. Порядок фиксирован и совпадает со слотами 1-5.
type Tool uint8

const (
	ToolHoe Tool = iota
	ToolWater
	ToolSeed
	ToolHarvest
	ToolTalk
)

// ToolCount - количество слотов инструментов
const ToolCount = 5

var toolNames = [ToolCount]string{"hoe", "water", "seed", "harvest", "talk"}

var toolLabels = [ToolCount]string{"Hoe", "Watering Can", "Plant Seeds", "Harvest", "Talk / Interact"}

func (t Tool) String() string {
	if int(t) < ToolCount {
		return toolNames[t]
	}
	return "unknown"
}

// Label - подпись для строки статуса
func (t Tool) Label() string {
	if int(t) < ToolCount {
		return toolLabels[t]
	}
	return ""
}

// StaminaCost - стоимость применения инструмента на грядке
func (t Tool) StaminaCost() int {
	switch t {
	case ToolHoe:
		return CostHoe
	case ToolWater:
		return CostWater
	case ToolSeed:
		return CostSeed
	case ToolHarvest:
		return CostHarvest
	default:
		return 0
	}
}
