package domain

// Position - целочисленная координата клетки
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec2 - непрерывная позиция в единицах мира
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Facing - направление взгляда, компоненты в {-1, 0, 1}
type Facing struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DefaultFacing - взгляд вниз
var DefaultFacing = Facing{X: 0, Y: 1}

// Rect - прямоугольник клеток, границы включительно
type Rect struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Waypoint - точка расписания NPC: к минуте Minute быть в клетке (X, Y)
type Waypoint struct {
	Minute int `json:"minute"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// WorldMeta - неизменяемые точки интереса, которые строит генератор
type WorldMeta struct {
	FarmRect Rect       `json:"farmPlotRect"`
	Shop     Position   `json:"shopTile"`
	Bin      Position   `json:"shippingBinTile"`
	Bed      Position   `json:"sleepTile"`
	Spawn    Position   `json:"spawnTile"`
	Schedule []Waypoint `json:"npcSchedule"`
}

// GameWorld - статическая сетка тайлов и параллельная маска проходимости.
// После генерации не меняется.
type GameWorld struct {
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Tiles   [][]TileType `json:"tiles"`
	Blocked [][]bool     `json:"blocked"`
}
