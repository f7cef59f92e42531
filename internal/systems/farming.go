package systems

import (
	"cloverfield-server/internal/domain"
)

// Операции жизненного цикла грядки.
// При ошибке состояние не меняется.

// Till вскапывает клетку. Повторная вспашка - ErrAlreadyTilled.
func Till(reg domain.PlotRegistry, pos domain.Position) error {
	plot := reg.GetOrCreate(pos)
	if plot.Tilled {
		return domain.ErrAlreadyTilled
	}
	plot.Tilled = true
	return nil
}

// Water поливает вскопанную клетку
func Water(reg domain.PlotRegistry, pos domain.Position) error {
	plot := reg.GetOrCreate(pos)
	if !plot.Tilled {
		return domain.ErrNotTilled
	}
	plot.Watered = true
	return nil
}

// PlantSeed сажает пастернак, списывая одно семя из инвентаря
func PlantSeed(reg domain.PlotRegistry, pos domain.Position, inv *domain.Inventory) error {
	plot := reg.GetOrCreate(pos)
	switch {
	case !plot.Tilled:
		return domain.ErrNotTilled
	case plot.HasCrop():
		return domain.ErrAlreadyPlanted
	case inv.Seeds < 1:
		return domain.ErrNoSeeds
	}

	plot.Crop = domain.CropParsnip
	plot.Growth = 0
	plot.Ready = false
	inv.Seeds--
	return nil
}

// Harvest собирает созревший урожай. Вспашка сохраняется.
func Harvest(reg domain.PlotRegistry, pos domain.Position, inv *domain.Inventory) error {
	plot := reg.Get(pos)
	if plot == nil || !plot.HasCrop() || !plot.Ready {
		return domain.ErrNotReady
	}

	plot.Crop = domain.CropNone
	plot.Growth = 0
	plot.Ready = false
	plot.Watered = false
	inv.Crops++
	return nil
}

// AdvanceDay растит политые культуры и сбрасывает полив у всех грядок.
// Возвращает число выросших за ночь.
func AdvanceDay(reg domain.PlotRegistry) int {
	grown := 0
	for _, plot := range reg {
		if plot.HasCrop() && plot.Watered && plot.Growth < domain.MaturityStage {
			plot.Growth++
			grown++
		}
		if plot.HasCrop() && plot.Growth >= domain.MaturityStage {
			plot.Ready = true
		}
		plot.Watered = false
	}
	return grown
}

// ApplyRain поливает все вскопанные грядки. Возвращает число политых.
func ApplyRain(reg domain.PlotRegistry) int {
	n := 0
	for _, plot := range reg {
		if plot.Tilled {
			plot.Watered = true
			n++
		}
	}
	return n
}
