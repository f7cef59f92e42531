package systems

import (
	"cloverfield-server/internal/domain"
)

// UseTool применяет выбранный инструмент к клетке перед игроком.
// Порядок проверок: поле, условия грядки, стамина. Стамина списывается только при успехе.
// ToolTalk сюда не попадает: разговор обрабатывается отдельно.
func UseTool(reg domain.PlotRegistry, farm domain.Rect, p *domain.Player) (domain.Position, error) {
	target := p.FacingTile()
	if !farm.Contains(target) {
		return target, domain.ErrOutsideField
	}

	tool := p.SelectedTool
	if err := checkTool(reg.Get(target), tool, &p.Inventory); err != nil {
		return target, err
	}

	if !p.ConsumeStamina(tool.StaminaCost()) {
		return target, domain.ErrExhausted
	}

	switch tool {
	case domain.ToolHoe:
		return target, Till(reg, target)
	case domain.ToolWater:
		return target, Water(reg, target)
	case domain.ToolSeed:
		return target, PlantSeed(reg, target, &p.Inventory)
	case domain.ToolHarvest:
		return target, Harvest(reg, target, &p.Inventory)
	}
	return target, nil
}

// checkTool повторяет предусловия операций без изменения состояния
func checkTool(plot *domain.Plot, tool domain.Tool, inv *domain.Inventory) error {
	if plot == nil {
		plot = &domain.Plot{}
	}

	switch tool {
	case domain.ToolHoe:
		if plot.Tilled {
			return domain.ErrAlreadyTilled
		}
	case domain.ToolWater:
		if !plot.Tilled {
			return domain.ErrNotTilled
		}
	case domain.ToolSeed:
		switch {
		case !plot.Tilled:
			return domain.ErrNotTilled
		case plot.HasCrop():
			return domain.ErrAlreadyPlanted
		case inv.Seeds < 1:
			return domain.ErrNoSeeds
		}
	case domain.ToolHarvest:
		if !plot.HasCrop() || !plot.Ready {
			return domain.ErrNotReady
		}
	}
	return nil
}
