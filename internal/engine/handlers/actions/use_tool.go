package actions

import (
	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/internal/systems"
)

var toolSuccessText = map[domain.Tool]string{
	domain.ToolHoe:     "Soil tilled.",
	domain.ToolWater:   "Watered.",
	domain.ToolSeed:    "Parsnip planted.",
	domain.ToolHarvest: "Harvested 1 Parsnip.",
}

// HandleUseTool применяет выбранный инструмент к клетке перед игроком
func HandleUseTool(ctx handlers.Context) (handlers.Result, error) {
	tool := ctx.Player.SelectedTool
	if tool == domain.ToolTalk {
		return talk(ctx), nil
	}

	if _, err := systems.UseTool(ctx.Plots, ctx.Meta.FarmRect, ctx.Player); err != nil {
		return reject(err), nil
	}
	return handlers.Info(toolSuccessText[tool]), nil
}
