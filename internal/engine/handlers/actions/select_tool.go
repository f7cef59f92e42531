package actions

import (
	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/pkg/api"
)

// HandleSelectTool выбирает слот 1-5
func HandleSelectTool(ctx handlers.Context, p api.SelectToolPayload) (handlers.Result, error) {
	ctx.Player.SelectedTool = domain.Tool(p.Slot - 1)
	return handlers.EmptyResult(), nil
}
