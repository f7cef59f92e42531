package actions

import (
	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/pkg/api"
)

// HandleMove запоминает удерживаемые оси. Само движение считается в начале каждого тика.
func HandleMove(ctx handlers.Context, p api.MovePayload) (handlers.Result, error) {
	*ctx.Intent = domain.Facing{X: p.Dx, Y: p.Dy}
	return handlers.EmptyResult(), nil
}
