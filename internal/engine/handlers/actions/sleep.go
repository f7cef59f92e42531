package actions

import (
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/internal/systems"
)

// HandleSleep - лечь спать. Новый день начинает сессия, сообщение о пробуждении тоже ставит она.
func HandleSleep(ctx handlers.Context) (handlers.Result, error) {
	return sleep(ctx), nil
}

func sleep(ctx handlers.Context) handlers.Result {
	if err := systems.CanSleep(*ctx.Clock, ctx.Player.Tile(), ctx.Meta.Bed); err != nil {
		return reject(err)
	}
	ctx.Session.Rollover(handlers.RolloverSleep)
	return handlers.EmptyResult()
}
