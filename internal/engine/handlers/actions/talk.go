package actions

import (
	"errors"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/internal/systems"
)

// HandleTalk - разговор с NPC, если он рядом
func HandleTalk(ctx handlers.Context) (handlers.Result, error) {
	return talk(ctx), nil
}

func talk(ctx handlers.Context) handlers.Result {
	line, err := systems.Talk(ctx.NPC, ctx.Player.Pos, *ctx.Clock)
	if errors.Is(err, domain.ErrAlreadyTalked) {
		return handlers.Result{Msg: line, MsgType: domain.MsgSpeech, Rejection: err}
	}
	if err != nil {
		return reject(err)
	}
	return handlers.Result{Msg: line, MsgType: domain.MsgSpeech}
}
