package actions

import (
	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
)

// HandleSave - ручное сохранение
func HandleSave(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Session.Save(ctx.Ctx, "manual"); err != nil {
		return handlers.Result{Msg: "Save failed.", MsgType: domain.MsgError, Rejection: err}, nil
	}
	return handlers.Result{Msg: "Manual save complete.", MsgType: domain.MsgSystem}, nil
}

// HandleLoad - загрузка сохранения. Отсутствие сохранения - не ошибка.
func HandleLoad(ctx handlers.Context) (handlers.Result, error) {
	found, err := ctx.Session.Load(ctx.Ctx)
	if err != nil {
		return handlers.Result{Msg: "Load failed.", MsgType: domain.MsgError, Rejection: err}, nil
	}
	if !found {
		return handlers.Result{Msg: "No save found yet.", MsgType: domain.MsgSystem}, nil
	}
	return handlers.Result{Msg: "Save loaded.", MsgType: domain.MsgSystem}, nil
}
