package actions

import "cloverfield-server/internal/engine/handlers"

// HandleInit - клиент подключился. Карту ему отправляет сервис, здесь только приветствие.
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     Welcome,
		MsgType: "SYSTEM",
	}, nil
}
