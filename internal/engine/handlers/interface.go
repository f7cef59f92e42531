package handlers

import (
	"context"
	"encoding/json"

	"cloverfield-server/internal/domain"
)

// RolloverCause - почему начался новый день
type RolloverCause string

const (
	RolloverSleep     RolloverCause = "sleep"
	RolloverPassedOut RolloverCause = "passed_out"
)

// Session - операции симуляции, которые хендлер не может выполнить сам:
// смена дня и работа с хранилищем.
type Session interface {
	Rollover(cause RolloverCause)
	Save(ctx context.Context, trigger string) error
	Load(ctx context.Context) (bool, error)
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	Ctx     context.Context
	World   *domain.GameWorld
	Meta    *domain.WorldMeta
	Plots   domain.PlotRegistry
	Clock   *domain.Clock
	Player  *domain.Player
	NPC     *domain.NPC
	Intent  *domain.Facing // удерживаемые оси движения, X и Y в {-1,0,1}
	Session Session
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg       string // Текст сообщения для игрока
	MsgType   string // Тип сообщения (INFO, SPEECH, ERROR, SYSTEM)
	Rejection error  // Мягкий отказ: состояние не изменилось
}

// HandlerFunc - это контракт для любой команды (MOVE, USE_TOOL, etc).
// error означает ошибку протокола (битый payload), а не игровой отказ.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Info - успешное действие с сообщением
func Info(msg string) Result {
	return Result{Msg: msg, MsgType: domain.MsgInfo}
}

// Reject - мягкий отказ с сообщением для игрока
func Reject(err error, msg string) Result {
	return Result{Msg: msg, MsgType: domain.MsgError, Rejection: err}
}
