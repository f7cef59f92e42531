package domain

import "errors"

// Мягкие отказы симуляции. Состояние при них не меняется,
// хендлеры превращают их в сообщения для игрока.
var (
	ErrNotTilled      = errors.New("not tilled")
	ErrAlreadyTilled  = errors.New("already tilled")
	ErrAlreadyPlanted = errors.New("already planted")
	ErrNoSeeds        = errors.New("no seeds")
	ErrNotReady       = errors.New("nothing ready")
	ErrExhausted      = errors.New("not enough stamina")
	ErrOutsideField   = errors.New("outside farm field")
	ErrTooEarly       = errors.New("too early to sleep")
	ErrNotNearBed     = errors.New("not near bed")
	ErrNotEnoughGold  = errors.New("not enough gold")
	ErrBinEmpty       = errors.New("shipping bin empty")
	ErrNobodyNearby   = errors.New("nobody nearby")
	ErrAlreadyTalked  = errors.New("already talked today")
)
