package actions

import (
	"errors"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
)

// Welcome показывается при старте сессии
const Welcome = "Welcome to Cloverfield. Grow crops, meet neighbors, and build your farm."

// rejectionText - тексты мягких отказов для игрока
var rejectionText = map[error]string{
	domain.ErrOutsideField:   "You can only farm inside your field.",
	domain.ErrAlreadyTilled:  "This tile is already tilled.",
	domain.ErrNotTilled:      "Till soil first.",
	domain.ErrAlreadyPlanted: "Something is already growing here.",
	domain.ErrNoSeeds:        "No parsnip seeds left. Visit the shop.",
	domain.ErrNotReady:       "Nothing ready to harvest.",
	domain.ErrExhausted:      "Too exhausted. Sleep to recover stamina.",
	domain.ErrTooEarly:       "Too early to sleep. Try again after 6:00 PM.",
	domain.ErrNotNearBed:     "Get closer to your bed to sleep.",
	domain.ErrNotEnoughGold:  "Not enough gold.",
	domain.ErrBinEmpty:       "Shipping bin is empty.",
	domain.ErrNobodyNearby:   "Nobody is close enough to talk to.",
}

// reject превращает доменную ошибку в ответ игроку
func reject(err error) handlers.Result {
	for sentinel, text := range rejectionText {
		if errors.Is(err, sentinel) {
			return handlers.Reject(sentinel, text)
		}
	}
	return handlers.Reject(err, err.Error())
}
