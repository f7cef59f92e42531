package domain

import "encoding/json"

// ReplayAction - это запись одной дискретной команды игрока
type ReplayAction struct {
	Tick    int             `json:"tick"`    // номер тика, перед которым команда была применена
	Action  ActionType      `json:"action"`  // Что сделал
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись сессии.
// Симуляция детерминирована при фиксированном шаге, поэтому сид + шаг + команды
// полностью восстанавливают партию.
type ReplaySession struct {
	Seed       int64          `json:"seed"` // Зерно генератора погоды
	Timestamp  int64          `json:"timestamp"`
	TickMillis int            `json:"tickMillis"` // длительность одного тика
	TotalTicks int            `json:"totalTicks"`
	Actions    []ReplayAction `json:"actions"`
}
