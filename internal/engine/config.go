package engine

import (
	"hash/fnv"
	"time"

	"cloverfield-server/internal/domain"
)

// DefaultSaveKey - ключ единственного слота сохранения
const DefaultSaveKey = "life-sim-save-v1"

// DefaultSeed - строковое зерно сессии по умолчанию
const DefaultSeed = "life-sim"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно генератора погоды.
	// Задается строкой и сводится к int64 через FNV-1a.
	Seed int64

	// TickRate - тиков симуляции в секунду реального времени
	TickRate int

	// MinutesPerSecond - игровых минут за секунду
	MinutesPerSecond float64

	// AutosaveInterval - период автосохранения
	AutosaveInterval time.Duration

	// SaveKey - ключ слота в хранилище
	SaveKey string

	// RecordReplay - писать ли команды в запись сессии
	RecordReplay bool
}

// NewConfig создает конфиг по умолчанию
func NewConfig() Config {
	return Config{
		Seed:             SeedFromString(DefaultSeed),
		TickRate:         20,
		MinutesPerSecond: domain.MinutesPerSecond,
		AutosaveInterval: 10 * time.Second,
		SaveKey:          DefaultSaveKey,
		RecordReplay:     true,
	}
}

// SeedFromString сводит строковое зерно к числу. Одинаковые строки дают одинаковую погоду.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}

// TickInterval - длительность одного тика
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return 50 * time.Millisecond
	}
	return time.Second / time.Duration(c.TickRate)
}

// TickSeconds - фиксированный шаг симуляции в секундах, округленный до миллисекунды.
// Тот же шаг пишется в запись сессии, поэтому воспроизведение совпадает бит в бит.
func (c Config) TickSeconds() float64 {
	return float64(c.TickInterval()/time.Millisecond) / 1000
}
