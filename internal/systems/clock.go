package systems

import (
	"fmt"
	"math/rand"

	"cloverfield-server/internal/domain"
)

// Пороги броска погоды
const (
	rainyBelow  = 0.18
	cloudyBelow = 0.48
)

// AdvanceClock добавляет игровые минуты за seconds реального времени.
// Дробный остаток копится в Accumulator и сбрасывается по одной целой минуте.
// Возвращает true, если часы дошли до полуночи: остаток этого шага отбрасывается,
// поэтому один вызов дает не больше одного перехода дня. Сам переход делает вызывающий.
func AdvanceClock(c *domain.Clock, seconds, minutesPerSecond float64) bool {
	if seconds <= 0 {
		return false
	}
	c.Accumulator += seconds * minutesPerSecond

	for c.Accumulator >= 1 {
		c.Accumulator--
		c.TotalMinutes++
		if c.TotalMinutes >= domain.MinutesPerDay {
			c.Accumulator = 0
			return true
		}
	}
	return false
}

// StartNewDay переводит часы на 6:00 следующего дня
func StartNewDay(c *domain.Clock) {
	c.Day++
	c.TotalMinutes = domain.DayStartMinute
	c.Accumulator = 0
}

// RollWeather выбирает погоду на новый день
func RollWeather(rng *rand.Rand) domain.Weather {
	roll := rng.Float64()
	switch {
	case roll < rainyBelow:
		return domain.WeatherRainy
	case roll < cloudyBelow:
		return domain.WeatherCloudy
	}
	return domain.WeatherSunny
}

// CanSleep проверяет расстояние до кровати, затем время
func CanSleep(c domain.Clock, playerTile, bed domain.Position) error {
	if !playerTile.IsNear(bed, domain.InteractTileDist) {
		return domain.ErrNotNearBed
	}
	if c.TotalMinutes < domain.SleepAfterMinute {
		return domain.ErrTooEarly
	}
	return nil
}

// FormatClock форматирует минуты от полуночи как "6:00 AM"
func FormatClock(totalMinutes int) string {
	hour := totalMinutes / 60
	minute := totalMinutes % 60

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	twelve := hour % 12
	if twelve == 0 {
		twelve = 12
	}
	return fmt.Sprintf("%d:%02d %s", twelve, minute, suffix)
}
