package systems

import (
	"fmt"
	"math"

	"cloverfield-server/internal/domain"
	"cloverfield-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ScheduleIndex возвращает индекс последней точки, чье время уже наступило.
// Расписание замкнуто по суткам: до первой точки действует последняя.
// Для пустого расписания -1.
func ScheduleIndex(schedule []domain.Waypoint, minute int) int {
	if len(schedule) == 0 {
		return -1
	}
	index := len(schedule) - 1
	for i, wp := range schedule {
		if minute >= wp.Minute {
			index = i
		}
	}
	return index
}

// UpdateNPC выбирает цель по расписанию и делает шаг к ней
func UpdateNPC(npc *domain.NPC, schedule []domain.Waypoint, minute int, seconds float64) {
	index := ScheduleIndex(schedule, minute)
	if index < 0 {
		npc.Moving = false
		return
	}

	if index != npc.TargetIndex {
		logger.Log.WithFields(logrus.Fields{
			"component": "npc_schedule",
			"npc":       npc.Name,
			"from":      npc.TargetIndex,
			"to":        index,
			"minute":    minute,
		}).Debug("NPC switched waypoint")
	}
	npc.TargetIndex = index

	wp := schedule[index]
	target := domain.Position{X: wp.X, Y: wp.Y}.Center()
	StepNPC(npc, target, seconds)
}

// StepNPC двигает NPC к цели с постоянной скоростью без перелета.
// NPC сквозь препятствия не проверяется.
func StepNPC(npc *domain.NPC, target domain.Vec2, seconds float64) {
	dx := target.X - npc.Pos.X
	dy := target.Y - npc.Pos.Y
	dist := math.Hypot(dx, dy)

	if dist <= domain.NPCArriveRadius {
		npc.Moving = false
		return
	}

	move := math.Min(dist, domain.NPCSpeed*seconds)
	npc.Pos.X += dx / dist * move
	npc.Pos.Y += dy / dist * move
	npc.Moving = move > 0
	npc.Facing = dominantFacing(dx, dy)
}

// dominantFacing - направление по большей по модулю оси
func dominantFacing(dx, dy float64) domain.Facing {
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return domain.Facing{X: -1}
		}
		return domain.Facing{X: 1}
	}
	if dy < 0 {
		return domain.Facing{Y: -1}
	}
	return domain.Facing{Y: 1}
}

// Talk - разговор с NPC. Раз в день, +1 к дружбе, реплика зависит от времени суток.
func Talk(npc *domain.NPC, playerPos domain.Vec2, clock domain.Clock) (string, error) {
	if playerPos.DistanceTo(npc.Pos) > domain.TalkRadius {
		return "", domain.ErrNobodyNearby
	}
	if npc.LastTalkDay == clock.Day {
		return fmt.Sprintf("%s: We already talked today.", npc.Name), domain.ErrAlreadyTalked
	}

	npc.LastTalkDay = clock.Day
	npc.Friendship++

	var line string
	switch hour := clock.Hour(); {
	case hour < 10:
		line = "Morning. Your crops look promising."
	case hour < 17:
		line = "The town square is lively today."
	default:
		line = "Long day. Don't forget to rest."
	}
	return fmt.Sprintf("%s: %s", npc.Name, line), nil
}

// NPCInRange - стоит ли NPC в радиусе разговора
func NPCInRange(npc *domain.NPC, playerPos domain.Vec2) bool {
	return playerPos.DistanceTo(npc.Pos) <= domain.TalkRadius
}
