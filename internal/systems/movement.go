package systems

import (
	"math"

	"cloverfield-server/internal/domain"
)

// MovementResult - результат шага движения за тик
type MovementResult struct {
	Pos      domain.Vec2
	Facing   domain.Facing
	Moving   bool // есть ненулевое намерение двигаться
	BlockedX bool // сдвиг по X отклонен коллизией
	BlockedY bool // сдвиг по Y отклонен коллизией
}

// CalculateMove вычисляет новую позицию по намерениям осей (-1/0/1). Не меняет состояние!
// Оси проверяются независимо: упершись в стену по одной оси, можно скользить по другой.
func CalculateMove(pos domain.Vec2, facing domain.Facing, dx, dy int, speed, seconds float64, w *domain.GameWorld) MovementResult {
	res := MovementResult{Pos: pos, Facing: facing}

	dx, dy = clampAxis(dx), clampAxis(dy)
	if dx == 0 && dy == 0 {
		return res
	}
	res.Moving = true

	// 1. Нормализация, чтобы диагональ не была быстрее
	length := math.Hypot(float64(dx), float64(dy))
	nx := float64(dx) / length
	ny := float64(dy) / length

	// 2. Взгляд - округленное направление
	res.Facing = domain.Facing{X: int(math.Round(nx)), Y: int(math.Round(ny))}

	step := speed * seconds

	// 3. Ось X
	if nx != 0 {
		next := domain.Vec2{X: res.Pos.X + nx*step, Y: res.Pos.Y}
		if CanWalk(w, next, domain.CollisionHalfW) {
			res.Pos = next
		} else {
			res.BlockedX = true
		}
	}

	// 4. Ось Y (от уже сдвинутой по X позиции)
	if ny != 0 {
		next := domain.Vec2{X: res.Pos.X, Y: res.Pos.Y + ny*step}
		if CanWalk(w, next, domain.CollisionHalfW) {
			res.Pos = next
		} else {
			res.BlockedY = true
		}
	}

	return res
}

// MovePlayer применяет CalculateMove к игроку
func MovePlayer(p *domain.Player, dx, dy int, seconds float64, w *domain.GameWorld) MovementResult {
	res := CalculateMove(p.Pos, p.Facing, dx, dy, domain.PlayerSpeed, seconds, w)
	p.Pos = res.Pos
	p.Facing = res.Facing
	p.Moving = res.Moving
	return res
}

func clampAxis(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
