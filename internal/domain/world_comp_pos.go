package domain

import "math"

// IsNear - расстояние Чебышёва не больше dist (включая диагонали)
func (p Position) IsNear(other Position, dist int) bool {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= dist && dy <= dist
}

// Shift возвращает соседнюю клетку в направлении взгляда
func (p Position) Shift(f Facing) Position {
	return Position{X: p.X + f.X, Y: p.Y + f.Y}
}

// Center возвращает центр клетки в единицах мира
func (p Position) Center() Vec2 {
	return Vec2{
		X: float64(p.X*TileSize) + TileSize/2,
		Y: float64(p.Y*TileSize) + TileSize/2,
	}
}

// Tile возвращает клетку, в которой лежит точка
func (v Vec2) Tile() Position {
	return Position{X: WorldToTile(v.X), Y: WorldToTile(v.Y)}
}

// DistanceTo возвращает евклидово расстояние
func (v Vec2) DistanceTo(other Vec2) float64 {
	return math.Hypot(other.X-v.X, other.Y-v.Y)
}

// WorldToTile переводит координату мира в индекс клетки (floor, работает и для отрицательных)
func WorldToTile(value float64) int {
	return int(math.Floor(value / TileSize))
}

// IsZero - стоит на месте
func (f Facing) IsZero() bool {
	return f.X == 0 && f.Y == 0
}

// Valid - компоненты в {-1,0,1} и хотя бы одна ненулевая
func (f Facing) Valid() bool {
	return f.X >= -1 && f.X <= 1 && f.Y >= -1 && f.Y <= 1 && !f.IsZero()
}
