package farmworld

import (
	"cloverfield-server/internal/domain"
)

// Builder предоставляет fluent API для штамповки карты.
// Каждый штамп перезаписывает предыдущие в своей области, выход за границы обрезается.
type Builder struct {
	world *domain.GameWorld
	meta  domain.WorldMeta
}

// NewBuilder создает карту заданного размера, залитую травой
func NewBuilder(width, height int) *Builder {
	return &Builder{
		world: domain.NewGameWorld(width, height),
	}
}

// Fill заливает всю карту одним типом
func (b *Builder) Fill(t domain.TileType) *Builder {
	return b.Rect(0, 0, b.world.Width-1, b.world.Height-1, t)
}

// Rect штампует прямоугольник (границы включительно, порядок углов любой)
func (b *Builder) Rect(x1, y1, x2, y2 int, t domain.TileType) *Builder {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			b.world.SetTile(x, y, t)
		}
	}
	return b
}

// Line штампует горизонтальную или вертикальную линию.
// Для x1 == x2 линия вертикальная, иначе горизонтальная по y1.
func (b *Builder) Line(x1, y1, x2, y2 int, t domain.TileType) *Builder {
	if x1 == x2 {
		return b.Rect(x1, y1, x1, y2, t)
	}
	return b.Rect(x1, y1, x2, y1, t)
}

// Tile штампует одну клетку
func (b *Builder) Tile(x, y int, t domain.TileType) *Builder {
	b.world.SetTile(x, y, t)
	return b
}

// Fence обносит прямоугольник забором по периметру
func (b *Builder) Fence(x1, y1, x2, y2 int) *Builder {
	return b.
		Rect(x1, y1, x2, y1, domain.TileFence).
		Rect(x1, y2, x2, y2, domain.TileFence).
		Rect(x1, y1, x1, y2, domain.TileFence).
		Rect(x2, y1, x2, y2, domain.TileFence)
}

// WithFarm задает прямоугольник поля
func (b *Builder) WithFarm(r domain.Rect) *Builder {
	b.meta.FarmRect = r
	return b
}

// WithShop, WithBin, WithBed, WithSpawn задают точки интереса
func (b *Builder) WithShop(x, y int) *Builder {
	b.meta.Shop = domain.Position{X: x, Y: y}
	return b
}

func (b *Builder) WithBin(x, y int) *Builder {
	b.meta.Bin = domain.Position{X: x, Y: y}
	return b
}

func (b *Builder) WithBed(x, y int) *Builder {
	b.meta.Bed = domain.Position{X: x, Y: y}
	return b
}

func (b *Builder) WithSpawn(x, y int) *Builder {
	b.meta.Spawn = domain.Position{X: x, Y: y}
	return b
}

// WithSchedule добавляет точку расписания NPC. Точки должны идти по возрастанию минут.
func (b *Builder) WithSchedule(minute, x, y int) *Builder {
	b.meta.Schedule = append(b.meta.Schedule, domain.Waypoint{Minute: minute, X: x, Y: y})
	return b
}

// Build собирает и возвращает готовый мир
func (b *Builder) Build() (*domain.GameWorld, domain.WorldMeta) {
	return b.world, b.meta
}
