package farmworld

import (
	"cloverfield-server/internal/domain"
)

// Generate создает карту Cloverfield.
// Карта фиксированная: два вызова дают идентичный результат.
func Generate() (*domain.GameWorld, domain.WorldMeta) {
	b := NewBuilder(domain.WorldWidth, domain.WorldHeight).Fill(domain.TileGrass)

	// 1. Главные дороги и площадь перед магазином
	b.Line(0, 20, 63, 20, domain.TilePath).
		Line(31, 0, 31, 39, domain.TilePath).
		Rect(36, 8, 56, 18, domain.TilePath)

	// 2. Пруды
	b.Rect(5, 27, 13, 34, domain.TileWater).
		Rect(44, 2, 50, 6, domain.TileWater)

	// 3. Забор вокруг поля и проход к дороге
	b.Fence(2, 4, 27, 25).
		Rect(4, 6, 7, 6, domain.TilePath).
		Rect(23, 20, 31, 20, domain.TilePath)

	// 4. Дом фермера, крыльцо у кровати
	b.Rect(3, 1, 10, 6, domain.TileHouse).
		Tile(6, 7, domain.TilePath)

	// 5. Магазин и вход
	b.Rect(45, 8, 53, 13, domain.TileShop).
		Tile(49, 14, domain.TilePath)

	// 6. Ящик для отгрузки
	b.Tile(8, 11, domain.TileBin)

	// 7. Дом Миры
	b.Rect(55, 26, 61, 33, domain.TileHouse).
		Tile(58, 25, domain.TilePath)

	b.WithFarm(domain.Rect{X1: 4, Y1: 9, X2: 25, Y2: 24}).
		WithShop(49, 14).
		WithBin(8, 11).
		WithBed(6, 7).
		WithSpawn(8, 20)

	b.WithSchedule(6*60, 58, 25).
		WithSchedule(9*60, 40, 12).
		WithSchedule(13*60, 30, 20).
		WithSchedule(17*60, 15, 20).
		WithSchedule(20*60, 58, 25)

	return b.Build()
}
