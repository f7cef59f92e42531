package domain

// NewGameWorld создает мир, залитый травой
func NewGameWorld(width, height int) *GameWorld {
	w := &GameWorld{
		Width:   width,
		Height:  height,
		Tiles:   make([][]TileType, height),
		Blocked: make([][]bool, height),
	}
	for y := 0; y < height; y++ {
		w.Tiles[y] = make([]TileType, width)
		w.Blocked[y] = make([]bool, width)
	}
	return w
}

// InBounds проверяет, что клетка лежит внутри карты
func (w *GameWorld) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.Width && y < w.Height
}

// TileAt возвращает тип клетки. Вне карты - трава и false.
func (w *GameWorld) TileAt(x, y int) (TileType, bool) {
	if !w.InBounds(x, y) {
		return TileGrass, false
	}
	return w.Tiles[y][x], true
}

// IsBlocked - клетки вне карты считаются непроходимыми
func (w *GameWorld) IsBlocked(x, y int) bool {
	if !w.InBounds(x, y) {
		return true
	}
	return w.Blocked[y][x]
}

// SetTile ставит тип и синхронно обновляет маску.
// Это единственный способ менять карту, поэтому Blocked всегда совпадает с типом.
func (w *GameWorld) SetTile(x, y int, t TileType) {
	if !w.InBounds(x, y) {
		return
	}
	w.Tiles[y][x] = t
	w.Blocked[y][x] = t.Blocked()
}

// Contains проверяет попадание клетки в прямоугольник
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}
