package systems

import (
	"testing"

	"cloverfield-server/internal/domain"
)

func newTestWorld() *domain.GameWorld {
	w := domain.NewGameWorld(10, 10)
	// Стена на (5,5)
	w.SetTile(5, 5, domain.TileWater)
	return w
}

func TestCanWalk(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		name string
		pos  domain.Vec2
		want bool
	}{
		{"center of free tile", domain.Position{X: 2, Y: 2}.Center(), true},
		{"center of water", domain.Position{X: 5, Y: 5}.Center(), false},
		{"corner overlaps water", domain.Vec2{X: 5*32 - 4, Y: 5*32 + 16}, false},
		{"touching edge of water", domain.Vec2{X: 5*32 - 8.01, Y: 5*32 + 16}, true},
		{"outside left edge", domain.Vec2{X: 4, Y: 100}, false},
		{"bottom edge of map", domain.Vec2{X: 100, Y: 10*32 - 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanWalk(w, tt.pos, domain.CollisionHalfW); got != tt.want {
				t.Errorf("CanWalk(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
