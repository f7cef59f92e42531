package systems

import (
	"cloverfield-server/internal/domain"
	"cloverfield-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// CanWalk проверяет, что хитбокс с центром в pos помещается на проходимых клетках.
// Все четыре угла квадрата со стороной 2*halfWidth должны лежать в пределах карты
// и не попадать на заблокированные клетки.
func CanWalk(w *domain.GameWorld, pos domain.Vec2, halfWidth float64) bool {
	corners := [4]domain.Vec2{
		{X: pos.X - halfWidth, Y: pos.Y - halfWidth},
		{X: pos.X + halfWidth, Y: pos.Y - halfWidth},
		{X: pos.X - halfWidth, Y: pos.Y + halfWidth},
		{X: pos.X + halfWidth, Y: pos.Y + halfWidth},
	}

	for _, c := range corners {
		tile := c.Tile()
		if w.IsBlocked(tile.X, tile.Y) {
			if logger.Log != nil && logger.Log.IsLevelEnabled(logrus.TraceLevel) {
				logger.Log.WithFields(logrus.Fields{
					"component": "physics_system",
					"pos":       pos,
					"corner":    tile,
				}).Trace("Walk blocked")
			}
			return false
		}
	}
	return true
}
