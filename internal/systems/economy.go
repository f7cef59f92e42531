package systems

import (
	"cloverfield-server/internal/domain"
)

// BuySeed покупает одно семя по фиксированной цене
func BuySeed(p *domain.Player) error {
	if p.Money < domain.SeedPrice {
		return domain.ErrNotEnoughGold
	}
	p.Money -= domain.SeedPrice
	p.Inventory.Seeds++
	return nil
}

// ShipCrops продает весь урожай через ящик. Возвращает число проданных и выручку.
func ShipCrops(p *domain.Player) (int, int, error) {
	count := p.Inventory.Crops
	if count <= 0 {
		return 0, 0, domain.ErrBinEmpty
	}
	earned := count * domain.CropValue
	p.Money += earned
	p.Inventory.Crops = 0
	return count, earned, nil
}
