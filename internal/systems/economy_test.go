package systems

import (
	"testing"

	"cloverfield-server/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuySeed(t *testing.T) {
	tests := []struct {
		name      string
		money     int
		wantErr   error
		wantMoney int
		wantSeeds int
	}{
		{"not enough gold", 15, domain.ErrNotEnoughGold, 15, 3},
		{"exact price", 20, nil, 0, 4},
		{"with change", 25, nil, 5, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.Player{Money: tt.money, Inventory: domain.Inventory{Seeds: 3}}

			err := BuySeed(&p)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantMoney, p.Money)
			assert.Equal(t, tt.wantSeeds, p.Inventory.Seeds)
		})
	}
}

func TestShipCrops(t *testing.T) {
	p := domain.Player{Money: 10}

	_, _, err := ShipCrops(&p)
	assert.ErrorIs(t, err, domain.ErrBinEmpty)
	assert.Equal(t, 10, p.Money)

	p.Inventory.Crops = 3
	count, earned, err := ShipCrops(&p)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 105, earned)
	assert.Equal(t, 115, p.Money)
	assert.Zero(t, p.Inventory.Crops)
}
