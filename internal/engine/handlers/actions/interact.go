package actions

import (
	"errors"
	"fmt"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/internal/systems"
)

// HandleInteract - контекстное действие. Срабатывает первая подходящая ветка:
// разговор -> магазин -> ящик -> сон.
func HandleInteract(ctx handlers.Context) (handlers.Result, error) {
	// 1. NPC рядом
	if systems.NPCInRange(ctx.NPC, ctx.Player.Pos) {
		return talk(ctx), nil
	}

	tile := ctx.Player.Tile()

	// 2. Магазин
	if tile.IsNear(ctx.Meta.Shop, domain.InteractTileDist) {
		if err := systems.BuySeed(ctx.Player); err != nil {
			return reject(err), nil
		}
		return handlers.Info(fmt.Sprintf("Bought 1 parsnip seed for %dg.", domain.SeedPrice)), nil
	}

	// 3. Ящик для отгрузки
	if tile.IsNear(ctx.Meta.Bin, domain.InteractTileDist) {
		count, earned, err := systems.ShipCrops(ctx.Player)
		if err != nil {
			return reject(err), nil
		}
		return handlers.Info(fmt.Sprintf("Shipped %d parsnip for %dg.", count, earned)), nil
	}

	// 4. Сон. Вдали от кровати контекстная кнопка просто ничего не делает.
	res := sleep(ctx)
	if errors.Is(res.Rejection, domain.ErrNotNearBed) {
		return handlers.Result{Rejection: res.Rejection}, nil
	}
	return res, nil
}
