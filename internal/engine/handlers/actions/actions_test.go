package actions

import (
	"context"
	"errors"
	"testing"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSession запоминает вызовы сессии
type fakeSession struct {
	rollovers []handlers.RolloverCause
	saves     []string
	saveErr   error
	hasSave   bool
}

func (f *fakeSession) Rollover(cause handlers.RolloverCause) {
	f.rollovers = append(f.rollovers, cause)
}

func (f *fakeSession) Save(_ context.Context, trigger string) error {
	f.saves = append(f.saves, trigger)
	return f.saveErr
}

func (f *fakeSession) Load(context.Context) (bool, error) { return f.hasSave, nil }

var testMeta = domain.WorldMeta{
	FarmRect: domain.Rect{X1: 4, Y1: 9, X2: 25, Y2: 24},
	Shop:     domain.Position{X: 49, Y: 14},
	Bin:      domain.Position{X: 8, Y: 11},
	Bed:      domain.Position{X: 6, Y: 7},
	Spawn:    domain.Position{X: 8, Y: 20},
	Schedule: []domain.Waypoint{{Minute: 360, X: 58, Y: 25}},
}

func newCtx() (handlers.Context, *fakeSession) {
	meta := testMeta
	clock := domain.NewClock()
	player := domain.NewPlayer(meta.Spawn)
	npc := domain.NewNPC(meta.Schedule)
	intent := domain.Facing{}
	session := &fakeSession{}

	return handlers.Context{
		Ctx:     context.Background(),
		World:   domain.NewGameWorld(domain.WorldWidth, domain.WorldHeight),
		Meta:    &meta,
		Plots:   domain.PlotRegistry{},
		Clock:   &clock,
		Player:  &player,
		NPC:     &npc,
		Intent:  &intent,
		Session: session,
	}, session
}

func standOn(ctx handlers.Context, p domain.Position) {
	ctx.Player.Pos = p.Center()
}

func TestHandleUseTool_Messages(t *testing.T) {
	ctx, _ := newCtx()

	res, err := HandleUseTool(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Soil tilled.", res.Msg)
	assert.NoError(t, res.Rejection)

	res, _ = HandleUseTool(ctx)
	assert.Equal(t, "This tile is already tilled.", res.Msg)
	assert.ErrorIs(t, res.Rejection, domain.ErrAlreadyTilled)
	assert.Equal(t, domain.StaminaMax-domain.CostHoe, ctx.Player.Stamina, "re-till is free")

	ctx.Player.SelectedTool = domain.ToolSeed
	res, _ = HandleUseTool(ctx)
	assert.Equal(t, "Parsnip planted.", res.Msg)

	ctx.Player.SelectedTool = domain.ToolHarvest
	res, _ = HandleUseTool(ctx)
	assert.Equal(t, "Nothing ready to harvest.", res.Msg)

	// Вне поля
	standOn(ctx, domain.Position{X: 40, Y: 30})
	ctx.Player.SelectedTool = domain.ToolWater
	res, _ = HandleUseTool(ctx)
	assert.Equal(t, "You can only farm inside your field.", res.Msg)
	assert.Equal(t, domain.MsgError, res.MsgType)
}

func TestHandleUseTool_Exhausted(t *testing.T) {
	ctx, _ := newCtx()
	ctx.Player.Stamina = 1

	res, _ := HandleUseTool(ctx)
	assert.Equal(t, "Too exhausted. Sleep to recover stamina.", res.Msg)
	assert.Equal(t, 1, ctx.Player.Stamina)
	assert.Nil(t, ctx.Plots.Get(domain.Position{X: 8, Y: 21}), "failed action must not touch the plot")
}

func TestHandleUseTool_TalkTool(t *testing.T) {
	ctx, _ := newCtx()
	ctx.Player.SelectedTool = domain.ToolTalk

	res, _ := HandleUseTool(ctx)
	assert.ErrorIs(t, res.Rejection, domain.ErrNobodyNearby)

	ctx.Player.Pos = ctx.NPC.Pos
	res, _ = HandleUseTool(ctx)
	assert.Equal(t, "Mira: Morning. Your crops look promising.", res.Msg)
	assert.Equal(t, domain.MsgSpeech, res.MsgType)
	assert.Equal(t, 1, ctx.NPC.Friendship)
}

func TestHandleInteract_Order(t *testing.T) {
	t.Run("talk wins", func(t *testing.T) {
		ctx, _ := newCtx()
		// NPC стоит прямо у магазина
		ctx.NPC.Pos = testMeta.Shop.Center()
		standOn(ctx, testMeta.Shop)

		res, _ := HandleInteract(ctx)
		assert.Equal(t, domain.MsgSpeech, res.MsgType)
		assert.Equal(t, domain.StartingMoney, ctx.Player.Money)
	})

	t.Run("shop", func(t *testing.T) {
		ctx, _ := newCtx()
		standOn(ctx, domain.Position{X: 50, Y: 15})

		res, _ := HandleInteract(ctx)
		assert.Equal(t, "Bought 1 parsnip seed for 20g.", res.Msg)
		assert.Equal(t, domain.StartingMoney-domain.SeedPrice, ctx.Player.Money)
		assert.Equal(t, domain.StartingSeeds+1, ctx.Player.Inventory.Seeds)

		ctx.Player.Money = 15
		res, _ = HandleInteract(ctx)
		assert.Equal(t, "Not enough gold.", res.Msg)
		assert.Equal(t, 15, ctx.Player.Money)
	})

	t.Run("bin", func(t *testing.T) {
		ctx, _ := newCtx()
		standOn(ctx, testMeta.Bin)

		res, _ := HandleInteract(ctx)
		assert.Equal(t, "Shipping bin is empty.", res.Msg)

		ctx.Player.Inventory.Crops = 2
		res, _ = HandleInteract(ctx)
		assert.Equal(t, "Shipped 2 parsnip for 70g.", res.Msg)
		assert.Equal(t, domain.StartingMoney+70, ctx.Player.Money)
	})

	t.Run("sleep at bed", func(t *testing.T) {
		ctx, session := newCtx()
		standOn(ctx, testMeta.Bed)

		res, _ := HandleInteract(ctx)
		assert.Equal(t, "Too early to sleep. Try again after 6:00 PM.", res.Msg)
		assert.Empty(t, session.rollovers)

		ctx.Clock.TotalMinutes = domain.SleepAfterMinute
		res, _ = HandleInteract(ctx)
		assert.NoError(t, res.Rejection)
		assert.Equal(t, []handlers.RolloverCause{handlers.RolloverSleep}, session.rollovers)
	})

	t.Run("nothing nearby is silent", func(t *testing.T) {
		ctx, session := newCtx()
		standOn(ctx, domain.Position{X: 30, Y: 30})
		ctx.Clock.TotalMinutes = 1300

		res, _ := HandleInteract(ctx)
		assert.Empty(t, res.Msg)
		assert.Empty(t, session.rollovers)
	})
}

func TestHandleSleep(t *testing.T) {
	ctx, session := newCtx()
	ctx.Clock.TotalMinutes = 1200

	res, _ := HandleSleep(ctx)
	assert.Equal(t, "Get closer to your bed to sleep.", res.Msg)

	standOn(ctx, domain.Position{X: 7, Y: 8})
	res, _ = HandleSleep(ctx)
	assert.NoError(t, res.Rejection)
	assert.Len(t, session.rollovers, 1)
}

func TestHandleSaveLoad(t *testing.T) {
	ctx, session := newCtx()

	res, _ := HandleSave(ctx)
	assert.Equal(t, "Manual save complete.", res.Msg)
	assert.Equal(t, []string{"manual"}, session.saves)

	session.saveErr = errors.New("disk full")
	res, _ = HandleSave(ctx)
	assert.Equal(t, "Save failed.", res.Msg)
	assert.Error(t, res.Rejection)

	res, _ = HandleLoad(ctx)
	assert.Equal(t, "No save found yet.", res.Msg)

	session.hasSave = true
	res, _ = HandleLoad(ctx)
	assert.Equal(t, "Save loaded.", res.Msg)
}

func TestHandleSelectToolAndMove(t *testing.T) {
	ctx, _ := newCtx()

	_, err := HandleSelectTool(ctx, api.SelectToolPayload{Slot: 4})
	require.NoError(t, err)
	assert.Equal(t, domain.ToolHarvest, ctx.Player.SelectedTool)

	_, err = HandleMove(ctx, api.MovePayload{Dx: -1, Dy: 1})
	require.NoError(t, err)
	assert.Equal(t, domain.Facing{X: -1, Y: 1}, *ctx.Intent)
}

func TestHandleInit(t *testing.T) {
	ctx, _ := newCtx()
	res, err := HandleInit(ctx)
	require.NoError(t, err)
	assert.Equal(t, Welcome, res.Msg)
}
