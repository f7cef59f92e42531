package savegame

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"cloverfield-server/internal/domain"
	"cloverfield-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Decode разбирает сохранение. Функция тотальная: не паникует и не возвращает ошибок.
// Пустой, отсутствующий или не-объектный JSON - это "нет сохранения" (false).
// Иначе каждое поле читается независимо: битое или отсутствующее поле
// заменяется значением новой игры, числа зажимаются в допустимые диапазоны.
func Decode(raw []byte, meta domain.WorldMeta) (State, bool) {
	state := NewState(meta)

	if len(bytes.TrimSpace(raw)) == 0 {
		return state, false
	}
	root := object(raw)
	if root == nil {
		return state, false
	}

	// 1. Часы и погода
	state.Clock.Day = max(root.intOr("day", 1), 1)
	state.Clock.TotalMinutes = clamp(root.intOr("totalMinutes", domain.DayStartMinute), 0, domain.MinutesPerDay-1)
	if name, ok := root.stringOr("weather"); ok {
		if w, ok := domain.ParseWeather(name); ok {
			state.Weather = w
		}
	}

	// 2. Игрок: ресурсы
	p := &state.Player
	p.Stamina = clamp(root.intOr("stamina", domain.StaminaMax), 0, domain.StaminaMax)
	p.Money = max(root.intOr("money", domain.StartingMoney), 0)

	inv := object(root["inventory"])
	p.Inventory.Seeds = max(inv.intOr("parsnipSeeds", domain.StartingSeeds), 0)
	p.Inventory.Crops = max(inv.intOr("parsnip", 0), 0)

	// 3. Игрок: позиция и инструмент
	pl := object(root["player"])
	p.Pos = pl.vecOr(p.Pos)
	p.Facing = object(pl["facing"]).facingOr(domain.DefaultFacing)
	p.SelectedTool = domain.Tool(clamp(pl.intOr("selectedTool", 0), 0, domain.ToolCount-1))

	// 4. NPC
	npc := object(root["npc"])
	state.NPC.Friendship = max(npc.intOr("friendship", 0), 0)
	state.NPC.LastTalkDay = max(npc.intOr("lastTalkDay", 0), 0)
	state.NPC.Pos = npc.vecOr(state.NPC.Pos)
	state.NPC.Facing = object(npc["facing"]).facingOr(domain.DefaultFacing)

	// 5. Грядки
	skipped := 0
	for key, value := range object(root["plots"]) {
		pos, ok := ParsePlotKey(key)
		if !ok {
			skipped++
			continue
		}
		plot, ok := decodePlot(value)
		if !ok {
			skipped++
			continue
		}
		state.Plots[pos] = plot
	}
	if skipped > 0 {
		logger.Log.WithFields(logrus.Fields{
			"component": "savegame",
			"skipped":   skipped,
		}).Warn("Skipped malformed plots while loading save")
	}

	return state, true
}

// ParsePlotKey разбирает ключ "x,y"
func ParsePlotKey(key string) (domain.Position, bool) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return domain.Position{}, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return domain.Position{}, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return domain.Position{}, false
	}
	return domain.Position{X: x, Y: y}, true
}

func decodePlot(raw json.RawMessage) (*domain.Plot, bool) {
	f := object(raw)
	if f == nil {
		return nil, false
	}

	plot := &domain.Plot{Tilled: f.boolOr("tilled")}
	if !plot.Tilled {
		// Полив и культура без вспашки не имеют смысла
		return plot, true
	}

	plot.Watered = f.boolOr("watered")
	if name, ok := f.stringOr("crop"); ok {
		plot.Crop = domain.ParseCrop(name)
	}
	if plot.HasCrop() {
		plot.Growth = clamp(f.intOr("growth", 0), 0, domain.MaturityStage)
		plot.Ready = plot.Growth >= domain.MaturityStage
	}
	return plot, true
}

// fields - JSON-объект с отложенным разбором полей
type fields map[string]json.RawMessage

// object возвращает nil, если raw не JSON-объект
func object(raw json.RawMessage) fields {
	if len(raw) == 0 {
		return nil
	}
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}

func (f fields) floatOr(key string, def float64) (float64, bool) {
	raw, ok := f[key]
	if !ok {
		return def, false
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, false
	}
	return v, true
}

// intOr читает число, дробная часть отбрасывается
func (f fields) intOr(key string, def int) int {
	v, ok := f.floatOr(key, 0)
	if !ok || math.Abs(v) > math.MaxInt32 {
		return def
	}
	return int(v)
}

func (f fields) boolOr(key string) bool {
	var v bool
	if raw, ok := f[key]; ok {
		_ = json.Unmarshal(raw, &v)
	}
	return v
}

func (f fields) stringOr(key string) (string, bool) {
	raw, ok := f[key]
	if !ok {
		return "", false
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", false
	}
	return v, true
}

// vecOr читает x/y. Точка вне мира считается битой.
func (f fields) vecOr(def domain.Vec2) domain.Vec2 {
	x, okX := f.floatOr("x", 0)
	y, okY := f.floatOr("y", 0)
	if !okX || !okY {
		return def
	}
	limitX := float64(domain.WorldWidth * domain.TileSize)
	limitY := float64(domain.WorldHeight * domain.TileSize)
	if x < 0 || y < 0 || x >= limitX || y >= limitY {
		return def
	}
	return domain.Vec2{X: x, Y: y}
}

func (f fields) facingOr(def domain.Facing) domain.Facing {
	fc := domain.Facing{X: f.intOr("x", 0), Y: f.intOr("y", 0)}
	if !fc.Valid() {
		return def
	}
	return fc
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
