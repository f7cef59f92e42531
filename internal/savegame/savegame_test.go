package savegame

import (
	"encoding/json"
	"testing"

	"cloverfield-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMeta = domain.WorldMeta{
	Spawn: domain.Position{X: 8, Y: 20},
	Schedule: []domain.Waypoint{
		{Minute: 360, X: 58, Y: 25},
		{Minute: 540, X: 40, Y: 12},
	},
}

func sampleState() State {
	s := NewState(testMeta)
	s.Clock = domain.Clock{Day: 7, TotalMinutes: 1111}
	s.Weather = domain.WeatherRainy
	s.Player.Stamina = 42
	s.Player.Money = 315
	s.Player.Inventory = domain.Inventory{Seeds: 3, Crops: 5}
	s.Player.Pos = domain.Vec2{X: 301.25, Y: 644.5}
	s.Player.Facing = domain.Facing{X: -1, Y: 1}
	s.Player.SelectedTool = domain.ToolHarvest
	s.NPC.Friendship = 4
	s.NPC.LastTalkDay = 6
	s.NPC.Pos = domain.Vec2{X: 1290.125, Y: 400}
	s.NPC.Facing = domain.Facing{X: 1, Y: 0}
	s.Plots = domain.PlotRegistry{
		{X: 5, Y: 10}:  {Tilled: true},
		{X: 6, Y: 10}:  {Tilled: true, Watered: true, Crop: domain.CropParsnip, Growth: 1},
		{X: 12, Y: 22}: {Tilled: true, Crop: domain.CropParsnip, Growth: 2, Ready: true},
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	original := sampleState()

	data, err := Encode(Capture(original))
	require.NoError(t, err)

	restored, ok := Decode(data, testMeta)
	require.True(t, ok)

	assert.Equal(t, original.Clock.Day, restored.Clock.Day)
	assert.Equal(t, original.Clock.TotalMinutes, restored.Clock.TotalMinutes)
	assert.Equal(t, original.Weather, restored.Weather)
	assert.Equal(t, original.Player.Stamina, restored.Player.Stamina)
	assert.Equal(t, original.Player.Money, restored.Player.Money)
	assert.Equal(t, original.Player.Inventory, restored.Player.Inventory)
	assert.Equal(t, original.Player.Pos, restored.Player.Pos)
	assert.Equal(t, original.Player.Facing, restored.Player.Facing)
	assert.Equal(t, original.Player.SelectedTool, restored.Player.SelectedTool)
	assert.Equal(t, original.NPC.Friendship, restored.NPC.Friendship)
	assert.Equal(t, original.NPC.LastTalkDay, restored.NPC.LastTalkDay)
	assert.Equal(t, original.NPC.Pos, restored.NPC.Pos)
	assert.Equal(t, original.NPC.Facing, restored.NPC.Facing)
	assert.Equal(t, original.Plots, restored.Plots)
}

func TestCapture_DocumentLayout(t *testing.T) {
	data, err := Encode(Capture(sampleState()))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "Rainy", doc["weather"])
	inv := doc["inventory"].(map[string]any)
	assert.EqualValues(t, 3, inv["parsnipSeeds"])
	assert.EqualValues(t, 5, inv["parsnip"])

	plots := doc["plots"].(map[string]any)
	require.Contains(t, plots, "5,10")
	assert.Nil(t, plots["5,10"].(map[string]any)["crop"], "empty plot stores crop as null")
	assert.Equal(t, "parsnip", plots["6,10"].(map[string]any)["crop"])

	player := doc["player"].(map[string]any)
	assert.EqualValues(t, domain.ToolHarvest, player["selectedTool"])
}

func TestDecode_NoSave(t *testing.T) {
	for _, raw := range []string{"", "   ", "null", "not json", "[1,2]", `"str"`, "{broken"} {
		t.Run(raw, func(t *testing.T) {
			state, ok := Decode([]byte(raw), testMeta)
			assert.False(t, ok)
			assert.Equal(t, NewState(testMeta), state)
		})
	}
}

func TestDecode_EmptyObjectYieldsDefaults(t *testing.T) {
	state, ok := Decode([]byte(`{}`), testMeta)
	require.True(t, ok)

	assert.Equal(t, 1, state.Clock.Day)
	assert.Equal(t, domain.DayStartMinute, state.Clock.TotalMinutes)
	assert.Equal(t, domain.WeatherSunny, state.Weather)
	assert.Equal(t, domain.StaminaMax, state.Player.Stamina)
	assert.Equal(t, domain.StartingMoney, state.Player.Money)
	assert.Equal(t, domain.StartingSeeds, state.Player.Inventory.Seeds)
	assert.Zero(t, state.Player.Inventory.Crops)
	assert.Equal(t, domain.DefaultFacing, state.Player.Facing)
	assert.Equal(t, domain.ToolHoe, state.Player.SelectedTool)
	assert.Equal(t, testMeta.Spawn.Center(), state.Player.Pos)
	assert.Empty(t, state.Plots)
}

func TestDecode_FieldByField(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, s State)
	}{
		{"stamina clamped high", `{"stamina": 250}`, func(t *testing.T, s State) {
			assert.Equal(t, 100, s.Player.Stamina)
		}},
		{"stamina clamped low", `{"stamina": -5}`, func(t *testing.T, s State) {
			assert.Equal(t, 0, s.Player.Stamina)
		}},
		{"stamina wrong type", `{"stamina": "full", "money": 50}`, func(t *testing.T, s State) {
			assert.Equal(t, 100, s.Player.Stamina)
			assert.Equal(t, 50, s.Player.Money, "neighbouring fields still load")
		}},
		{"selected tool clamped", `{"player": {"selectedTool": 9}}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.ToolTalk, s.Player.SelectedTool)
		}},
		{"negative tool", `{"player": {"selectedTool": -1}}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.ToolHoe, s.Player.SelectedTool)
		}},
		{"day below one", `{"day": 0}`, func(t *testing.T, s State) {
			assert.Equal(t, 1, s.Clock.Day)
		}},
		{"minutes out of range", `{"totalMinutes": 5000}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.MinutesPerDay-1, s.Clock.TotalMinutes)
		}},
		{"unknown weather", `{"weather": "Snowy"}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.WeatherSunny, s.Weather)
		}},
		{"zero facing", `{"player": {"facing": {"x": 0, "y": 0}}}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.DefaultFacing, s.Player.Facing)
		}},
		{"facing out of range", `{"npc": {"facing": {"x": 3, "y": 0}}}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.DefaultFacing, s.NPC.Facing)
		}},
		{"position outside world", `{"player": {"x": -40, "y": 100}}`, func(t *testing.T, s State) {
			assert.Equal(t, testMeta.Spawn.Center(), s.Player.Pos)
		}},
		{"inventory not an object", `{"inventory": 7}`, func(t *testing.T, s State) {
			assert.Equal(t, domain.StartingSeeds, s.Player.Inventory.Seeds)
		}},
		{"negative friendship", `{"npc": {"friendship": -3}}`, func(t *testing.T, s State) {
			assert.Zero(t, s.NPC.Friendship)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, ok := Decode([]byte(tt.raw), testMeta)
			require.True(t, ok)
			tt.check(t, state)
		})
	}
}

func TestDecode_Plots(t *testing.T) {
	raw := `{"plots": {
		"4,9":   {"tilled": true, "watered": true, "crop": "parsnip", "growth": 5, "ready": false},
		"5,9":   {"tilled": false, "watered": true, "crop": "parsnip", "growth": 1},
		"6,9":   {"tilled": true, "crop": null, "growth": 2, "ready": true},
		"7,9":   {"tilled": true, "crop": "parsnip", "growth": 1, "ready": true},
		"oops":  {"tilled": true},
		"8,x":   {"tilled": true},
		"9,9":   "garbage"
	}}`

	state, ok := Decode([]byte(raw), testMeta)
	require.True(t, ok)
	require.Len(t, state.Plots, 4)

	// growth зажат, ready пересчитан
	p := state.Plots[domain.Position{X: 4, Y: 9}]
	assert.Equal(t, 2, p.Growth)
	assert.True(t, p.Ready)
	assert.True(t, p.Watered)

	// без вспашки культура и полив отбрасываются
	p = state.Plots[domain.Position{X: 5, Y: 9}]
	assert.Equal(t, domain.Plot{}, *p)

	// без культуры нет роста
	p = state.Plots[domain.Position{X: 6, Y: 9}]
	assert.Equal(t, domain.Plot{Tilled: true}, *p)

	p = state.Plots[domain.Position{X: 7, Y: 9}]
	assert.False(t, p.Ready, "ready follows growth, not the stored flag")
}

func TestParsePlotKey(t *testing.T) {
	tests := []struct {
		key  string
		want domain.Position
		ok   bool
	}{
		{"4,9", domain.Position{X: 4, Y: 9}, true},
		{" 12 , 3 ", domain.Position{X: 12, Y: 3}, true},
		{"-1,0", domain.Position{X: -1, Y: 0}, true},
		{"4", domain.Position{}, false},
		{"a,b", domain.Position{}, false},
		{"1,2,3", domain.Position{}, false},
	}

	for _, tt := range tests {
		got, ok := ParsePlotKey(tt.key)
		assert.Equalf(t, tt.ok, ok, "ParsePlotKey(%q)", tt.key)
		assert.Equalf(t, tt.want, got, "ParsePlotKey(%q)", tt.key)
	}
}
