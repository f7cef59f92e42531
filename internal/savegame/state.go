package savegame

import (
	"encoding/json"
	"fmt"

	"cloverfield-server/internal/domain"
)

// State - полностью заполненное изменяемое состояние сессии
type State struct {
	Clock   domain.Clock
	Weather domain.Weather
	Player  domain.Player
	NPC     domain.NPC
	Plots   domain.PlotRegistry
}

// NewState возвращает состояние новой игры для данного мира
func NewState(meta domain.WorldMeta) State {
	return State{
		Clock:   domain.NewClock(),
		Weather: domain.WeatherSunny,
		Player:  domain.NewPlayer(meta.Spawn),
		NPC:     domain.NewNPC(meta.Schedule),
		Plots:   domain.PlotRegistry{},
	}
}

// Capture снимает документ с состояния. Состояние не меняется.
func Capture(s State) Document {
	doc := Document{
		Day:          s.Clock.Day,
		TotalMinutes: s.Clock.TotalMinutes,
		Weather:      s.Weather.String(),
		Stamina:      s.Player.Stamina,
		Money:        s.Player.Money,
		Inventory: InventoryDoc{
			ParsnipSeeds: s.Player.Inventory.Seeds,
			Parsnip:      s.Player.Inventory.Crops,
		},
		Plots: make(map[string]PlotDoc, len(s.Plots)),
		NPC: NPCDoc{
			Friendship:  s.NPC.Friendship,
			LastTalkDay: s.NPC.LastTalkDay,
			X:           s.NPC.Pos.X,
			Y:           s.NPC.Pos.Y,
			Facing:      FacingDoc(s.NPC.Facing),
		},
		Player: PlayerDoc{
			X:            s.Player.Pos.X,
			Y:            s.Player.Pos.Y,
			Facing:       FacingDoc(s.Player.Facing),
			SelectedTool: int(s.Player.SelectedTool),
		},
	}

	for _, pos := range s.Plots.Keys() {
		plot := s.Plots[pos]
		pd := PlotDoc{
			Tilled:  plot.Tilled,
			Watered: plot.Watered,
			Growth:  plot.Growth,
			Ready:   plot.Ready,
		}
		if plot.HasCrop() {
			crop := string(plot.Crop)
			pd.Crop = &crop
		}
		doc.Plots[PlotKey(pos)] = pd
	}

	return doc
}

// Encode сериализует документ
func Encode(doc Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode save document: %w", err)
	}
	return data, nil
}

// PlotKey - ключ грядки в документе
func PlotKey(p domain.Position) string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
