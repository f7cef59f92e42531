package engine

import (
	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/systems"
	"cloverfield-server/pkg/api"
)

// BuildSnapshot создает слепок изменяемого состояния для рендера клиента
func (s *Simulation) BuildSnapshot() api.ServerResponse {
	staminaPct := 0
	if domain.StaminaMax > 0 {
		staminaPct = s.Player.Stamina * 100 / domain.StaminaMax
	}

	status := &api.StatusView{
		Day:          s.Clock.Day,
		Clock:        systems.FormatClock(s.Clock.TotalMinutes),
		TotalMinutes: s.Clock.TotalMinutes,
		Weather:      s.Weather.String(),
		Money:        s.Player.Money,
		Stamina:      s.Player.Stamina,
		MaxStamina:   domain.StaminaMax,
		StaminaPct:   staminaPct,
		Seeds:        s.Player.Inventory.Seeds,
		Crops:        s.Player.Inventory.Crops,
		ToolSlot:     int(s.Player.SelectedTool) + 1,
		ToolLabel:    s.Player.SelectedTool.Label(),
		NPCName:      s.NPC.Name,
		Friendship:   s.NPC.Friendship,
	}

	keys := s.Plots.Keys()
	plots := make([]api.PlotView, 0, len(keys))
	for _, k := range keys {
		p := s.Plots[k]
		plots = append(plots, api.PlotView{
			X:       k.X,
			Y:       k.Y,
			Tilled:  p.Tilled,
			Watered: p.Watered,
			Crop:    string(p.Crop),
			Stage:   p.Stage(),
		})
	}

	// Копия, чтобы не было гонки данных с TTL
	var msg *api.LogEntry
	if s.Message != nil {
		m := *s.Message
		msg = &m
	}

	return api.ServerResponse{
		Type:    api.ResponseUpdate,
		Tick:    s.TickCount,
		Status:  status,
		Player:  agentView("", s.Player.Pos, s.Player.Facing, s.Player.Moving),
		NPC:     agentView(s.NPC.Name, s.NPC.Pos, s.NPC.Facing, s.NPC.Moving),
		Plots:   plots,
		Message: msg,
	}
}

func agentView(name string, pos domain.Vec2, facing domain.Facing, moving bool) *api.AgentView {
	tile := pos.Tile()
	return &api.AgentView{
		Name:   name,
		X:      pos.X,
		Y:      pos.Y,
		TileX:  tile.X,
		TileY:  tile.Y,
		Facing: api.FacingView{X: facing.X, Y: facing.Y},
		Moving: moving,
	}
}

// BuildWorldView - статическая карта. Отправляется один раз в ответ на INIT.
func BuildWorldView(w *domain.GameWorld, meta domain.WorldMeta) *api.WorldView {
	tiles := make([][]string, w.Height)
	for y := 0; y < w.Height; y++ {
		row := make([]string, w.Width)
		for x := range row {
			t, _ := w.TileAt(x, y)
			row[x] = t.String()
		}
		tiles[y] = row
	}

	schedule := make([]api.Waypoint, 0, len(meta.Schedule))
	for _, wp := range meta.Schedule {
		schedule = append(schedule, api.Waypoint{
			Minute: wp.Minute,
			Clock:  systems.FormatClock(wp.Minute),
			X:      wp.X,
			Y:      wp.Y,
		})
	}

	return &api.WorldView{
		Width:    w.Width,
		Height:   w.Height,
		TileSize: domain.TileSize,
		Tiles:    tiles,
		Farm:     api.RectView{X1: meta.FarmRect.X1, Y1: meta.FarmRect.Y1, X2: meta.FarmRect.X2, Y2: meta.FarmRect.Y2},
		Shop:     api.TileRef{X: meta.Shop.X, Y: meta.Shop.Y},
		Bin:      api.TileRef{X: meta.Bin.X, Y: meta.Bin.Y},
		Bed:      api.TileRef{X: meta.Bed.X, Y: meta.Bed.Y},
		Spawn:    api.TileRef{X: meta.Spawn.X, Y: meta.Spawn.Y},
		Schedule: schedule,
	}
}
