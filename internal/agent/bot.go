package agent

import (
	"encoding/json"

	"cloverfield-server/internal/domain"
	"cloverfield-server/pkg/api"
	"cloverfield-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Game - то, что боту нужно от движка
type Game interface {
	ProcessCommand(cmd api.ClientCommand) error
	WorldView() *api.WorldView
}

// Hub - подписка на снимки (network.Broadcaster)
type Hub interface {
	Register(sessionID string) chan api.ServerResponse
	Unregister(sessionID string, ch chan api.ServerResponse)
}

const (
	// stuckLimit - сколько снимков подряд без смены клетки считается упором в стену
	stuckLimit = 20
	// toolCooldown - сколько снимков ждать результата инструмента
	toolCooldown = 3
)

// Bot - безголовый батрак (Headless Agent).
// Подключается к серверу как обычный клиент, получает снимки и ходит вдоль грядок:
// вскапывает, сажает, поливает и собирает то, что перед ним, потом шагает дальше.
// Упершись в край поля, разворачивается.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, получение личного канала (Inbox).
//  2. Run -> запуск в отдельной горутине, слушает Inbox.
//  3. На каждый UPDATE вызывается Decide, команды уходят в движок.
type Bot struct {
	SessionID string
	Game      Game
	Hub       Hub
	Inbox     chan api.ServerResponse

	farm api.RectView

	dir      int // +1 на восток, -1 на запад
	walking  bool
	walkFrom api.TileRef
	stuck    int
	cooldown int
}

func NewBot(sessionID string, game Game, hub Hub) *Bot {
	logger.Log.WithField("session", sessionID).Info("[BOT] Creating farmhand")
	b := &Bot{
		SessionID: sessionID,
		Game:      game,
		Hub:       hub,
		Inbox:     hub.Register(sessionID),
		dir:       1,
	}
	if w := game.WorldView(); w != nil {
		b.farm = w.Farm
	}
	return b
}

// Run запускает цикл жизни бота. Должен быть запущен в горутине.
// Завершается, когда хаб закрывает канал.
func (b *Bot) Run() {
	defer b.Hub.Unregister(b.SessionID, b.Inbox)

	for event := range b.Inbox {
		if event.Type != api.ResponseUpdate {
			continue
		}
		for _, cmd := range b.Decide(event) {
			cmd.Token = b.SessionID
			if err := b.Game.ProcessCommand(cmd); err != nil {
				logger.Log.WithFields(logrus.Fields{
					"session": b.SessionID,
					"action":  cmd.Action,
					"error":   err,
				}).Debug("[BOT] Command rejected")
			}
		}
	}
	logger.Log.WithField("session", b.SessionID).Info("[BOT] Farmhand shut down.")
}

// Decide - мозг бота. По снимку решает, какие команды отправить.
func (b *Bot) Decide(state api.ServerResponse) []api.ClientCommand {
	if state.Player == nil || state.Status == nil {
		return nil
	}
	if b.cooldown > 0 {
		b.cooldown--
		return nil
	}
	here := api.TileRef{X: state.Player.TileX, Y: state.Player.TileY}

	// --- ШАГ 1: ИДЕМ НА СЛЕДУЮЩУЮ КЛЕТКУ ---
	if b.walking {
		if here != b.walkFrom {
			b.walking = false
			b.stuck = 0
			return []api.ClientCommand{move(0, 0)}
		}
		b.stuck++
		if b.stuck < stuckLimit {
			return nil
		}
		// Уперлись: разворачиваемся
		b.stuck = 0
		b.dir = -b.dir
		b.walkFrom = here
		return []api.ClientCommand{move(b.dir, 0)}
	}

	// --- ШАГ 2: РАБОТАЕМ С КЛЕТКОЙ ПЕРЕД СОБОЙ ---
	front := api.TileRef{X: here.X + state.Player.Facing.X, Y: here.Y + state.Player.Facing.Y}
	if !b.inFarm(front) {
		// Край поля: разворачиваемся
		if state.Player.Facing.X == b.dir {
			b.dir = -b.dir
		}
		return b.step(here)
	}

	if tool, ok := b.chooseTool(state, front); ok {
		b.cooldown = toolCooldown
		cmds := make([]api.ClientCommand, 0, 2)
		if state.Status.ToolSlot != int(tool)+1 {
			cmds = append(cmds, selectTool(tool))
		}
		return append(cmds, api.ClientCommand{Action: domain.ActionUseTool.String()})
	}

	// --- ШАГ 3: ДЕЛАТЬ НЕЧЕГО, ШАГАЕМ ---
	return b.step(here)
}

// chooseTool выбирает инструмент для клетки. false - делать нечего или нет сил.
func (b *Bot) chooseTool(state api.ServerResponse, front api.TileRef) (domain.Tool, bool) {
	var plot *api.PlotView
	for i := range state.Plots {
		if state.Plots[i].X == front.X && state.Plots[i].Y == front.Y {
			plot = &state.Plots[i]
			break
		}
	}

	var tool domain.Tool
	switch {
	case plot == nil || !plot.Tilled:
		tool = domain.ToolHoe
	case plot.Stage == domain.MaturityStage+1:
		tool = domain.ToolHarvest
	case plot.Crop == "" && state.Status.Seeds > 0:
		tool = domain.ToolSeed
	case plot.Crop != "" && !plot.Watered:
		tool = domain.ToolWater
	default:
		return 0, false
	}

	if state.Status.Stamina < tool.StaminaCost() {
		return 0, false
	}
	return tool, true
}

func (b *Bot) step(here api.TileRef) []api.ClientCommand {
	b.walking = true
	b.walkFrom = here
	b.stuck = 0
	return []api.ClientCommand{move(b.dir, 0)}
}

func (b *Bot) inFarm(t api.TileRef) bool {
	return t.X >= b.farm.X1 && t.X <= b.farm.X2 && t.Y >= b.farm.Y1 && t.Y <= b.farm.Y2
}

// --- Хелперы для команд ---

func move(dx, dy int) api.ClientCommand {
	return command(domain.ActionMove, api.MovePayload{Dx: dx, Dy: dy})
}

func selectTool(t domain.Tool) api.ClientCommand {
	return command(domain.ActionSelectTool, api.SelectToolPayload{Slot: int(t) + 1})
}

func command(action domain.ActionType, payload any) api.ClientCommand {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		logger.Log.WithError(err).Error("[BOT] Error marshalling payload")
		return api.ClientCommand{Action: action.String()}
	}
	return api.ClientCommand{Action: action.String(), Payload: payloadBytes}
}
