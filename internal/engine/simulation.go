package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/engine/handlers"
	"cloverfield-server/internal/engine/handlers/actions"
	"cloverfield-server/internal/infrastructure/storage"
	"cloverfield-server/internal/metrics"
	"cloverfield-server/internal/savegame"
	"cloverfield-server/internal/systems"
	"cloverfield-server/pkg/api"
	"cloverfield-server/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const rainText = "Rainy day: your tilled soil has been watered for free."

// Simulation - единственный владелец состояния сессии.
// Не потокобезопасна: все вызовы идут из одной горутины (см. GameService).
type Simulation struct {
	cfg Config

	World *domain.GameWorld
	Meta  domain.WorldMeta

	Clock   domain.Clock
	Weather domain.Weather
	Player  domain.Player
	NPC     domain.NPC
	Plots   domain.PlotRegistry

	Rng   *rand.Rand // Генератор погоды, сид из конфига
	Store storage.Store

	Message   *api.LogEntry // Текущее всплывающее сообщение, nil если погасло
	TickCount int

	Replay *domain.ReplaySession // Лента команд

	intent    domain.Facing // удерживаемые оси движения
	queue     []domain.InternalCommand
	sinceSave float64
	ctx       context.Context

	handlers map[domain.ActionType]handlers.HandlerFunc
}

// NewSimulation создает новую игру на готовом мире.
// Сохранение не читается: для этого есть Boot.
func NewSimulation(cfg Config, world *domain.GameWorld, meta domain.WorldMeta, store storage.Store) *Simulation {
	s := &Simulation{
		cfg:   cfg,
		World: world,
		Meta:  meta,
		Rng:   rand.New(rand.NewSource(cfg.Seed)),
		Store: store,
		Replay: &domain.ReplaySession{
			Seed:       cfg.Seed,
			Timestamp:  time.Now().Unix(),
			TickMillis: int(cfg.TickInterval() / time.Millisecond),
			Actions:    make([]domain.ReplayAction, 0),
		},
		ctx:      context.Background(),
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
	}
	s.apply(savegame.NewState(meta))
	s.registerHandlers()
	return s
}

func (s *Simulation) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionMove] = handlers.WithPayload(actions.HandleMove)
	s.handlers[domain.ActionUseTool] = handlers.WithEmptyPayload(actions.HandleUseTool)
	s.handlers[domain.ActionInteract] = handlers.WithEmptyPayload(actions.HandleInteract)
	s.handlers[domain.ActionSleep] = handlers.WithEmptyPayload(actions.HandleSleep)
	s.handlers[domain.ActionSave] = handlers.WithEmptyPayload(actions.HandleSave)
	s.handlers[domain.ActionLoad] = handlers.WithEmptyPayload(actions.HandleLoad)
	s.handlers[domain.ActionSelectTool] = handlers.WithPayload(actions.HandleSelectTool)
	s.handlers[domain.ActionTalk] = handlers.WithEmptyPayload(actions.HandleTalk)
}

// Boot начинает сессию: тихо подхватывает сохранение, если оно есть, и здоровается.
// Дождь поливает грядки только здесь, ручная загрузка состояние не меняет.
func (s *Simulation) Boot(ctx context.Context) {
	found, _ := s.Load(ctx)
	if s.Weather == domain.WeatherRainy {
		systems.ApplyRain(s.Plots)
	}
	s.ShowMessage(actions.Welcome, domain.MsgSystem)

	logger.Log.WithFields(logrus.Fields{
		"component": "simulation",
		"day":       s.Clock.Day,
		"weather":   s.Weather.String(),
		"from_save": found,
	}).Info("Session started")
}

// Enqueue ставит дискретную команду в очередь следующего тика
func (s *Simulation) Enqueue(cmd domain.InternalCommand) {
	s.queue = append(s.queue, cmd)
}

// Tick продвигает симуляцию на seconds секунд. Порядок фиксирован:
// движение -> команды -> часы (возможен переход дня) -> NPC -> сообщение -> автосохранение.
func (s *Simulation) Tick(ctx context.Context, seconds float64) {
	start := time.Now()
	s.ctx = ctx
	s.TickCount++

	// 1. Движение игрока по удерживаемым осям
	systems.MovePlayer(&s.Player, s.intent.X, s.intent.Y, seconds, s.World)

	// 2. Дискретные команды
	queue := s.queue
	s.queue = nil
	for _, cmd := range queue {
		s.executeCommand(cmd)
	}

	// 3. Часы. Переход дня выполняется целиком прямо здесь.
	if systems.AdvanceClock(&s.Clock, seconds, s.cfg.MinutesPerSecond) {
		s.Rollover(handlers.RolloverPassedOut)
	}

	// 4. NPC
	systems.UpdateNPC(&s.NPC, s.Meta.Schedule, s.Clock.TotalMinutes, seconds)

	// 5. Сообщение гаснет через MessageLifetime
	if s.Message != nil {
		s.Message.TTL -= seconds
		if s.Message.TTL <= 0 {
			s.Message = nil
		}
	}

	// 6. Автосохранение
	s.sinceSave += seconds
	if s.cfg.AutosaveInterval > 0 && s.sinceSave >= s.cfg.AutosaveInterval.Seconds() {
		s.sinceSave = 0
		_ = s.Save(ctx, "autosave")
	}

	if s.Replay != nil {
		s.Replay.TotalTicks = s.TickCount
	}
	metrics.TickDuration.Observe(time.Since(start).Seconds())
}

// executeCommand выполняет хендлер и показывает сообщение
func (s *Simulation) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		metrics.CommandsTotal.WithLabelValues(cmd.Action.String(), metrics.OutcomeInvalid).Inc()
		return
	}

	s.recordAction(cmd)

	ctx := handlers.Context{
		Ctx:     s.ctx,
		World:   s.World,
		Meta:    &s.Meta,
		Plots:   s.Plots,
		Clock:   &s.Clock,
		Player:  &s.Player,
		NPC:     &s.NPC,
		Intent:  &s.intent,
		Session: s,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		metrics.CommandsTotal.WithLabelValues(cmd.Action.String(), metrics.OutcomeInvalid).Inc()
		logger.Log.WithFields(logrus.Fields{
			"component": "simulation",
			"action":    cmd.Action.String(),
			"session":   cmd.Token,
			"error":     err,
		}).Warn("Rejected malformed command")
		return
	}

	outcome := metrics.OutcomeOK
	if result.Rejection != nil {
		outcome = metrics.OutcomeRejected
	}
	metrics.CommandsTotal.WithLabelValues(cmd.Action.String(), outcome).Inc()

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = domain.MsgInfo
		}
		s.ShowMessage(result.Msg, msgType)
	}
}

// recordAction пишет команду в ленту. MOVE тоже пишется: от него зависит позиция.
func (s *Simulation) recordAction(cmd domain.InternalCommand) {
	if !s.cfg.RecordReplay || s.Replay == nil {
		return
	}
	payload := append([]byte(nil), cmd.Payload...)
	s.Replay.Actions = append(s.Replay.Actions, domain.ReplayAction{
		Tick:    s.TickCount,
		Action:  cmd.Action,
		Payload: payload,
	})
}

// ShowMessage заменяет текущее сообщение
func (s *Simulation) ShowMessage(text, msgType string) {
	s.Message = &api.LogEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		TTL:       domain.MessageLifetime,
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  msgType,
		"day":       s.Clock.Day,
		"clock":     systems.FormatClock(s.Clock.TotalMinutes),
	}).Debug(text)
}

// Rollover - переход на следующий день. Сон и обморок в полночь работают одинаково.
func (s *Simulation) Rollover(cause handlers.RolloverCause) {
	systems.StartNewDay(&s.Clock)
	s.Player.Stamina = domain.StaminaMax
	grown := systems.AdvanceDay(s.Plots)
	s.Weather = systems.RollWeather(s.Rng)

	watered := 0
	if s.Weather == domain.WeatherRainy {
		watered = systems.ApplyRain(s.Plots)
	}

	_ = s.Save(s.ctx, "rollover")

	text := fmt.Sprintf("Day %d. You wake up feeling refreshed.", s.Clock.Day)
	if cause == handlers.RolloverPassedOut {
		text = fmt.Sprintf("You passed out. Day %d begins.", s.Clock.Day)
	}
	if s.Weather == domain.WeatherRainy {
		text += " " + rainText
	}
	s.ShowMessage(text, domain.MsgSystem)

	metrics.DayRollovers.WithLabelValues(string(cause)).Inc()
	logger.Log.WithFields(logrus.Fields{
		"component": "simulation",
		"cause":     cause,
		"day":       s.Clock.Day,
		"weather":   s.Weather.String(),
		"grown":     grown,
		"rained_on": watered,
	}).Info("New day started")
}

// State снимает копию изменяемого состояния
func (s *Simulation) State() savegame.State {
	return savegame.State{
		Clock:   s.Clock,
		Weather: s.Weather,
		Player:  s.Player,
		NPC:     s.NPC,
		Plots:   s.Plots.Clone(),
	}
}

// Save пишет состояние в хранилище. Ошибка логируется и возвращается, симуляция продолжает работу.
func (s *Simulation) Save(ctx context.Context, trigger string) error {
	if s.Store == nil {
		return nil
	}

	data, err := savegame.Encode(savegame.Capture(s.State()))
	if err == nil {
		err = s.Store.Put(ctx, s.cfg.SaveKey, data)
	}

	fields := logrus.Fields{
		"component": "persistence",
		"trigger":   trigger,
		"day":       s.Clock.Day,
	}
	if err != nil {
		metrics.SavesTotal.WithLabelValues(trigger, metrics.OutcomeError).Inc()
		logger.Log.WithFields(fields).WithError(err).Error("Failed to save game")
		return err
	}

	metrics.SavesTotal.WithLabelValues(trigger, metrics.OutcomeOK).Inc()
	logger.Log.WithFields(fields).Debug("Game saved")
	return nil
}

// Load читает сохранение. Отсутствующее или битое сохранение - это (false, nil):
// симуляция остается как была.
func (s *Simulation) Load(ctx context.Context) (bool, error) {
	if s.Store == nil {
		return false, nil
	}

	raw, err := s.Store.Get(ctx, s.cfg.SaveKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Log.WithFields(logrus.Fields{
				"component": "persistence",
				"error":     err,
			}).Warn("Save unreadable, treating as no save")
		}
		return false, nil
	}

	state, ok := savegame.Decode(raw, s.Meta)
	if !ok {
		logger.Log.WithField("component", "persistence").Warn("Save document is not valid JSON, ignoring")
		return false, nil
	}

	s.Restore(state)
	return true, nil
}

// Restore применяет полностью разобранное состояние разом
func (s *Simulation) Restore(state savegame.State) {
	s.apply(state)

	logger.Log.WithFields(logrus.Fields{
		"component": "persistence",
		"day":       s.Clock.Day,
		"plots":     len(s.Plots),
	}).Info("Save loaded")
}

func (s *Simulation) apply(state savegame.State) {
	s.Clock = state.Clock
	s.Clock.Accumulator = 0
	s.Weather = state.Weather
	s.Player = state.Player
	s.Player.Moving = false
	s.NPC = state.NPC
	s.NPC.TargetIndex = systems.ScheduleIndex(s.Meta.Schedule, s.Clock.TotalMinutes)
	s.Plots = state.Plots
	if s.Plots == nil {
		s.Plots = domain.PlotRegistry{}
	}
	s.intent = domain.Facing{}
}
