package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cloverfield-server/internal/domain"
	"cloverfield-server/internal/infrastructure/storage"
	"cloverfield-server/internal/network"
	"cloverfield-server/internal/savegame"
	"cloverfield-server/pkg/api"
	"cloverfield-server/pkg/farmworld"
	"cloverfield-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ErrUnknownAction - клиент прислал действие, которого нет в протоколе
var ErrUnknownAction = errors.New("unknown action")

// ErrServiceStopped - цикл симуляции уже остановлен
var ErrServiceStopped = errors.New("game service stopped")

// GameService владеет симуляцией и крутит ее на одной горутине.
// Снаружи с ней общаются только через CommandChan и снимки.
type GameService struct {
	cfg Config
	sim *Simulation

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster
	Replays     *storage.ReplayService // nil - записи сессий не сохраняются

	world *api.WorldView

	mu       sync.RWMutex
	snapshot api.ServerResponse
	document savegame.Document

	done chan struct{}
}

// NewService генерирует мир и собирает сервис. Сохранение читается в Start.
func NewService(cfg Config, store storage.Store) *GameService {
	world, meta := farmworld.Generate()
	sim := NewSimulation(cfg, world, meta, store)

	return &GameService{
		cfg:         cfg,
		sim:         sim,
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		world:       BuildWorldView(world, meta),
		done:        make(chan struct{}),
	}
}

// Start подхватывает сохранение и запускает цикл в отдельной горутине.
// Цикл завершается при отмене ctx, финальное сохранение делается до закрытия Done.
func (s *GameService) Start(ctx context.Context) {
	s.sim.Boot(ctx)
	s.publish()
	go s.RunGameLoop(ctx)
}

// Done закрывается, когда цикл остановлен и состояние сохранено
func (s *GameService) Done() <-chan struct{} {
	return s.done
}

// ProcessCommand принимает команду от внешнего мира (WebSocket).
// Token должен быть уже проставлен по соединению.
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) error {
	if err := externalCmd.Validate(); err != nil {
		return err
	}

	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.WithFields(logrus.Fields{
			"component": "game_service",
			"action":    externalCmd.Action,
			"session":   externalCmd.Token,
		}).Warn("Unknown action")
		return fmt.Errorf("%w: %s", ErrUnknownAction, externalCmd.Action)
	}

	select {
	case <-s.done:
		return ErrServiceStopped
	default:
	}

	select {
	case s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}:
		return nil
	case <-s.done:
		return ErrServiceStopped
	}
}

// --- GAME LOOP ---

// RunGameLoop крутит симуляцию с фиксированным шагом до отмены ctx
func (s *GameService) RunGameLoop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.cfg.TickInterval())
	defer ticker.Stop()

	dt := s.cfg.TickSeconds()
	logger.Log.WithFields(logrus.Fields{
		"component": "game_service",
		"tick_rate": s.cfg.TickRate,
		"dt":        dt,
	}).Info("Game loop started")

	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return
		case <-ticker.C:
			s.step(ctx, dt)
		}
	}
}

// step забирает накопившиеся команды, делает один тик и рассылает снимок
func (s *GameService) step(ctx context.Context, dt float64) {
	for {
		select {
		case cmd := <-s.CommandChan:
			if cmd.Action == domain.ActionInit {
				s.sendWorld(cmd.Token)
			}
			s.sim.Enqueue(cmd)
			continue
		default:
		}
		break
	}

	s.sim.Tick(ctx, dt)
	s.publish()
}

// sendWorld отправляет статическую карту одной сессии
func (s *GameService) sendWorld(sessionID string) {
	if sessionID == "" {
		return
	}
	s.Hub.SendTo(sessionID, api.ServerResponse{
		Type:  api.ResponseWorld,
		Tick:  s.sim.TickCount,
		World: s.world,
	})
}

// publish запоминает последний снимок и рассылает его всем
func (s *GameService) publish() {
	snap := s.sim.BuildSnapshot()
	doc := savegame.Capture(s.sim.State())

	s.mu.Lock()
	s.snapshot = snap
	s.document = doc
	s.mu.Unlock()

	s.Hub.Broadcast(snap)
}

// shutdown сохраняет игру и запись сессии. ctx цикла уже отменен, поэтому берем свой.
func (s *GameService) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_ = s.sim.Save(ctx, "shutdown")

	if s.Replays != nil && s.cfg.RecordReplay && s.sim.Replay != nil {
		path, err := s.Replays.Save(s.sim.Replay)
		if err != nil {
			logger.Log.WithError(err).Error("Failed to save replay")
		} else {
			logger.Log.WithFields(logrus.Fields{
				"component": "game_service",
				"path":      path,
				"ticks":     s.sim.Replay.TotalTicks,
				"actions":   len(s.sim.Replay.Actions),
			}).Info("Replay saved")
		}
	}

	logger.Log.WithField("component", "game_service").Info("Game loop stopped")
}

// --- ДОСТУП ДЛЯ HTTP ---

// Snapshot возвращает последний разосланный снимок. Потокобезопасно.
func (s *GameService) Snapshot() api.ServerResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Document возвращает документ сохранения для последнего снимка. Потокобезопасно.
func (s *GameService) Document() savegame.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// WorldView - статическая карта (не меняется после генерации)
func (s *GameService) WorldView() *api.WorldView {
	return s.world
}

// --- REPLAY ---

// PlayReplay заново прогоняет записанную сессию на свежем мире и возвращает итоговую симуляцию.
// Хранилище в памяти: SAVE и LOAD внутри записи работают, диск не трогается.
func PlayReplay(ctx context.Context, cfg Config, session *domain.ReplaySession) *Simulation {
	cfg.Seed = session.Seed
	cfg.RecordReplay = false
	if session.TickMillis > 0 {
		cfg.TickRate = 1000 / session.TickMillis
	}

	world, meta := farmworld.Generate()
	sim := NewSimulation(cfg, world, meta, storage.NewMemoryStore())

	dt := float64(session.TickMillis) / 1000
	if session.TickMillis <= 0 {
		dt = cfg.TickSeconds()
	}

	next := 0
	for tick := 1; tick <= session.TotalTicks; tick++ {
		for next < len(session.Actions) && session.Actions[next].Tick <= tick {
			a := session.Actions[next]
			sim.Enqueue(domain.InternalCommand{Action: a.Action, Payload: a.Payload})
			next++
		}
		sim.Tick(ctx, dt)
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"ticks":     session.TotalTicks,
		"actions":   len(session.Actions),
		"day":       sim.Clock.Day,
	}).Info("Replay finished")
	return sim
}
