package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cloverfield-server/internal/agent"
	"cloverfield-server/internal/config"
	"cloverfield-server/internal/engine"
	"cloverfield-server/internal/infrastructure/storage"
	"cloverfield-server/internal/server"
	"cloverfield-server/internal/version"
	"cloverfield-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	appCfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Configure(appCfg.LogLevel, appCfg.LogFormat, os.Stdout)

	// 1. Флаги перекрывают окружение
	var seed string
	var replayPath string
	var withBot bool
	flag.StringVar(&seed, "seed", appCfg.Seed, "Weather seed string")
	flag.StringVar(&replayPath, "replay", "", "Path to .cfrp replay file to simulate")
	flag.BoolVar(&withBot, "bot", false, "Attach a headless farmhand that works the field")
	flag.Parse()

	logger.Log.Info("Starting Cloverfield...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	cfg.Seed = engine.SeedFromString(seed)
	cfg.TickRate = appCfg.TickRate

	// РЕЖИМ РЕПЛЕЯ
	if replayPath != "" {
		if err := playReplay(replayPath, cfg); err != nil {
			logger.Log.WithError(err).Fatal("Replay failed")
		}
		return
	}

	logger.Log.WithFields(logrus.Fields{
		"seed":    seed,
		"backend": appCfg.SaveBackend,
	}).Info("Using configuration")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Хранилище сохранений
	store, closeStore, err := openStore(ctx, appCfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to open save store")
	}
	defer closeStore()

	// 3. Ядро
	gameService := engine.NewService(cfg, store)
	gameService.Replays = storage.NewReplayService(appCfg.ReplayDir)
	gameService.Start(ctx)

	if withBot {
		bot := agent.NewBot("farmhand", gameService, gameService.Hub)
		go bot.Run()
	}

	// 4. HTTP
	srv := server.New(gameService, appCfg.Addr())
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Warn("HTTP shutdown was not clean")
	}

	// Цикл симуляции сам сохраняет игру и запись сессии
	<-gameService.Done()
	logger.Log.Info("Done.")
}

// openStore выбирает бэкенд и оборачивает его LRU-кешем
func openStore(ctx context.Context, c *config.Config) (storage.Store, func(), error) {
	var backend storage.Store
	closeFn := func() {}

	switch c.SaveBackend {
	case config.BackendMemory:
		backend = storage.NewMemoryStore()
	case config.BackendPostgres:
		pg, err := storage.NewPostgresStore(ctx, c.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		backend = pg
		closeFn = pg.Close
	default:
		fs, err := storage.NewFileStore(c.SaveDir)
		if err != nil {
			return nil, nil, err
		}
		backend = fs
	}

	cached, err := storage.NewCachedStore(backend, c.SaveCache)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return cached, closeFn, nil
}

// playReplay прогоняет запись и печатает итог
func playReplay(path string, cfg engine.Config) error {
	logger.Log.Info("Mode: Replay Simulation")

	replays := &storage.ReplayService{SaveDir: filepath.Dir(path)}
	session, err := replays.Load(path)
	if err != nil {
		return err
	}

	sim := engine.PlayReplay(context.Background(), cfg, session)
	logger.Log.WithFields(logrus.Fields{
		"day":     sim.Clock.Day,
		"money":   sim.Player.Money,
		"plots":   len(sim.Plots),
		"weather": sim.Weather.String(),
	}).Info("Replay result")
	return nil
}
