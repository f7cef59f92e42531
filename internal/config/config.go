package config

import (
	"fmt"
	"os"
	"strconv"

	"cloverfield-server/pkg/api"

	"github.com/joho/godotenv"
)

// Хранилища сохранений
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config - параметры процесса сервера
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	LogFormat   string `validate:"omitempty,oneof=text json"`
	Seed        string `validate:"required"`
	TickRate    int    `validate:"min=1,max=120"`
	SaveBackend string `validate:"oneof=file memory postgres"`
	SaveDir     string `validate:"required_if=SaveBackend file"`
	DatabaseURL string `validate:"required_if=SaveBackend postgres"`
	SaveCache   int    `validate:"min=1"`
	ReplayDir   string
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// .env необязателен: в контейнере все приходит из окружения
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Seed:        getEnv("CF_SEED", "life-sim"),
		SaveBackend: getEnv("CF_SAVE_BACKEND", BackendFile),
		SaveDir:     getEnv("CF_SAVE_DIR", "saves"),
		DatabaseURL: getEnv("CF_DATABASE_URL", ""),
		ReplayDir:   getEnv("CF_REPLAY_DIR", "replays"),
	}

	var err error
	if cfg.Port, err = getInt("CF_PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.TickRate, err = getInt("CF_TICK_RATE", 20); err != nil {
		return nil, err
	}
	if cfg.SaveCache, err = getInt("CF_SAVE_CACHE", 16); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate проверяет теги validate
func (c *Config) Validate() error {
	return api.ValidateStruct(c)
}

// Addr - адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
