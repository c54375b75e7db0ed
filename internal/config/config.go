package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	MemoryStorage = "memory"
	RedisStorage  = "redis"
)

var ErrUnknownStorage = errors.New("unknown storage")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage  string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"REDIS_SESSION_TTL" env-default:"24h"`
}

// Game - defaults for sessions created without explicit settings.
type Game struct {
	Mode       string `yaml:"mode" env:"GAME_MODE" env-default:"single"`
	Difficulty string `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"low"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// LoadFromEnv - configuration without a file, defaults and environment only.
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Storage {
	case MemoryStorage, RedisStorage:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}

	if _, err := entity.ParseMode(that.Game.Mode); err != nil {
		return fmt.Errorf("game mode: %w", err)
	}

	return nil
}

func (that *Config) SlogLevel() slog.Level {
	var level slog.Level

	switch that.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return level
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetDifficulty - unknown names fall back to the lowest level, the caller is told through the logger.
func (that *Game) GetDifficulty(logger *slog.Logger) entity.Difficulty {
	difficulty, err := entity.ParseDifficulty(that.Difficulty)
	if err != nil {
		logger.Warn("invalid difficulty selected, defaulting to low", "difficulty", that.Difficulty, "error", err)
	}

	return difficulty
}

func (that *Game) GetMode() entity.Mode {
	mode, err := entity.ParseMode(that.Mode)
	if err != nil {
		return entity.SinglePlayerMode
	}

	return mode
}
