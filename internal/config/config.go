package config

import (
	"fmt"
	"time"

	"bingo_backend/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Common holds settings shared by both authorities
type Common struct {
	WorkerPoolSize int    `env:"WORKER_POOL_SIZE" envDefault:"10"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON        bool   `env:"LOG_JSON" envDefault:"false"`
	Version        string `env:"APP_VERSION" envDefault:"dev"`
}

// GameConfig configures the game authority
type GameConfig struct {
	Common

	AppPort           string        `env:"APP_PORT" envDefault:"50051"`
	ValidationURL     string        `env:"VALIDATION_URL" envDefault:"http://localhost:50052"`
	ValidationTimeout time.Duration `env:"VALIDATION_TIMEOUT" envDefault:"5s"`

	// optional sinks; empty disables them
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// ValidationConfig configures the validation authority
type ValidationConfig struct {
	Common

	AppPort string `env:"APP_PORT" envDefault:"50052"`
}

// ParseGame reads the game authority config from the environment.
func ParseGame() (*GameConfig, error) {
	var cfg GameConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ValidationTimeout <= 0 {
		return nil, fmt.Errorf("VALIDATION_TIMEOUT must be positive, got %s", cfg.ValidationTimeout)
	}
	cfg.Common.normalize()
	return &cfg, nil
}

// ParseValidation reads the validation authority config from the environment.
func ParseValidation() (*ValidationConfig, error) {
	var cfg ValidationConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.Common.normalize()
	return &cfg, nil
}

// LoadGame loads .env (if any) and exits when the config is invalid
func LoadGame() *GameConfig {
	_ = godotenv.Load()

	cfg, err := ParseGame()
	if err != nil {
		logger.Fatal("invalid game authority config", "error", err)
	}
	return cfg
}

// LoadValidation loads .env (if any) and exits when the config is invalid
func LoadValidation() *ValidationConfig {
	_ = godotenv.Load()

	cfg, err := ParseValidation()
	if err != nil {
		logger.Fatal("invalid validation authority config", "error", err)
	}
	return cfg
}

func (c *Common) normalize() {
	if c.WorkerPoolSize <= 0 {
		c.WorkerPoolSize = 10
	}
}
