package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const devCookieSecret = "dev-cookie-secret-change-me"

// Config holds application configuration loaded from environment variables.
// Defaults are tuned for local development.
type Config struct {
	Addr     string `env:"ADDR" envDefault:":8080"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	CookieSecret string `env:"COOKIE_SECRET" envDefault:"dev-cookie-secret-change-me"`
	CookieSecure bool   `env:"COOKIE_SECURE" envDefault:"false"`

	// memory | redis | mysql
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"memory"`

	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisTTL      time.Duration `env:"REDIS_TTL" envDefault:"0s"`

	DBDSN string `env:"DB_DSN"`

	StoreName string `env:"STORE_NAME" envDefault:"Cameron's Store"`
	Currency  string `env:"CURRENCY" envDefault:"USD"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.StorageDriver) {
	case "memory", "redis":
	case "mysql":
		if c.DBDSN == "" {
			return errors.New("DB_DSN is required when STORAGE_DRIVER=mysql")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER: %s", c.StorageDriver)
	}
	if !c.IsDevelopment() && c.CookieSecret == devCookieSecret {
		return errors.New("COOKIE_SECRET must be set outside development")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
