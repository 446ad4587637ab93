package storage

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"cameronstore.com/app/internal/config"
)

type FactoryResult struct {
	Driver string
	Store  Store
}

func FromConfig(ctx context.Context, cfg *config.Config) (FactoryResult, error) {
	driver := strings.ToLower(cfg.StorageDriver)
	if driver == "" {
		driver = "memory"
	}

	switch driver {
	case "memory":
		return FactoryResult{Driver: "memory", Store: NewMemory()}, nil

	case "redis":
		r := NewRedis(RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.RedisTTL,
		})
		if err := r.Ping(ctx); err != nil {
			_ = r.Close()
			return FactoryResult{}, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return FactoryResult{Driver: "redis", Store: r}, nil

	case "mysql":
		if cfg.DBDSN == "" {
			return FactoryResult{}, fmt.Errorf("mysql storage requires DB_DSN")
		}
		db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
		if err != nil {
			return FactoryResult{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		return FactoryResult{Driver: "mysql", Store: NewGorm(db)}, nil

	default:
		return FactoryResult{}, fmt.Errorf("unknown STORAGE_DRIVER: %s", cfg.StorageDriver)
	}
}
