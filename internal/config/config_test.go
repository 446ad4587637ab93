package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "memory", cfg.StorageDriver)
	assert.Equal(t, "Cameron's Store", cfg.StoreName)
	assert.Equal(t, "USD", cfg.Currency)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("STORAGE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TTL", "720h")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "redis", cfg.StorageDriver)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 720*time.Hour, cfg.RedisTTL)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "mysql without dsn",
			cfg:     Config{AppEnv: "development", StorageDriver: "mysql", CookieSecret: devCookieSecret},
			wantErr: "DB_DSN is required",
		},
		{
			name:    "unknown driver",
			cfg:     Config{AppEnv: "development", StorageDriver: "etcd", CookieSecret: devCookieSecret},
			wantErr: "unknown STORAGE_DRIVER",
		},
		{
			name:    "default secret in production",
			cfg:     Config{AppEnv: "production", StorageDriver: "memory", CookieSecret: devCookieSecret},
			wantErr: "COOKIE_SECRET",
		},
		{
			name: "production with secret",
			cfg:  Config{AppEnv: "production", StorageDriver: "memory", CookieSecret: "s3cr3t"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
