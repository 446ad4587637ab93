package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cameronstore.com/app/internal/config"
	apphttp "cameronstore.com/app/internal/http"
	"cameronstore.com/app/internal/modules/products"
	"cameronstore.com/app/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := storage.FromConfig(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	if c, ok := st.Store.(storage.Closer); ok {
		defer c.Close()
	}
	logger.Info("storage_ready", slog.String("driver", st.Driver))

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:  logger,
		Config:  cfg,
		Store:   st.Store,
		Driver:  st.Driver,
		Catalog: products.NewStaticRepo(),
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http_listen", slog.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_serve_failed", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http_shutdown_failed", slog.Any("err", err))
	}
	logger.Info("http_stopped")
}
