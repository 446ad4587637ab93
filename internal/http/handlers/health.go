package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cameronstore.com/app/internal/storage"
)

type HealthHandler struct {
	Store  storage.Store
	Driver string
	Logger *slog.Logger
}

func NewHealthHandler(store storage.Store, driver string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{Store: store, Driver: driver, Logger: logger}
}

// Get handles GET /healthz; drivers with a remote backend are pinged.
func (h *HealthHandler) Get(c *gin.Context) {
	if p, ok := h.Store.(storage.Pinger); ok {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			h.Logger.WarnContext(ctx, "health_ping_failed", slog.String("driver", h.Driver), slog.Any("err", err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "storage": h.Driver})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "storage": h.Driver})
}
