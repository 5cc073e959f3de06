package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/CorrelAid/form_intake/logger"
	"github.com/gin-gonic/gin"
)

// PingFunc reports whether the backing store is reachable.
type PingFunc func(ctx context.Context) error

// HealthHandler serves GET /healthz.
type HealthHandler struct {
	ping    PingFunc
	timeout time.Duration
}

func NewHealthHandler(ping PingFunc) *HealthHandler {
	return &HealthHandler{ping: ping, timeout: 2 * time.Second}
}

func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		logger.GetLogger().Warnw("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
