package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ping func(ctx context.Context) error
	now  func() time.Time
}

// NewHealthHandler takes the readiness ping; nil means always ready.
func NewHealthHandler(ping func(ctx context.Context) error, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}

	return &HealthHandler{ping: ping, now: now}
}

func (h *HealthHandler) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "HemoLink API running", "status": "ok"})
}

// Health is liveness only and never touches the database.
func (h *HealthHandler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   h.now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *HealthHandler) Readyz(ctx *gin.Context) {
	if h.ping != nil {
		cctx, cancel := context.WithTimeout(ctx.Request.Context(), time.Second)
		defer cancel()

		if err := h.ping(cctx); err != nil {
			RespondServiceUnavailable(ctx, "not_ready", "Database is unreachable")
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
