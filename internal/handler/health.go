package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/motionhq/motion/api/internal/database"
	"github.com/motionhq/motion/api/internal/middleware"
	"github.com/motionhq/motion/api/internal/service"
)

const readyTimeout = 3 * time.Second

// HealthHandler serves liveness, readiness and backend connectivity checks
type HealthHandler struct {
	store   database.Pinger
	driver  database.Driver
	backend *service.BackendClient
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store database.Pinger, driver database.Driver, backend *service.BackendClient) *HealthHandler {
	return &HealthHandler{
		store:   store,
		driver:  driver,
		backend: backend,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready by pinging the configured store
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		slog.WarnContext(r.Context(), "readiness check failed",
			"driver", h.driver,
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"driver": string(h.driver),
			"error":  "store unreachable",
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"driver": string(h.driver),
	})
}

// TestBackend handles GET /api/test-railway.
// Any upstream reply yields 200 with success set from its status; only a
// transport failure yields 500.
func (h *HealthHandler) TestBackend(w http.ResponseWriter, r *http.Request) {
	result, err := h.backend.CheckHealth(r.Context())
	if err != nil {
		logError(r, "backend health check failed", err)
		WriteJSON(w, http.StatusInternalServerError, result)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}
