package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes the service health endpoint.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new handler instance.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles GET /healthz requests.
func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.db.Ping(c.Request().Context()); err != nil {
		return Error(c, http.StatusServiceUnavailable, "database unreachable")
	}

	return Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok", "database": "connected"})
}
