package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthChecker probes one dependency.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	database HealthChecker
	identity HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(database, identity HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		database: database,
		identity: identity,
		logger:   logger,
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthCheck reports overall health including dependency probes.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := h.database.HealthCheck(ctx); err != nil {
		h.logger.Error("database health check failed", "error", err)
		checks["database"] = err.Error()
		healthy = false
	} else {
		checks["database"] = "ok"
	}

	if err := h.identity.HealthCheck(ctx); err != nil {
		h.logger.Error("identity provider health check failed", "error", err)
		checks["identity_provider"] = err.Error()
		healthy = false
	} else {
		checks["identity_provider"] = "ok"
	}

	if !healthy {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unhealthy", Checks: checks})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "healthy", Checks: checks})
}

// ReadinessCheck reports whether the service can take traffic.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.database.HealthCheck(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "not ready"})
	}
	return c.JSON(http.StatusOK, healthResponse{Status: "ready"})
}

// LivenessCheck reports that the process is up.
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "alive"})
}
