package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/pitipaw_catalog/internal/service"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
	"github.com/Skotchmaster/pitipaw_catalog/pkg/logging"
)

const healthTimeout = 5 * time.Second

type SystemHTTP struct {
	Svc *service.SystemService
}

func (h *SystemHTTP) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()
	l := logging.FromContext(ctx).With("handler", "system.health")

	if err := h.Svc.Health(ctx); err != nil {
		l.Error("health_error", "status", 500, "reason", "database ping failed", "error", err)
		return c.JSON(http.StatusInternalServerError, transport.HealthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "database connection failed",
			Error:    err.Error(),
		})
	}

	return c.JSON(http.StatusOK, transport.HealthResponse{
		Status:   "ok",
		Database: "connected",
		Message:  "backend is running",
	})
}

func (h *SystemHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "system.stats")

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		l.Error("stats_error", "status", 500, "reason", "cannot count records", "error", err)
		return internalError("stats error", err)
	}
	return c.JSON(http.StatusOK, stats)
}
