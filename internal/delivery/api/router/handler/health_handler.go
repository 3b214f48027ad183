package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"flock/internal/delivery/api/response"
	deliverycontext "flock/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB `optional:"true"`
	Logger *slog.Logger
}

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// HealthCheck returns 200 while the database answers a ping, 503 otherwise.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	status := map[string]string{"status": "ok", "database": "skipped"}
	if h.db == nil {
		return response.Success(c, http.StatusOK, status)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check database ping failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Database unavailable", nil)
	}
	status["database"] = "ok"

	return response.Success(c, http.StatusOK, status)
}
