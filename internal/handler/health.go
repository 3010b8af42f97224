package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/higgslabs/higgs-api/internal/middleware"
	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a system endpoint that external systems use to
// verify the service is alive and its dependencies are reachable.
// Load balancers and uptime monitors call it; it is not business logic,
// but embedding the base Handler keeps the handler patterns consistent.
type HealthHandler struct {
	Handler
}

// NewHealthHandler constructs a HealthHandler with access to shared app
// dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth returns the overall service status plus per-dependency
// checks.
//
// Response includes:
//   - overall status (healthy/unhealthy)
//   - process id and server version
//   - timestamp (UTC) and environment
//   - checks map (database)
//
// Returns 200 OK when all checks pass, 503 Service Unavailable when any
// fails.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"pid":         os.Getpid(),
		"version":     h.server.Config.Primary.Version,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	hc := h.server.Config.Observability.HealthChecks
	if hc.Enabled {
		for _, check := range hc.Checks {
			if check != "database" {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), hc.Timeout)

			dbStart := time.Now()
			err := h.server.DB.Pool.Ping(ctx)
			cancel()

			if err != nil {
				checks["database"] = map[string]interface{}{
					"status":        "unhealthy",
					"response_time": time.Since(dbStart).String(),
					"error":         err.Error(),
				}

				isHealthy = false

				logger.Error().
					Err(err).
					Dur("response_time", time.Since(dbStart)).
					Msg("database health check failed")
			} else {
				checks["database"] = map[string]interface{}{
					"status":        "healthy",
					"response_time": time.Since(dbStart).String(),
				}

				logger.Debug().
					Dur("response_time", time.Since(dbStart)).
					Msg("database health check passed")
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
