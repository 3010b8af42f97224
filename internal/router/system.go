package router

import (
	"github.com/higgslabs/higgs-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not business logic:
// the welcome banner, health checks, and runtime introspection.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Welcome banner, also useful as a trivial liveness probe.
	r.GET("/", h.Index.Index)

	// Health status endpoint (used by Kubernetes/monitors).
	r.GET("/health", h.Health.CheckHealth)

	// Runtime introspection for debugging running instances.
	r.GET("/threads", h.Index.Threads)
	r.GET("/db-pool-stat", h.Index.DBPoolStat)
}
