package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/labstack/echo/v4"
)

// IndexHandler serves the welcome banner and a few runtime
// introspection endpoints useful when poking at a running instance:
// process threads and database pool statistics.
type IndexHandler struct {
	Handler
}

// NewIndexHandler constructs an IndexHandler with access to shared app
// dependencies.
func NewIndexHandler(s *server.Server) *IndexHandler {
	return &IndexHandler{
		Handler: NewHandler(s),
	}
}

// Index returns the welcome banner with the API version and server
// version, so a bare GET on the root confirms what is running.
func (h *IndexHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"welcome":        "Higgs Agents OpenAPI",
		"api_version":    "v1",
		"server_version": h.server.Config.Primary.Version,
	})
}

// Threads reports the process id and the current goroutine count. The
// endpoint name is historical; goroutines are the unit of concurrency
// here, not OS threads.
func (h *IndexHandler) Threads(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pid":         os.Getpid(),
		"num_threads": runtime.NumGoroutine(),
	})
}

// DBPoolStat exposes live pgxpool statistics for debugging connection
// pressure.
func (h *IndexHandler) DBPoolStat(c echo.Context) error {
	stat := h.server.DB.Pool.Stat()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"acquired_conns":      stat.AcquiredConns(),
		"idle_conns":          stat.IdleConns(),
		"total_conns":         stat.TotalConns(),
		"max_conns":           stat.MaxConns(),
		"constructing_conns":  stat.ConstructingConns(),
		"new_conns_count":     stat.NewConnsCount(),
		"acquire_count":       stat.AcquireCount(),
		"empty_acquire_count": stat.EmptyAcquireCount(),
	})
}
