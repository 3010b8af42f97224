// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/higgslabs/higgs-api/internal/handler"
	"github.com/higgslabs/higgs-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// Setup builds the Echo instance: global middleware in order, the
// global error handler, and all route groups.
//
// Middleware order matters: Recover first so later panics are caught,
// RequestID before ContextEnhancer so the request-scoped logger can
// pick up the id, and the request logger after both so its one-line
// summary carries correlation fields.
func Setup(m *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = m.Global.GlobalErrorHandler

	e.Use(m.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.ContextEnhancer.EnhanceContext())
	e.Use(m.Global.RequestLogger())
	e.Use(m.Global.Secure())
	e.Use(m.Global.CORS())
	e.Use(m.Global.Gzip())
	e.Use(m.Global.VersionHeaders())

	registerSystemRoutes(e, h)
	registerAPIRoutes(e, h)

	return e
}
