package middleware

import (
	"github.com/labstack/echo/v4"
)

const (
	// VersionHeader carries the server version on every response.
	VersionHeader = "X-Version"

	// EnvHeader carries the deployment environment on every response.
	EnvHeader = "X-Env"
)

// VersionHeaders returns a middleware stamping the server version and
// environment onto every response, so clients can report exactly which
// build served them.
func (global *GlobalMiddlewares) VersionHeaders() echo.MiddlewareFunc {
	version := global.server.Config.Primary.Version
	env := global.server.Config.Primary.Env

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(VersionHeader, version)
			c.Response().Header().Set(EnvHeader, env)
			return next(c)
		}
	}
}
