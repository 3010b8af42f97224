package router

import (
	"net/http"

	"github.com/higgslabs/higgs-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes registers the versioned business API under /v1.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	v1 := r.Group("/v1")

	// Demo group mirrors the root banner under the versioned prefix.
	demo := v1.Group("/demo")
	demo.GET("/index", h.Index.Index)

	heroes := v1.Group("/heroes")
	heroes.POST("", handler.Handle(h.Heroes.Handler, h.Heroes.CreateHero, http.StatusCreated))
	heroes.GET("", handler.Handle(h.Heroes.Handler, h.Heroes.ListHeroes, http.StatusOK))
	// Registered before /:id so "age-range" is not captured as an id.
	heroes.GET("/age-range", handler.Handle(h.Heroes.Handler, h.Heroes.HeroesByAgeRange, http.StatusOK))
	heroes.GET("/:id", handler.Handle(h.Heroes.Handler, h.Heroes.GetHero, http.StatusOK))

	users := v1.Group("/users")
	users.POST("", handler.Handle(h.Users.Handler, h.Users.CreateUser, http.StatusCreated))
	users.GET("", handler.Handle(h.Users.Handler, h.Users.ListUsers, http.StatusOK))
	users.GET("/username/:username", handler.Handle(h.Users.Handler, h.Users.GetUserByUsername, http.StatusOK))
	users.GET("/search/:query", handler.Handle(h.Users.Handler, h.Users.SearchUsers, http.StatusOK))
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.GetUser, http.StatusOK))
	// PUT and PATCH share the partial-update handler; omitted fields are
	// left untouched under either verb.
	users.PUT("/:id", handler.Handle(h.Users.Handler, h.Users.UpdateUser, http.StatusOK))
	users.PATCH("/:id", handler.Handle(h.Users.Handler, h.Users.UpdateUser, http.StatusOK))
	users.DELETE("/:id", handler.Handle(h.Users.Handler, h.Users.DeleteUser, http.StatusOK))
}
