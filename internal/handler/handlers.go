package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/higgslabs/higgs-api/internal/service"
)

// validate is the shared validator instance used by the request types'
// Validate methods. validator.Validate caches struct metadata, so a
// single instance is reused across all requests.
var validate = validator.New()

// Handlers groups all HTTP handlers so the router receives one object
// instead of many.
type Handlers struct {
	Health *HealthHandler // liveness/readiness + dependency checks
	Index  *IndexHandler  // welcome banner and runtime introspection
	Heroes *HeroHandler
	Users  *UserHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		Index:  NewIndexHandler(s),
		Heroes: NewHeroHandler(s, services.Heroes),
		Users:  NewUserHandler(s, services.Users),
	}
}
