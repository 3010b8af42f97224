package service

import (
	"github.com/higgslabs/higgs-api/internal/repository"
	"github.com/higgslabs/higgs-api/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Heroes *HeroService
	Users  *UserService
}

// NewServices constructs the service container on top of the
// repository container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Heroes: NewHeroService(repos.Heroes),
		Users:  NewUserService(repos.Users),
	}, nil
}
