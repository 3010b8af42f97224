package repository

import (
	"github.com/higgslabs/higgs-api/internal/server"
)

// Repositories is the container for all repository instances. It is
// built once at startup and handed to the service layer.
type Repositories struct {
	Heroes HeroRepository
	Users  UserRepository
}

// NewRepositories constructs the repository container from the shared
// application resources (the pgx pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Heroes: NewHeroRepository(s.DB.Pool),
		Users:  NewUserRepository(s.DB.Pool),
	}
}
