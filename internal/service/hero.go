package service

import (
	"context"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/higgslabs/higgs-api/internal/repository"
)

// HeroService exposes hero operations. Heroes carry no business rules
// beyond required fields, so every method delegates straight to the
// repository; the service exists to keep the layering uniform across
// entities.
type HeroService struct {
	heroes repository.HeroRepository
}

// NewHeroService constructs a HeroService over the given repository.
func NewHeroService(heroes repository.HeroRepository) *HeroService {
	return &HeroService{heroes: heroes}
}

// CreateHero constructs and persists a new hero. Age is optional.
func (s *HeroService) CreateHero(ctx context.Context, name, secretName string, age *int) (*domain.Hero, error) {
	hero := &domain.Hero{
		Name:       name,
		SecretName: secretName,
		Age:        age,
	}
	return s.heroes.Create(ctx, hero)
}

// GetHeroByID returns the hero with the given id, or nil when absent.
func (s *HeroService) GetHeroByID(ctx context.Context, id int64) (*domain.Hero, error) {
	return s.heroes.GetByID(ctx, id)
}

// GetAllHeroes returns heroes with offset/limit pagination.
func (s *HeroService) GetAllHeroes(ctx context.Context, skip, limit int) ([]domain.Hero, error) {
	return s.heroes.GetAll(ctx, skip, limit)
}

// GetHeroesByAgeRange returns heroes whose age lies within the
// inclusive [minAge, maxAge] range.
func (s *HeroService) GetHeroesByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Hero, error) {
	return s.heroes.GetByAgeRange(ctx, minAge, maxAge)
}
