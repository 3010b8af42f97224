package handler

import (
	"fmt"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/higgslabs/higgs-api/internal/errs"
	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/higgslabs/higgs-api/internal/service"
	"github.com/labstack/echo/v4"
)

// defaultPageLimit caps list responses when the client does not ask for
// a specific page size.
const defaultPageLimit = 100

// HeroHandler exposes the hero CRUD endpoints.
type HeroHandler struct {
	Handler
	heroes *service.HeroService
}

// NewHeroHandler constructs a HeroHandler over the hero service.
func NewHeroHandler(s *server.Server, heroes *service.HeroService) *HeroHandler {
	return &HeroHandler{
		Handler: NewHandler(s),
		heroes:  heroes,
	}
}

// CreateHeroRequest is the payload for creating a hero. Age is optional
// but must be non-negative when present.
type CreateHeroRequest struct {
	Name       string `json:"name" validate:"required"`
	SecretName string `json:"secret_name" validate:"required"`
	Age        *int   `json:"age" validate:"omitempty,gte=0"`
}

func (r *CreateHeroRequest) Validate() error {
	return validate.Struct(r)
}

// GetHeroRequest identifies a hero by path id.
type GetHeroRequest struct {
	ID int64 `param:"id" validate:"required,gte=1"`
}

func (r *GetHeroRequest) Validate() error {
	return validate.Struct(r)
}

// ListHeroesRequest paginates the hero collection. Limit defaults to
// defaultPageLimit when omitted; an explicit limit=0 yields an empty
// page.
type ListHeroesRequest struct {
	Skip  int  `query:"skip" validate:"gte=0"`
	Limit *int `query:"limit" validate:"omitempty,gte=0"`
}

func (r *ListHeroesRequest) Validate() error {
	return validate.Struct(r)
}

// HeroAgeRangeRequest filters heroes by an inclusive age range.
type HeroAgeRangeRequest struct {
	MinAge int `query:"min_age" validate:"gte=0"`
	MaxAge int `query:"max_age" validate:"gtefield=MinAge"`
}

func (r *HeroAgeRangeRequest) Validate() error {
	return validate.Struct(r)
}

// CreateHero handles POST /v1/heroes.
func (h *HeroHandler) CreateHero(c echo.Context, req *CreateHeroRequest) (*domain.Hero, error) {
	return h.heroes.CreateHero(c.Request().Context(), req.Name, req.SecretName, req.Age)
}

// GetHero handles GET /v1/heroes/:id.
func (h *HeroHandler) GetHero(c echo.Context, req *GetHeroRequest) (*domain.Hero, error) {
	hero, err := h.heroes.GetHeroByID(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("Hero with id %d not found", req.ID), false, nil)
	}
	return hero, nil
}

// ListHeroes handles GET /v1/heroes.
func (h *HeroHandler) ListHeroes(c echo.Context, req *ListHeroesRequest) ([]domain.Hero, error) {
	limit := defaultPageLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	return h.heroes.GetAllHeroes(c.Request().Context(), req.Skip, limit)
}

// HeroesByAgeRange handles GET /v1/heroes/age-range.
func (h *HeroHandler) HeroesByAgeRange(c echo.Context, req *HeroAgeRangeRequest) ([]domain.Hero, error) {
	return h.heroes.GetHeroesByAgeRange(c.Request().Context(), req.MinAge, req.MaxAge)
}
