package repository

import (
	"context"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const heroColumns = "id, name, secret_name, age"

const (
	sqlInsertHero = `
		INSERT INTO heroes (name, secret_name, age)
		VALUES ($1, $2, $3)
		RETURNING ` + heroColumns

	sqlGetHeroByName = `
		SELECT ` + heroColumns + `
		FROM   heroes
		WHERE  name = $1
		LIMIT  1`

	sqlGetHeroBySecretName = `
		SELECT ` + heroColumns + `
		FROM   heroes
		WHERE  secret_name = $1
		LIMIT  1`

	sqlGetHeroesByAgeRange = `
		SELECT ` + heroColumns + `
		FROM   heroes
		WHERE  age >= $1 AND age <= $2
		ORDER  BY id`
)

// heroRepository is the pgx-backed HeroRepository implementation.
type heroRepository struct {
	base[domain.Hero]
}

// NewHeroRepository returns a HeroRepository backed by db.
func NewHeroRepository(db Queryer) HeroRepository {
	return &heroRepository{
		base: base[domain.Hero]{
			db:      db,
			table:   "heroes",
			columns: heroColumns,
			scan:    scanHero,
		},
	}
}

func scanHero(row pgx.Row) (*domain.Hero, error) {
	var hero domain.Hero
	if err := row.Scan(&hero.ID, &hero.Name, &hero.SecretName, &hero.Age); err != nil {
		return nil, err
	}
	return &hero, nil
}

// Create inserts a new hero and returns it with the generated id. No
// validation happens here; required fields are the caller's concern.
func (r *heroRepository) Create(ctx context.Context, hero *domain.Hero) (*domain.Hero, error) {
	row := r.db.QueryRow(ctx, sqlInsertHero, hero.Name, hero.SecretName, hero.Age)
	return r.scan(row)
}

func (r *heroRepository) GetByID(ctx context.Context, id int64) (*domain.Hero, error) {
	return r.getByID(ctx, id)
}

func (r *heroRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.Hero, error) {
	return r.getAll(ctx, skip, limit)
}

// GetByName is an exact-match lookup; (nil, nil) when no hero matches.
func (r *heroRepository) GetByName(ctx context.Context, name string) (*domain.Hero, error) {
	return r.one(ctx, sqlGetHeroByName, name)
}

func (r *heroRepository) GetBySecretName(ctx context.Context, secretName string) (*domain.Hero, error) {
	return r.one(ctx, sqlGetHeroBySecretName, secretName)
}

// GetByAgeRange returns heroes whose age lies within [minAge, maxAge],
// both bounds inclusive. Heroes without an age never match.
func (r *heroRepository) GetByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Hero, error) {
	rows, err := r.db.Query(ctx, sqlGetHeroesByAgeRange, minAge, maxAge)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *heroRepository) Delete(ctx context.Context, hero *domain.Hero) error {
	_, err := r.deleteByID(ctx, hero.ID)
	return err
}

func (r *heroRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, id)
}

func (r *heroRepository) one(ctx context.Context, sql string, args ...any) (*domain.Hero, error) {
	hero, err := r.scan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return hero, nil
}
