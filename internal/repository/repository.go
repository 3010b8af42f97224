// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL logic away from the service layer.
//
// Each entity gets an interface plus a pgx-backed implementation; the
// interfaces exist so the service layer can be tested against in-memory
// fakes.
package repository

import (
	"context"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Queryer is the subset of pgxpool.Pool the repositories need. It is
// also satisfied by pgx.Tx, so repositories can run inside transactions
// without change.
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// HeroRepository defines persistence operations for Hero entities.
//
// Point lookups return (nil, nil) when no row matches; "absent" is not
// an error at this layer.
type HeroRepository interface {
	Create(ctx context.Context, hero *domain.Hero) (*domain.Hero, error)
	GetByID(ctx context.Context, id int64) (*domain.Hero, error)
	GetAll(ctx context.Context, skip, limit int) ([]domain.Hero, error)
	GetByName(ctx context.Context, name string) (*domain.Hero, error)
	GetBySecretName(ctx context.Context, secretName string) (*domain.Hero, error)
	GetByAgeRange(ctx context.Context, minAge, maxAge int) ([]domain.Hero, error)
	Delete(ctx context.Context, hero *domain.Hero) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context, skip, limit int) ([]domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetActiveUsers(ctx context.Context) ([]domain.User, error)
	SearchByName(ctx context.Context, query string) ([]domain.User, error)
	Delete(ctx context.Context, user *domain.User) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
