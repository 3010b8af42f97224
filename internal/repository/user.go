package repository

import (
	"context"
	"time"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const userColumns = "id, username, email, full_name, is_active, created_at, updated_at"

const (
	sqlInsertUser = `
		INSERT INTO users (username, email, full_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING ` + userColumns

	sqlUpdateUser = `
		UPDATE users
		SET    username = $2, email = $3, full_name = $4, is_active = $5, updated_at = $6
		WHERE  id = $1
		RETURNING ` + userColumns

	sqlGetUserByUsername = `
		SELECT ` + userColumns + `
		FROM   users
		WHERE  username = $1
		LIMIT  1`

	sqlGetUserByEmail = `
		SELECT ` + userColumns + `
		FROM   users
		WHERE  email = $1
		LIMIT  1`

	sqlGetActiveUsers = `
		SELECT ` + userColumns + `
		FROM   users
		WHERE  is_active = TRUE
		ORDER  BY id`

	sqlSearchUsersByName = `
		SELECT ` + userColumns + `
		FROM   users
		WHERE  full_name ILIKE '%' || $1 || '%'
		   OR  username ILIKE '%' || $1 || '%'
		ORDER  BY id`
)

// userRepository is the pgx-backed UserRepository implementation.
type userRepository struct {
	base[domain.User]
}

// NewUserRepository returns a UserRepository backed by db.
func NewUserRepository(db Queryer) UserRepository {
	return &userRepository{
		base: base[domain.User]{
			db:      db,
			table:   "users",
			columns: userColumns,
			scan:    scanUser,
		},
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user and returns the persisted record with the
// generated id and timestamps. Both timestamps start at the same
// instant.
func (r *userRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	now := time.Now().UTC()
	row := r.db.QueryRow(ctx, sqlInsertUser,
		user.Username, user.Email, user.FullName, user.IsActive, now)
	return r.scan(row)
}

// Update persists the already-mutated entity in full. The caller must
// have applied field changes (including UpdatedAt) before calling.
func (r *userRepository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	row := r.db.QueryRow(ctx, sqlUpdateUser,
		user.ID, user.Username, user.Email, user.FullName, user.IsActive, user.UpdatedAt)
	return r.scan(row)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getByID(ctx, id)
}

func (r *userRepository) GetAll(ctx context.Context, skip, limit int) ([]domain.User, error) {
	return r.getAll(ctx, skip, limit)
}

// GetByUsername is an exact-match, case-sensitive lookup; (nil, nil)
// when no user matches.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.one(ctx, sqlGetUserByUsername, username)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.one(ctx, sqlGetUserByEmail, email)
}

func (r *userRepository) GetActiveUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, sqlGetActiveUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

// SearchByName returns users whose full name or username contains the
// query as a substring, case-insensitively.
func (r *userRepository) SearchByName(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, sqlSearchUsersByName, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *userRepository) Delete(ctx context.Context, user *domain.User) error {
	_, err := r.deleteByID(ctx, user.ID)
	return err
}

func (r *userRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	return r.deleteByID(ctx, id)
}

func (r *userRepository) one(ctx context.Context, sql string, args ...any) (*domain.User, error) {
	user, err := r.scan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}
