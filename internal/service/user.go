package service

import (
	"context"
	"fmt"
	"time"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/higgslabs/higgs-api/internal/errs"
	"github.com/higgslabs/higgs-api/internal/repository"
)

// Machine codes for uniqueness conflicts, matching the codes the sqlerr
// package derives from the storage constraints so callers see one code
// regardless of which layer caught the duplicate.
const (
	CodeUsernameExists = "USERNAME_ALREADY_EXISTS"
	CodeEmailExists    = "EMAIL_ALREADY_EXISTS"
)

// UserService enforces the user business invariants and the read-shape
// boundary: no two users share a username or email, partial updates
// never null out omitted fields, and raw entities never leave this
// layer.
//
// The uniqueness pre-checks are read-then-write; the unique indexes in
// the schema close the race between concurrent writers, with sqlerr
// translating a constraint hit into the same conflict shape.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUser persists a new user after checking username and email
// uniqueness. Username is checked first; the first violation wins and
// short-circuits. New users start active.
func (s *UserService) CreateUser(ctx context.Context, draft domain.UserCreate) (*domain.UserRead, error) {
	existing, err := s.users.GetByUsername(ctx, draft.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError(
			fmt.Sprintf("Username '%s' already exists", draft.Username),
			CodeUsernameExists, "username")
	}

	existing, err = s.users.GetByEmail(ctx, draft.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewConflictError(
			fmt.Sprintf("Email '%s' already exists", draft.Email),
			CodeEmailExists, "email")
	}

	user := &domain.User{
		Username: draft.Username,
		Email:    draft.Email,
		FullName: draft.FullName,
		IsActive: true,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	read := created.Read()
	return &read, nil
}

// GetUser returns the user projection for id, or nil when absent.
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.UserRead, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil || user == nil {
		return nil, err
	}
	read := user.Read()
	return &read, nil
}

// GetUserByUsername returns the projection for an exact username match,
// or nil when absent.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.UserRead, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	read := user.Read()
	return &read, nil
}

// UpdateUser applies a partial update to the user with the given id.
//
// Returns nil (no error) when the user does not exist. Each non-nil
// patch field is applied; username and email changes are re-checked for
// uniqueness against all other rows before applying. Any successful
// update refreshes UpdatedAt, even when the patch changed nothing.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.UserRead, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if patch.Username != nil {
		existing, err := s.users.GetByUsername(ctx, *patch.Username)
		if err != nil {
			return nil, err
		}
		// Self-exclusion: changing the username to its current value is
		// allowed.
		if existing != nil && existing.ID != id {
			return nil, errs.NewConflictError(
				fmt.Sprintf("Username '%s' already exists", *patch.Username),
				CodeUsernameExists, "username")
		}
		user.Username = *patch.Username
	}

	if patch.Email != nil {
		existing, err := s.users.GetByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, errs.NewConflictError(
				fmt.Sprintf("Email '%s' already exists", *patch.Email),
				CodeEmailExists, "email")
		}
		user.Email = *patch.Email
	}

	if patch.FullName != nil {
		user.FullName = patch.FullName
	}

	if patch.IsActive != nil {
		user.IsActive = *patch.IsActive
	}

	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	read := updated.Read()
	return &read, nil
}

// DeleteUser removes the user with the given id, reporting whether a
// row was found and removed. Deleting a missing id is not an error.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	return s.users.DeleteByID(ctx, id)
}

// GetAllUsers returns user projections with offset/limit pagination.
func (s *UserService) GetAllUsers(ctx context.Context, skip, limit int) ([]domain.UserRead, error) {
	users, err := s.users.GetAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return readAll(users), nil
}

// GetActiveUsers returns projections of all users with is_active set.
func (s *UserService) GetActiveUsers(ctx context.Context) ([]domain.UserRead, error) {
	users, err := s.users.GetActiveUsers(ctx)
	if err != nil {
		return nil, err
	}
	return readAll(users), nil
}

// SearchUsers returns projections of users whose full name or username
// contains the query as a substring.
func (s *UserService) SearchUsers(ctx context.Context, query string) ([]domain.UserRead, error) {
	users, err := s.users.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return readAll(users), nil
}

func readAll(users []domain.User) []domain.UserRead {
	reads := make([]domain.UserRead, 0, len(users))
	for i := range users {
		reads = append(reads, users[i].Read())
	}
	return reads
}
