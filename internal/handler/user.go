package handler

import (
	"fmt"

	"github.com/higgslabs/higgs-api/internal/domain"
	"github.com/higgslabs/higgs-api/internal/errs"
	"github.com/higgslabs/higgs-api/internal/server"
	"github.com/higgslabs/higgs-api/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler exposes the user CRUD, lookup, and search endpoints.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler over the user service.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// CreateUserRequest is the payload for registering a user.
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"full_name"`
}

func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// GetUserRequest identifies a user by path id.
type GetUserRequest struct {
	ID int64 `param:"id" validate:"required,gte=1"`
}

func (r *GetUserRequest) Validate() error {
	return validate.Struct(r)
}

// GetUserByUsernameRequest identifies a user by exact username.
type GetUserByUsernameRequest struct {
	Username string `param:"username" validate:"required"`
}

func (r *GetUserByUsernameRequest) Validate() error {
	return validate.Struct(r)
}

// ListUsersRequest paginates the user collection. Limit defaults to
// defaultPageLimit when omitted; an explicit limit=0 yields an empty
// page. ActiveOnly switches the listing to active users only, in which
// case pagination is ignored.
type ListUsersRequest struct {
	Skip       int  `query:"skip" validate:"gte=0"`
	Limit      *int `query:"limit" validate:"omitempty,gte=0"`
	ActiveOnly bool `query:"active_only"`
}

func (r *ListUsersRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateUserRequest is the partial-update payload. Pointer fields
// distinguish "not provided" from zero values; omitted fields keep
// their current value.
type UpdateUserRequest struct {
	ID       int64   `param:"id" validate:"required,gte=1"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteUserRequest identifies the user to delete.
type DeleteUserRequest struct {
	ID int64 `param:"id" validate:"required,gte=1"`
}

func (r *DeleteUserRequest) Validate() error {
	return validate.Struct(r)
}

// SearchUsersRequest carries the substring to match against usernames
// and full names.
type SearchUsersRequest struct {
	Query string `param:"query" validate:"required"`
}

func (r *SearchUsersRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteUserResponse confirms a completed deletion.
type DeleteUserResponse struct {
	Message string `json:"message"`
}

// CreateUser handles POST /v1/users.
func (h *UserHandler) CreateUser(c echo.Context, req *CreateUserRequest) (*domain.UserRead, error) {
	return h.users.CreateUser(c.Request().Context(), domain.UserCreate{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
	})
}

// GetUser handles GET /v1/users/:id.
func (h *UserHandler) GetUser(c echo.Context, req *GetUserRequest) (*domain.UserRead, error) {
	user, err := h.users.GetUser(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("User with id %d not found", req.ID), false, nil)
	}
	return user, nil
}

// GetUserByUsername handles GET /v1/users/username/:username.
func (h *UserHandler) GetUserByUsername(c echo.Context, req *GetUserByUsernameRequest) (*domain.UserRead, error) {
	user, err := h.users.GetUserByUsername(c.Request().Context(), req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("User '%s' not found", req.Username), false, nil)
	}
	return user, nil
}

// ListUsers handles GET /v1/users.
func (h *UserHandler) ListUsers(c echo.Context, req *ListUsersRequest) ([]domain.UserRead, error) {
	if req.ActiveOnly {
		return h.users.GetActiveUsers(c.Request().Context())
	}

	limit := defaultPageLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	return h.users.GetAllUsers(c.Request().Context(), req.Skip, limit)
}

// UpdateUser handles PATCH /v1/users/:id.
func (h *UserHandler) UpdateUser(c echo.Context, req *UpdateUserRequest) (*domain.UserRead, error) {
	user, err := h.users.UpdateUser(c.Request().Context(), req.ID, domain.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFoundError(fmt.Sprintf("User with id %d not found", req.ID), false, nil)
	}
	return user, nil
}

// DeleteUser handles DELETE /v1/users/:id.
func (h *UserHandler) DeleteUser(c echo.Context, req *DeleteUserRequest) (*DeleteUserResponse, error) {
	deleted, err := h.users.DeleteUser(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, errs.NewNotFoundError(fmt.Sprintf("User with id %d not found", req.ID), false, nil)
	}
	return &DeleteUserResponse{
		Message: fmt.Sprintf("User %d deleted successfully", req.ID),
	}, nil
}

// SearchUsers handles GET /v1/users/search/:query.
func (h *UserHandler) SearchUsers(c echo.Context, req *SearchUsersRequest) ([]domain.UserRead, error) {
	return h.users.SearchUsers(c.Request().Context(), req.Query)
}
