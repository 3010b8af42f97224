package domain

import "time"

// User is a persisted user record.
//
// Username and email are unique across all users. The invariant is
// checked in the service layer before every write and backed by unique
// indexes in the schema.
type User struct {
	ID        int64
	Username  string
	Email     string
	FullName  *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserCreate carries the caller-supplied fields for a new user.
// ID and timestamps are always assigned by the system.
type UserCreate struct {
	Username string
	Email    string
	FullName *string
}

// UserUpdate is a partial-update patch. A nil field means "leave
// unchanged"; a non-nil field is applied even when it points at a zero
// value, so a user can be deactivated or have their full name cleared.
type UserUpdate struct {
	Username *string
	Email    *string
	FullName *string
	IsActive *bool
}

// IsZero reports whether the patch carries no field at all.
func (u UserUpdate) IsZero() bool {
	return u.Username == nil && u.Email == nil && u.FullName == nil && u.IsActive == nil
}

// UserRead is the only user shape ever returned to callers.
type UserRead struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Read maps the persisted entity onto its API-facing projection. The
// mapping is total: every UserRead field is populated from the entity.
func (u *User) Read() UserRead {
	return UserRead{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
