package model

import (
	"strings"
	"time"

	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// User is the account record. The auth core owns two of its fields:
// CurrentToken and TokenExpiresAt form the session record that backs
// server-side token revocation. At most one token is live per user;
// every login overwrites both fields in a single update.
type User struct {
	ID           string     `db:"id"            json:"id"`
	Email        string     `db:"email"         json:"email"`
	Name         string     `db:"name"          json:"name"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Roles        []string   `db:"roles"         json:"roles"`
	CurrentToken *string    `db:"current_token" json:"-"`
	// TokenExpiresAt is the server-controlled session expiry. It is set
	// together with CurrentToken at login and is checked independently
	// of the token's own embedded expiry claim.
	TokenExpiresAt *time.Time `db:"token_expires_at" json:"-"`
	CreatedAt      time.Time  `db:"created_at"       json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at"       json:"updated_at,omitempty"`
}

// RegisterUserRequest carries input for user registration.
type RegisterUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

const minPasswordLength = 8

// Validate checks required fields and basic shape.
func (r *RegisterUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return apperrors.ValidationField("email", "email is not valid")
	}
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	if len(r.Password) < minPasswordLength {
		return apperrors.Validationf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

// UpdateUserRequest carries input for profile updates. Nil fields are
// left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Validate checks the provided fields.
func (r *UpdateUserRequest) Validate() error {
	if r.Name == nil && r.Password == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperrors.ValidationField("name", "name cannot be empty")
	}
	if r.Password != nil && len(*r.Password) < minPasswordLength {
		return apperrors.Validationf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}
