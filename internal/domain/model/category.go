package model

import (
	"strings"
	"time"

	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// Category is a product grouping managed by admins.
type Category struct {
	ID        string     `db:"id"         json:"id"`
	Name      string     `db:"name"       json:"name"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CreateCategoryRequest carries input for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *CreateCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	return nil
}

// UpdateCategoryRequest carries input for renaming a category.
type UpdateCategoryRequest struct {
	Name string `json:"name"`
}

// Validate checks required fields.
func (r *UpdateCategoryRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	return nil
}
