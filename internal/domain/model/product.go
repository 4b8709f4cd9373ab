package model

import (
	"strings"
	"time"

	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// Product is a catalog item. Price is stored in the smallest currency
// unit (cents) to avoid floating point drift.
type Product struct {
	ID          string     `db:"id"          json:"id"`
	CategoryID  string     `db:"category_id" json:"category_id"`
	Name        string     `db:"name"        json:"name"`
	Description string     `db:"description" json:"description"`
	PriceCents  int64      `db:"price_cents" json:"price_cents"`
	Stock       int        `db:"stock"       json:"stock"`
	CreatedAt   time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"  json:"updated_at,omitempty"`
}

// ProductQuery filters and paginates product listings.
type ProductQuery struct {
	CategoryID string
	Limit      int
	Offset     int
}

// CreateProductRequest carries input for creating a product.
type CreateProductRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
}

// Validate checks required fields and value ranges.
func (r *CreateProductRequest) Validate() error {
	if strings.TrimSpace(r.CategoryID) == "" {
		return apperrors.ValidationField("category_id", "category_id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return apperrors.ValidationField("name", "name is required")
	}
	if r.PriceCents <= 0 {
		return apperrors.ValidationField("price_cents", "price_cents must be positive")
	}
	if r.Stock < 0 {
		return apperrors.ValidationField("stock", "stock cannot be negative")
	}
	return nil
}

// UpdateProductRequest carries input for partial product updates.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	CategoryID  *string `json:"category_id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Stock       *int    `json:"stock,omitempty"`
}

// Validate checks that at least one field is set and provided values are sane.
func (r *UpdateProductRequest) Validate() error {
	if r.CategoryID == nil && r.Name == nil && r.Description == nil && r.PriceCents == nil && r.Stock == nil {
		return apperrors.Validation("no fields to update")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apperrors.ValidationField("name", "name cannot be empty")
	}
	if r.PriceCents != nil && *r.PriceCents <= 0 {
		return apperrors.ValidationField("price_cents", "price_cents must be positive")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return apperrors.ValidationField("stock", "stock cannot be negative")
	}
	return nil
}
