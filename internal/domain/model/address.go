package model

import (
	"strings"
	"time"

	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// Address is a shipping or billing address owned by a user. All access
// is scoped to the owning principal; admins see them only through the
// owning user's endpoints.
type Address struct {
	ID         string     `db:"id"          json:"id"`
	UserID     string     `db:"user_id"     json:"user_id"`
	Street     string     `db:"street"      json:"street"`
	City       string     `db:"city"        json:"city"`
	Province   string     `db:"province"    json:"province"`
	PostalCode string     `db:"postal_code" json:"postal_code"`
	Country    string     `db:"country"     json:"country"`
	CreatedAt  time.Time  `db:"created_at"  json:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at"  json:"updated_at,omitempty"`
}

// CreateAddressRequest carries input for creating an address.
type CreateAddressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Validate checks required fields.
func (r *CreateAddressRequest) Validate() error {
	for field, value := range map[string]string{
		"street":      r.Street,
		"city":        r.City,
		"postal_code": r.PostalCode,
		"country":     r.Country,
	} {
		if strings.TrimSpace(value) == "" {
			return apperrors.ValidationField(field, field+" is required")
		}
	}
	return nil
}

// UpdateAddressRequest carries input for partial address updates.
// Nil fields are left unchanged.
type UpdateAddressRequest struct {
	Street     *string `json:"street,omitempty"`
	City       *string `json:"city,omitempty"`
	Province   *string `json:"province,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	Country    *string `json:"country,omitempty"`
}

// Validate checks that at least one field is set and no provided field is blank.
func (r *UpdateAddressRequest) Validate() error {
	fields := map[string]*string{
		"street":      r.Street,
		"city":        r.City,
		"province":    r.Province,
		"postal_code": r.PostalCode,
		"country":     r.Country,
	}
	any := false
	for name, value := range fields {
		if value == nil {
			continue
		}
		any = true
		if strings.TrimSpace(*value) == "" {
			return apperrors.ValidationField(name, name+" cannot be empty")
		}
	}
	if !any {
		return apperrors.Validation("no fields to update")
	}
	return nil
}
