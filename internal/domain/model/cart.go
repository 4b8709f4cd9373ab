package model

import (
	"strings"
	"time"

	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// Cart is the single open cart for a user. It is created lazily on
// first access and survives until checkout clears its items.
type Cart struct {
	ID        string     `db:"id"         json:"id"`
	UserID    string     `db:"user_id"    json:"user_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`

	Items []CartItem `db:"-" json:"items"`
}

// TotalCents sums the line totals of all items.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	return total
}

// CartItem is one product line in a cart. PriceCents is a snapshot of
// the product price at the time the item was added.
type CartItem struct {
	ID         string    `db:"id"          json:"id"`
	CartID     string    `db:"cart_id"     json:"cart_id"`
	ProductID  string    `db:"product_id"  json:"product_id"`
	Name       string    `db:"name"        json:"name"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	Quantity   int       `db:"quantity"    json:"quantity"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// AddCartItemRequest carries input for adding a product to the cart.
// Adding an already-present product replaces its quantity.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Validate checks required fields and value ranges.
func (r *AddCartItemRequest) Validate() error {
	if strings.TrimSpace(r.ProductID) == "" {
		return apperrors.ValidationField("product_id", "product_id is required")
	}
	if r.Quantity < 1 {
		return apperrors.ValidationField("quantity", "quantity must be at least 1")
	}
	return nil
}

// UpdateCartItemRequest carries input for changing a line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Validate checks value ranges.
func (r *UpdateCartItemRequest) Validate() error {
	if r.Quantity < 1 {
		return apperrors.ValidationField("quantity", "quantity must be at least 1")
	}
	return nil
}
