package model

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// ValidOrderStatuses lists all accepted status values.
var ValidOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPaid,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// orderTransitions maps each status to the statuses it may move to.
// Delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped: {OrderStatusDelivered},
}

// CanTransitionTo reports whether an order in status s may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Order is a placed order with a snapshot of its items and shipping address.
type Order struct {
	ID         string      `db:"id"          json:"id"`
	UserID     string      `db:"user_id"     json:"user_id"`
	AddressID  string      `db:"address_id"  json:"address_id"`
	Status     OrderStatus `db:"status"      json:"status"`
	TotalCents int64       `db:"total_cents" json:"total_cents"`
	CreatedAt  time.Time   `db:"created_at"  json:"created_at"`
	UpdatedAt  *time.Time  `db:"updated_at"  json:"updated_at,omitempty"`

	Items []OrderItem `db:"-" json:"items"`
}

// OrderItem is one product line frozen at checkout time.
type OrderItem struct {
	ID         string `db:"id"          json:"id"`
	OrderID    string `db:"order_id"    json:"order_id"`
	ProductID  string `db:"product_id"  json:"product_id"`
	Name       string `db:"name"        json:"name"`
	PriceCents int64  `db:"price_cents" json:"price_cents"`
	Quantity   int    `db:"quantity"    json:"quantity"`
}

// CheckoutRequest carries input for converting the cart into an order.
type CheckoutRequest struct {
	AddressID string `json:"address_id"`
}

// Validate checks required fields.
func (r *CheckoutRequest) Validate() error {
	if strings.TrimSpace(r.AddressID) == "" {
		return apperrors.ValidationField("address_id", "address_id is required")
	}
	return nil
}

// UpdateOrderStatusRequest carries input for admin status transitions.
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

// Validate checks the status value.
func (r *UpdateOrderStatusRequest) Validate() error {
	for _, s := range ValidOrderStatuses {
		if r.Status == s {
			return nil
		}
	}
	return apperrors.ValidationField("status", fmt.Sprintf("invalid status %q", r.Status))
}
