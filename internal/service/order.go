package service

import (
	"context"
	"fmt"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// OrderRepository is the persistence port for orders.
type OrderRepository interface {
	CreateFromCart(ctx context.Context, p data.CheckoutParams) (*model.Order, error)
	GetByID(ctx context.Context, userID, id string) (*model.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// OrderAddressReader verifies that the shipping address belongs to the
// user placing the order.
type OrderAddressReader interface {
	GetByID(ctx context.Context, userID, id string) (*model.Address, error)
}

// OrderCartReader loads the cart being checked out.
type OrderCartReader interface {
	GetOrCreate(ctx context.Context, userID string) (*model.Cart, error)
}

// OrderServiceOptions groups dependencies for OrderService.
type OrderServiceOptions struct {
	Repo      OrderRepository
	Addresses OrderAddressReader
	Carts     OrderCartReader
}

// OrderService handles checkout and order lifecycle.
type OrderService struct {
	repo      OrderRepository
	addresses OrderAddressReader
	carts     OrderCartReader
}

// NewOrderService constructs a new OrderService.
func NewOrderService(opts OrderServiceOptions) *OrderService {
	return &OrderService{
		repo:      opts.Repo,
		addresses: opts.Addresses,
		carts:     opts.Carts,
	}
}

// Checkout converts the user's cart into an order shipped to one of
// their addresses. The cart must not be empty and the address must
// belong to the user.
func (s *OrderService) Checkout(ctx context.Context, userID string, req model.CheckoutRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.addresses.GetByID(ctx, userID, req.AddressID); err != nil {
		return nil, fmt.Errorf("resolve shipping address: %w", err)
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.Validation("cart is empty")
	}

	return s.repo.CreateFromCart(ctx, data.CheckoutParams{
		UserID:    userID,
		AddressID: req.AddressID,
		Cart:      cart,
	})
}

// GetByID returns one of the user's orders. An empty userID skips the
// ownership scope and is reserved for admin reads.
func (s *OrderService) GetByID(ctx context.Context, userID, id string) (*model.Order, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List returns a page of the user's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID string, limit, offset int) ([]model.Order, error) {
	orders, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new lifecycle status. Admin only.
// The move must be a legal transition from the order's current status;
// delivered and cancelled orders cannot move again.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, req model.UpdateOrderStatusRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, "", id)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if !current.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.Validationf("order cannot move from %q to %q", current.Status, req.Status)
	}

	return s.repo.UpdateStatus(ctx, id, req.Status)
}
