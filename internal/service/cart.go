package service

import (
	"context"

	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

// CartRepository is the persistence port for carts.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID string) (*model.Cart, error)
	UpsertItem(ctx context.Context, cartID string, product *model.Product, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error
	RemoveItem(ctx context.Context, cartID, productID string) error
	Clear(ctx context.Context, cartID string) error
}

// CartProductReader resolves products when adding cart lines. The cart
// snapshots name and price at add time, so it needs the full product.
type CartProductReader interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
}

// CartServiceOptions groups dependencies for CartService.
type CartServiceOptions struct {
	Repo     CartRepository
	Products CartProductReader
}

// CartService manages the single open cart per user.
type CartService struct {
	repo     CartRepository
	products CartProductReader
}

// NewCartService constructs a new CartService.
func NewCartService(opts CartServiceOptions) *CartService {
	return &CartService{
		repo:     opts.Repo,
		products: opts.Products,
	}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(ctx context.Context, userID string) (*model.Cart, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// AddItem puts a product into the cart. Adding a product that is
// already present replaces its quantity.
func (s *CartService) AddItem(ctx context.Context, userID string, req model.AddCartItemRequest) (*model.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpsertItem(ctx, cart.ID, product, req.Quantity); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, userID)
}

// UpdateItem changes the quantity of a cart line.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, req model.UpdateCartItemRequest) (*model.Cart, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateItemQuantity(ctx, cart.ID, productID, req.Quantity); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, userID)
}

// RemoveItem drops a product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*model.Cart, error) {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetOrCreate(ctx, userID)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, cart.ID)
}
