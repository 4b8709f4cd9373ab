package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// fakeCartRepo is an in-memory CartRepository holding one cart per user.
type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*model.Cart // keyed by userID
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*model.Cart)}
}

func (r *fakeCartRepo) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		cart = &model.Cart{ID: "cart-" + userID, UserID: userID}
		r.carts[userID] = cart
	}
	out := *cart
	out.Items = append([]model.CartItem(nil), cart.Items...)
	return &out, nil
}

func (r *fakeCartRepo) UpsertItem(ctx context.Context, cartID string, product *model.Product, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cart := range r.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].ProductID == product.ID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
		cart.Items = append(cart.Items, model.CartItem{
			ID:         "item-" + product.ID,
			CartID:     cartID,
			ProductID:  product.ID,
			Name:       product.Name,
			PriceCents: product.PriceCents,
			Quantity:   quantity,
		})
		return nil
	}
	return data.ErrCartItemNotFound
}

func (r *fakeCartRepo) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cart := range r.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items[i].Quantity = quantity
				return nil
			}
		}
	}
	return data.ErrCartItemNotFound
}

func (r *fakeCartRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cart := range r.carts {
		if cart.ID != cartID {
			continue
		}
		for i := range cart.Items {
			if cart.Items[i].ProductID == productID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				return nil
			}
		}
	}
	return data.ErrCartItemNotFound
}

func (r *fakeCartRepo) Clear(ctx context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cart := range r.carts {
		if cart.ID == cartID {
			cart.Items = nil
			return nil
		}
	}
	return nil
}

func newCartServiceFixture() (*CartService, *fakeCartRepo) {
	repo := newFakeCartRepo()
	products := newFakeProductRepo(
		model.Product{ID: "p-1", Name: "Widget", PriceCents: 1500, Stock: 10},
		model.Product{ID: "p-2", Name: "Gadget", PriceCents: 300, Stock: 5},
	)
	svc := NewCartService(CartServiceOptions{Repo: repo, Products: products})
	return svc, repo
}

func TestCartGet_CreatesEmptyCartOnFirstAccess(t *testing.T) {
	svc, _ := newCartServiceFixture()

	cart, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalCents())
}

func TestCartAddItem_SnapshotsPriceAndName(t *testing.T) {
	svc, _ := newCartServiceFixture()

	cart, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Widget", cart.Items[0].Name)
	assert.Equal(t, int64(1500), cart.Items[0].PriceCents)
	assert.Equal(t, int64(3000), cart.TotalCents())
}

func TestCartAddItem_ReplacesQuantityForExistingProduct(t *testing.T) {
	svc, _ := newCartServiceFixture()

	_, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1", Quantity: 2})
	require.NoError(t, err)
	cart, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1", Quantity: 5})
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddItem_UnknownProduct(t *testing.T) {
	svc, _ := newCartServiceFixture()

	_, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, data.ErrProductNotFound)
}

func TestCartAddItem_RejectsZeroQuantity(t *testing.T) {
	svc, _ := newCartServiceFixture()

	_, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCartUpdateItem_ChangesQuantity(t *testing.T) {
	svc, _ := newCartServiceFixture()

	_, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)

	cart, err := svc.UpdateItem(context.Background(), "user-1", "p-1", model.UpdateCartItemRequest{Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Items[0].Quantity)
}

func TestCartRemoveItemAndClear(t *testing.T) {
	svc, _ := newCartServiceFixture()

	_, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-2", Quantity: 3})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(context.Background(), "user-1", "p-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p-2", cart.Items[0].ProductID)

	require.NoError(t, svc.Clear(context.Background(), "user-1"))
	cart, err = svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCarts_AreIsolatedPerUser(t *testing.T) {
	svc, _ := newCartServiceFixture()

	_, err := svc.AddItem(context.Background(), "user-1", model.AddCartItemRequest{ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)

	other, err := svc.Get(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)
}
