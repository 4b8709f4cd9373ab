package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// fakeOrderRepo records checkout parameters and serves canned orders.
type fakeOrderRepo struct {
	lastCheckout *data.CheckoutParams
	orders       map[string]*model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*model.Order)}
}

func (r *fakeOrderRepo) CreateFromCart(ctx context.Context, p data.CheckoutParams) (*model.Order, error) {
	r.lastCheckout = &p
	order := &model.Order{
		ID:         "order-1",
		UserID:     p.UserID,
		AddressID:  p.AddressID,
		Status:     model.OrderStatusPending,
		TotalCents: p.Cart.TotalCents(),
	}
	for _, item := range p.Cart.Items {
		order.Items = append(order.Items, model.OrderItem{
			OrderID:    order.ID,
			ProductID:  item.ProductID,
			Name:       item.Name,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
		})
	}
	r.orders[order.ID] = order
	return order, nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, userID, id string) (*model.Order, error) {
	order, ok := r.orders[id]
	if !ok || (userID != "" && order.UserID != userID) {
		return nil, data.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error) {
	var out []model.Order
	for _, order := range r.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, data.ErrOrderNotFound
	}
	order.Status = status
	return order, nil
}

// fakeAddressReader approves one known (userID, addressID) pair.
type fakeAddressReader struct {
	userID    string
	addressID string
}

func (r *fakeAddressReader) GetByID(ctx context.Context, userID, id string) (*model.Address, error) {
	if userID != r.userID || id != r.addressID {
		return nil, data.ErrAddressNotFound
	}
	return &model.Address{ID: id, UserID: userID}, nil
}

func newOrderServiceFixture(t *testing.T) (*OrderService, *fakeOrderRepo, *fakeCartRepo) {
	t.Helper()
	orders := newFakeOrderRepo()
	carts := newFakeCartRepo()
	svc := NewOrderService(OrderServiceOptions{
		Repo:      orders,
		Addresses: &fakeAddressReader{userID: "user-1", addressID: "addr-1"},
		Carts:     carts,
	})
	return svc, orders, carts
}

func seedCart(t *testing.T, carts *fakeCartRepo, userID string) {
	t.Helper()
	cart, err := carts.GetOrCreate(context.Background(), userID)
	require.NoError(t, err)
	require.NoError(t, carts.UpsertItem(context.Background(), cart.ID,
		&model.Product{ID: "p-1", Name: "Widget", PriceCents: 1500}, 2))
}

func TestCheckout_Success(t *testing.T) {
	svc, orders, carts := newOrderServiceFixture(t)
	seedCart(t, carts, "user-1")

	order, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{AddressID: "addr-1"})
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, int64(3000), order.TotalCents)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "p-1", order.Items[0].ProductID)

	require.NotNil(t, orders.lastCheckout)
	assert.Equal(t, "user-1", orders.lastCheckout.UserID)
	assert.Equal(t, "addr-1", orders.lastCheckout.AddressID)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, orders, _ := newOrderServiceFixture(t)

	_, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{AddressID: "addr-1"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Nil(t, orders.lastCheckout)
}

func TestCheckout_ForeignAddressRejected(t *testing.T) {
	svc, _, carts := newOrderServiceFixture(t)
	seedCart(t, carts, "user-2")

	// addr-1 belongs to user-1; user-2 cannot ship to it.
	_, err := svc.Checkout(context.Background(), "user-2", model.CheckoutRequest{AddressID: "addr-1"})
	assert.ErrorIs(t, err, data.ErrAddressNotFound)
}

func TestCheckout_MissingAddressID(t *testing.T) {
	svc, _, _ := newOrderServiceFixture(t)

	_, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestOrderGetByID_ScopedToOwner(t *testing.T) {
	svc, _, carts := newOrderServiceFixture(t)
	seedCart(t, carts, "user-1")
	order, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{AddressID: "addr-1"})
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), "user-2", order.ID)
	assert.ErrorIs(t, err, data.ErrOrderNotFound)

	// An empty scope reads across owners (admin path).
	got, err := svc.GetByID(context.Background(), "", order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestOrderUpdateStatus(t *testing.T) {
	svc, _, carts := newOrderServiceFixture(t)
	seedCart(t, carts, "user-1")
	order, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{AddressID: "addr-1"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{
		Status: model.OrderStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{Status: "refunded"})
	assert.True(t, apperrors.IsValidation(err))
}

func TestOrderUpdateStatus_OnlyLegalTransitions(t *testing.T) {
	svc, orders, carts := newOrderServiceFixture(t)
	seedCart(t, carts, "user-1")
	order, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{AddressID: "addr-1"})
	require.NoError(t, err)

	// Skipping the paid step is rejected and leaves the order untouched.
	_, err = svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{
		Status: model.OrderStatusShipped,
	})
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, model.OrderStatusPending, orders.orders[order.ID].Status)

	// Walk the full lifecycle forward.
	for _, status := range []model.OrderStatus{
		model.OrderStatusPaid,
		model.OrderStatusShipped,
		model.OrderStatusDelivered,
	} {
		_, err = svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{Status: status})
		require.NoError(t, err)
	}

	// Delivered is terminal; it cannot move back to pending or be cancelled.
	for _, status := range []model.OrderStatus{model.OrderStatusPending, model.OrderStatusCancelled} {
		_, err = svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{Status: status})
		assert.True(t, apperrors.IsValidation(err), "delivered -> %s", status)
	}
}

func TestOrderUpdateStatus_CancelledIsTerminal(t *testing.T) {
	svc, _, carts := newOrderServiceFixture(t)
	seedCart(t, carts, "user-1")
	order, err := svc.Checkout(context.Background(), "user-1", model.CheckoutRequest{AddressID: "addr-1"})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{
		Status: model.OrderStatusCancelled,
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, model.UpdateOrderStatusRequest{
		Status: model.OrderStatusPaid,
	})
	assert.True(t, apperrors.IsValidation(err))
}
