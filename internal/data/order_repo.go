package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bintangginanjar/ez-commerce-api/internal/data/pgxutil"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

// OrderRepo provides database operations for orders.
type OrderRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewOrderRepo creates a new OrderRepo with real time provider.
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const orderColumns = `id, user_id, address_id, status, total_cents, created_at, updated_at`
const orderItemColumns = `id, order_id, product_id, name, price_cents, quantity`

// CheckoutParams carries everything the checkout transaction needs.
type CheckoutParams struct {
	UserID    string
	AddressID string
	Cart      *model.Cart
}

// CreateFromCart converts the cart into an order inside one
// transaction: insert the order, copy the cart lines into order items,
// decrement product stock, and clear the cart. Any failure rolls the
// whole checkout back.
func (r *OrderRepo) CreateFromCart(ctx context.Context, p CheckoutParams) (*model.Order, error) {
	if p.Cart == nil || len(p.Cart.Items) == 0 {
		return nil, errors.New("cart is empty")
	}

	now := r.timeProvider.Now().UTC()
	var out model.Order
	err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO orders (id, user_id, address_id, status, total_cents, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+orderColumns,
			uuid.NewString(), p.UserID, p.AddressID, model.OrderStatusPending, p.Cart.TotalCents(), now,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		if err != nil {
			return err
		}

		for _, item := range p.Cart.Items {
			if decErr := DecrementStock(ctx, tx, item.ProductID, item.Quantity); decErr != nil {
				return decErr
			}
			if _, insErr := tx.Exec(ctx, `
				INSERT INTO order_items (id, order_id, product_id, name, price_cents, quantity)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.NewString(), out.ID, item.ProductID, item.Name, item.PriceCents, item.Quantity,
			); insErr != nil {
				return insErr
			}
			out.Items = append(out.Items, model.OrderItem{
				OrderID:    out.ID,
				ProductID:  item.ProductID,
				Name:       item.Name,
				PriceCents: item.PriceCents,
				Quantity:   item.Quantity,
			})
		}

		if _, clearErr := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, p.Cart.ID); clearErr != nil {
			return clearErr
		}
		return nil
	}})
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	return &out, nil
}

// GetByID returns the order with its items. When userID is non-empty
// the lookup is scoped to that owner.
func (r *OrderRepo) GetByID(ctx context.Context, userID, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	args := []any{id}
	if userID != "" {
		query += ` AND user_id = $2`
		args = append(args, userID)
	}

	var out model.Order
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		if err != nil {
			return err
		}

		itemRows, err := conn.Query(ctx,
			`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY id`, out.ID)
		if err != nil {
			return err
		}
		defer itemRows.Close()
		out.Items, err = pgx.CollectRows(itemRows, pgx.RowToStructByName[model.OrderItem])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if out.Items == nil {
		out.Items = []model.OrderItem{}
	}
	return &out, nil
}

// ListByUser returns the user's orders newest first, without items.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Order, error) {
	var out []model.Order
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+orderColumns+` FROM orders
			WHERE user_id = $1
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3`,
			userID, limit, offset,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Order])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}

// UpdateStatus transitions the order to the given status.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	var out model.Order
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE orders SET status = $2, updated_at = $3
			WHERE id = $1
			RETURNING `+orderColumns,
			id, status, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Order])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return &out, nil
}
