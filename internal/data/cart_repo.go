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

// CartRepo provides database operations for carts. Each user has at
// most one cart row, created lazily on first use.
type CartRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCartRepo creates a new CartRepo with real time provider.
func NewCartRepo(db *sql.DB) *CartRepo {
	return &CartRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const cartItemColumns = `id, cart_id, product_id, name, price_cents, quantity, created_at`

// GetOrCreate returns the user's cart with items, creating the cart
// row if it does not exist yet.
func (r *CartRepo) GetOrCreate(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO carts (id, user_id, created_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
			RETURNING id, user_id, created_at, updated_at`,
			uuid.NewString(), userID, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		cart, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Cart])
		if err != nil {
			return err
		}

		itemRows, err := conn.Query(ctx,
			`SELECT `+cartItemColumns+` FROM cart_items WHERE cart_id = $1 ORDER BY created_at, id`, cart.ID)
		if err != nil {
			return err
		}
		defer itemRows.Close()
		cart.Items, err = pgx.CollectRows(itemRows, pgx.RowToStructByName[model.CartItem])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	return &cart, nil
}

// UpsertItem adds a product line to the cart or replaces the quantity
// of an existing line. Name and price are snapshotted from the product.
func (r *CartRepo) UpsertItem(ctx context.Context, cartID string, product *model.Product, quantity int) error {
	if product == nil {
		return errors.New("product is required")
	}
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO cart_items (id, cart_id, product_id, name, price_cents, quantity, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (cart_id, product_id)
			DO UPDATE SET quantity = EXCLUDED.quantity, name = EXCLUDED.name, price_cents = EXCLUDED.price_cents`,
			uuid.NewString(), cartID, product.ID, product.Name, product.PriceCents, quantity,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("upsert cart item: %w", err)
		}
		return nil
	})
}

// UpdateItemQuantity sets the quantity of an existing line.
func (r *CartRepo) UpdateItemQuantity(ctx context.Context, cartID, productID string, quantity int) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx,
			`UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND product_id = $2`,
			cartID, productID, quantity,
		)
		if err != nil {
			return fmt.Errorf("update cart item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

// RemoveItem deletes one product line from the cart.
func (r *CartRepo) RemoveItem(ctx context.Context, cartID, productID string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`, cartID, productID)
		if err != nil {
			return fmt.Errorf("remove cart item: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

// Clear removes every line from the cart.
func (r *CartRepo) Clear(ctx context.Context, cartID string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cartID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		return nil
	})
}
