package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bintangginanjar/ez-commerce-api/internal/data/pgxutil"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
)

// ProductRepo provides database operations for the product catalog.
type ProductRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewProductRepo creates a new ProductRepo with real time provider.
func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const productColumns = `id, category_id, name, description, price_cents, stock, created_at, updated_at`

func (r *ProductRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrProductNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrCategoryNotFound
	}
	return apperrors.MapDBError(err)
}

// Create inserts a new product.
func (r *ProductRepo) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, errors.New("create product request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO products (id, category_id, name, description, price_cents, stock, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+productColumns,
			uuid.NewString(),
			req.CategoryID,
			strings.TrimSpace(req.Name),
			req.Description,
			req.PriceCents,
			req.Stock,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID returns the product with the given id.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var out model.Product
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &out, nil
}

// List returns products matching the query with limit/offset pagination.
func (r *ProductRepo) List(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if q.CategoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, q.CategoryID)
	}
	query += fmt.Sprintf(` ORDER BY created_at, id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, q.Limit, q.Offset)

	var out []model.Product
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// Update applies non-nil fields to the product.
func (r *ProductRepo) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, errors.New("update product request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Product
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE products
			SET category_id = COALESCE($2, category_id),
			    name        = COALESCE($3, name),
			    description = COALESCE($4, description),
			    price_cents = COALESCE($5, price_cents),
			    stock       = COALESCE($6, stock),
			    updated_at  = $7
			WHERE id = $1
			RETURNING `+productColumns,
			id, req.CategoryID, req.Name, req.Description, req.PriceCents, req.Stock,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Delete removes the product.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrProductNotFound
		}
		return nil
	})
}

// DecrementStock reduces stock for the product, failing when the
// remaining stock is insufficient. Used inside the checkout transaction.
func DecrementStock(ctx context.Context, tx pgx.Tx, productID string, qty int) error {
	tag, err := tx.Exec(ctx, `
		UPDATE products SET stock = stock - $2
		WHERE id = $1 AND stock >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %s: %w", productID, ErrInsufficientStock)
	}
	return nil
}
