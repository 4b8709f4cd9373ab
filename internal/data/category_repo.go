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

// CategoryRepo provides database operations for product categories.
type CategoryRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewCategoryRepo creates a new CategoryRepo with real time provider.
func NewCategoryRepo(db *sql.DB) *CategoryRepo {
	return &CategoryRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const categoryColumns = `id, name, created_at, updated_at`

func (r *CategoryRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrCategoryNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == "categories_name_key" {
		return ErrCategoryNameExists
	}
	return apperrors.MapDBError(err)
}

// Create inserts a new category.
func (r *CategoryRepo) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	if req == nil {
		return nil, errors.New("create category request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Category
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO categories (id, name, created_at)
			VALUES ($1, $2, $3)
			RETURNING `+categoryColumns,
			uuid.NewString(), strings.TrimSpace(req.Name), r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// GetByID returns the category with the given id.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var out model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &out, nil
}

// List returns all categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Category])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// Update renames the category.
func (r *CategoryRepo) Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error) {
	if req == nil {
		return nil, errors.New("update category request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Category
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE categories SET name = $2, updated_at = $3
			WHERE id = $1
			RETURNING `+categoryColumns,
			id, strings.TrimSpace(req.Name), r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Category])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// Delete removes the category. Products referencing it block deletion
// via the FK constraint; callers surface that as a conflict.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}
