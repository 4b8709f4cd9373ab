package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bintangginanjar/ez-commerce-api/internal/data/pgxutil"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

// AddressRepo provides database operations for user addresses. Every
// query is scoped by user id so one user can never read or write
// another user's addresses.
type AddressRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAddressRepo creates a new AddressRepo with real time provider.
func NewAddressRepo(db *sql.DB) *AddressRepo {
	return &AddressRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

const addressColumns = `id, user_id, street, city, province, postal_code, country, created_at, updated_at`

// Create inserts a new address for the user.
func (r *AddressRepo) Create(ctx context.Context, userID string, req *model.CreateAddressRequest) (*model.Address, error) {
	if req == nil {
		return nil, errors.New("create address request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Address
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO addresses (id, user_id, street, city, province, postal_code, country, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+addressColumns,
			uuid.NewString(),
			userID,
			strings.TrimSpace(req.Street),
			strings.TrimSpace(req.City),
			strings.TrimSpace(req.Province),
			strings.TrimSpace(req.PostalCode),
			strings.TrimSpace(req.Country),
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Address])
		return err
	}); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return &out, nil
}

// GetByID returns the user's address with the given id.
func (r *AddressRepo) GetByID(ctx context.Context, userID, id string) (*model.Address, error) {
	var out model.Address
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+addressColumns+` FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Address])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &out, nil
}

// ListByUser returns all addresses owned by the user.
func (r *AddressRepo) ListByUser(ctx context.Context, userID string) ([]model.Address, error) {
	var out []model.Address
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+addressColumns+` FROM addresses WHERE user_id = $1 ORDER BY created_at, id`, userID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Address])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return out, nil
}

// Update applies non-nil fields to the user's address.
func (r *AddressRepo) Update(ctx context.Context, userID, id string, req *model.UpdateAddressRequest) (*model.Address, error) {
	if req == nil {
		return nil, errors.New("update address request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out model.Address
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE addresses
			SET street      = COALESCE($3, street),
			    city        = COALESCE($4, city),
			    province    = COALESCE($5, province),
			    postal_code = COALESCE($6, postal_code),
			    country     = COALESCE($7, country),
			    updated_at  = $8
			WHERE id = $1 AND user_id = $2
			RETURNING `+addressColumns,
			id, userID,
			req.Street, req.City, req.Province, req.PostalCode, req.Country,
			r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Address])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrAddressNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}
	return &out, nil
}

// Delete removes the user's address.
func (r *AddressRepo) Delete(ctx context.Context, userID, id string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
		if err != nil {
			return fmt.Errorf("delete address: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}
