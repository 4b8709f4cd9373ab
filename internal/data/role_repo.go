package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/bintangginanjar/ez-commerce-api/internal/data/pgxutil"
)

// RoleRepo is the role catalog. Users carry role names as plain
// strings; a name may outlive its catalog entry, so lookups treat a
// missing row as a normal answer, not a failure.
type RoleRepo struct {
	DB *sql.DB
}

// NewRoleRepo creates a new RoleRepo.
func NewRoleRepo(db *sql.DB) *RoleRepo {
	return &RoleRepo{DB: db}
}

// FindByName returns the named role's description.
func (r *RoleRepo) FindByName(ctx context.Context, name string) (string, error) {
	var description string
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `SELECT description FROM roles WHERE name = $1`, name).Scan(&description)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrRoleNotFound
	}
	if err != nil {
		return "", fmt.Errorf("find role: %w", err)
	}
	return description, nil
}
