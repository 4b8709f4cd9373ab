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
	"github.com/bintangginanjar/ez-commerce-api/internal/ports"
)

// UserRepo provides database operations for user accounts, including
// the session record fields the auth core owns.
type UserRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewUserRepo creates a new UserRepo with real time provider.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewUserRepoWithTimeProvider creates a new UserRepo with a custom time provider (useful for tests).
func NewUserRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *UserRepo {
	return &UserRepo{DB: db, timeProvider: tp}
}

const userColumns = `id, email, name, password_hash, roles, current_token, token_expires_at, created_at, updated_at`

func (r *UserRepo) mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrUserNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == "users_email_key" {
		return ErrUserEmailExists
	}
	return apperrors.MapDBError(err)
}

// Create inserts a new user with the given password hash and role set.
func (r *UserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, errors.New("user is required")
	}

	now := r.timeProvider.Now().UTC()
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO users (id, email, name, password_hash, roles, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+userColumns,
			uuid.NewString(),
			strings.TrimSpace(user.Email),
			strings.TrimSpace(user.Name),
			user.PasswordHash,
			user.Roles,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// FindByEmail returns the user keyed by email, the token subject identity.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByID returns the user with the given id.
func (r *UserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var out model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &out, nil
}

// SaveSession overwrites the session record fields for the user.
// Both columns are written by one UPDATE so no concurrent reader can
// observe a token from one login paired with another login's expiry.
func (r *UserRepo) SaveSession(ctx context.Context, userID string, sess ports.SessionWrite) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `
			UPDATE users
			SET current_token = $2, token_expires_at = $3, updated_at = $4
			WHERE id = $1`,
			userID, sess.Token, sess.ExpiresAt.UTC(), r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

// UpdateProfile applies non-nil profile fields to the user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, name, passwordHash *string) (*model.User, error) {
	var out model.User
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE users
			SET name          = COALESCE($2, name),
			    password_hash = COALESCE($3, password_hash),
			    updated_at    = $4
			WHERE id = $1
			RETURNING `+userColumns,
			id, name, passwordHash, r.timeProvider.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.User])
		return err
	}); err != nil {
		return nil, r.mapWriteErr(err)
	}
	return &out, nil
}

// List returns users ordered by creation time with limit/offset pagination.
func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	var out []model.User
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+userColumns+`
			FROM users
			ORDER BY created_at, id
			LIMIT $1 OFFSET $2`,
			limit, offset,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.User])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}
