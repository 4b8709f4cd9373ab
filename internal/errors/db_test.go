package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapDBError(t *testing.T) {
	tests := []struct {
		name  string
		in    error
		check func(t *testing.T, err error)
	}{
		{
			name: "nil passes through",
			in:   nil,
			check: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "no rows becomes not found",
			in:   fmt.Errorf("find user: %w", pgx.ErrNoRows),
			check: func(t *testing.T, err error) {
				assert.True(t, IsNotFound(err))
			},
		},
		{
			name: "unique violation becomes conflict with field",
			in: &pgconn.PgError{
				Code:   pgerrcode.UniqueViolation,
				Detail: "Key (email)=(alice@example.com) already exists.",
			},
			check: func(t *testing.T, err error) {
				require.True(t, IsConflict(err))
				var appErr *AppError
				require.True(t, stderrors.As(err, &appErr))
				assert.Equal(t, "email", appErr.Field)
			},
		},
		{
			name: "foreign key violation",
			in:   &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			check: func(t *testing.T, err error) {
				assert.True(t, IsForeignKey(err))
			},
		},
		{
			name: "check violation becomes validation",
			in:   &pgconn.PgError{Code: pgerrcode.CheckViolation},
			check: func(t *testing.T, err error) {
				assert.True(t, IsValidation(err))
			},
		},
		{
			name: "context cancellation becomes internal",
			in:   context.Canceled,
			check: func(t *testing.T, err error) {
				assert.True(t, IsInternal(err))
			},
		},
		{
			name: "unrecognized error passes through unchanged",
			in:   stderrors.New("boom"),
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "boom")
				var appErr *AppError
				assert.False(t, stderrors.As(err, &appErr))
			},
		},
		{
			name: "unrecognized pg code passes through",
			in:   &pgconn.PgError{Code: pgerrcode.SerializationFailure},
			check: func(t *testing.T, err error) {
				var appErr *AppError
				assert.False(t, stderrors.As(err, &appErr))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, MapDBError(tt.in))
		})
	}
}
