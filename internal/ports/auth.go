// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters and internal/data; orchestration
// in internal/service.
package ports

import (
	"context"
	"time"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

// TokenCodec mints and decodes signed bearer tokens. Implementations
// hold the signing secret and must be safe for concurrent use.
//
// Decode verifies the signature and rejects tampered or malformed
// input, but it does NOT reject a token whose embedded expiry has
// passed: expiry is returned as a claim for the caller to evaluate,
// because the guard layers an independent server-side expiry check on
// top and both must run.
type TokenCodec interface {
	Mint(subject string) (string, error)
	Decode(token string) (domainauth.TokenClaims, error)
}

// PasswordHasher hashes secrets for storage and compares candidates
// against stored hashes. Compare must not leak which half of the
// (identity, secret) pair was wrong.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// SessionWrite carries the two session record fields written at login.
// They are persisted in a single atomic update so no reader can
// observe a token paired with another login's expiry.
type SessionWrite struct {
	Token     string
	ExpiresAt time.Time
}

// UserStore is the user-record collaborator the auth core depends on.
// FindByEmail is keyed by the token subject identity.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	SaveSession(ctx context.Context, userID string, sess SessionWrite) error
}

// RoleCatalog resolves role names. Registration resolves the default
// role through it before assigning. A user's role list may still
// reference a name the catalog has since dropped; such names simply
// never satisfy a route requirement, no catalog lookup happens at
// request time.
type RoleCatalog interface {
	FindByName(ctx context.Context, name string) (string, error)
}
