// Package token implements the bearer token codec on HS256-signed JWTs.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
)

// ErrMalformed is returned for any token that fails cryptographic
// verification or cannot be parsed. Callers must not distinguish
// between the two cases.
var ErrMalformed = errors.New("malformed or tampered token")

// Codec mints and decodes HS256-signed JWTs. It holds no mutable state
// and is safe for concurrent use.
type Codec struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// CodecOptions groups construction parameters for Codec.
type CodecOptions struct {
	Secret   []byte
	Lifetime time.Duration
	Now      func() time.Time // optional, defaults to time.Now
}

// NewCodec constructs a Codec. Secret must be non-empty and lifetime positive.
func NewCodec(opts CodecOptions) (*Codec, error) {
	if len(opts.Secret) == 0 {
		return nil, errors.New("token secret is required")
	}
	if opts.Lifetime <= 0 {
		return nil, errors.New("token lifetime must be positive")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: opts.Secret, lifetime: opts.Lifetime, now: now}, nil
}

// Mint creates a signed token for the subject with issue time now and
// expiry now + lifetime. Each token carries a fresh jti, so two mints
// for the same subject in the same second still produce distinct
// strings; revocation by overwriting the stored token depends on that.
func (c *Codec) Mint(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject is required")
	}

	issued := c.now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(c.lifetime)),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(c.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Decode verifies the signature and returns the embedded claims.
// A bad signature or unparseable token yields ErrMalformed before any
// claim is inspected. Expiry is deliberately NOT enforced here: the
// request guard evaluates the claim expiry and the server-side record
// expiry as two independent checks.
func (c *Codec) Decode(tokenString string) (domainauth.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	tok, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !tok.Valid {
		return domainauth.TokenClaims{}, ErrMalformed
	}

	out := domainauth.TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
