// Package password implements the secret-hash comparator on bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch is returned when a candidate secret does not match the
// stored hash. Internal bcrypt failures are folded into the same error
// so callers cannot tell a corrupt hash from a wrong password.
var ErrMismatch = errors.New("password mismatch")

// Hasher hashes and verifies passwords with bcrypt. The zero value
// uses bcrypt.DefaultCost.
type Hasher struct {
	Cost int
}

// Hash returns the bcrypt hash of the plaintext.
func (h Hasher) Hash(plaintext string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare checks plaintext against the stored hash. bcrypt's own
// comparison is constant-time over the derived key; any failure,
// including a malformed stored hash, comes back as ErrMismatch.
func (h Hasher) Compare(hash, plaintext string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)); err != nil {
		return ErrMismatch
	}
	return nil
}
