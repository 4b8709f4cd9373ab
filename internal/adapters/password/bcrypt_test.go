package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashCompare_RoundTrip(t *testing.T) {
	h := Hasher{Cost: bcrypt.MinCost} // MinCost keeps the test fast

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	assert.NoError(t, h.Compare(hash, "correct horse"))
}

func TestCompare_WrongPassword(t *testing.T) {
	h := Hasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.ErrorIs(t, h.Compare(hash, "battery staple"), ErrMismatch)
}

func TestCompare_MalformedHash(t *testing.T) {
	h := Hasher{}

	// A corrupt stored hash is indistinguishable from a wrong password.
	assert.ErrorIs(t, h.Compare("not-a-bcrypt-hash", "anything"), ErrMismatch)
}

func TestHash_SaltsDiffer(t *testing.T) {
	h := Hasher{Cost: bcrypt.MinCost}

	first, err := h.Hash("correct horse")
	require.NoError(t, err)
	second, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, h.Compare(first, "correct horse"))
	assert.NoError(t, h.Compare(second, "correct horse"))
}
