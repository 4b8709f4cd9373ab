package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	mockauth "github.com/bintangginanjar/ez-commerce-api/internal/mocks/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/ports"
)

type authFixture struct {
	svc   *AuthService
	store *mockauth.MemoryUserStore
	codec *mockauth.StaticTokenCodec
	clock *fakeClock
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	codec := mockauth.NewStaticTokenCodec()
	codec.Now = clock.Now
	store := mockauth.NewMemoryUserStore()

	hasher := &mockauth.PlainHasher{}
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	store.Seed(&model.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: hash,
		Roles:        []string{"ROLE_USER"},
	})

	svc := NewAuthService(AuthServiceOptions{
		Users:    store,
		Codec:    codec,
		Hasher:   hasher,
		Lifetime: time.Hour,
		Now:      clock.Now,
	})

	return &authFixture{svc: svc, store: store, codec: codec, clock: clock}
}

func (f *authFixture) login(t *testing.T) *LoginResult {
	t.Helper()
	result, err := f.svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	return result
}

func TestLogin_Success(t *testing.T) {
	f := newAuthFixture(t)

	result := f.login(t)

	assert.Equal(t, "user-1", result.User.UserID)
	assert.Equal(t, "alice@example.com", result.User.Email)
	assert.Equal(t, f.clock.now.Add(time.Hour), result.ExpiresAt)
	assert.Equal(t, 1, f.store.SaveSessionCalls)

	// The session record holds exactly the issued token.
	user, err := f.store.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, user.CurrentToken)
	assert.Equal(t, result.Token, *user.CurrentToken)
	require.NotNil(t, user.TokenExpiresAt)
	assert.Equal(t, result.ExpiresAt, *user.TokenExpiresAt)
}

func TestLogin_UnknownEmailAndWrongPasswordLookIdentical(t *testing.T) {
	f := newAuthFixture(t)

	_, unknownErr := f.svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongErr := f.svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestLogin_EmptyCredentials(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), LoginInput{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, f.store.SaveSessionCalls)
}

func TestLogin_SessionWriteFailureAbortsLogin(t *testing.T) {
	f := newAuthFixture(t)
	f.store.SaveSessionFunc = func(ctx context.Context, userID string, sess ports.SessionWrite) error {
		return errors.New("connection reset")
	}

	result, err := f.svc.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct horse",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_Success(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	principal, err := f.svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
	assert.Equal(t, "alice@example.com", principal.Email)
}

func TestAuthenticate_IsRepeatable(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	for range 3 {
		principal, err := f.svc.Authenticate(context.Background(), result.Token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", principal.UserID)
	}
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_UndecodableToken(t *testing.T) {
	f := newAuthFixture(t)
	f.login(t)

	_, err := f.svc.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_SecondLoginSupersedesFirstToken(t *testing.T) {
	f := newAuthFixture(t)

	first := f.login(t)
	second := f.login(t)
	require.NotEqual(t, first.Token, second.Token)

	_, err := f.svc.Authenticate(context.Background(), first.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	principal, err := f.svc.Authenticate(context.Background(), second.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)
}

func TestAuthenticate_ValidAtExactExpiryInstant(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	// Advance the clock to exactly the expiry instant; the token is
	// still accepted there and rejected only strictly after.
	f.clock.Advance(time.Hour)

	principal, err := f.svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.UserID)

	f.clock.Advance(time.Nanosecond)
	_, err = f.svc.Authenticate(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_StaleRecordExpiryRejected(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	// Age only the server-side record; the token claim itself stays
	// in the future. The record check must still reject.
	user, err := f.store.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	stale := f.clock.now.Add(-time.Minute)
	user.TokenExpiresAt = &stale
	f.store.Seed(user)

	_, err = f.svc.Authenticate(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_MissingSessionRecordRejected(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	user, err := f.store.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	user.CurrentToken = nil
	user.TokenExpiresAt = nil
	f.store.Seed(user)

	_, err = f.svc.Authenticate(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_DeletedUserRejected(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	f.store.FindByEmailFunc = func(ctx context.Context, email string) (*model.User, error) {
		return nil, errors.New("user not found")
	}

	_, err := f.svc.Authenticate(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthenticate_StorageFailureCollapsesToUnauthorized(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	f.store.FindByEmailFunc = func(ctx context.Context, email string) (*model.User, error) {
		return nil, errors.New("connection refused")
	}

	_, err := f.svc.Authenticate(context.Background(), result.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_LeavesSessionRecordIntact(t *testing.T) {
	f := newAuthFixture(t)
	result := f.login(t)

	principal, err := f.svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(context.Background(), principal))

	// The token is still verifiable after logout; only the next login
	// or expiry retires it.
	again, err := f.svc.Authenticate(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, again.UserID)
}

func TestLogout_NilPrincipal(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.Logout(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
