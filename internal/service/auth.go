package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/ports"
)

// Auth failure sentinels. Login failures are merged into one value so
// callers cannot distinguish an unknown email from a wrong password,
// and every token verification failure is the same ErrUnauthorized.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  ports.UserStore
	Codec  ports.TokenCodec
	Hasher ports.PasswordHasher
	// Lifetime is the server-side session validity window written to
	// the user record at login. It matches the codec's embedded expiry
	// but the two are stored and checked independently.
	Lifetime time.Duration
	// Now overrides the clock for tests. Defaults to time.Now.
	Now func() time.Time
}

// AuthService orchestrates login, per-request token verification, and
// logout. Tokens are self-verifying JWTs cross-checked against the
// session record on the user row, which is what makes revocation by
// re-login possible.
type AuthService struct {
	users    ports.UserStore
	codec    ports.TokenCodec
	hasher   ports.PasswordHasher
	lifetime time.Duration
	now      func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		users:    opts.Users,
		codec:    opts.Codec,
		hasher:   opts.Hasher,
		lifetime: opts.Lifetime,
		now:      now,
	}
}

// LoginInput groups login parameters.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the minted token and the authenticated user's summary.
type LoginResult struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	User      domainauth.Principal `json:"user"`
}

// Login verifies credentials, mints a token, and records it as the
// user's single live session. The session write and the mint happen in
// the same call: if persisting the session record fails the login
// fails and no token reaches the caller, so a verifiable token always
// has a matching record.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		// Unknown email and storage failure look identical to the caller.
		return nil, ErrInvalidCredentials
	}

	if compareErr := s.hasher.Compare(user.PasswordHash, input.Password); compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.codec.Mint(user.Email)
	if err != nil {
		return nil, fmt.Errorf("mint token: %w", err)
	}

	expiresAt := s.now().Add(s.lifetime)
	if saveErr := s.users.SaveSession(ctx, user.ID, ports.SessionWrite{
		Token:     token,
		ExpiresAt: expiresAt,
	}); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      principalFor(user.ID, user.Email, user.Name, user.Roles),
	}, nil
}

// Authenticate runs the full per-request token verification chain and
// returns the principal on success. Every failure, including internal
// storage errors, collapses to ErrUnauthorized: an auth-path failure
// must never be distinguishable from "just not authorized".
//
// The chain is: decode (signature), claim expiry, user lookup, token
// match against the session record, record expiry. The claim expiry
// and the record expiry are independent checks and both must pass.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*domainauth.Principal, error) {
	if tokenString == "" {
		return nil, ErrUnauthorized
	}

	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}

	now := s.now()
	// A token presented at exactly its expiry instant is still valid;
	// strictly after is expired. The same comparison applies to the
	// record expiry below.
	if now.After(claims.ExpiresAt) {
		return nil, ErrUnauthorized
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		// A deleted or renamed user is an invalid token.
		return nil, ErrUnauthorized
	}

	if user.CurrentToken == nil || *user.CurrentToken != tokenString {
		// A newer login has superseded this token.
		return nil, ErrUnauthorized
	}

	if user.TokenExpiresAt == nil || now.After(*user.TokenExpiresAt) {
		return nil, ErrUnauthorized
	}

	p := principalFor(user.ID, user.Email, user.Name, user.Roles)
	return &p, nil
}

// Logout confirms the caller is authenticated and otherwise does
// nothing. The session record is left untouched, so the presented
// token stays verifiable until its recorded expiry or the next login
// overwrites it.
func (s *AuthService) Logout(ctx context.Context, principal *domainauth.Principal) error {
	if principal == nil {
		return ErrNotAuthenticated
	}
	return nil
}

func principalFor(id, email, name string, roles []string) domainauth.Principal {
	rs := make([]domainauth.Role, 0, len(roles))
	for _, r := range roles {
		rs = append(rs, domainauth.Role(r))
	}
	return domainauth.Principal{UserID: id, Email: email, Name: name, Roles: rs}
}
