// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	"github.com/bintangginanjar/ez-commerce-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.TokenCodec     = (*StaticTokenCodec)(nil)
	_ ports.PasswordHasher = (*PlainHasher)(nil)
	_ ports.UserStore      = (*MemoryUserStore)(nil)
	_ ports.RoleCatalog    = (*StaticRoleCatalog)(nil)
)

// StaticTokenCodec is a TokenCodec whose tokens are readable strings
// instead of signed JWTs, making test assertions deterministic. Tokens
// are recorded at mint time so Decode can return the matching claims.
type StaticTokenCodec struct {
	MintFunc   func(subject string) (string, error)
	DecodeFunc func(token string) (auth.TokenClaims, error)

	// Lifetime and Now control the claims recorded at mint time.
	Lifetime time.Duration
	Now      func() time.Time

	mu     sync.Mutex
	minted map[string]auth.TokenClaims
	count  int
}

// NewStaticTokenCodec creates a StaticTokenCodec with sensible defaults.
func NewStaticTokenCodec() *StaticTokenCodec {
	return &StaticTokenCodec{
		Lifetime: time.Hour,
		Now:      time.Now,
		minted:   make(map[string]auth.TokenClaims),
	}
}

func (c *StaticTokenCodec) Mint(subject string) (string, error) {
	if c.MintFunc != nil {
		return c.MintFunc(subject)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	issued := c.Now()
	token := fmt.Sprintf("token-%s-%d", subject, c.count)
	c.minted[token] = auth.TokenClaims{
		Subject:   subject,
		IssuedAt:  issued,
		ExpiresAt: issued.Add(c.Lifetime),
	}
	return token, nil
}

func (c *StaticTokenCodec) Decode(token string) (auth.TokenClaims, error) {
	if c.DecodeFunc != nil {
		return c.DecodeFunc(token)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	claims, ok := c.minted[token]
	if !ok {
		return auth.TokenClaims{}, fmt.Errorf("unknown token %q", token)
	}
	return claims, nil
}

// PlainHasher is a PasswordHasher that stores plaintext prefixed with
// "plain:" so test fixtures can spell out passwords directly.
type PlainHasher struct {
	HashFunc    func(plaintext string) (string, error)
	CompareFunc func(hash, plaintext string) error
}

func (h *PlainHasher) Hash(plaintext string) (string, error) {
	if h.HashFunc != nil {
		return h.HashFunc(plaintext)
	}
	return "plain:" + plaintext, nil
}

func (h *PlainHasher) Compare(hash, plaintext string) error {
	if h.CompareFunc != nil {
		return h.CompareFunc(hash, plaintext)
	}
	if hash != "plain:"+plaintext {
		return fmt.Errorf("password mismatch")
	}
	return nil
}

// StaticRoleCatalog is a RoleCatalog backed by a fixed name set. The
// zero value knows the built-in roles.
type StaticRoleCatalog struct {
	FindByNameFunc func(ctx context.Context, name string) (string, error)

	// Known maps role names to descriptions. Nil means the two
	// built-in roles.
	Known map[string]string
}

func (c *StaticRoleCatalog) FindByName(ctx context.Context, name string) (string, error) {
	if c.FindByNameFunc != nil {
		return c.FindByNameFunc(ctx, name)
	}

	known := c.Known
	if known == nil {
		known = map[string]string{
			string(auth.RoleUser):  "customer",
			string(auth.RoleAdmin): "administrator",
		}
	}
	description, ok := known[name]
	if !ok {
		return "", data.ErrRoleNotFound
	}
	return description, nil
}

// MemoryUserStore is an in-memory UserStore keyed by email. Session
// writes mutate the stored user the same way the real repository does.
type MemoryUserStore struct {
	FindByEmailFunc func(ctx context.Context, email string) (*model.User, error)
	SaveSessionFunc func(ctx context.Context, userID string, sess ports.SessionWrite) error

	mu    sync.Mutex
	users map[string]*model.User // keyed by email

	// SaveSessionCalls counts writes for assertions on login behavior.
	SaveSessionCalls int
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*model.User)}
}

// Seed adds or replaces a user.
func (s *MemoryUserStore) Seed(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = user
}

func (s *MemoryUserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.FindByEmailFunc != nil {
		return s.FindByEmailFunc(ctx, email)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	// Copy so callers cannot mutate the stored record.
	out := *user
	return &out, nil
}

func (s *MemoryUserStore) SaveSession(ctx context.Context, userID string, sess ports.SessionWrite) error {
	if s.SaveSessionFunc != nil {
		return s.SaveSessionFunc(ctx, userID, sess)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.SaveSessionCalls++
	for _, user := range s.users {
		if user.ID == userID {
			token := sess.Token
			expiresAt := sess.ExpiresAt
			user.CurrentToken = &token
			user.TokenExpiresAt = &expiresAt
			return nil
		}
	}
	return data.ErrUserNotFound
}
