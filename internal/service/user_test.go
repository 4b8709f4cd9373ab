package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bintangginanjar/ez-commerce-api/internal/data"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	apperrors "github.com/bintangginanjar/ez-commerce-api/internal/errors"
	mockauth "github.com/bintangginanjar/ez-commerce-api/internal/mocks/auth"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User // keyed by id
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, data.ErrUserEmailExists
		}
	}
	r.seq++
	out := *user
	out.ID = "user-" + string(rune('0'+r.seq))
	r.users[out.ID] = &out
	// Hand back a copy so later in-place updates to the stored record
	// cannot leak into what the caller already holds.
	ret := out
	return &ret, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	out := *user
	return &out, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, id string, name, passwordHash *string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, data.ErrUserNotFound
	}
	if name != nil {
		user.Name = *name
	}
	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	out := *user
	return &out, nil
}

func (r *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	return out, nil
}

func newUserServiceFixture() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	svc := NewUserService(UserServiceOptions{
		Repo:   repo,
		Roles:  &mockauth.StaticRoleCatalog{},
		Hasher: &mockauth.PlainHasher{},
	})
	return svc, repo
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc, _ := newUserServiceFixture()

	user, err := svc.Register(context.Background(), model.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.Equal(t, []string{"ROLE_USER"}, user.Roles)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceFixture()

	req := model.RegisterUserRequest{Email: "alice@example.com", Name: "Alice", Password: "correct horse"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, data.ErrUserEmailExists)
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newUserServiceFixture()

	tests := []struct {
		name string
		req  model.RegisterUserRequest
	}{
		{name: "missing email", req: model.RegisterUserRequest{Name: "Alice", Password: "long enough"}},
		{name: "bad email", req: model.RegisterUserRequest{Email: "nope", Name: "Alice", Password: "long enough"}},
		{name: "missing name", req: model.RegisterUserRequest{Email: "a@example.com", Password: "long enough"}},
		{name: "short password", req: model.RegisterUserRequest{Email: "a@example.com", Name: "Alice", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestRegister_UnresolvableDefaultRoleFailsRegistration(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(UserServiceOptions{
		Repo:   repo,
		Roles:  &mockauth.StaticRoleCatalog{Known: map[string]string{}},
		Hasher: &mockauth.PlainHasher{},
	})

	_, err := svc.Register(context.Background(), model.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	})
	require.ErrorIs(t, err, data.ErrRoleNotFound)
	assert.Empty(t, repo.users)
}

func TestUpdateProfile_RehashesNewPassword(t *testing.T) {
	svc, repo := newUserServiceFixture()

	user, err := svc.Register(context.Background(), model.RegisterUserRequest{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse",
	})
	require.NoError(t, err)

	newPassword := "battery staple"
	updated, err := svc.UpdateProfile(context.Background(), user.ID, model.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
	assert.NotEqual(t, user.PasswordHash, updated.PasswordHash)
	assert.NotEqual(t, newPassword, updated.PasswordHash)

	stored, err := repo.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.PasswordHash, stored.PasswordHash)
}

func TestUpdateProfile_RequiresAField(t *testing.T) {
	svc, _ := newUserServiceFixture()

	_, err := svc.UpdateProfile(context.Background(), "user-1", model.UpdateUserRequest{})
	assert.True(t, apperrors.IsValidation(err))
}
