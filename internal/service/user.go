package service

import (
	"context"
	"fmt"

	domainauth "github.com/bintangginanjar/ez-commerce-api/internal/domain/auth"
	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
	"github.com/bintangginanjar/ez-commerce-api/internal/ports"
)

// UserRepository is the persistence port for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, id string, name, passwordHash *string) (*model.User, error)
	List(ctx context.Context, limit, offset int) ([]model.User, error)
}

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Repo   UserRepository
	Roles  ports.RoleCatalog
	Hasher ports.PasswordHasher
}

// UserService provides registration and profile management.
type UserService struct {
	repo   UserRepository
	roles  ports.RoleCatalog
	hasher ports.PasswordHasher
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{repo: opts.Repo, roles: opts.Roles, hasher: opts.Hasher}
}

// Register creates a new account with the default customer role.
// The plaintext password is hashed before it reaches the repository
// and is never logged.
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The default role must resolve in the catalog before it is
	// assigned. A missing catalog entry is a deployment fault, not a
	// caller error.
	defaultRole := string(domainauth.RoleUser)
	if _, err := s.roles.FindByName(ctx, defaultRole); err != nil {
		return nil, fmt.Errorf("resolve default role: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.Create(ctx, &model.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Roles:        []string{defaultRole},
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetByID returns the user with the given id.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies name and password changes for the user.
// Changing the password does not revoke the current token; the stale
// token is superseded on the next login like any other.
func (s *UserService) UpdateProfile(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var hash *string
	if req.Password != nil {
		h, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = &h
	}

	user, err := s.repo.UpdateProfile(ctx, id, req.Name, hash)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// List returns users with limit/offset pagination. Admin only at the route layer.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	users, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
