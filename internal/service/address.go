package service

import (
	"context"
	"fmt"

	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

// AddressRepository is the persistence port for addresses.
type AddressRepository interface {
	Create(ctx context.Context, userID string, req *model.CreateAddressRequest) (*model.Address, error)
	GetByID(ctx context.Context, userID, id string) (*model.Address, error)
	ListByUser(ctx context.Context, userID string) ([]model.Address, error)
	Update(ctx context.Context, userID, id string, req *model.UpdateAddressRequest) (*model.Address, error)
	Delete(ctx context.Context, userID, id string) error
}

// AddressServiceOptions groups dependencies for AddressService.
type AddressServiceOptions struct {
	Repo AddressRepository
}

// AddressService provides address book operations scoped to the
// requesting principal.
type AddressService struct {
	repo AddressRepository
}

// NewAddressService constructs a new AddressService.
func NewAddressService(opts AddressServiceOptions) *AddressService {
	return &AddressService{repo: opts.Repo}
}

// Create adds an address for the user.
func (s *AddressService) Create(ctx context.Context, userID string, req model.CreateAddressRequest) (*model.Address, error) {
	address, err := s.repo.Create(ctx, userID, &req)
	if err != nil {
		return nil, err
	}
	return address, nil
}

// GetByID returns the user's address with the given id.
func (s *AddressService) GetByID(ctx context.Context, userID, id string) (*model.Address, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// List returns all of the user's addresses.
func (s *AddressService) List(ctx context.Context, userID string) ([]model.Address, error) {
	addresses, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

// Update applies changes to the user's address.
func (s *AddressService) Update(ctx context.Context, userID, id string, req model.UpdateAddressRequest) (*model.Address, error) {
	return s.repo.Update(ctx, userID, id, &req)
}

// Delete removes the user's address.
func (s *AddressService) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
