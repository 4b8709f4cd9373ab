package service

import (
	"context"
	"fmt"

	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error)
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, id string, req *model.UpdateCategoryRequest) (*model.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryServiceOptions groups dependencies for CategoryService.
type CategoryServiceOptions struct {
	Repo CategoryRepository
}

// CategoryService provides category management.
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService constructs a new CategoryService.
func NewCategoryService(opts CategoryServiceOptions) *CategoryService {
	return &CategoryService{repo: opts.Repo}
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	return s.repo.Create(ctx, &req)
}

// GetByID returns the category with the given id.
func (s *CategoryService) GetByID(ctx context.Context, id string) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Update renames the category.
func (s *CategoryService) Update(ctx context.Context, id string, req model.UpdateCategoryRequest) (*model.Category, error) {
	return s.repo.Update(ctx, id, &req)
}

// Delete removes the category.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
