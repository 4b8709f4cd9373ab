package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/bintangginanjar/ez-commerce-api/internal/domain/model"
)

const productCachePrefix = "products:"

// ProductRepository is the persistence port for the product catalog.
type ProductRepository interface {
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, q model.ProductQuery) ([]model.Product, error)
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

// CatalogCache is the cache port for catalog reads. A nil value or a
// zero TTL disables caching without changing behavior.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ProductServiceOptions groups dependencies for ProductService.
type ProductServiceOptions struct {
	Repo  ProductRepository
	Cache CatalogCache
	TTL   time.Duration
}

// ProductService provides catalog operations with a read-through cache
// over listings and single-product reads. Writes invalidate the whole
// catalog prefix since any change can affect filtered listings.
type ProductService struct {
	repo  ProductRepository
	cache CatalogCache
	ttl   time.Duration
}

// NewProductService constructs a new ProductService.
func NewProductService(opts ProductServiceOptions) *ProductService {
	return &ProductService{
		repo:  opts.Repo,
		cache: opts.Cache,
		ttl:   opts.TTL,
	}
}

func (s *ProductService) cacheEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

// cachedGet reads a cached value into out. A miss or a cache failure
// returns false so the caller falls through to the database.
func (s *ProductService) cachedGet(ctx context.Context, key string, out any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("product cache read failed", "key", key, "error", err)
		return false
	}
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		slog.Warn("product cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (s *ProductService) cachedSet(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		slog.Warn("product cache write failed", "key", key, "error", err)
	}
}

func (s *ProductService) invalidate(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, productCachePrefix); err != nil {
		slog.Warn("product cache invalidation failed", "error", err)
	}
}

// Create adds a product and invalidates cached listings.
func (s *ProductService) Create(ctx context.Context, req model.CreateProductRequest) (*model.Product, error) {
	product, err := s.repo.Create(ctx, &req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

// GetByID returns the product with the given id, serving from cache
// when possible.
func (s *ProductService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	key := productCachePrefix + "id:" + id
	if s.cacheEnabled() {
		var cached model.Product
		if s.cachedGet(ctx, key, &cached) {
			return &cached, nil
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cacheEnabled() {
		s.cachedSet(ctx, key, product)
	}
	return product, nil
}

// List returns a filtered page of the catalog, serving from cache
// when possible.
func (s *ProductService) List(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	key := fmt.Sprintf("%slist:%s:%d:%d", productCachePrefix, q.CategoryID, q.Limit, q.Offset)
	if s.cacheEnabled() {
		var cached []model.Product
		if s.cachedGet(ctx, key, &cached) {
			return cached, nil
		}
	}

	products, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if s.cacheEnabled() {
		s.cachedSet(ctx, key, products)
	}
	return products, nil
}

// Update applies changes to a product and invalidates cached listings.
func (s *ProductService) Update(ctx context.Context, id string, req model.UpdateProductRequest) (*model.Product, error) {
	product, err := s.repo.Update(ctx, id, &req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

// Delete removes a product and invalidates cached listings.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
