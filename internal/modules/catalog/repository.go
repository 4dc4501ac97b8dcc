package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumiere-essence/maison-backend/internal/kv"
)

// Repository defines the interface for catalog storage. The store layer has
// no partial-update or delete-by-id primitive: callers read the full list,
// transform in memory, and replace it.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	ReplaceAll(ctx context.Context, products []Product) error
	ListCategories(ctx context.Context) ([]string, error)
	ReplaceCategories(ctx context.Context, categories []string) error
}

type kvRepo struct{ store kv.Store }

// NewKVRepository backs the catalog with the shared key-value store.
func NewKVRepository(store kv.Store) Repository {
	return &kvRepo{store: store}
}

// List returns all products, seeding the underlying storage with defaults
// on first access. A malformed payload is silently replaced by defaults.
func (r *kvRepo) List(ctx context.Context) ([]Product, error) {
	data, err := r.store.Get(ctx, kv.KeyProducts)
	if errors.Is(err, kv.ErrNotFound) {
		defaults := DefaultProducts()
		if err := r.ReplaceAll(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return DefaultProducts(), nil
	}
	return products, nil
}

func (r *kvRepo) ReplaceAll(ctx context.Context, products []Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.KeyProducts, data)
}

func (r *kvRepo) ListCategories(ctx context.Context) ([]string, error) {
	data, err := r.store.Get(ctx, kv.KeyCategories)
	if errors.Is(err, kv.ErrNotFound) {
		defaults := DefaultCategories()
		if err := r.ReplaceCategories(ctx, defaults); err != nil {
			return nil, err
		}
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	var categories []string
	if err := json.Unmarshal(data, &categories); err != nil {
		return DefaultCategories(), nil
	}
	return categories, nil
}

func (r *kvRepo) ReplaceCategories(ctx context.Context, categories []string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, kv.KeyCategories, data)
}
