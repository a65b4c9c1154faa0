package repository

import (
	"context"
	"sync"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/store"
)

// ShopRepository persists the shop collection under the "shops" key.
type ShopRepository struct {
	kv store.Store
	mu sync.Mutex
}

// NewShopRepository creates a new shop repository
func NewShopRepository(kv store.Store) *ShopRepository {
	return &ShopRepository{kv: kv}
}

// Load returns all shops. A missing key reads as an empty list.
func (r *ShopRepository) Load(ctx context.Context) ([]models.Shop, error) {
	return loadList[models.Shop](ctx, r.kv, store.KeyShops)
}

// Save writes the full shop array back to the store.
func (r *ShopRepository) Save(ctx context.Context, shops []models.Shop) error {
	return saveList(ctx, r.kv, store.KeyShops, shops)
}

// GetByID returns the shop with the given id, or ErrNotFound.
func (r *ShopRepository) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	shops, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range shops {
		if shops[i].ID == id {
			return &shops[i], nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a shop and persists the updated array.
func (r *ShopRepository) Add(ctx context.Context, shop models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.Load(ctx)
	if err != nil {
		return err
	}
	shops = append(shops, shop)
	return r.Save(ctx, shops)
}

// Update replaces the shop with the same id, or returns ErrNotFound.
func (r *ShopRepository) Update(ctx context.Context, shop models.Shop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range shops {
		if shops[i].ID == shop.ID {
			shops[i] = shop
			return r.Save(ctx, shops)
		}
	}
	return ErrNotFound
}

// Delete removes the shop from the array. Dependent products, sales and
// salesmen are left untouched; there is no cascade.
func (r *ShopRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	shops, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range shops {
		if shops[i].ID == id {
			shops = append(shops[:i], shops[i+1:]...)
			return r.Save(ctx, shops)
		}
	}
	return ErrNotFound
}
