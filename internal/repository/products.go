package repository

import (
	"context"
	"sync"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/store"
)

// ProductRepository persists the product collection under the "products" key.
type ProductRepository struct {
	kv store.Store
	mu sync.Mutex
}

// NewProductRepository creates a new product repository
func NewProductRepository(kv store.Store) *ProductRepository {
	return &ProductRepository{kv: kv}
}

// Load returns all products. A missing key reads as an empty list.
func (r *ProductRepository) Load(ctx context.Context) ([]models.Product, error) {
	return loadList[models.Product](ctx, r.kv, store.KeyProducts)
}

// Save writes the full product array back to the store.
func (r *ProductRepository) Save(ctx context.Context, products []models.Product) error {
	return saveList(ctx, r.kv, store.KeyProducts, products)
}

// GetByID returns the product with the given id, or ErrNotFound.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	products, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByShop returns the products belonging to a shop.
func (r *ProductRepository) FindByShop(ctx context.Context, shopID string) ([]models.Product, error) {
	products, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.ShopID == shopID {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Add appends a product and persists the updated array.
func (r *ProductRepository) Add(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.Load(ctx)
	if err != nil {
		return err
	}
	products = append(products, product)
	return r.Save(ctx, products)
}

// Update replaces the product with the same id, or returns ErrNotFound.
func (r *ProductRepository) Update(ctx context.Context, product models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			return r.Save(ctx, products)
		}
	}
	return ErrNotFound
}

// Delete removes the product. Sales referencing it keep their snapshots and
// render "Unknown Product" at read time.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return r.Save(ctx, products)
		}
	}
	return ErrNotFound
}
