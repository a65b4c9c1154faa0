package repository

import (
	"context"
	"sync"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/store"
)

// SaleRepository persists the sale collection under the "sales" key.
type SaleRepository struct {
	kv store.Store
	mu sync.Mutex
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(kv store.Store) *SaleRepository {
	return &SaleRepository{kv: kv}
}

// Load returns all sales. A missing key reads as an empty list.
func (r *SaleRepository) Load(ctx context.Context) ([]models.Sale, error) {
	return loadList[models.Sale](ctx, r.kv, store.KeySales)
}

// Save writes the full sale array back to the store.
func (r *SaleRepository) Save(ctx context.Context, sales []models.Sale) error {
	return saveList(ctx, r.kv, store.KeySales, sales)
}

// GetByID returns the sale with the given id, or ErrNotFound.
func (r *SaleRepository) GetByID(ctx context.Context, id string) (*models.Sale, error) {
	sales, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, ErrNotFound
}

// Filter returns the sales matching the optional shop and salesman scopes.
// Empty scope strings match everything.
func (r *SaleRepository) Filter(ctx context.Context, shopID, salesmanID string) ([]models.Sale, error) {
	sales, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if shopID != "" && s.ShopID != shopID {
			continue
		}
		if salesmanID != "" && s.SalesmanID != salesmanID {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered, nil
}

// Add appends a sale and persists the updated array.
func (r *SaleRepository) Add(ctx context.Context, sale models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.Load(ctx)
	if err != nil {
		return err
	}
	sales = append(sales, sale)
	return r.Save(ctx, sales)
}

// Delete removes a sale. Only used to compensate a failed stock write;
// sales are never deleted through the API.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range sales {
		if sales[i].ID == id {
			sales = append(sales[:i], sales[i+1:]...)
			return r.Save(ctx, sales)
		}
	}
	return ErrNotFound
}

// Update replaces the sale with the same id, or returns ErrNotFound.
func (r *SaleRepository) Update(ctx context.Context, sale models.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sales, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range sales {
		if sales[i].ID == sale.ID {
			sales[i] = sale
			return r.Save(ctx, sales)
		}
	}
	return ErrNotFound
}
