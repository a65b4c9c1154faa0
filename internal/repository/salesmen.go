package repository

import (
	"context"
	"strings"
	"sync"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/store"
)

// SalesmanRepository persists the salesman collection under the "salesmen" key.
type SalesmanRepository struct {
	kv store.Store
	mu sync.Mutex
}

// NewSalesmanRepository creates a new salesman repository
func NewSalesmanRepository(kv store.Store) *SalesmanRepository {
	return &SalesmanRepository{kv: kv}
}

// Load returns all salesmen. A missing key reads as an empty list.
func (r *SalesmanRepository) Load(ctx context.Context) ([]models.Salesman, error) {
	return loadList[models.Salesman](ctx, r.kv, store.KeySalesmen)
}

// Save writes the full salesman array back to the store.
func (r *SalesmanRepository) Save(ctx context.Context, salesmen []models.Salesman) error {
	return saveList(ctx, r.kv, store.KeySalesmen, salesmen)
}

// GetByID returns the salesman with the given id, or ErrNotFound.
func (r *SalesmanRepository) GetByID(ctx context.Context, id string) (*models.Salesman, error) {
	salesmen, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range salesmen {
		if salesmen[i].ID == id {
			return &salesmen[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindActiveByUsername returns the active salesman with the given username,
// matched case-insensitively, or ErrNotFound. Inactive accounts are invisible
// to login.
func (r *SalesmanRepository) FindActiveByUsername(ctx context.Context, username string) (*models.Salesman, error) {
	salesmen, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range salesmen {
		if salesmen[i].IsActive && strings.EqualFold(salesmen[i].Username, username) {
			return &salesmen[i], nil
		}
	}
	return nil, ErrNotFound
}

// FindByShop returns the salesmen belonging to a shop.
func (r *SalesmanRepository) FindByShop(ctx context.Context, shopID string) ([]models.Salesman, error) {
	salesmen, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Salesman, 0, len(salesmen))
	for _, s := range salesmen {
		if s.ShopID == shopID {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// Add appends a salesman and persists the updated array.
func (r *SalesmanRepository) Add(ctx context.Context, salesman models.Salesman) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salesmen, err := r.Load(ctx)
	if err != nil {
		return err
	}
	salesmen = append(salesmen, salesman)
	return r.Save(ctx, salesmen)
}

// Update replaces the salesman with the same id, or returns ErrNotFound.
func (r *SalesmanRepository) Update(ctx context.Context, salesman models.Salesman) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salesmen, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range salesmen {
		if salesmen[i].ID == salesman.ID {
			salesmen[i] = salesman
			return r.Save(ctx, salesmen)
		}
	}
	return ErrNotFound
}

// Delete removes the salesman. Sales referencing them keep their snapshots
// and render "Unassigned" at read time.
func (r *SalesmanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	salesmen, err := r.Load(ctx)
	if err != nil {
		return err
	}
	for i := range salesmen {
		if salesmen[i].ID == id {
			salesmen = append(salesmen[:i], salesmen[i+1:]...)
			return r.Save(ctx, salesmen)
		}
	}
	return ErrNotFound
}
