package repository

import (
	"context"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/store"
)

// SessionRepository persists the single-object session keys the mobile app
// relies on: the owner account, the last-selected shop and the active
// salesman. Session validity itself lives in JWT tokens; these keys keep the
// stored data compatible with what the app wrote.
type SessionRepository struct {
	kv store.Store
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(kv store.Store) *SessionRepository {
	return &SessionRepository{kv: kv}
}

// GetOwner returns the owner account, or ErrNotFound before registration.
func (r *SessionRepository) GetOwner(ctx context.Context) (*models.Owner, error) {
	return loadObject[models.Owner](ctx, r.kv, store.KeyOwner)
}

// SaveOwner stores the owner account under the "user" key.
func (r *SessionRepository) SaveOwner(ctx context.Context, owner *models.Owner) error {
	return saveObject(ctx, r.kv, store.KeyOwner, owner)
}

// GetCurrentShop returns the last-selected shop, or ErrNotFound.
func (r *SessionRepository) GetCurrentShop(ctx context.Context) (*models.Shop, error) {
	return loadObject[models.Shop](ctx, r.kv, store.KeyCurrentShop)
}

// SetCurrentShop stores the last-selected shop.
func (r *SessionRepository) SetCurrentShop(ctx context.Context, shop *models.Shop) error {
	return saveObject(ctx, r.kv, store.KeyCurrentShop, shop)
}

// SetCurrentSalesman stores the salesman whose session is active.
func (r *SessionRepository) SetCurrentSalesman(ctx context.Context, salesman *models.Salesman) error {
	return saveObject(ctx, r.kv, store.KeyCurrentSalesman, salesman)
}

// ClearCurrentSalesman removes the active salesman session object.
func (r *SessionRepository) ClearCurrentSalesman(ctx context.Context) error {
	return r.kv.Remove(ctx, store.KeyCurrentSalesman)
}
