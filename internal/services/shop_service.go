package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
)

// ErrShopNotFound is returned when a shop id resolves to nothing.
var ErrShopNotFound = errors.New("shop not found")

// ShopService handles shop-related business logic
type ShopService struct {
	shops    *repository.ShopRepository
	sessions *repository.SessionRepository
}

// NewShopService creates a new shop service
func NewShopService(shops *repository.ShopRepository, sessions *repository.SessionRepository) *ShopService {
	return &ShopService{shops: shops, sessions: sessions}
}

// CreateShop registers a new shop for the owner.
func (s *ShopService) CreateShop(ctx context.Context, creation *models.ShopCreation, ownerID string) (*models.Shop, error) {
	if err := utils.ValidateStruct(creation); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	now := utils.NowEAT()
	shop := models.Shop{
		ID:            uuid.New().String(),
		Name:          creation.Name,
		Address:       creation.Address,
		ContactNumber: creation.ContactNumber,
		Email:         creation.Email,
		GSTIN:         creation.GSTIN,
		IsActive:      true,
		OwnerID:       ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.shops.Add(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to create shop: %w", err)
	}
	return &shop, nil
}

// GetShops returns all shops.
func (s *ShopService) GetShops(ctx context.Context) ([]models.Shop, error) {
	return s.shops.Load(ctx)
}

// GetShop returns a single shop by id.
func (s *ShopService) GetShop(ctx context.Context, id string) (*models.Shop, error) {
	shop, err := s.shops.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	return shop, err
}

// UpdateShop applies a partial update to a shop.
func (s *ShopService) UpdateShop(ctx context.Context, id string, update *models.ShopUpdate) (*models.Shop, error) {
	if err := utils.ValidateStruct(update); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		shop.Name = *update.Name
	}
	if update.Address != nil {
		shop.Address = *update.Address
	}
	if update.ContactNumber != nil {
		shop.ContactNumber = *update.ContactNumber
	}
	if update.Email != nil {
		shop.Email = update.Email
	}
	if update.GSTIN != nil {
		shop.GSTIN = update.GSTIN
	}
	if update.IsActive != nil {
		shop.IsActive = *update.IsActive
	}
	shop.UpdatedAt = utils.NowEAT()

	if err := s.shops.Update(ctx, *shop); err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	return shop, nil
}

// DeleteShop removes the shop only. Products, sales and salesmen that
// reference it stay in their collections; readers resolve the gap with
// placeholder text.
func (s *ShopService) DeleteShop(ctx context.Context, id string) error {
	err := s.shops.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrShopNotFound
	}
	return err
}

// CurrentShop returns the last-selected shop.
func (s *ShopService) CurrentShop(ctx context.Context) (*models.Shop, error) {
	shop, err := s.sessions.GetCurrentShop(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrShopNotFound
	}
	return shop, err
}

// SelectShop marks the shop as the current one for the session.
func (s *ShopService) SelectShop(ctx context.Context, id string) (*models.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetCurrentShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("failed to select shop: %w", err)
	}
	return shop, nil
}
