package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
)

var (
	// ErrProductNotFound is returned when a product id resolves to nothing.
	ErrProductNotFound = errors.New("product not found")
	// ErrNegativePrice is returned when a price below zero is submitted.
	ErrNegativePrice = errors.New("price must not be negative")
)

// ProductService handles product-related business logic
type ProductService struct {
	products *repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(products *repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// CreateProduct adds a product to a shop's inventory.
func (s *ProductService) CreateProduct(ctx context.Context, creation *models.ProductCreation) (*models.Product, error) {
	if err := utils.ValidateStruct(creation); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if creation.BasePrice.IsNegative() || creation.SellingPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := utils.NowEAT()
	product := models.Product{
		ID:           uuid.New().String(),
		ShopID:       creation.ShopID,
		Name:         creation.Name,
		BasePrice:    utils.Round2(creation.BasePrice),
		SellingPrice: utils.Round2(creation.SellingPrice),
		Quantity:     creation.Quantity,
		Category:     creation.Category,
		Description:  creation.Description,
		Unit:         creation.Unit,
		ImageURI:     creation.ImageURI,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.products.Add(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// GetProducts returns products, optionally scoped to one shop.
func (s *ProductService) GetProducts(ctx context.Context, shopID string) ([]models.Product, error) {
	if shopID == "" {
		return s.products.Load(ctx)
	}
	return s.products.FindByShop(ctx, shopID)
}

// GetProduct returns a single product by id.
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

// ResolveProductName returns the product's name or the "Unknown Product"
// placeholder when the reference dangles. Store failures also degrade to the
// placeholder; missing display data is never an error.
func (s *ProductService) ResolveProductName(ctx context.Context, id string) string {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return models.UnknownProductName
	}
	return product.Name
}

// UpdateProduct applies a partial update to a product.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, update *models.ProductUpdate) (*models.Product, error) {
	if err := utils.ValidateStruct(update); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if update.BasePrice != nil && update.BasePrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if update.SellingPrice != nil && update.SellingPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.BasePrice != nil {
		product.BasePrice = utils.Round2(*update.BasePrice)
	}
	if update.SellingPrice != nil {
		product.SellingPrice = utils.Round2(*update.SellingPrice)
	}
	if update.Quantity != nil {
		product.Quantity = *update.Quantity
	}
	if update.Category != nil {
		product.Category = update.Category
	}
	if update.Description != nil {
		product.Description = update.Description
	}
	if update.Unit != nil {
		product.Unit = update.Unit
	}
	if update.ImageURI != nil {
		product.ImageURI = update.ImageURI
	}
	product.UpdatedAt = utils.NowEAT()

	if err := s.products.Update(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// AdjustStock sets the product's stock level to an explicit quantity.
func (s *ProductService) AdjustStock(ctx context.Context, id string, quantity int) (*models.Product, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("stock quantity must not be negative")
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Quantity = quantity
	product.UpdatedAt = utils.NowEAT()
	if err := s.products.Update(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}
	return product, nil
}

// DeleteProduct removes the product. Existing sales keep their price and
// name snapshots.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

// StockValue returns sellingPrice x quantity for a product, used by the
// inventory valuation view.
func (s *ProductService) StockValue(product *models.Product) decimal.Decimal {
	return utils.Round2(product.SellingPrice.Mul(decimal.NewFromInt(int64(product.Quantity))))
}
