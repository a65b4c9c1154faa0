package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
)

// Sale creation fails on the first of these that applies, in this order.
var (
	ErrNoProductSelected = errors.New("no product selected")
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrStockExceeded     = errors.New("quantity exceeds available stock")
	ErrInvalidPrice      = errors.New("product has no valid selling price")

	// ErrSaleNotFound is returned when a sale id resolves to nothing.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrInvalidTransition is returned for any status change other than
	// pending to completed or pending to rejected.
	ErrInvalidTransition = errors.New("sale is not pending")
	// ErrRejectionReasonRequired is returned when a rejection has no reason.
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)

var oneHundred = decimal.NewFromInt(100)

// SaleService records sales and walks them through their status lifecycle.
type SaleService struct {
	sales    *repository.SaleRepository
	products *repository.ProductRepository
	salesmen *repository.SalesmanRepository

	// decrementStock enables the stock adjustment the mobile app validated
	// for but never performed. When enabled, the sale write and the product
	// write form one operation with a compensating rollback.
	decrementStock bool
}

// NewSaleService creates a new sale service
func NewSaleService(sales *repository.SaleRepository, products *repository.ProductRepository, salesmen *repository.SalesmanRepository, decrementStock bool) *SaleService {
	return &SaleService{
		sales:          sales,
		products:       products,
		salesmen:       salesmen,
		decrementStock: decrementStock,
	}
}

// CreateSale validates the submission and appends a pending sale. The total
// and the commission are computed here, once, from the product price and the
// salesman's commission rate at this moment.
func (s *SaleService) CreateSale(ctx context.Context, salesmanID string, creation *models.SaleCreation) (*models.Sale, error) {
	if creation.ProductID == "" {
		return nil, ErrNoProductSelected
	}
	if creation.CustomerName == "" {
		return nil, ErrEmptyCustomerName
	}
	if creation.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	salesman, err := s.salesmen.GetByID(ctx, salesmanID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSalesmanNotFound
	}
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, creation.ProductID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if !product.InStock(creation.Quantity) {
		return nil, ErrStockExceeded
	}
	if !product.SellingPrice.IsPositive() {
		return nil, ErrInvalidPrice
	}

	quantity := decimal.NewFromInt(int64(creation.Quantity))
	totalAmount := utils.Round2(product.SellingPrice.Mul(quantity))
	commission := utils.Round2(totalAmount.Mul(salesman.CommissionRate).Div(oneHundred))

	now := utils.NowEAT()
	sale := models.Sale{
		ID:           uuid.New().String(),
		ShopID:       product.ShopID,
		ProductID:    product.ID,
		SalesmanID:   salesman.ID,
		ProductName:  product.Name,
		UnitPrice:    product.SellingPrice,
		CustomerName: creation.CustomerName,
		Quantity:     creation.Quantity,
		TotalAmount:  totalAmount,
		Commission:   commission,
		Status:       models.SaleStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.sales.Add(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	if s.decrementStock {
		product.Quantity -= creation.Quantity
		product.UpdatedAt = now
		if err := s.products.Update(ctx, *product); err != nil {
			// Compensate: take the sale back out so the data set stays
			// consistent rather than leaving stale stock behind.
			if rbErr := s.sales.Delete(ctx, sale.ID); rbErr != nil {
				log.Printf("Failed to roll back sale %s after stock write error: %v", sale.ID, rbErr)
			}
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	return &sale, nil
}

// GetSales returns sales matching the optional shop and salesman scopes,
// with display names resolved defensively.
func (s *SaleService) GetSales(ctx context.Context, shopID, salesmanID string) ([]models.Sale, error) {
	sales, err := s.sales.Filter(ctx, shopID, salesmanID)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		s.resolveDisplayFields(ctx, &sales[i])
	}
	return sales, nil
}

// GetSale returns a single sale by id.
func (s *SaleService) GetSale(ctx context.Context, id string) (*models.Sale, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	s.resolveDisplayFields(ctx, sale)
	return sale, nil
}

// CompleteSale moves a pending sale to completed.
func (s *SaleService) CompleteSale(ctx context.Context, id string) (*models.Sale, error) {
	return s.transition(ctx, id, models.SaleStatusCompleted, nil)
}

// RejectSale moves a pending sale to rejected with a reason.
func (s *SaleService) RejectSale(ctx context.Context, id, reason string) (*models.Sale, error) {
	if reason == "" {
		return nil, ErrRejectionReasonRequired
	}
	return s.transition(ctx, id, models.SaleStatusRejected, &reason)
}

func (s *SaleService) transition(ctx context.Context, id string, to models.SaleStatus, reason *string) (*models.Sale, error) {
	sale, err := s.sales.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}

	// pending is the only state anything can leave
	if sale.Status != models.SaleStatusPending {
		return nil, ErrInvalidTransition
	}

	sale.Status = to
	sale.RejectionReason = reason
	sale.UpdatedAt = utils.NowEAT()

	if err := s.sales.Update(ctx, *sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}
	s.resolveDisplayFields(ctx, sale)
	return sale, nil
}

// resolveDisplayFields fills the read-time display data. Dangling references
// become placeholder text, never errors; monetary fields are untouched since
// they were snapshotted at creation.
func (s *SaleService) resolveDisplayFields(ctx context.Context, sale *models.Sale) {
	if sale.ProductName == "" {
		sale.ProductName = models.UnknownProductName
	}
	salesman, err := s.salesmen.GetByID(ctx, sale.SalesmanID)
	if err != nil {
		sale.SalesmanName = models.UnassignedSalesmanName
		return
	}
	sale.SalesmanName = salesman.Name
}
