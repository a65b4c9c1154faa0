package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownProductName is rendered when a sale references a deleted product.
// Dangling references are tolerated, never treated as errors.
const UnknownProductName = "Unknown Product"

// Product represents a stocked item belonging to a shop.
type Product struct {
	ID           string          `json:"id"`
	ShopID       string          `json:"shopId"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity"`
	Category     *string         `json:"category,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Unit         *string         `json:"unit,omitempty"`
	ImageURI     *string         `json:"imageUri,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// InStock reports whether at least quantity units are available.
func (p *Product) InStock(quantity int) bool {
	return quantity <= p.Quantity
}

// ProductCreation represents the data needed to add a product
type ProductCreation struct {
	ShopID       string          `json:"shopId" validate:"required"`
	Name         string          `json:"name" validate:"required,min=2,max=100"`
	BasePrice    decimal.Decimal `json:"basePrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Quantity     int             `json:"quantity" validate:"min=0"`
	Category     *string         `json:"category,omitempty" validate:"omitempty,max=50"`
	Description  *string         `json:"description,omitempty" validate:"omitempty,max=500"`
	Unit         *string         `json:"unit,omitempty" validate:"omitempty,max=20"`
	ImageURI     *string         `json:"imageUri,omitempty"`
}

// ProductUpdate represents a partial product update
type ProductUpdate struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	BasePrice    *decimal.Decimal `json:"basePrice,omitempty"`
	SellingPrice *decimal.Decimal `json:"sellingPrice,omitempty"`
	Quantity     *int             `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Category     *string          `json:"category,omitempty" validate:"omitempty,max=50"`
	Description  *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	Unit         *string          `json:"unit,omitempty" validate:"omitempty,max=20"`
	ImageURI     *string          `json:"imageUri,omitempty"`
}

// StockAdjustment represents an explicit stock level change
type StockAdjustment struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
