package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnassignedSalesmanName is rendered when a sale references a deleted salesman.
const UnassignedSalesmanName = "Unassigned"

// Salesman represents a restricted-role user who records sales against a
// shop and earns commission on completed ones.
type Salesman struct {
	ID             string          `json:"id"`
	ShopID         string          `json:"shopId"`
	Name           string          `json:"name"`
	Mobile         string          `json:"mobile"`
	Username       string          `json:"username"`
	PasswordHash   string          `json:"-"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// SalesmanCreation represents the data needed to register a salesman.
// CommissionRate is a percentage between 0 and 100.
type SalesmanCreation struct {
	ShopID         string          `json:"shopId" validate:"required"`
	Name           string          `json:"name" validate:"required,min=2,max=100"`
	Mobile         string          `json:"mobile" validate:"required,mobile"`
	Username       string          `json:"username" validate:"required,min=3,max=50"`
	Password       string          `json:"password" validate:"required,min=6,max=128"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
}

// SalesmanUpdate represents a partial salesman update. Changing the
// commission rate never touches commissions already snapshotted on sales.
type SalesmanUpdate struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Mobile         *string          `json:"mobile,omitempty" validate:"omitempty,mobile"`
	Password       *string          `json:"password,omitempty" validate:"omitempty,min=6,max=128"`
	CommissionRate *decimal.Decimal `json:"commissionRate,omitempty"`
	IsActive       *bool            `json:"isActive,omitempty"`
}

// SalesmanLogin represents salesman login credentials
type SalesmanLogin struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=128"`
}
