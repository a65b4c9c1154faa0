package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleStatus represents the lifecycle state of a sale
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusRejected  SaleStatus = "rejected"
)

// IsValid reports whether the status is one of the known states.
func (s SaleStatus) IsValid() bool {
	return s == SaleStatusPending || s == SaleStatusCompleted || s == SaleStatusRejected
}

// Sale represents a recorded sale. TotalAmount and Commission are computed
// once at creation from the product price and the salesman's commission rate
// at that moment; later rate or price changes never alter them.
type Sale struct {
	ID              string          `json:"id"`
	ShopID          string          `json:"shopId"`
	ProductID       string          `json:"productId"`
	SalesmanID      string          `json:"salesmanId"`
	ProductName     string          `json:"productName"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	CustomerName    string          `json:"customerName"`
	Quantity        int             `json:"quantity"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Commission      decimal.Decimal `json:"commission"`
	Status          SaleStatus      `json:"status"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	// Display data resolved at read time; dangling references become
	// placeholder text instead of errors.
	SalesmanName string `json:"salesmanName,omitempty"`
}

// SaleCreation represents the data a salesman submits to record a sale
type SaleCreation struct {
	ProductID    string `json:"productId"`
	CustomerName string `json:"customerName"`
	Quantity     int    `json:"quantity"`
}

// SaleRejection carries the reason a pending sale was turned down
type SaleRejection struct {
	Reason string `json:"reason" validate:"required,max=200"`
}

// SalesSummary holds the aggregated metrics shown on the dashboard.
type SalesSummary struct {
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCommission   decimal.Decimal `json:"totalCommission"`
	PendingCount      int             `json:"pendingCount"`
	CompletedCount    int             `json:"completedCount"`
	RejectedCount     int             `json:"rejectedCount"`
	TodaysSalesAmount decimal.Decimal `json:"todaysSalesAmount"`
}
