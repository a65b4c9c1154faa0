package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/repository"
	"dukatrack-backend/internal/utils"
)

// ReportService computes the dashboard metrics from the sale collection.
type ReportService struct {
	sales *repository.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(sales *repository.SaleRepository) *ReportService {
	return &ReportService{sales: sales}
}

// Summarize aggregates a sale list against a reference date.
//
//   - totalRevenue and totalCommission count completed sales only; pending
//     and rejected sales contribute zero.
//   - the three status counts partition the list.
//   - todaysSalesAmount sums sales created on the reference calendar day,
//     rejected ones excluded.
//
// An empty list yields all-zero metrics.
func Summarize(sales []models.Sale, reference time.Time) models.SalesSummary {
	summary := models.SalesSummary{
		TotalRevenue:      decimal.Zero,
		TotalCommission:   decimal.Zero,
		TodaysSalesAmount: decimal.Zero,
	}

	for _, sale := range sales {
		switch sale.Status {
		case models.SaleStatusCompleted:
			summary.CompletedCount++
			summary.TotalRevenue = summary.TotalRevenue.Add(sale.TotalAmount)
			summary.TotalCommission = summary.TotalCommission.Add(sale.Commission)
		case models.SaleStatusRejected:
			summary.RejectedCount++
		default:
			summary.PendingCount++
		}

		if sale.Status != models.SaleStatusRejected && utils.SameCalendarDay(sale.CreatedAt, reference) {
			summary.TodaysSalesAmount = summary.TodaysSalesAmount.Add(sale.TotalAmount)
		}
	}

	summary.TotalRevenue = utils.Round2(summary.TotalRevenue)
	summary.TotalCommission = utils.Round2(summary.TotalCommission)
	summary.TodaysSalesAmount = utils.Round2(summary.TodaysSalesAmount)
	return summary
}

// SalesSummary loads the sales matching the optional shop and salesman
// scopes and aggregates them against the reference date.
func (s *ReportService) SalesSummary(ctx context.Context, shopID, salesmanID string, reference time.Time) (*models.SalesSummary, error) {
	sales, err := s.sales.Filter(ctx, shopID, salesmanID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(sales, reference)
	return &summary, nil
}
