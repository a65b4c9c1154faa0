package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/services"
	"dukatrack-backend/internal/utils"
)

// ReportHandlers contains aggregation/dashboard handlers
type ReportHandlers struct {
	reportService *services.ReportService
}

// NewReportHandlers creates new report handlers
func NewReportHandlers(reportService *services.ReportService) *ReportHandlers {
	return &ReportHandlers{reportService: reportService}
}

// GetSalesSummary returns the aggregated metrics. Optional query params:
// shopId, salesmanId, date (YYYY-MM-DD, defaults to today). Salesman
// sessions are always scoped to themselves.
func (h *ReportHandlers) GetSalesSummary(c *gin.Context) {
	shopID := c.Query("shopId")
	salesmanID := c.Query("salesmanId")
	if c.GetString("role") == models.RoleSalesman {
		shopID = c.GetString("shopID")
		salesmanID = c.GetString("subjectID")
	}

	reference := utils.NowEAT()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, utils.EATLocation)
		if err != nil {
			respondBadRequest(c, "date must be in YYYY-MM-DD format")
			return
		}
		reference = parsed
	}

	summary, err := h.reportService.SalesSummary(c.Request.Context(), shopID, salesmanID, reference)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, summary)
}
