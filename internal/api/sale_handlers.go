package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/services"
)

// SaleHandlers contains sale recording and lifecycle handlers
type SaleHandlers struct {
	saleService *services.SaleService
	liveFeed    *services.LiveFeedService
}

// NewSaleHandlers creates new sale handlers
func NewSaleHandlers(saleService *services.SaleService, liveFeed *services.LiveFeedService) *SaleHandlers {
	return &SaleHandlers{saleService: saleService, liveFeed: liveFeed}
}

// saleCreateRequest lets the owner record a sale on behalf of a salesman;
// salesman sessions always record against themselves.
type saleCreateRequest struct {
	models.SaleCreation
	SalesmanID string `json:"salesmanId,omitempty"`
}

// CreateSale records a new pending sale
func (h *SaleHandlers) CreateSale(c *gin.Context) {
	var req saleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	salesmanID := req.SalesmanID
	if c.GetString("role") == models.RoleSalesman {
		salesmanID = c.GetString("subjectID")
	}

	sale, err := h.saleService.CreateSale(c.Request.Context(), salesmanID, &req.SaleCreation)
	if err != nil {
		respondError(c, err)
		return
	}

	h.liveFeed.PublishSummary(c.Request.Context(), sale.ShopID)
	respondOK(c, http.StatusCreated, sale)
}

// GetSales lists sales. Owners may filter by ?shopId= and ?salesmanId=;
// salesman sessions only ever see their own.
func (h *SaleHandlers) GetSales(c *gin.Context) {
	shopID := c.Query("shopId")
	salesmanID := c.Query("salesmanId")
	if c.GetString("role") == models.RoleSalesman {
		shopID = c.GetString("shopID")
		salesmanID = c.GetString("subjectID")
	}

	sales, err := h.saleService.GetSales(c.Request.Context(), shopID, salesmanID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, sales)
}

// GetSale returns a single sale
func (h *SaleHandlers) GetSale(c *gin.Context) {
	sale, err := h.saleService.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if c.GetString("role") == models.RoleSalesman && sale.SalesmanID != c.GetString("subjectID") {
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"error":   "Not your sale",
		})
		return
	}
	respondOK(c, http.StatusOK, sale)
}

// CompleteSale marks a pending sale as completed (owner only)
func (h *SaleHandlers) CompleteSale(c *gin.Context) {
	sale, err := h.saleService.CompleteSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.liveFeed.PublishSummary(c.Request.Context(), sale.ShopID)
	respondOK(c, http.StatusOK, sale)
}

// RejectSale marks a pending sale as rejected with a reason (owner only)
func (h *SaleHandlers) RejectSale(c *gin.Context) {
	var req models.SaleRejection
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.RejectSale(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	h.liveFeed.PublishSummary(c.Request.Context(), sale.ShopID)
	respondOK(c, http.StatusOK, sale)
}
