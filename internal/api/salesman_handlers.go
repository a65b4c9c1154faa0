package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/services"
)

// SalesmanHandlers contains salesman CRUD handlers (owner only)
type SalesmanHandlers struct {
	salesmanService *services.SalesmanService
}

// NewSalesmanHandlers creates new salesman handlers
func NewSalesmanHandlers(salesmanService *services.SalesmanService) *SalesmanHandlers {
	return &SalesmanHandlers{salesmanService: salesmanService}
}

// CreateSalesman registers a salesman for a shop
func (h *SalesmanHandlers) CreateSalesman(c *gin.Context) {
	var req models.SalesmanCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	salesman, err := h.salesmanService.CreateSalesman(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, salesman)
}

// GetSalesmen lists salesmen, optionally filtered by ?shopId=
func (h *SalesmanHandlers) GetSalesmen(c *gin.Context) {
	salesmen, err := h.salesmanService.GetSalesmen(c.Request.Context(), c.Query("shopId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, salesmen)
}

// GetSalesman returns a single salesman
func (h *SalesmanHandlers) GetSalesman(c *gin.Context) {
	salesman, err := h.salesmanService.GetSalesman(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, salesman)
}

// UpdateSalesman applies a partial update
func (h *SalesmanHandlers) UpdateSalesman(c *gin.Context) {
	var req models.SalesmanUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	salesman, err := h.salesmanService.UpdateSalesman(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, salesman)
}

// DeleteSalesman removes a salesman; their sales stay put
func (h *SalesmanHandlers) DeleteSalesman(c *gin.Context) {
	if err := h.salesmanService.DeleteSalesman(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Salesman deleted")
}
