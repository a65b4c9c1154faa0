package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/services"
)

// ProductHandlers contains product CRUD handlers
type ProductHandlers struct {
	productService *services.ProductService
}

// NewProductHandlers creates new product handlers
func NewProductHandlers(productService *services.ProductService) *ProductHandlers {
	return &ProductHandlers{productService: productService}
}

// CreateProduct adds a product to a shop's inventory
func (h *ProductHandlers) CreateProduct(c *gin.Context) {
	var req models.ProductCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, product)
}

// GetProducts lists products, optionally filtered by ?shopId=
func (h *ProductHandlers) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts(c.Request.Context(), c.Query("shopId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, products)
}

// GetProduct returns a single product
func (h *ProductHandlers) GetProduct(c *gin.Context) {
	product, err := h.productService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, product)
}

// UpdateProduct applies a partial update
func (h *ProductHandlers) UpdateProduct(c *gin.Context) {
	var req models.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, product)
}

// AdjustStock sets an explicit stock level
func (h *ProductHandlers) AdjustStock(c *gin.Context) {
	var req models.StockAdjustment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.productService.AdjustStock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, product)
}

// DeleteProduct removes a product; sales keep their snapshots
func (h *ProductHandlers) DeleteProduct(c *gin.Context) {
	if err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Product deleted")
}
