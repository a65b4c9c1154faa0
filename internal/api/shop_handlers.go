package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/services"
)

// ShopHandlers contains shop CRUD handlers
type ShopHandlers struct {
	shopService *services.ShopService
}

// NewShopHandlers creates new shop handlers
func NewShopHandlers(shopService *services.ShopService) *ShopHandlers {
	return &ShopHandlers{shopService: shopService}
}

// CreateShop registers a new shop for the owner
func (h *ShopHandlers) CreateShop(c *gin.Context) {
	var req models.ShopCreation
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.CreateShop(c.Request.Context(), &req, c.GetString("subjectID"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, shop)
}

// GetShops lists all shops
func (h *ShopHandlers) GetShops(c *gin.Context) {
	shops, err := h.shopService.GetShops(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, shops)
}

// GetShop returns a single shop
func (h *ShopHandlers) GetShop(c *gin.Context) {
	shop, err := h.shopService.GetShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, shop)
}

// UpdateShop applies a partial update
func (h *ShopHandlers) UpdateShop(c *gin.Context) {
	var req models.ShopUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	shop, err := h.shopService.UpdateShop(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, shop)
}

// DeleteShop removes a shop; dependent data is intentionally left behind
func (h *ShopHandlers) DeleteShop(c *gin.Context) {
	if err := h.shopService.DeleteShop(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Shop deleted")
}

// GetCurrentShop returns the last-selected shop
func (h *ShopHandlers) GetCurrentShop(c *gin.Context) {
	shop, err := h.shopService.CurrentShop(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, shop)
}

// SelectShop marks a shop as the current one
func (h *ShopHandlers) SelectShop(c *gin.Context) {
	shop, err := h.shopService.SelectShop(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, shop)
}
