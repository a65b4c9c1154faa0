package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/models"
	"dukatrack-backend/internal/services"
)

// AuthHandlers contains all authentication-related handlers
type AuthHandlers struct {
	ownerService    *services.OwnerService
	salesmanService *services.SalesmanService
	authService     *services.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(ownerService *services.OwnerService, salesmanService *services.SalesmanService, authService *services.AuthService) *AuthHandlers {
	return &AuthHandlers{
		ownerService:    ownerService,
		salesmanService: salesmanService,
		authService:     authService,
	}
}

// OwnerRegister sets up the shop owner account
func (h *AuthHandlers) OwnerRegister(c *gin.Context) {
	var req models.OwnerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	owner, err := h.ownerService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateOwnerToken(owner)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"owner": owner,
		"token": token,
	})
}

// OwnerLogin authenticates the shop owner
func (h *AuthHandlers) OwnerLogin(c *gin.Context) {
	var req models.OwnerLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	owner, err := h.ownerService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateOwnerToken(owner)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"owner": owner,
		"token": token,
	})
}

// SalesmanLogin authenticates a salesman. The two failure modes map to two
// distinct messages: unknown/inactive username vs wrong password.
func (h *AuthHandlers) SalesmanLogin(c *gin.Context) {
	var req models.SalesmanLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	salesman, err := h.salesmanService.Authenticate(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.authService.GenerateSalesmanToken(salesman)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"salesman": salesman,
		"token":    token,
	})
}

// Logout revokes the current session token
func (h *AuthHandlers) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token != "" {
		h.authService.BlacklistToken(token)
	}

	if c.GetString("role") == models.RoleSalesman {
		if err := h.salesmanService.Logout(c.Request.Context()); err != nil {
			respondError(c, err)
			return
		}
	}

	respondMessage(c, http.StatusOK, "Logged out successfully")
}
