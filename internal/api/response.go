package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dukatrack-backend/internal/services"
	"dukatrack-backend/internal/utils"
)

// respondOK writes the standard success envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondMessage writes a success envelope with a message and no data
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// respondError maps a service error to a status code and writes the failure
// envelope. Unrecognized errors become a generic 500 so store internals never
// leak to clients.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again."

	var validationErrs utils.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		status = http.StatusBadRequest
		message = validationErrs.Error()

	case errors.Is(err, services.ErrNoProductSelected),
		errors.Is(err, services.ErrEmptyCustomerName),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrStockExceeded),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrRejectionReasonRequired),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrInvalidCommissionRate):
		status = http.StatusBadRequest
		message = err.Error()

	case errors.Is(err, services.ErrInvalidPassword):
		status = http.StatusUnauthorized
		message = "Invalid password"

	case errors.Is(err, services.ErrOwnerNotFound),
		errors.Is(err, services.ErrSalesmanNotFound):
		status = http.StatusUnauthorized
		message = err.Error()

	case errors.Is(err, services.ErrShopNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrSaleNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, services.ErrOwnerExists),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrMobileTaken),
		errors.Is(err, services.ErrInvalidTransition):
		status = http.StatusConflict
		message = err.Error()
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// respondBadRequest writes a 400 failure envelope for malformed bodies
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Invalid request data: " + detail,
	})
}
