package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"athar_commerce/internal/service" // Service errors
)

// jsonOK writes the success envelope. data and message are omitted when
// empty so payloads match {success, data?, message?}.
func jsonOK(c *gin.Context, status int, data any, message string) {
	body := gin.H{"success": true}
	if data != nil {
		body["data"] = data
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// jsonError writes the failure envelope {success, message, errors?}.
func jsonError(c *gin.Context, status int, message string, errs ...string) {
	body := gin.H{"success": false, "message": message}
	if len(errs) > 0 {
		body["errors"] = errs
	}
	c.JSON(status, body)
}

// respondError maps service errors onto the envelope. Conflicts map to 400
// (not 409) and unexpected errors surface their raw message with a 500, both
// preserved client-visible behaviors.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		jsonError(c, http.StatusBadRequest, "Validation failed", verr.Messages...)
	case errors.Is(err, service.ErrEmailTaken):
		jsonError(c, http.StatusBadRequest, "Email already registered", "Email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		jsonError(c, http.StatusUnauthorized, "Invalid credentials", "Invalid email or password")
	case errors.Is(err, service.ErrSlugTaken):
		jsonError(c, http.StatusBadRequest, "Category slug already exists")
	case errors.Is(err, service.ErrSKUTaken):
		jsonError(c, http.StatusBadRequest, "SKU already exists")
	case errors.Is(err, service.ErrInsufficientStock):
		jsonError(c, http.StatusBadRequest, "Insufficient stock", err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		jsonError(c, http.StatusBadRequest, "Invalid status", err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		jsonError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrProductNotFound):
		jsonError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrImageNotFound):
		jsonError(c, http.StatusNotFound, "Image not found")
	case errors.Is(err, service.ErrOrderNotFound):
		jsonError(c, http.StatusNotFound, "Order not found")
	default:
		jsonError(c, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}
