package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// HealthHandler reports liveness.
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		jsonOK(c, http.StatusOK, nil, "API is running")
	}
}
