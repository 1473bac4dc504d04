package middleware

import (
	"net/http" // HTTP status codes

	"athar_commerce/internal/repository" // User lookups

	"github.com/gin-gonic/gin" // Gin web framework
)

// AdminOnlyMiddleware re-checks the caller's role against the database on
// each request. A missing user row and a non-admin role both end in 403.
func AdminOnlyMiddleware(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization required",
			})
			return
		}
		user, err := users.GetByID(c.Request.Context(), userID.(uint))
		if err != nil || user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}
		c.Next()
	}
}
