package middleware

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"athar_commerce/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/golang-jwt/jwt/v5" // JWT errors
)

// ContextUserID is the gin context key the authenticated user id is stored
// under.
const ContextUserID = "userID"

// JWTAuthMiddleware validates bearer tokens and stores the caller's user id
// in the context. Missing, expired and invalid tokens each get their own 401
// message.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization required",
				"errors":  []string{"Authorization token is missing. Please login."},
			})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseJWT(tokenStr, secret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Token has expired",
					"errors":  []string{"Your session has expired. Please login again."},
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
				"errors":  []string{"Invalid authentication token. Please login again."},
			})
			return
		}
		c.Set(ContextUserID, claims.UserID) // Store userID in context
		c.Next()
	}
}
