package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"athar_commerce/internal/middleware" // Context keys
	"athar_commerce/internal/service"    // Business logic
)

// Request structs
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates a user and returns it with a token.
func RegisterHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		user, token, err := auth.Register(c.Request.Context(), service.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		jsonOK(c, http.StatusCreated, gin.H{
			"user":  userJSON(user),
			"token": token,
		}, "Registration successful")
	}
}

// LoginHandler verifies credentials and returns the user with a token.
func LoginHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}
		user, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		jsonOK(c, http.StatusOK, gin.H{
			"user":  userJSON(user),
			"token": token,
		}, "Login successful")
	}
}

// MeHandler returns the authenticated caller's user record.
func MeHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			jsonError(c, http.StatusUnauthorized, "Authorization required")
			return
		}
		user, err := auth.Me(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		jsonOK(c, http.StatusOK, gin.H{"user": userJSON(user)}, "")
	}
}

// currentUserID reads the user id the JWT middleware stored in the context.
func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
