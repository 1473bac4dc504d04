package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"athar_commerce/internal/domain"
	"athar_commerce/internal/utils"
)

const testSecret = "test-secret"

// stubUsers serves a fixed set of users for the admin gate.
type stubUsers struct {
	byID map[uint]*domain.User
}

func (s *stubUsers) Create(_ context.Context, _ *domain.User) error { return nil }

func (s *stubUsers) GetByID(_ context.Context, id uint) (*domain.User, error) {
	return s.byID[id], nil
}

func (s *stubUsers) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, nil
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		id, _ := c.Get(ContextUserID)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	token, err := utils.GenerateJWT(42, testSecret)
	require.NoError(t, err)

	w := doRequest(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	w := doRequest(newAuthRouter(), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization required")
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	w := doRequest(newAuthRouter(), "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doRequest(newAuthRouter(), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token has expired")
}

func newAdminRouter(users *stubUsers, asUserID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	setUser := func(c *gin.Context) {
		if asUserID != 0 {
			c.Set(ContextUserID, asUserID)
		}
	}
	r.GET("/admin", setUser, AdminOnlyMiddleware(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminOnlyMiddleware(t *testing.T) {
	users := &stubUsers{byID: map[uint]*domain.User{
		1: {ID: 1, Role: domain.RoleAdmin},
		2: {ID: 2, Role: domain.RoleCustomer},
	}}

	serve := func(asUserID uint) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		w := httptest.NewRecorder()
		newAdminRouter(users, asUserID).ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, serve(1).Code)

	w := serve(2) // customer
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")

	assert.Equal(t, http.StatusForbidden, serve(99).Code) // user row gone

	w = serve(0) // no user id in context
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
