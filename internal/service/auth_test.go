package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"athar_commerce/internal/domain"
	"athar_commerce/internal/utils"
)

const testSecret = "test-secret"

func TestAuthService_Register(t *testing.T) {
	s := newMemStore()
	svc := NewAuthService(s.Users(), testSecret)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, RegisterInput{
		Name:     "Sara",
		Email:    "sara@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, domain.RoleCustomer, user.Role) // default role
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

	claims, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthService_Register_AdminRole(t *testing.T) {
	s := newMemStore()
	svc := NewAuthService(s.Users(), testSecret)

	user, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Root", Email: "admin@example.com", Password: "pw", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestAuthService_Register_Validation(t *testing.T) {
	s := newMemStore()
	svc := NewAuthService(s.Users(), testSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Messages, "name is required")
	assert.Contains(t, verr.Messages, "email is required")
	assert.Contains(t, verr.Messages, "password is required")

	_, _, err = svc.Register(ctx, RegisterInput{
		Name: "X", Email: "x@example.com", Password: "pw", Role: "superuser",
	})
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, s.users)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	s := newMemStore()
	svc := NewAuthService(s.Users(), testSecret)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, RegisterInput{Name: "A", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, RegisterInput{Name: "B", Email: "a@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, s.users, 1)
}

func TestAuthService_Login(t *testing.T) {
	s := newMemStore()
	svc := NewAuthService(s.Users(), testSecret)
	ctx := context.Background()

	registered, _, err := svc.Register(ctx, RegisterInput{Name: "Sara", Email: "sara@example.com", Password: "s3cret"})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "sara@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := utils.ParseJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// Unknown email and wrong password fail identically
	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "sara@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "", "")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAuthService_Me(t *testing.T) {
	s := newMemStore()
	svc := NewAuthService(s.Users(), testSecret)
	u := s.addUser("Sara", "sara@example.com", "hash", domain.RoleCustomer)

	got, err := svc.Me(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "sara@example.com", got.Email)

	_, err = svc.Me(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
