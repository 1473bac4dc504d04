package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing

	"athar_commerce/internal/domain"     // Domain models
	"athar_commerce/internal/repository" // Data access
	"athar_commerce/internal/utils"      // JWT helpers
)

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	users     repository.UserRepository
	jwtSecret string
}

// NewAuthService builds an AuthService signing tokens with jwtSecret.
func NewAuthService(users repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// RegisterInput is the payload for Register.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // optional, defaults to customer
}

// Register creates a user with a bcrypt-hashed password and returns it
// together with a signed token.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name is required")
	}
	if in.Email == "" {
		missing = append(missing, "email is required")
	}
	if in.Password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return nil, "", validationError(missing...)
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleCustomer && role != domain.RoleAdmin {
		return nil, "", validationError(fmt.Sprintf("role must be %q or %q", domain.RoleCustomer, domain.RoleAdmin))
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Info("User registered")
	return user, token, nil
}

// Login verifies credentials with a constant-time bcrypt compare. A missing
// user and a wrong password return the same error on purpose.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", validationError("email and password are required")
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := utils.GenerateJWT(user.ID, s.jwtSecret)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Me resolves the authenticated caller's user record.
func (s *AuthService) Me(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
