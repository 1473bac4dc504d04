package service

import (
	"errors"
	"strings"
)

// Sentinel errors. Handlers map these onto response status codes; duplicate
// keys deliberately map to 400, not 409, to keep the client-visible contract.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrSlugTaken          = errors.New("category slug already exists")
	ErrSKUTaken           = errors.New("sku already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

// ValidationError carries one message per rejected field so the response
// envelope can list them all at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func validationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
