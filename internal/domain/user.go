package domain

import "time"

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey"`                        // Primary key
	Name         string    `gorm:"size:100;not null"`                 // Display name
	Email        string    `gorm:"size:120;uniqueIndex;not null"`     // Unique email, login identifier
	PasswordHash string    `gorm:"size:255;not null"`                 // bcrypt hash, never the plaintext
	Role         string    `gorm:"size:20;not null;default:customer"` // Role: customer or admin
	CreatedAt    time.Time // Timestamp of registration
	Orders       []Order   // One-to-many relationship with Order
}

// IsAdmin reports whether the user may perform admin-only operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
