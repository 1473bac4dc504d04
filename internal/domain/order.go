package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Transitions are admin-triggered and unconstrained; delivered
// and cancelled are terminal by convention only.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is a member of the order status set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order Model
type Order struct {
	ID             uint            `gorm:"primaryKey"`                        // Primary key
	UserID         uint            `gorm:"index;not null"`                    // Foreign key to User
	Status         string          `gorm:"size:20;not null;default:pending"`  // Current status
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`       // Sum of item line totals
	PaymentMethod  string          `gorm:"size:50;not null"`                  // Defaults to cash_on_delivery
	ShippingName   string          `gorm:"size:100;not null"`                 // Shipping snapshot: recipient name
	ShippingPhone  string          `gorm:"size:20;not null"`                  // Shipping snapshot: phone
	ShippingCity   string          `gorm:"size:100;not null"`                 // Shipping snapshot: city
	ShippingStreet string          `gorm:"size:200;not null"`                 // Shipping snapshot: street
	ShippingNotes  string          `gorm:"type:text"`                         // Optional delivery notes
	CreatedAt      time.Time       // Timestamp of placement, drives newest-first listings
	Items          []OrderItem     `gorm:"constraint:OnDelete:CASCADE"` // Line items, immutable after creation
}

// OrderItem Model. UnitPrice is a snapshot of the product price at order time
// and never changes afterwards.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey"`                  // Primary key
	OrderID   uint            `gorm:"index;not null"`              // Foreign key to Order
	ProductID uint            `gorm:"not null"`                    // Referenced product
	Product   Product         // Product preloaded for responses
	Quantity  int             `gorm:"not null"`                    // Units ordered, always > 0
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"` // Price snapshot at order time
	LineTotal decimal.Decimal `gorm:"type:decimal(10,2);not null"` // UnitPrice * Quantity
}
