package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product Model
type Product struct {
	ID            uint            `gorm:"primaryKey"`                             // Primary key
	NameEN        string          `gorm:"column:name_en;size:200;not null"`       // English name
	NameAR        string          `gorm:"column:name_ar;size:200;not null"`       // Arabic name (falls back to English at creation)
	DescriptionEN string          `gorm:"column:description_en;type:text"`        // English description
	DescriptionAR string          `gorm:"column:description_ar;type:text"`        // Arabic description
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`            // Unit price, always > 0
	Stock         int             `gorm:"not null;default:0"`                     // Units on hand, never negative
	SKU           string          `gorm:"column:sku;size:50;uniqueIndex;not null"` // Unique product code
	CategoryID    uint            `gorm:"not null"`                               // Foreign key to Category
	Category      Category        // Owning category
	IngredientsEN string          `gorm:"column:ingredients_en;type:text"` // English ingredients list
	IngredientsAR string          `gorm:"column:ingredients_ar;type:text"` // Arabic ingredients list
	UsageEN       string          `gorm:"column:usage_en;type:text"`       // English usage instructions
	UsageAR       string          `gorm:"column:usage_ar;type:text"`       // Arabic usage instructions
	IsFeatured    bool            `gorm:"default:false"`                   // Featured on the storefront
	CreatedAt     time.Time       // Timestamp of creation, drives the default sort
	Images        []ProductImage  `gorm:"constraint:OnDelete:CASCADE"` // Owned images, removed with the product
}

// ProductImage Model
type ProductImage struct {
	ID        uint   `gorm:"primaryKey"`         // Primary key
	ProductID uint   `gorm:"index;not null"`     // Foreign key to Product
	URL       string `gorm:"size:500;not null"`  // Public URL of the stored file
	AltText   string `gorm:"size:200"`           // Alt text, defaults to the product's English name
}
