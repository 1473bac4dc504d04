package domain

// Category Model
type Category struct {
	ID       uint      `gorm:"primaryKey"`                    // Primary key
	NameEN   string    `gorm:"column:name_en;size:100;not null"` // English name
	NameAR   string    `gorm:"column:name_ar;size:100;not null"` // Arabic name
	Slug     string    `gorm:"size:100;uniqueIndex;not null"` // Unique URL-safe identifier
	Products []Product // One-to-many relationship with Product
}

// Name returns the category name localized for the requested language.
// Any language other than English resolves to the Arabic name.
func (c *Category) Name(lang string) string {
	if lang == "en" {
		return c.NameEN
	}
	return c.NameAR
}
