package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal" // Fixed-point money
	"gorm.io/gorm"                  // GORM ORM library
	"gorm.io/gorm/clause"           // Row locking for the order transaction

	"athar_commerce/internal/domain" // Domain models
)

// Product sort orders accepted by ProductFilter.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductFilter describes the optional, AND-composed product list filters.
// Zero values mean "not set".
type ProductFilter struct {
	Search     string           // Case-insensitive substring over names and descriptions, both languages
	CategoryID uint             // Restrict to one category
	MinPrice   *decimal.Decimal // Inclusive lower price bound
	MaxPrice   *decimal.Decimal // Inclusive upper price bound
	Featured   bool             // Featured products only
	Sort       string           // One of the Sort* constants, newest by default
}

// ProductRepository persists products. GetForUpdate must only be called inside
// a transaction; it takes a row lock so concurrent orders cannot oversell.
type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	GetByID(ctx context.Context, id uint) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	GetForUpdate(ctx context.Context, id uint) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	Save(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, product *domain.Product) error
	DecrementStock(ctx context.Context, id uint, quantity int) error
}

type productRepository struct {
	db *gorm.DB
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name_en) LIKE ? OR LOWER(name_ar) LIKE ? OR LOWER(description_en) LIKE ? OR LOWER(description_ar) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Featured {
		query = query.Where("is_featured = ?", true)
	}
	switch filter.Sort {
	case SortPriceAsc:
		query = query.Order("price asc")
	case SortPriceDesc:
		query = query.Order("price desc")
	default: // newest
		query = query.Order("created_at desc")
	}
	var products []domain.Product
	// Eager-load images and category to avoid per-product round trips
	if err := query.Preload("Images").Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Preload("Images").Preload("Category").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetForUpdate loads a product under SELECT ... FOR UPDATE. Concurrent order
// transactions serialize on the row, so the stock check and decrement are
// read-modify-write consistent.
func (r *productRepository) GetForUpdate(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, product *domain.Product) error {
	// Image rows go with the product via the FK cascade
	return r.db.WithContext(ctx).Select("Images").Delete(product).Error
}

func (r *productRepository) DecrementStock(ctx context.Context, id uint, quantity int) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).
		Update("stock", gorm.Expr("stock - ?", quantity)).Error
}
