package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"        // Collision-free stored filenames
	"github.com/shopspring/decimal" // Fixed-point money
	"github.com/sirupsen/logrus"    // Logging library

	"athar_commerce/internal/domain"     // Domain models
	"athar_commerce/internal/repository" // Data access
	"athar_commerce/internal/storage"    // Image file storage
)

// UploadURLPrefix is where stored image files are served from.
const UploadURLPrefix = "/api/uploads/"

// allowedImageExts are the accepted upload extensions (lowercase, with dot).
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// CatalogService implements category, product and image management.
type CatalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	images     repository.ImageRepository
	files      storage.FileStore
}

// NewCatalogService wires the catalog over its repositories and file store.
func NewCatalogService(
	categories repository.CategoryRepository,
	products repository.ProductRepository,
	images repository.ImageRepository,
	files storage.FileStore,
) *CatalogService {
	return &CatalogService{categories: categories, products: products, images: images, files: files}
}

// ListCategories returns all categories. Localization happens at the
// serialization boundary.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// CategoryInput is the payload for CreateCategory.
type CategoryInput struct {
	NameEN string `json:"name_en"`
	NameAR string `json:"name_ar"`
	Slug   string `json:"slug"`
}

// CreateCategory creates a category. All three fields are required and the
// slug must be unique.
func (s *CatalogService) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if in.NameEN == "" || in.NameAR == "" || in.Slug == "" {
		return nil, validationError("name_en, name_ar, and slug are required")
	}
	existing, err := s.categories.GetBySlug(ctx, in.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}
	category := &domain.Category{NameEN: in.NameEN, NameAR: in.NameAR, Slug: in.Slug}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListProducts returns products matching the filter, images and category
// eagerly loaded.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, error) {
	return s.products.List(ctx, filter)
}

// GetProduct returns one product with its images and category.
func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ProductInput is the payload for CreateProduct. Blank Arabic text fields
// fall back to their English counterpart; that is a product policy, not an
// omission.
type ProductInput struct {
	NameEN        string          `json:"name_en"`
	NameAR        string          `json:"name_ar"`
	DescriptionEN string          `json:"description_en"`
	DescriptionAR string          `json:"description_ar"`
	IngredientsEN string          `json:"ingredients_en"`
	IngredientsAR string          `json:"ingredients_ar"`
	UsageEN       string          `json:"usage_en"`
	UsageAR       string          `json:"usage_ar"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	SKU           string          `json:"sku"`
	CategoryID    uint            `json:"category_id"`
	IsFeatured    bool            `json:"is_featured"`
}

// CreateProduct creates a product after validating required fields, price,
// stock, category existence and SKU uniqueness.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	var msgs []string
	if in.NameEN == "" {
		msgs = append(msgs, "name_en is required")
	}
	if in.SKU == "" {
		msgs = append(msgs, "sku is required")
	}
	if in.CategoryID == 0 {
		msgs = append(msgs, "category_id is required")
	}
	if !in.Price.IsPositive() {
		msgs = append(msgs, "price must be greater than 0")
	}
	if in.Stock < 0 {
		msgs = append(msgs, "stock must be a non-negative integer")
	}
	if len(msgs) > 0 {
		return nil, validationError(msgs...)
	}

	category, err := s.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, validationError(fmt.Sprintf("category with id %d does not exist", in.CategoryID))
	}

	existing, err := s.products.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSKUTaken
	}

	product := &domain.Product{
		NameEN:        in.NameEN,
		NameAR:        fallback(in.NameAR, in.NameEN),
		DescriptionEN: in.DescriptionEN,
		DescriptionAR: fallback(in.DescriptionAR, in.DescriptionEN),
		IngredientsEN: in.IngredientsEN,
		IngredientsAR: fallback(in.IngredientsAR, in.IngredientsEN),
		UsageEN:       in.UsageEN,
		UsageAR:       fallback(in.UsageAR, in.UsageEN),
		Price:         in.Price,
		Stock:         in.Stock,
		SKU:           in.SKU,
		CategoryID:    in.CategoryID,
		IsFeatured:    in.IsFeatured,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Category = *category
	return product, nil
}

// ProductUpdate is the payload for UpdateProduct. Nil fields are left
// untouched.
type ProductUpdate struct {
	NameEN        *string          `json:"name_en"`
	NameAR        *string          `json:"name_ar"`
	DescriptionEN *string          `json:"description_en"`
	DescriptionAR *string          `json:"description_ar"`
	IngredientsEN *string          `json:"ingredients_en"`
	IngredientsAR *string          `json:"ingredients_ar"`
	UsageEN       *string          `json:"usage_en"`
	UsageAR       *string          `json:"usage_ar"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock"`
	CategoryID    *uint            `json:"category_id"`
	IsFeatured    *bool            `json:"is_featured"`
}

// UpdateProduct applies a partial update. Updating name_en or description_en
// without an explicit Arabic counterpart re-derives the Arabic field from the
// new English value, mirroring the creation policy.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, in ProductUpdate) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if in.Price != nil && !in.Price.IsPositive() {
		return nil, validationError("price must be greater than 0")
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, validationError("stock must be a non-negative integer")
	}
	if in.CategoryID != nil {
		category, err := s.categories.GetByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, validationError(fmt.Sprintf("category with id %d does not exist", *in.CategoryID))
		}
		product.CategoryID = *in.CategoryID
		product.Category = *category
	}

	if in.NameEN != nil {
		product.NameEN = *in.NameEN
		if in.NameAR == nil || *in.NameAR == "" {
			product.NameAR = *in.NameEN
		}
	}
	if in.NameAR != nil && *in.NameAR != "" {
		product.NameAR = *in.NameAR
	}
	if in.DescriptionEN != nil {
		product.DescriptionEN = *in.DescriptionEN
		if in.DescriptionAR == nil || *in.DescriptionAR == "" {
			product.DescriptionAR = *in.DescriptionEN
		}
	}
	if in.DescriptionAR != nil && *in.DescriptionAR != "" {
		product.DescriptionAR = *in.DescriptionAR
	}
	if in.IngredientsEN != nil {
		product.IngredientsEN = *in.IngredientsEN
	}
	if in.IngredientsAR != nil {
		product.IngredientsAR = *in.IngredientsAR
	}
	if in.UsageEN != nil {
		product.UsageEN = *in.UsageEN
	}
	if in.UsageAR != nil {
		product.UsageAR = *in.UsageAR
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product, its image records (cascade) and their
// backing files (best-effort).
func (s *CatalogService) DeleteProduct(ctx context.Context, id uint) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if err := s.products.Delete(ctx, product); err != nil {
		return err
	}
	for _, img := range product.Images {
		if err := s.files.Remove(storedName(img.URL)); err != nil {
			logrus.WithFields(logrus.Fields{
				"product_id": id,
				"image_id":   img.ID,
				"error":      err.Error(),
			}).Warn("Could not remove image file")
		}
	}
	return nil
}

// UploadImage validates the file extension, stores the file under a
// generated name and records its URL. Alt text defaults to the product's
// English name.
func (s *CatalogService) UploadImage(ctx context.Context, productID uint, filename, altText string, r io.Reader) (*domain.ProductImage, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !allowedImageExts[strings.ToLower(filepath.Ext(filename))] {
		return nil, validationError("file type must be one of: png, jpg, jpeg, gif, webp")
	}

	stored := uuid.NewString() + "_" + safeFilename(filename)
	if err := s.files.Save(stored, r); err != nil {
		return nil, err
	}

	if altText == "" {
		altText = product.NameEN
	}
	image := &domain.ProductImage{
		ProductID: productID,
		URL:       UploadURLPrefix + stored,
		AltText:   altText,
	}
	if err := s.images.Create(ctx, image); err != nil {
		// The file stays behind; uploads are not transactional with the DB.
		return nil, err
	}
	return image, nil
}

// DeleteImage removes the record and, best-effort, the backing file.
func (s *CatalogService) DeleteImage(ctx context.Context, productID, imageID uint) error {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	image, err := s.images.Get(ctx, productID, imageID)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}
	if err := s.files.Remove(storedName(image.URL)); err != nil {
		logrus.WithFields(logrus.Fields{
			"product_id": productID,
			"image_id":   imageID,
			"error":      err.Error(),
		}).Warn("Could not remove image file")
	}
	return s.images.Delete(ctx, image)
}

// fallback returns value, or alt when value is blank.
func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}

// safeFilename strips any path components and whitespace from an uploaded
// filename before it becomes part of the stored name.
func safeFilename(name string) string {
	base := filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == '\\':
			return -1
		}
		return r
	}, base)
}

// storedName extracts the stored filename from a recorded URL.
func storedName(url string) string {
	return strings.TrimPrefix(url, UploadURLPrefix)
}
