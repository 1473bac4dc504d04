package repository

import (
	"context"
	"errors"

	"gorm.io/gorm" // GORM ORM library

	"athar_commerce/internal/domain" // Domain models
)

// ImageRepository persists product images.
type ImageRepository interface {
	Create(ctx context.Context, image *domain.ProductImage) error
	// Get loads an image scoped to its product, so an image id from another
	// product does not resolve.
	Get(ctx context.Context, productID, imageID uint) (*domain.ProductImage, error)
	Delete(ctx context.Context, image *domain.ProductImage) error
}

type imageRepository struct {
	db *gorm.DB
}

func (r *imageRepository) Create(ctx context.Context, image *domain.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) Get(ctx context.Context, productID, imageID uint) (*domain.ProductImage, error) {
	var image domain.ProductImage
	err := r.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", imageID, productID).
		First(&image).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) Delete(ctx context.Context, image *domain.ProductImage) error {
	return r.db.WithContext(ctx).Delete(image).Error
}
