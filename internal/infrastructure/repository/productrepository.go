package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// ProductRepository provides product CRUD. Products also serve as imageable
// targets for pictures.
type ProductRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) *ProductRepository {
	return &ProductRepository{db: db, logger: logger}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.ProductModel) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		r.logger.Errorw("failed to create product", "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*models.ProductModel, error) {
	var product models.ProductModel
	if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("product not found")
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}
