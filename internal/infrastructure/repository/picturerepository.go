package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/domain/imageable"
	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/db"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
	"relstore/internal/shared/validation"
)

// Imageable type names registered by default.
const (
	ImageableTypeProduct  = "Product"
	ImageableTypeEmployee = "Employee"
)

// NewDefaultImageableRegistry registers the entity types pictures attach to
// out of the box. The set is open: callers may register further types on the
// returned registry before handing it to the repository.
func NewDefaultImageableRegistry(gdb *gorm.DB) *imageable.Registry {
	registry := imageable.NewRegistry()
	registry.Register(ImageableTypeProduct, existsProbe(gdb, &models.ProductModel{}))
	registry.Register(ImageableTypeEmployee, existsProbe(gdb, &models.EmployeeModel{}))
	return registry
}

func existsProbe(gdb *gorm.DB, model interface{}) imageable.ExistsFunc {
	return func(ctx context.Context, id uint) (bool, error) {
		var count int64
		err := db.GetTxFromContext(ctx, gdb).Model(model).Where("id = ?", id).Count(&count).Error
		if err != nil {
			return false, fmt.Errorf("failed to probe imageable target: %w", err)
		}
		return count > 0, nil
	}
}

// PictureRepository stores pictures attached to arbitrary registered entity
// types through the (imageable_type, imageable_id) pair.
type PictureRepository struct {
	db       *gorm.DB
	tm       *db.TransactionManager
	logger   logger.Interface
	registry *imageable.Registry
}

func NewPictureRepository(gdb *gorm.DB, logger logger.Interface, registry *imageable.Registry) *PictureRepository {
	return &PictureRepository{
		db:       gdb,
		tm:       db.NewTransactionManager(gdb),
		logger:   logger,
		registry: registry,
	}
}

// Attach validates the picture and its target reference, then persists it.
// The existence check and the insert share a transaction so the reference
// cannot dangle at commit time.
func (r *PictureRepository) Attach(ctx context.Context, picture *models.PictureModel) error {
	if err := validation.Struct(picture); err != nil {
		return err
	}

	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := r.registry.Check(txCtx, picture.ImageableType, picture.ImageableID); err != nil {
			return err
		}
		tx := db.GetTxFromContext(txCtx, r.db)
		if err := tx.Create(picture).Error; err != nil {
			return fmt.Errorf("failed to create picture: %w", err)
		}
		return nil
	})

	if err != nil {
		if apperrors.IsAppError(err) {
			return err
		}
		r.logger.Errorw("failed to attach picture", "error", err,
			"imageable_type", picture.ImageableType, "imageable_id", picture.ImageableID)
		return err
	}

	r.logger.Infow("picture attached", "picture_id", picture.ID,
		"imageable_type", picture.ImageableType, "imageable_id", picture.ImageableID)
	return nil
}

func (r *PictureRepository) GetByID(ctx context.Context, id uint) (*models.PictureModel, error) {
	var picture models.PictureModel
	if err := r.db.WithContext(ctx).First(&picture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("picture not found")
		}
		return nil, fmt.Errorf("failed to get picture: %w", err)
	}
	return &picture, nil
}

// For lists the pictures attached to one target.
func (r *PictureRepository) For(ctx context.Context, imageableType string, imageableID uint) ([]*models.PictureModel, error) {
	var pictures []*models.PictureModel
	err := r.db.WithContext(ctx).
		Where("imageable_type = ? AND imageable_id = ?", imageableType, imageableID).
		Order("id ASC").
		Find(&pictures).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pictures: %w", err)
	}
	return pictures, nil
}

func (r *PictureRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PictureModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete picture: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("picture not found")
	}
	return nil
}
