package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
	"relstore/internal/shared/validation"
)

// VehicleRepository stores all vehicle kinds in a single table and filters
// by the kind discriminator on read.
type VehicleRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewVehicleRepository(db *gorm.DB, logger logger.Interface) *VehicleRepository {
	return &VehicleRepository{db: db, logger: logger}
}

// Create persists a vehicle after validating its kind against the known set.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *models.VehicleModel) error {
	if err := validation.Struct(vehicle); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		r.logger.Errorw("failed to create vehicle", "error", err, "kind", vehicle.Kind)
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id uint) (*models.VehicleModel, error) {
	var vehicle models.VehicleModel
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("vehicle not found")
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// ListByKind returns every vehicle of one kind.
func (r *VehicleRepository) ListByKind(ctx context.Context, kind string) ([]*models.VehicleModel, error) {
	switch kind {
	case models.VehicleKindCar, models.VehicleKindTruck, models.VehicleKindMotorcycle:
	default:
		return nil, apperrors.NewUnknownTypeError(fmt.Sprintf("unknown vehicle kind: %s", kind))
	}

	var vehicles []*models.VehicleModel
	err := r.db.WithContext(ctx).
		Where("type = ?", kind).
		Order("id ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.VehicleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vehicle: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("vehicle not found")
	}
	return nil
}
