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

// EmployeeRepository provides employee CRUD. Employees also serve as
// imageable targets for pictures.
type EmployeeRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewEmployeeRepository(db *gorm.DB, logger logger.Interface) *EmployeeRepository {
	return &EmployeeRepository{db: db, logger: logger}
}

func (r *EmployeeRepository) Create(ctx context.Context, employee *models.EmployeeModel) error {
	if err := validation.Struct(employee); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(employee).Error; err != nil {
		r.logger.Errorw("failed to create employee", "error", err)
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint) (*models.EmployeeModel, error) {
	var employee models.EmployeeModel
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("employee not found")
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.EmployeeModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete employee: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("employee not found")
	}
	return nil
}
