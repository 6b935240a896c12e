package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	"relstore/internal/shared/db"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// PartRepository stores parts. Its view of the assemblies association is
// scoped: Assemblies only returns active rows, no matter what the join table
// holds. The scope is fixed here, at association-definition time, and never
// applies to writes through the assembly side.
type PartRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewPartRepository(gdb *gorm.DB, logger logger.Interface) *PartRepository {
	return &PartRepository{db: gdb, logger: logger}
}

func (r *PartRepository) Create(ctx context.Context, part *models.PartModel) error {
	if err := r.db.WithContext(ctx).Create(part).Error; err != nil {
		r.logger.Errorw("failed to create part", "error", err)
		return fmt.Errorf("failed to create part: %w", err)
	}
	return nil
}

func (r *PartRepository) GetByID(ctx context.Context, id uint) (*models.PartModel, error) {
	var part models.PartModel
	if err := r.db.WithContext(ctx).First(&part, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("part not found")
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return &part, nil
}

func (r *PartRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.PartModel{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("failed to update part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("part not found")
	}
	return nil
}

// Delete removes the part and its assembly links in one transaction.
func (r *PartRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("part_id = ?", id).
			Delete(&models.AssemblyPartModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete assembly links: %w", err)
		}

		result := tx.Delete(&models.PartModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete part: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("part not found")
		}
		return nil
	})
}

// Assemblies lists the part's assemblies, filtered to active rows.
func (r *PartRepository) Assemblies(ctx context.Context, partID uint) ([]*models.AssemblyModel, error) {
	var assemblies []*models.AssemblyModel
	err := r.db.WithContext(ctx).
		Table(constants.TableAssemblies).
		Select("assemblies.*").
		Joins("JOIN "+constants.TableAssembliesParts+" ON assemblies_parts.assembly_id = assemblies.id").
		Where("assemblies_parts.part_id = ?", partID).
		Scopes(db.ActiveOnlyWithAlias(constants.TableAssemblies)).
		Order("assemblies.id ASC").
		Find(&assemblies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assemblies: %w", err)
	}
	return assemblies, nil
}
