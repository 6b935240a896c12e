package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// AssemblyRepository stores assemblies and writes to the assemblies/parts
// join table. Writes through this side are never filtered by the active
// flag: adding a part to an inactive assembly is allowed, the part just
// won't see it through its scoped read.
type AssemblyRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAssemblyRepository(db *gorm.DB, logger logger.Interface) *AssemblyRepository {
	return &AssemblyRepository{db: db, logger: logger}
}

func (r *AssemblyRepository) Create(ctx context.Context, assembly *models.AssemblyModel) error {
	if err := r.db.WithContext(ctx).Create(assembly).Error; err != nil {
		r.logger.Errorw("failed to create assembly", "error", err)
		return fmt.Errorf("failed to create assembly: %w", err)
	}
	return nil
}

func (r *AssemblyRepository) GetByID(ctx context.Context, id uint) (*models.AssemblyModel, error) {
	var assembly models.AssemblyModel
	if err := r.db.WithContext(ctx).First(&assembly, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("assembly not found")
		}
		return nil, fmt.Errorf("failed to get assembly: %w", err)
	}
	return &assembly, nil
}

func (r *AssemblyRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.AssemblyModel{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("failed to update assembly: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("assembly not found")
	}
	return nil
}

// Delete removes the assembly and its part links in one transaction. Parts
// themselves are left in place.
func (r *AssemblyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assembly_id = ?", id).
			Delete(&models.AssemblyPartModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete part links: %w", err)
		}

		result := tx.Delete(&models.AssemblyModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete assembly: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("assembly not found")
		}
		return nil
	})
}

// SetActive flips the assembly's visibility through scoped part reads.
func (r *AssemblyRepository) SetActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&models.AssemblyModel{}).
		Where("id = ?", id).
		Update("active", active)
	if result.Error != nil {
		return fmt.Errorf("failed to update assembly: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("assembly not found")
	}
	return nil
}

// AddPart links a part to this assembly. Both rows must exist; linking the
// same pair twice is a conflict.
func (r *AssemblyRepository) AddPart(ctx context.Context, assemblyID, partID uint) error {
	if _, err := r.GetByID(ctx, assemblyID); err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PartModel{}).
		Where("id = ?", partID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check part: %w", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("part not found")
	}

	join := &models.AssemblyPartModel{AssemblyID: assemblyID, PartID: partID}
	if err := r.db.WithContext(ctx).Create(join).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("part already linked to assembly")
		}
		r.logger.Errorw("failed to link part", "error", err, "assembly_id", assemblyID, "part_id", partID)
		return fmt.Errorf("failed to link part: %w", err)
	}
	return nil
}

// RemovePart unlinks a part from this assembly.
func (r *AssemblyRepository) RemovePart(ctx context.Context, assemblyID, partID uint) error {
	result := r.db.WithContext(ctx).
		Where("assembly_id = ? AND part_id = ?", assemblyID, partID).
		Delete(&models.AssemblyPartModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to unlink part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("part is not linked to assembly")
	}
	return nil
}

// Parts lists the assembly's parts. This direction of the relation is
// unscoped.
func (r *AssemblyRepository) Parts(ctx context.Context, assemblyID uint) ([]*models.PartModel, error) {
	var parts []*models.PartModel
	err := r.db.WithContext(ctx).
		Table(constants.TableParts).
		Select("parts.*").
		Joins("JOIN "+constants.TableAssembliesParts+" ON assemblies_parts.part_id = parts.id").
		Where("assemblies_parts.assembly_id = ?", assemblyID).
		Order("parts.id ASC").
		Find(&parts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	return parts, nil
}
