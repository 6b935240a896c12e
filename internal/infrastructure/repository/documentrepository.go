package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/db"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// DocumentRepository stores the document/section/paragraph containment
// hierarchy. Deleting a document removes its whole subtree in one
// transaction: the delete closure is computed depth first before any row is
// removed, and any failure aborts the entire delete.
type DocumentRepository struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	logger logger.Interface
}

func NewDocumentRepository(gdb *gorm.DB, logger logger.Interface) *DocumentRepository {
	return &DocumentRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		logger: logger,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.DocumentModel) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		r.logger.Errorw("failed to create document", "error", err)
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*models.DocumentModel, error) {
	var doc models.DocumentModel
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("document not found")
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &doc, nil
}

func (r *DocumentRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.DocumentModel{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("failed to update document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("document not found")
	}
	return nil
}

// AddSection appends a section to an existing document.
func (r *DocumentRepository) AddSection(ctx context.Context, documentID uint, section *models.SectionModel) error {
	if _, err := r.GetByID(ctx, documentID); err != nil {
		return err
	}
	section.DocumentID = documentID
	if err := r.db.WithContext(ctx).Create(section).Error; err != nil {
		r.logger.Errorw("failed to add section", "error", err, "document_id", documentID)
		return fmt.Errorf("failed to add section: %w", err)
	}
	return nil
}

// AddParagraph appends a paragraph to an existing section.
func (r *DocumentRepository) AddParagraph(ctx context.Context, sectionID uint, paragraph *models.ParagraphModel) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SectionModel{}).
		Where("id = ?", sectionID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check section: %w", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("section not found")
	}

	paragraph.SectionID = sectionID
	if err := r.db.WithContext(ctx).Create(paragraph).Error; err != nil {
		r.logger.Errorw("failed to add paragraph", "error", err, "section_id", sectionID)
		return fmt.Errorf("failed to add paragraph: %w", err)
	}
	return nil
}

// Sections returns the document's sections.
func (r *DocumentRepository) Sections(ctx context.Context, documentID uint) ([]*models.SectionModel, error) {
	var sections []*models.SectionModel
	err := r.db.WithContext(ctx).
		Where("document_id = ?", documentID).
		Order("id ASC").
		Find(&sections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}
	return sections, nil
}

// Paragraphs returns the paragraphs of one section.
func (r *DocumentRepository) Paragraphs(ctx context.Context, sectionID uint) ([]*models.ParagraphModel, error) {
	var paragraphs []*models.ParagraphModel
	err := r.db.WithContext(ctx).
		Where("section_id = ?", sectionID).
		Order("id ASC").
		Find(&paragraphs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list paragraphs: %w", err)
	}
	return paragraphs, nil
}

// Delete removes the document and its whole subtree. The closure is computed
// first, then deleted bottom up (paragraphs, sections, document) so the tree
// is never observable half-removed; any error rolls the entire delete back.
func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var doc models.DocumentModel
		if err := tx.First(&doc, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("document not found")
			}
			return fmt.Errorf("failed to get document: %w", err)
		}

		var sectionIDs []uint
		if err := tx.Model(&models.SectionModel{}).
			Where("document_id = ?", id).
			Pluck("id", &sectionIDs).Error; err != nil {
			return fmt.Errorf("failed to collect sections: %w", err)
		}

		if len(sectionIDs) > 0 {
			if err := tx.Where("section_id IN ?", sectionIDs).
				Delete(&models.ParagraphModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete paragraphs: %w", err)
			}
			if err := tx.Where("document_id = ?", id).
				Delete(&models.SectionModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete sections: %w", err)
			}
		}

		if err := tx.Delete(&models.DocumentModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}
		return nil
	})

	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			r.logger.Errorw("failed to delete document", "error", err, "document_id", id)
		}
		return err
	}

	r.logger.Infow("document deleted", "document_id", id)
	return nil
}
