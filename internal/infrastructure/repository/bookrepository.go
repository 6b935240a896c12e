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

// BookRepository provides direct book CRUD. Gated attachment goes through
// AuthorRepository.AddBook; this repository only enforces that the owning
// author exists.
type BookRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewBookRepository(db *gorm.DB, logger logger.Interface) *BookRepository {
	return &BookRepository{db: db, logger: logger}
}

func (r *BookRepository) Create(ctx context.Context, book *models.BookModel) error {
	if book.AuthorID == 0 {
		return apperrors.NewValidationError("author_id is required")
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AuthorModel{}).
		Where("id = ?", book.AuthorID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check author: %w", err)
	}
	if count == 0 {
		return apperrors.NewNotFoundError("author not found")
	}

	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		r.logger.Errorw("failed to create book", "error", err, "author_id", book.AuthorID)
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *BookRepository) GetByID(ctx context.Context, id uint) (*models.BookModel, error) {
	var book models.BookModel
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("book not found")
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &book, nil
}

func (r *BookRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.BookModel{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		r.logger.Errorw("failed to update book", "error", result.Error, "book_id", id)
		return fmt.Errorf("failed to update book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("book not found")
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BookModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete book", "error", result.Error, "book_id", id)
		return fmt.Errorf("failed to delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("book not found")
	}
	return nil
}
