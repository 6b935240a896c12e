package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/domain/hook"
	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	"relstore/internal/shared/db"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// AuthorRepository stores authors and mediates the author/book association.
// AddBook runs a pre-commit gate chain inside the insert transaction; a
// denial leaves the book unpersisted.
type AuthorRepository struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	logger logger.Interface
	gate   *hook.Chain[*models.AuthorModel, *models.BookModel]
}

func NewAuthorRepository(gdb *gorm.DB, logger logger.Interface) *AuthorRepository {
	r := &AuthorRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		logger: logger,
	}
	r.gate = hook.NewChain(r.checkCreditLimit)
	return r
}

// AddGate appends an additional BeforeAdd hook to the add-book gate. Hooks
// run in registration order and the first denial aborts the add.
func (r *AuthorRepository) AddGate(h hook.BeforeAdd[*models.AuthorModel, *models.BookModel]) {
	r.gate.Append(h)
}

func (r *AuthorRepository) Create(ctx context.Context, author *models.AuthorModel) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		r.logger.Errorw("failed to create author", "error", err)
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

func (r *AuthorRepository) GetByID(ctx context.Context, id uint) (*models.AuthorModel, error) {
	var author models.AuthorModel
	if err := r.db.WithContext(ctx).First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("author not found")
		}
		r.logger.Errorw("failed to get author", "error", err, "author_id", id)
		return nil, fmt.Errorf("failed to get author: %w", err)
	}
	return &author, nil
}

func (r *AuthorRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.AuthorModel{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		r.logger.Errorw("failed to update author", "error", result.Error, "author_id", id)
		return fmt.Errorf("failed to update author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("author not found")
	}
	return nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AuthorModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete author", "error", result.Error, "author_id", id)
		return fmt.Errorf("failed to delete author: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("author not found")
	}
	return nil
}

// AddBook attaches a book to an author. The owner row is locked for the
// duration of the gate check and insert, so concurrent adds cannot race past
// the book limit. On gate denial the book is not persisted and the caller
// gets a GatingDenied error.
func (r *AuthorRepository) AddBook(ctx context.Context, authorID uint, book *models.BookModel) error {
	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var author models.AuthorModel
		if err := db.LockForUpdate(tx).First(&author, authorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("author not found")
			}
			return fmt.Errorf("failed to lock author: %w", err)
		}

		if err := r.gate.Run(txCtx, &author, book); err != nil {
			return err
		}

		book.AuthorID = authorID
		if err := tx.Create(book).Error; err != nil {
			return fmt.Errorf("failed to create book: %w", err)
		}
		return nil
	})

	if err != nil {
		if apperrors.IsGatingDeniedError(err) {
			r.logger.Infow("book add denied by gate", "author_id", authorID)
		} else {
			r.logger.Errorw("failed to add book", "error", err, "author_id", authorID)
		}
		return err
	}

	r.logger.Infow("book added", "author_id", authorID, "book_id", book.ID)
	return nil
}

// Books returns the author's books.
func (r *AuthorRepository) Books(ctx context.Context, authorID uint) ([]*models.BookModel, error) {
	var books []*models.BookModel
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("id ASC").
		Find(&books).Error
	if err != nil {
		r.logger.Errorw("failed to list books", "error", err, "author_id", authorID)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// CountBooks returns how many books the author currently holds.
func (r *AuthorRepository) CountBooks(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.BookModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}

// checkCreditLimit denies the add once the author holds the configured
// number of books. It counts inside the gate transaction so the locked owner
// row keeps the check-then-insert serialized.
func (r *AuthorRepository) checkCreditLimit(ctx context.Context, author *models.AuthorModel, _ *models.BookModel) error {
	count, err := r.CountBooks(ctx, author.ID)
	if err != nil {
		return err
	}
	if count >= constants.AuthorBookLimit {
		return apperrors.NewGatingDeniedError(
			"author book limit reached",
			fmt.Sprintf("author %d already holds %d books", author.ID, count),
		)
	}
	return nil
}
