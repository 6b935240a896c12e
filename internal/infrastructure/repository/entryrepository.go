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

// EntryRepository stores the entry envelope and its payload rows. The
// payload set is closed: dispatch goes through a fixed table keyed by the
// entryable_type discriminator, and extending it means adding a loader
// branch, not subclassing. Envelope and payload are created and destroyed
// together.
type EntryRepository struct {
	db      *gorm.DB
	tm      *db.TransactionManager
	logger  logger.Interface
	loaders map[string]entryableLoader
}

// entryableLoader fetches one payload row by id.
type entryableLoader func(tx *gorm.DB, id uint) (models.Entryable, error)

func NewEntryRepository(gdb *gorm.DB, logger logger.Interface) *EntryRepository {
	r := &EntryRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		logger: logger,
	}
	r.loaders = map[string]entryableLoader{
		models.EntryableTypeMessage: func(tx *gorm.DB, id uint) (models.Entryable, error) {
			var m models.MessageModel
			if err := tx.First(&m, id).Error; err != nil {
				return nil, err
			}
			return &m, nil
		},
		models.EntryableTypeComment: func(tx *gorm.DB, id uint) (models.Entryable, error) {
			var c models.CommentModel
			if err := tx.First(&c, id).Error; err != nil {
				return nil, err
			}
			return &c, nil
		},
	}
	return r
}

// Create persists the payload and wraps it in an envelope, atomically.
func (r *EntryRepository) Create(ctx context.Context, payload models.Entryable) (*models.EntryModel, error) {
	var entry *models.EntryModel

	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var payloadID uint
		switch p := payload.(type) {
		case *models.MessageModel:
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("failed to create message: %w", err)
			}
			payloadID = p.ID
		case *models.CommentModel:
			if err := tx.Create(p).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			payloadID = p.ID
		default:
			return apperrors.NewUnknownTypeError("entryable type is not registered", payload.EntryableTypeName())
		}

		entry = &models.EntryModel{
			EntryableType: payload.EntryableTypeName(),
			EntryableID:   payloadID,
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create entry: %w", err)
		}
		return nil
	})

	if err != nil {
		r.logger.Errorw("failed to create entry", "error", err)
		return nil, err
	}

	r.logger.Infow("entry created", "entry_id", entry.ID, "entryable_type", entry.EntryableType)
	return entry, nil
}

func (r *EntryRepository) GetByID(ctx context.Context, id uint) (*models.EntryModel, error) {
	var entry models.EntryModel
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("entry not found")
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	return &entry, nil
}

// Resolve loads the entry's concrete payload by dispatching on the type
// discriminator. A tag outside the registered set yields UnknownType; a
// registered tag whose row is gone yields DanglingReference.
func (r *EntryRepository) Resolve(ctx context.Context, entryID uint) (models.Entryable, error) {
	entry, err := r.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return r.resolvePayload(db.GetTxFromContext(ctx, r.db), entry)
}

// Title returns the entry's title, delegated to whichever payload the
// envelope wraps.
func (r *EntryRepository) Title(ctx context.Context, entryID uint) (string, error) {
	payload, err := r.Resolve(ctx, entryID)
	if err != nil {
		return "", err
	}
	return payload.EntryTitle(), nil
}

// Delete removes the envelope and its payload in one transaction. The
// payload row is resolved first so a dangling reference surfaces instead of
// silently deleting half the pair.
func (r *EntryRepository) Delete(ctx context.Context, entryID uint) error {
	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var entry models.EntryModel
		if err := tx.First(&entry, entryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("entry not found")
			}
			return fmt.Errorf("failed to get entry: %w", err)
		}

		payload, err := r.resolvePayload(tx, &entry)
		if err != nil {
			return err
		}

		switch p := payload.(type) {
		case *models.MessageModel:
			if err := tx.Delete(&models.MessageModel{}, p.ID).Error; err != nil {
				return fmt.Errorf("failed to delete message: %w", err)
			}
		case *models.CommentModel:
			if err := tx.Delete(&models.CommentModel{}, p.ID).Error; err != nil {
				return fmt.Errorf("failed to delete comment: %w", err)
			}
		}

		if err := tx.Delete(&models.EntryModel{}, entryID).Error; err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		return nil
	})

	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			r.logger.Errorw("failed to delete entry", "error", err, "entry_id", entryID)
		}
		return err
	}

	r.logger.Infow("entry deleted", "entry_id", entryID)
	return nil
}

func (r *EntryRepository) resolvePayload(tx *gorm.DB, entry *models.EntryModel) (models.Entryable, error) {
	loader, ok := r.loaders[entry.EntryableType]
	if !ok {
		return nil, apperrors.NewUnknownTypeError("entryable type is not registered", entry.EntryableType)
	}

	payload, err := loader(tx, entry.EntryableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewDanglingReferenceError(
				"entry payload does not exist",
				fmt.Sprintf("%s/%d", entry.EntryableType, entry.EntryableID),
			)
		}
		return nil, fmt.Errorf("failed to load entry payload: %w", err)
	}
	return payload, nil
}
