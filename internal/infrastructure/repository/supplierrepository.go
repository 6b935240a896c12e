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

// SupplierRepository stores suppliers, their single account, and the
// account's credit history. History is readable straight from the supplier
// without materializing the intermediate account.
type SupplierRepository struct {
	db     *gorm.DB
	tm     *db.TransactionManager
	logger logger.Interface
}

func NewSupplierRepository(gdb *gorm.DB, logger logger.Interface) *SupplierRepository {
	return &SupplierRepository{
		db:     gdb,
		tm:     db.NewTransactionManager(gdb),
		logger: logger,
	}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *models.SupplierModel) error {
	if err := r.db.WithContext(ctx).Create(supplier).Error; err != nil {
		r.logger.Errorw("failed to create supplier", "error", err)
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) GetByID(ctx context.Context, id uint) (*models.SupplierModel, error) {
	var supplier models.SupplierModel
	if err := r.db.WithContext(ctx).First(&supplier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("supplier not found")
		}
		return nil, fmt.Errorf("failed to get supplier: %w", err)
	}
	return &supplier, nil
}

func (r *SupplierRepository) Update(ctx context.Context, id uint, patch map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.SupplierModel{}).Where("id = ?", id).Updates(patch)
	if result.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("supplier not found")
	}
	return nil
}

// Delete removes the supplier together with its account and the account's
// history, all or nothing.
func (r *SupplierRepository) Delete(ctx context.Context, id uint) error {
	err := r.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var supplier models.SupplierModel
		if err := tx.First(&supplier, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFoundError("supplier not found")
			}
			return fmt.Errorf("failed to get supplier: %w", err)
		}

		var accountIDs []uint
		if err := tx.Model(&models.AccountModel{}).
			Where("supplier_id = ?", id).
			Pluck("id", &accountIDs).Error; err != nil {
			return fmt.Errorf("failed to collect accounts: %w", err)
		}

		if len(accountIDs) > 0 {
			if err := tx.Where("account_id IN ?", accountIDs).
				Delete(&models.AccountHistoryModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete account histories: %w", err)
			}
			if err := tx.Where("supplier_id = ?", id).
				Delete(&models.AccountModel{}).Error; err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}
		}

		if err := tx.Delete(&models.SupplierModel{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete supplier: %w", err)
		}
		return nil
	})

	if err != nil {
		if !apperrors.IsNotFoundError(err) {
			r.logger.Errorw("failed to delete supplier", "error", err, "supplier_id", id)
		}
		return err
	}
	return nil
}

// CreateAccount opens the supplier's account. A supplier holds exactly one
// account; a second create is a conflict.
func (r *SupplierRepository) CreateAccount(ctx context.Context, supplierID uint, accountNumber string) (*models.AccountModel, error) {
	if _, err := r.GetByID(ctx, supplierID); err != nil {
		return nil, err
	}

	account := &models.AccountModel{
		SupplierID:    supplierID,
		AccountNumber: accountNumber,
	}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("supplier already has an account")
		}
		r.logger.Errorw("failed to create account", "error", err, "supplier_id", supplierID)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}

// Account returns the supplier's account.
func (r *SupplierRepository) Account(ctx context.Context, supplierID uint) (*models.AccountModel, error) {
	var account models.AccountModel
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("account not found")
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// AddHistory appends a credit record to an account.
func (r *SupplierRepository) AddHistory(ctx context.Context, accountID uint, creditRating int) (*models.AccountHistoryModel, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", accountID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check account: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NewNotFoundError("account not found")
	}

	history := &models.AccountHistoryModel{
		AccountID:    accountID,
		CreditRating: creditRating,
	}
	if err := r.db.WithContext(ctx).Create(history).Error; err != nil {
		r.logger.Errorw("failed to add account history", "error", err, "account_id", accountID)
		return nil, fmt.Errorf("failed to add account history: %w", err)
	}
	return history, nil
}

// AccountHistory resolves the supplier's latest credit record through its
// account in a single join, without loading the account itself.
func (r *SupplierRepository) AccountHistory(ctx context.Context, supplierID uint) (*models.AccountHistoryModel, error) {
	var history models.AccountHistoryModel
	err := r.db.WithContext(ctx).
		Table(constants.TableAccountHistories).
		Select("account_histories.*").
		Joins("JOIN "+constants.TableAccounts+" ON accounts.id = account_histories.account_id").
		Where("accounts.supplier_id = ?", supplierID).
		Order("account_histories.id DESC").
		Take(&history).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("account history not found")
		}
		return nil, fmt.Errorf("failed to get account history: %w", err)
	}
	return &history, nil
}

// AccountHistories lists every credit record reachable from the supplier,
// oldest first.
func (r *SupplierRepository) AccountHistories(ctx context.Context, supplierID uint) ([]*models.AccountHistoryModel, error) {
	var histories []*models.AccountHistoryModel
	err := r.db.WithContext(ctx).
		Table(constants.TableAccountHistories).
		Select("account_histories.*").
		Joins("JOIN "+constants.TableAccounts+" ON accounts.id = account_histories.account_id").
		Where("accounts.supplier_id = ?", supplierID).
		Order("account_histories.id ASC").
		Find(&histories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list account histories: %w", err)
	}
	return histories, nil
}
