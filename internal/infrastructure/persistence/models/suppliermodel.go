package models

import (
	"time"

	"relstore/internal/shared/constants"
)

// SupplierModel represents the database persistence model for suppliers.
// A supplier owns exactly one account; account history is reachable from the
// supplier through that account (read-through association).
type SupplierModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SupplierModel) TableName() string {
	return constants.TableSuppliers
}

// AccountModel represents the database persistence model for accounts.
// The unique index on supplier_id keeps the supplier/account relation
// one-to-one at the storage level.
type AccountModel struct {
	ID            uint   `gorm:"primarykey"`
	SupplierID    uint   `gorm:"not null;uniqueIndex:idx_accounts_supplier"`
	AccountNumber string `gorm:"size:64"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return constants.TableAccounts
}

// AccountHistoryModel is an append-only credit record belonging to an account.
type AccountHistoryModel struct {
	ID           uint `gorm:"primarykey"`
	AccountID    uint `gorm:"not null;index:idx_account_histories_account"`
	CreditRating int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (AccountHistoryModel) TableName() string {
	return constants.TableAccountHistories
}
