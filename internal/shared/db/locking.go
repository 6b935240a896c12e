package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate adds a FOR UPDATE clause on dialects that support row-level
// locks. Association gates lock the owner row before the check-then-insert
// so concurrent adds against the same owner serialize instead of racing past
// the limit. SQLite serializes writers at the database level, so the clause
// is skipped there.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" || tx.Dialector.Name() == "sqlite3" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
