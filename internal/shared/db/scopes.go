package db

import (
	"gorm.io/gorm"
)

// ActiveOnly is a GORM scope that filters rows to active = true. Scoped
// associations (a part's view of its assemblies) apply it on every read
// through the association; writes through the other side stay unfiltered.
//
// Example usage:
//
//	db.Model(&Model{}).Scopes(db.ActiveOnly()).Find(&results)
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("active = ?", true)
	}
}

// ActiveOnlyWithAlias filters active rows when the table carries an alias in
// a join query.
func ActiveOnlyWithAlias(alias string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".active = ?", true)
	}
}
