package models

import (
	"time"

	"relstore/internal/shared/constants"
)

// AssemblyModel represents the database persistence model for assemblies.
// The active flag feeds the scoped association: a part's view of its
// assemblies is filtered to active rows on read, while writes through the
// assembly side stay unfiltered.
type AssemblyModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255"`
	Active    bool   `gorm:"not null;default:true;index:idx_assemblies_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AssemblyModel) TableName() string {
	return constants.TableAssemblies
}

// PartModel represents the database persistence model for parts.
type PartModel struct {
	ID         uint   `gorm:"primarykey"`
	PartNumber string `gorm:"size:64"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (PartModel) TableName() string {
	return constants.TableParts
}

// AssemblyPartModel is the assemblies/parts join row. It has no independent
// identity: the (assembly_id, part_id) pair is the whole key and the row
// carries no timestamps.
type AssemblyPartModel struct {
	AssemblyID uint `gorm:"primaryKey;autoIncrement:false"`
	PartID     uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for GORM
func (AssemblyPartModel) TableName() string {
	return constants.TableAssembliesParts
}
