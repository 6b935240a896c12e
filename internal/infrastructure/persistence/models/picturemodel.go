package models

import (
	"time"

	"gorm.io/datatypes"

	"relstore/internal/shared/constants"
)

// PictureModel attaches to any registered imageable entity through the
// (imageable_type, imageable_id) pair. The target set is open ended; the
// picture repository consults the imageable registry for existence before
// persisting a reference.
type PictureModel struct {
	ID            uint   `gorm:"primarykey"`
	Name          string `gorm:"size:255;not null" json:"name" validate:"required"`
	ImageableType string `gorm:"size:64;index:idx_pictures_imageable"`
	ImageableID   uint   `gorm:"index:idx_pictures_imageable"`
	Metadata      datatypes.JSON
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (PictureModel) TableName() string {
	return constants.TablePictures
}

// EmployeeModel is a plain entity that serves as an imageable target.
type EmployeeModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255;not null" json:"name" validate:"required"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return constants.TableEmployees
}
