package models

import (
	"time"

	"gorm.io/datatypes"

	"relstore/internal/shared/constants"
)

// Vehicle kinds. The hierarchy is flattened into a single table with a kind
// discriminator column; the repository validates the kind against this set.
const (
	VehicleKindCar        = "Car"
	VehicleKindTruck      = "Truck"
	VehicleKindMotorcycle = "Motorcycle"
)

// VehicleModel stores every vehicle kind in one table, discriminated by the
// type column.
type VehicleModel struct {
	ID        uint    `gorm:"primarykey"`
	Kind      string  `gorm:"column:type;size:30;not null;index:idx_vehicles_type" json:"type" validate:"required,oneof=Car Truck Motorcycle"`
	Color     string  `gorm:"size:30"`
	Price     float64 `gorm:"type:decimal(10,2)"`
	Metadata  datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (VehicleModel) TableName() string {
	return constants.TableVehicles
}
