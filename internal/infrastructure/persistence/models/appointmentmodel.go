package models

import (
	"time"

	"relstore/internal/shared/constants"
)

// PhysicianModel represents the database persistence model for physicians.
type PhysicianModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PhysicianModel) TableName() string {
	return constants.TablePhysicians
}

// PatientModel represents the database persistence model for patients.
type PatientModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PatientModel) TableName() string {
	return constants.TablePatients
}

// AppointmentModel joins physicians and patients. Unlike the order/product
// join it is independently addressable by a surrogate id and carries its own
// attribute, the appointment date.
type AppointmentModel struct {
	ID              uint `gorm:"primarykey"`
	PhysicianID     uint `gorm:"index:idx_appointments_physician"`
	PatientID       uint `gorm:"index:idx_appointments_patient"`
	AppointmentDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (AppointmentModel) TableName() string {
	return constants.TableAppointments
}
