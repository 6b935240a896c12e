package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	apperrors "relstore/internal/shared/errors"
	"relstore/internal/shared/logger"
)

// AppointmentRepository stores physicians, patients, and the appointments
// linking them. Unlike the order/product join, appointments are addressed
// by their own id and carry a date attribute.
type AppointmentRepository struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewAppointmentRepository(db *gorm.DB, logger logger.Interface) *AppointmentRepository {
	return &AppointmentRepository{db: db, logger: logger}
}

func (r *AppointmentRepository) CreatePhysician(ctx context.Context, physician *models.PhysicianModel) error {
	if err := r.db.WithContext(ctx).Create(physician).Error; err != nil {
		r.logger.Errorw("failed to create physician", "error", err)
		return fmt.Errorf("failed to create physician: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) CreatePatient(ctx context.Context, patient *models.PatientModel) error {
	if err := r.db.WithContext(ctx).Create(patient).Error; err != nil {
		r.logger.Errorw("failed to create patient", "error", err)
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// Book creates an appointment between an existing physician and patient.
func (r *AppointmentRepository) Book(ctx context.Context, physicianID, patientID uint, date time.Time) (*models.AppointmentModel, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PhysicianModel{}).
		Where("id = ?", physicianID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check physician: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NewNotFoundError("physician not found")
	}

	if err := r.db.WithContext(ctx).Model(&models.PatientModel{}).
		Where("id = ?", patientID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NewNotFoundError("patient not found")
	}

	appointment := &models.AppointmentModel{
		PhysicianID:     physicianID,
		PatientID:       patientID,
		AppointmentDate: date,
	}
	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		r.logger.Errorw("failed to book appointment", "error", err,
			"physician_id", physicianID, "patient_id", patientID)
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}
	return appointment, nil
}

// Cancel removes one appointment by its own id.
func (r *AppointmentRepository) Cancel(ctx context.Context, appointmentID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AppointmentModel{}, appointmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to cancel appointment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("appointment not found")
	}
	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id uint) (*models.AppointmentModel, error) {
	var appointment models.AppointmentModel
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("appointment not found")
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

// Appointments lists a physician's appointments, soonest first.
func (r *AppointmentRepository) Appointments(ctx context.Context, physicianID uint) ([]*models.AppointmentModel, error) {
	var appointments []*models.AppointmentModel
	err := r.db.WithContext(ctx).
		Where("physician_id = ?", physicianID).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// Patients lists a physician's patients through the appointments join,
// de-duplicated.
func (r *AppointmentRepository) Patients(ctx context.Context, physicianID uint) ([]*models.PatientModel, error) {
	var patients []*models.PatientModel
	err := r.db.WithContext(ctx).
		Table(constants.TablePatients).
		Select("DISTINCT patients.*").
		Joins("JOIN "+constants.TableAppointments+" ON appointments.patient_id = patients.id").
		Where("appointments.physician_id = ?", physicianID).
		Order("patients.id ASC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
