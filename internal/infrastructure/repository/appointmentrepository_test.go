package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relstore/internal/infrastructure/persistence/models"
	apperrors "relstore/internal/shared/errors"
)

func TestAppointmentRepository_Book(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentRepository(db, testLogger())
	ctx := context.Background()

	physician := &models.PhysicianModel{Name: "Dr. Kim"}
	require.NoError(t, repo.CreatePhysician(ctx, physician))
	patient := &models.PatientModel{Name: "Lou"}
	require.NoError(t, repo.CreatePatient(ctx, patient))

	when := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)

	t.Run("book appointment", func(t *testing.T) {
		appointment, err := repo.Book(ctx, physician.ID, patient.ID, when)
		require.NoError(t, err)
		assert.NotZero(t, appointment.ID)
		assert.Equal(t, when, appointment.AppointmentDate.UTC())
	})

	t.Run("missing physician", func(t *testing.T) {
		_, err := repo.Book(ctx, 9999, patient.ID, when)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("missing patient", func(t *testing.T) {
		_, err := repo.Book(ctx, physician.ID, 9999, when)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestAppointmentRepository_Patients(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentRepository(db, testLogger())
	ctx := context.Background()

	physician := &models.PhysicianModel{Name: "Dr. Mo"}
	require.NoError(t, repo.CreatePhysician(ctx, physician))

	first := &models.PatientModel{Name: "Nia"}
	require.NoError(t, repo.CreatePatient(ctx, first))
	second := &models.PatientModel{Name: "Ola"}
	require.NoError(t, repo.CreatePatient(ctx, second))

	base := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	_, err := repo.Book(ctx, physician.ID, first.ID, base)
	require.NoError(t, err)
	_, err = repo.Book(ctx, physician.ID, first.ID, base.AddDate(0, 0, 7))
	require.NoError(t, err)
	_, err = repo.Book(ctx, physician.ID, second.ID, base.AddDate(0, 0, 1))
	require.NoError(t, err)

	t.Run("patients are de-duplicated", func(t *testing.T) {
		patients, err := repo.Patients(ctx, physician.ID)
		require.NoError(t, err)
		require.Len(t, patients, 2)
		assert.Equal(t, "Nia", patients[0].Name)
		assert.Equal(t, "Ola", patients[1].Name)
	})

	t.Run("appointments ordered by date", func(t *testing.T) {
		appointments, err := repo.Appointments(ctx, physician.ID)
		require.NoError(t, err)
		require.Len(t, appointments, 3)
		assert.True(t, appointments[0].AppointmentDate.Before(appointments[1].AppointmentDate))
		assert.True(t, appointments[1].AppointmentDate.Before(appointments[2].AppointmentDate))
	})
}

func TestAppointmentRepository_Cancel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentRepository(db, testLogger())
	ctx := context.Background()

	physician := &models.PhysicianModel{Name: "Dr. Pia"}
	require.NoError(t, repo.CreatePhysician(ctx, physician))
	patient := &models.PatientModel{Name: "Quin"}
	require.NoError(t, repo.CreatePatient(ctx, patient))

	appointment, err := repo.Book(ctx, physician.ID, patient.ID, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	require.NoError(t, repo.Cancel(ctx, appointment.ID))

	_, err = repo.GetByID(ctx, appointment.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Cancel(ctx, appointment.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	t.Run("cancel leaves the endpoints alone", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&models.PhysicianModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
		require.NoError(t, db.Model(&models.PatientModel{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
