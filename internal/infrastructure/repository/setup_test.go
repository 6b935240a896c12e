package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.AuthorModel{},
		&models.BookModel{},
		&models.SupplierModel{},
		&models.AccountModel{},
		&models.AccountHistoryModel{},
		&models.DocumentModel{},
		&models.SectionModel{},
		&models.ParagraphModel{},
		&models.AssemblyModel{},
		&models.PartModel{},
		&models.AssemblyPartModel{},
		&models.OrderModel{},
		&models.ProductModel{},
		&models.OrderProductModel{},
		&models.EntryModel{},
		&models.MessageModel{},
		&models.CommentModel{},
		&models.PictureModel{},
		&models.EmployeeModel{},
		&models.PhysicianModel{},
		&models.PatientModel{},
		&models.AppointmentModel{},
		&models.VehicleModel{},
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
