package migration

import (
	"fmt"

	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/logger"
)

// AutoMigrateModels lists every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
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
	}
}

// GormAutoMigrateStrategy derives the schema straight from the model structs.
// Intended for development only; versioned environments use GooseStrategy.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{
		logger: log.With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("starting auto migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
