package seeds

import (
	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
)

// SeedDemoData populates a small demo graph covering every association.
// Lookups go by natural keys, so reseeding an already seeded database is a
// no-op.
func SeedDemoData(db *gorm.DB) error {
	if err := seedAuthors(db); err != nil {
		return err
	}
	if err := seedSuppliers(db); err != nil {
		return err
	}
	if err := seedDocuments(db); err != nil {
		return err
	}
	if err := seedAssemblies(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedVehicles(db); err != nil {
		return err
	}
	return nil
}

func seedAuthors(db *gorm.DB) error {
	author := models.AuthorModel{Name: "Margaret Hale"}
	if err := db.FirstOrCreate(&author, models.AuthorModel{Name: author.Name}).Error; err != nil {
		return err
	}

	books := []models.BookModel{
		{Title: "North and South", AuthorID: author.ID},
		{Title: "Cranford", AuthorID: author.ID},
	}
	for _, book := range books {
		if err := db.FirstOrCreate(&book, models.BookModel{Title: book.Title, AuthorID: author.ID}).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedSuppliers(db *gorm.DB) error {
	supplier := models.SupplierModel{Name: "Northwind Traders"}
	if err := db.FirstOrCreate(&supplier, models.SupplierModel{Name: supplier.Name}).Error; err != nil {
		return err
	}

	account := models.AccountModel{SupplierID: supplier.ID, AccountNumber: "NW-0001"}
	if err := db.FirstOrCreate(&account, models.AccountModel{SupplierID: supplier.ID}).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.AccountHistoryModel{}).
		Where("account_id = ?", account.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		histories := []models.AccountHistoryModel{
			{AccountID: account.ID, CreditRating: 640},
			{AccountID: account.ID, CreditRating: 675},
		}
		if err := db.Create(&histories).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedDocuments(db *gorm.DB) error {
	doc := models.DocumentModel{Title: "Operations Handbook"}
	if err := db.FirstOrCreate(&doc, models.DocumentModel{Title: doc.Title}).Error; err != nil {
		return err
	}

	section := models.SectionModel{Title: "Getting Started", DocumentID: doc.ID}
	if err := db.FirstOrCreate(&section, models.SectionModel{Title: section.Title, DocumentID: doc.ID}).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.ParagraphModel{}).
		Where("section_id = ?", section.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		paragraphs := []models.ParagraphModel{
			{Content: "Welcome to the handbook.", SectionID: section.ID},
			{Content: "Keep this document up to date.", SectionID: section.ID},
		}
		if err := db.Create(&paragraphs).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAssemblies(db *gorm.DB) error {
	active := models.AssemblyModel{Name: "Drivetrain", Active: true}
	if err := db.FirstOrCreate(&active, models.AssemblyModel{Name: active.Name}).Error; err != nil {
		return err
	}
	retired := models.AssemblyModel{Name: "Legacy Drivetrain", Active: false}
	if err := db.FirstOrCreate(&retired, models.AssemblyModel{Name: retired.Name}).Error; err != nil {
		return err
	}

	part := models.PartModel{PartNumber: "DT-100"}
	if err := db.FirstOrCreate(&part, models.PartModel{PartNumber: part.PartNumber}).Error; err != nil {
		return err
	}

	for _, assemblyID := range []uint{active.ID, retired.ID} {
		join := models.AssemblyPartModel{AssemblyID: assemblyID, PartID: part.ID}
		if err := db.FirstOrCreate(&join, join).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(db *gorm.DB) error {
	product := models.ProductModel{Name: "Field Camera", Price: 249.00}
	if err := db.FirstOrCreate(&product, models.ProductModel{Name: product.Name}).Error; err != nil {
		return err
	}

	order := models.OrderModel{OrderUID: "11111111-2222-3333-4444-555555555555"}
	if err := db.FirstOrCreate(&order, models.OrderModel{OrderUID: order.OrderUID}).Error; err != nil {
		return err
	}

	join := models.OrderProductModel{OrderID: order.ID, ProductID: product.ID, Quantity: 2}
	if err := db.FirstOrCreate(&join, models.OrderProductModel{OrderID: order.ID, ProductID: product.ID}).Error; err != nil {
		return err
	}

	picture := models.PictureModel{
		Name:          "field-camera.jpg",
		ImageableType: "Product",
		ImageableID:   product.ID,
	}
	if err := db.FirstOrCreate(&picture, models.PictureModel{Name: picture.Name}).Error; err != nil {
		return err
	}
	return nil
}

func seedVehicles(db *gorm.DB) error {
	vehicles := []models.VehicleModel{
		{Kind: models.VehicleKindCar, Color: "silver", Price: 18500.00},
		{Kind: models.VehicleKindTruck, Color: "white", Price: 42000.00},
	}
	for _, vehicle := range vehicles {
		if err := db.FirstOrCreate(&vehicle, models.VehicleModel{Kind: vehicle.Kind, Color: vehicle.Color}).Error; err != nil {
			return err
		}
	}
	return nil
}
