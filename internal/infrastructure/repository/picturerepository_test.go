package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relstore/internal/infrastructure/persistence/models"
	apperrors "relstore/internal/shared/errors"
)

func TestPictureRepository_Attach(t *testing.T) {
	db := setupTestDB(t)
	registry := NewDefaultImageableRegistry(db)
	pictures := NewPictureRepository(db, testLogger(), registry)
	products := NewProductRepository(db, testLogger())
	employees := NewEmployeeRepository(db, testLogger())
	ctx := context.Background()

	product := &models.ProductModel{Name: "camera", Price: 199.00}
	require.NoError(t, products.Create(ctx, product))
	employee := &models.EmployeeModel{Name: "Iris"}
	require.NoError(t, employees.Create(ctx, employee))

	t.Run("attach to product", func(t *testing.T) {
		picture := &models.PictureModel{
			Name:          "front.jpg",
			ImageableType: ImageableTypeProduct,
			ImageableID:   product.ID,
		}
		require.NoError(t, pictures.Attach(ctx, picture))
		assert.NotZero(t, picture.ID)
	})

	t.Run("attach to employee", func(t *testing.T) {
		picture := &models.PictureModel{
			Name:          "badge.png",
			ImageableType: ImageableTypeEmployee,
			ImageableID:   employee.ID,
		}
		require.NoError(t, pictures.Attach(ctx, picture))
	})

	t.Run("name is required", func(t *testing.T) {
		err := pictures.Attach(ctx, &models.PictureModel{
			ImageableType: ImageableTypeProduct,
			ImageableID:   product.ID,
		})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("unregistered target type", func(t *testing.T) {
		err := pictures.Attach(ctx, &models.PictureModel{
			Name:          "x.jpg",
			ImageableType: "Warehouse",
			ImageableID:   1,
		})
		assert.True(t, apperrors.IsUnknownTypeError(err))
	})

	t.Run("registered type with missing target", func(t *testing.T) {
		err := pictures.Attach(ctx, &models.PictureModel{
			Name:          "x.jpg",
			ImageableType: ImageableTypeProduct,
			ImageableID:   9999,
		})
		assert.True(t, apperrors.IsDanglingReferenceError(err))
	})

	t.Run("list by target", func(t *testing.T) {
		list, err := pictures.For(ctx, ImageableTypeProduct, product.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "front.jpg", list[0].Name)
	})
}

func TestPictureRepository_RegistryIsOpen(t *testing.T) {
	db := setupTestDB(t)
	registry := NewDefaultImageableRegistry(db)
	pictures := NewPictureRepository(db, testLogger(), registry)
	ctx := context.Background()

	part := &models.PartModel{PartNumber: "PN-IMG"}
	require.NoError(t, db.Create(part).Error)

	registry.Register("Part", existsProbe(db, &models.PartModel{}))

	picture := &models.PictureModel{Name: "part.jpg", ImageableType: "Part", ImageableID: part.ID}
	assert.NoError(t, pictures.Attach(ctx, picture))
	assert.Contains(t, registry.TypeNames(), "Part")
}

func TestPictureRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	registry := NewDefaultImageableRegistry(db)
	pictures := NewPictureRepository(db, testLogger(), registry)
	employees := NewEmployeeRepository(db, testLogger())
	ctx := context.Background()

	employee := &models.EmployeeModel{Name: "Jun"}
	require.NoError(t, employees.Create(ctx, employee))

	picture := &models.PictureModel{Name: "temp.jpg", ImageableType: ImageableTypeEmployee, ImageableID: employee.ID}
	require.NoError(t, pictures.Attach(ctx, picture))

	require.NoError(t, pictures.Delete(ctx, picture.ID))

	_, err := pictures.GetByID(ctx, picture.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = pictures.Delete(ctx, picture.ID)
	assert.True(t, apperrors.IsNotFoundError(err))
}
