package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relstore/internal/infrastructure/persistence/models"
	apperrors "relstore/internal/shared/errors"
)

func TestSupplierRepository_CreateAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupplierRepository(db, testLogger())
	ctx := context.Background()

	supplier := &models.SupplierModel{Name: "Acme"}
	require.NoError(t, repo.Create(ctx, supplier))

	t.Run("first account succeeds", func(t *testing.T) {
		account, err := repo.CreateAccount(ctx, supplier.ID, "ACC-001")
		require.NoError(t, err)
		assert.NotZero(t, account.ID)
		assert.Equal(t, supplier.ID, account.SupplierID)
	})

	t.Run("second account is a conflict", func(t *testing.T) {
		_, err := repo.CreateAccount(ctx, supplier.ID, "ACC-002")
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("missing supplier", func(t *testing.T) {
		_, err := repo.CreateAccount(ctx, 9999, "ACC-003")
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSupplierRepository_AccountHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupplierRepository(db, testLogger())
	ctx := context.Background()

	supplier := &models.SupplierModel{Name: "Globex"}
	require.NoError(t, repo.Create(ctx, supplier))
	account, err := repo.CreateAccount(ctx, supplier.ID, "ACC-100")
	require.NoError(t, err)

	_, err = repo.AddHistory(ctx, account.ID, 650)
	require.NoError(t, err)
	_, err = repo.AddHistory(ctx, account.ID, 700)
	require.NoError(t, err)

	t.Run("latest record through the supplier", func(t *testing.T) {
		history, err := repo.AccountHistory(ctx, supplier.ID)
		require.NoError(t, err)
		assert.Equal(t, 700, history.CreditRating)
	})

	t.Run("all records oldest first", func(t *testing.T) {
		histories, err := repo.AccountHistories(ctx, supplier.ID)
		require.NoError(t, err)
		require.Len(t, histories, 2)
		assert.Equal(t, 650, histories[0].CreditRating)
		assert.Equal(t, 700, histories[1].CreditRating)
	})

	t.Run("supplier without history", func(t *testing.T) {
		bare := &models.SupplierModel{Name: "Initech"}
		require.NoError(t, repo.Create(ctx, bare))

		_, err := repo.AccountHistory(ctx, bare.ID)
		assert.True(t, apperrors.IsNotFoundError(err))

		histories, err := repo.AccountHistories(ctx, bare.ID)
		require.NoError(t, err)
		assert.Empty(t, histories)
	})

	t.Run("history requires existing account", func(t *testing.T) {
		_, err := repo.AddHistory(ctx, 9999, 500)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestSupplierRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupplierRepository(db, testLogger())
	ctx := context.Background()

	supplier := &models.SupplierModel{Name: "Wayne"}
	require.NoError(t, repo.Create(ctx, supplier))
	account, err := repo.CreateAccount(ctx, supplier.ID, "ACC-300")
	require.NoError(t, err)
	_, err = repo.AddHistory(ctx, account.ID, 710)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, supplier.ID))

	_, err = repo.GetByID(ctx, supplier.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	var count int64
	require.NoError(t, db.Model(&models.AccountModel{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.AccountHistoryModel{}).Count(&count).Error)
	assert.Zero(t, count)

	err = repo.Delete(ctx, supplier.ID)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestSupplierRepository_Account(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSupplierRepository(db, testLogger())
	ctx := context.Background()

	supplier := &models.SupplierModel{Name: "Hooli"}
	require.NoError(t, repo.Create(ctx, supplier))

	_, err := repo.Account(ctx, supplier.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	created, err := repo.CreateAccount(ctx, supplier.ID, "ACC-200")
	require.NoError(t, err)

	account, err := repo.Account(ctx, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, account.ID)
	assert.Equal(t, "ACC-200", account.AccountNumber)
}
