package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	apperrors "relstore/internal/shared/errors"
)

func TestAuthorRepository_AddBook(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorRepository(db, testLogger())
	ctx := context.Background()

	t.Run("add book below limit", func(t *testing.T) {
		author := &models.AuthorModel{Name: "Ann"}
		require.NoError(t, repo.Create(ctx, author))

		book := &models.BookModel{Title: "First"}
		err := repo.AddBook(ctx, author.ID, book)
		assert.NoError(t, err)
		assert.NotZero(t, book.ID)
		assert.Equal(t, author.ID, book.AuthorID)

		count, err := repo.CountBooks(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("deny add at limit and persist nothing", func(t *testing.T) {
		author := &models.AuthorModel{Name: "Ben"}
		require.NoError(t, repo.Create(ctx, author))

		for i := 0; i < constants.AuthorBookLimit; i++ {
			require.NoError(t, repo.AddBook(ctx, author.ID, &models.BookModel{Title: "ok"}))
		}

		err := repo.AddBook(ctx, author.ID, &models.BookModel{Title: "one too many"})
		assert.True(t, apperrors.IsGatingDeniedError(err))

		count, err := repo.CountBooks(ctx, author.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(constants.AuthorBookLimit), count)
	})

	t.Run("add book to missing author", func(t *testing.T) {
		err := repo.AddBook(ctx, 9999, &models.BookModel{Title: "orphan"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestAuthorRepository_GateChain(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorRepository(db, testLogger())
	ctx := context.Background()

	author := &models.AuthorModel{Name: "Cara"}
	require.NoError(t, repo.Create(ctx, author))

	var called []string
	repo.AddGate(func(ctx context.Context, a *models.AuthorModel, b *models.BookModel) error {
		called = append(called, "title")
		if b.Title == "" {
			return apperrors.NewGatingDeniedError("book title is required")
		}
		return nil
	})
	repo.AddGate(func(ctx context.Context, a *models.AuthorModel, b *models.BookModel) error {
		called = append(called, "never")
		return nil
	})

	err := repo.AddBook(ctx, author.ID, &models.BookModel{})
	assert.True(t, apperrors.IsGatingDeniedError(err))
	assert.Equal(t, []string{"title"}, called, "denial short-circuits later hooks")

	count, err := repo.CountBooks(ctx, author.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	called = nil
	err = repo.AddBook(ctx, author.ID, &models.BookModel{Title: "passes"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"title", "never"}, called)
}

func TestAuthorRepository_Books(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorRepository(db, testLogger())
	ctx := context.Background()

	author := &models.AuthorModel{Name: "Dee"}
	require.NoError(t, repo.Create(ctx, author))
	other := &models.AuthorModel{Name: "Eli"}
	require.NoError(t, repo.Create(ctx, other))

	require.NoError(t, repo.AddBook(ctx, author.ID, &models.BookModel{Title: "A"}))
	require.NoError(t, repo.AddBook(ctx, author.ID, &models.BookModel{Title: "B"}))
	require.NoError(t, repo.AddBook(ctx, other.ID, &models.BookModel{Title: "C"}))

	books, err := repo.Books(ctx, author.ID)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "A", books[0].Title)
	assert.Equal(t, "B", books[1].Title)
}

func TestAuthorRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuthorRepository(db, testLogger())
	ctx := context.Background()

	author := &models.AuthorModel{Name: "Fay"}
	require.NoError(t, repo.Create(ctx, author))

	found, err := repo.GetByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fay", found.Name)

	require.NoError(t, repo.Update(ctx, author.ID, map[string]interface{}{"name": "Faye"}))
	found, err = repo.GetByID(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, "Faye", found.Name)

	require.NoError(t, repo.Delete(ctx, author.ID))
	_, err = repo.GetByID(ctx, author.ID)
	assert.True(t, apperrors.IsNotFoundError(err))

	err = repo.Delete(ctx, author.ID)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestBookRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	authors := NewAuthorRepository(db, testLogger())
	books := NewBookRepository(db, testLogger())
	ctx := context.Background()

	t.Run("requires author_id", func(t *testing.T) {
		err := books.Create(ctx, &models.BookModel{Title: "no owner"})
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("requires existing author", func(t *testing.T) {
		err := books.Create(ctx, &models.BookModel{Title: "ghost owner", AuthorID: 4242})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("create and fetch", func(t *testing.T) {
		author := &models.AuthorModel{Name: "Gus"}
		require.NoError(t, authors.Create(ctx, author))

		book := &models.BookModel{Title: "direct", AuthorID: author.ID}
		require.NoError(t, books.Create(ctx, book))

		found, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, "direct", found.Title)
	})
}
