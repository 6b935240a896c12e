package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"relstore/internal/infrastructure/persistence/models"
	"relstore/internal/shared/constants"
	apperrors "relstore/internal/shared/errors"
)

func seedDocumentTree(t *testing.T, repo *DocumentRepository, sections, paragraphsPerSection int) *models.DocumentModel {
	ctx := context.Background()
	doc := &models.DocumentModel{Title: "manual"}
	require.NoError(t, repo.Create(ctx, doc))

	for i := 0; i < sections; i++ {
		section := &models.SectionModel{Title: "section"}
		require.NoError(t, repo.AddSection(ctx, doc.ID, section))
		for j := 0; j < paragraphsPerSection; j++ {
			require.NoError(t, repo.AddParagraph(ctx, section.ID, &models.ParagraphModel{Content: "text"}))
		}
	}
	return doc
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	var count int64
	require.NoError(t, db.Table(table).Count(&count).Error)
	return count
}

func TestDocumentRepository_Delete(t *testing.T) {
	t.Run("cascades to sections and paragraphs", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db, testLogger())
		ctx := context.Background()

		doc := seedDocumentTree(t, repo, 2, 3)
		other := seedDocumentTree(t, repo, 1, 1)

		require.NoError(t, repo.Delete(ctx, doc.ID))

		_, err := repo.GetByID(ctx, doc.ID)
		assert.True(t, apperrors.IsNotFoundError(err))
		assert.Equal(t, int64(1), countRows(t, db, constants.TableDocuments))
		assert.Equal(t, int64(1), countRows(t, db, constants.TableSections))
		assert.Equal(t, int64(1), countRows(t, db, constants.TableParagraphs))

		sections, err := repo.Sections(ctx, other.ID)
		require.NoError(t, err)
		assert.Len(t, sections, 1)
	})

	t.Run("missing document", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db, testLogger())

		err := repo.Delete(context.Background(), 777)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("rolls back everything when a leaf delete fails", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewDocumentRepository(db, testLogger())
		ctx := context.Background()

		doc := seedDocumentTree(t, repo, 2, 2)

		err := db.Callback().Delete().Before("gorm:delete").Register("fail_paragraphs", func(tx *gorm.DB) {
			if tx.Statement.Table == constants.TableParagraphs {
				tx.AddError(errors.New("storage failure"))
			}
		})
		require.NoError(t, err)

		err = repo.Delete(ctx, doc.ID)
		assert.Error(t, err)

		assert.Equal(t, int64(1), countRows(t, db, constants.TableDocuments))
		assert.Equal(t, int64(2), countRows(t, db, constants.TableSections))
		assert.Equal(t, int64(4), countRows(t, db, constants.TableParagraphs))
	})
}

func TestDocumentRepository_Tree(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDocumentRepository(db, testLogger())
	ctx := context.Background()

	doc := &models.DocumentModel{Title: "spec sheet"}
	require.NoError(t, repo.Create(ctx, doc))

	first := &models.SectionModel{Title: "intro"}
	require.NoError(t, repo.AddSection(ctx, doc.ID, first))
	second := &models.SectionModel{Title: "details"}
	require.NoError(t, repo.AddSection(ctx, doc.ID, second))

	require.NoError(t, repo.AddParagraph(ctx, first.ID, &models.ParagraphModel{Content: "p1"}))
	require.NoError(t, repo.AddParagraph(ctx, first.ID, &models.ParagraphModel{Content: "p2"}))

	sections, err := repo.Sections(ctx, doc.ID)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "intro", sections[0].Title)

	paragraphs, err := repo.Paragraphs(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, paragraphs, 2)
	assert.Equal(t, "p1", paragraphs[0].Content)

	t.Run("section requires existing document", func(t *testing.T) {
		err := repo.AddSection(ctx, 888, &models.SectionModel{Title: "orphan"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("paragraph requires existing section", func(t *testing.T) {
		err := repo.AddParagraph(ctx, 888, &models.ParagraphModel{Content: "orphan"})
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
