package models

import (
	"time"

	"relstore/internal/shared/constants"
)

// AuthorModel represents the database persistence model for authors.
// An author owns many books; the association gate caps how many it may
// accept (constants.AuthorBookLimit).
type AuthorModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (AuthorModel) TableName() string {
	return constants.TableAuthors
}

// BookModel represents the database persistence model for books.
type BookModel struct {
	ID          uint   `gorm:"primarykey"`
	Title       string `gorm:"size:255"`
	PublishedAt *time.Time
	AuthorID    uint `gorm:"not null;index:idx_books_author"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

// TableName specifies the table name for GORM
func (BookModel) TableName() string {
	return constants.TableBooks
}
