package models

import (
	"time"

	"relstore/internal/shared/constants"
)

// DocumentModel is the root of the document containment hierarchy.
// Deleting a document cascades to its sections and their paragraphs; the
// cascade is computed and executed by the repository inside one transaction,
// not by storage-level ON DELETE rules.
type DocumentModel struct {
	ID        uint   `gorm:"primarykey"`
	Title     string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (DocumentModel) TableName() string {
	return constants.TableDocuments
}

// SectionModel belongs to a document and owns paragraphs.
type SectionModel struct {
	ID         uint   `gorm:"primarykey"`
	Title      string `gorm:"size:255"`
	DocumentID uint   `gorm:"not null;index:idx_sections_document"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SectionModel) TableName() string {
	return constants.TableSections
}

// ParagraphModel belongs to a section.
type ParagraphModel struct {
	ID        uint   `gorm:"primarykey"`
	Content   string `gorm:"type:text"`
	SectionID uint   `gorm:"not null;index:idx_paragraphs_section"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ParagraphModel) TableName() string {
	return constants.TableParagraphs
}
