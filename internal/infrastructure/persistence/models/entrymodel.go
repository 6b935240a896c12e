package models

import (
	"time"

	"relstore/internal/shared/constants"
	"relstore/internal/shared/utils/textutil"
)

// Entryable type discriminators. The set is closed: adding a payload type
// means adding a constant here and a branch in the entry repository's
// dispatch table, never subclassing.
const (
	EntryableTypeMessage = "Message"
	EntryableTypeComment = "Comment"
)

// Entryable is the behavior shared by entry payloads. The entry envelope
// delegates its title to whichever concrete payload it wraps.
type Entryable interface {
	EntryableTypeName() string
	EntryTitle() string
}

// EntryModel is the polymorphic envelope over exactly one payload row,
// chosen by the (entryable_type, entryable_id) pair. Deleting an entry
// cascades to its payload.
type EntryModel struct {
	ID            uint   `gorm:"primarykey"`
	EntryableType string `gorm:"size:30;not null;index:idx_entries_entryable"`
	EntryableID   uint   `gorm:"not null;index:idx_entries_entryable"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (EntryModel) TableName() string {
	return constants.TableEntries
}

// MessageModel is an entry payload with an explicit subject.
type MessageModel struct {
	ID        uint   `gorm:"primarykey"`
	Subject   string `gorm:"size:255"`
	Body      string `gorm:"size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return constants.TableMessages
}

func (m *MessageModel) EntryableTypeName() string {
	return EntryableTypeMessage
}

// EntryTitle returns the subject, falling back to a truncated body when the
// subject is empty.
func (m *MessageModel) EntryTitle() string {
	if m.Subject != "" {
		return m.Subject
	}
	return textutil.Truncate(m.Body, constants.EntryTitleMaxLen)
}

// CommentModel is an entry payload whose title is derived from its content.
type CommentModel struct {
	ID        uint   `gorm:"primarykey"`
	Content   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CommentModel) TableName() string {
	return constants.TableComments
}

func (c *CommentModel) EntryableTypeName() string {
	return EntryableTypeComment
}

// EntryTitle bounds the comment content to EntryTitleMaxLen characters,
// trailing marker included.
func (c *CommentModel) EntryTitle() string {
	return textutil.Truncate(c.Content, constants.EntryTitleMaxLen)
}
