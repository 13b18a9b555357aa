package core

import (
	"time"

	"github.com/google/uuid"
)

// BookAddedToCatalogEventType is the event type identifier.
const BookAddedToCatalogEventType = "BookAddedToCatalog"

// BookAddedToCatalog represents a new catalog entry with its number of fungible copies.
type BookAddedToCatalog struct {
	EventType  EventTypeString
	BookID     BookIDString
	Title      string
	ISBN       ISBNString
	Authors    string
	BookType   BookType
	TagIDs     []TagIDString
	Copies     int
	OccurredAt OccurredAtTS
}

// BuildBookAddedToCatalog creates a new BookAddedToCatalog event.
func BuildBookAddedToCatalog(
	bookID uuid.UUID,
	title string,
	isbn string,
	authors string,
	bookType BookType,
	tagIDs []uuid.UUID,
	copies int,
	occurredAt time.Time,
) BookAddedToCatalog {

	tags := make([]TagIDString, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tags = append(tags, tagID.String())
	}

	return BookAddedToCatalog{
		EventType:  BookAddedToCatalogEventType,
		BookID:     bookID.String(),
		Title:      title,
		ISBN:       isbn,
		Authors:    authors,
		BookType:   bookType,
		TagIDs:     tags,
		Copies:     copies,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookAddedToCatalog) IsEventType() string {
	return BookAddedToCatalogEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookAddedToCatalog) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookAddedToCatalog) IsErrorEvent() bool {
	return false
}
