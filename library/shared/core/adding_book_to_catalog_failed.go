package core

import (
	"time"

	"github.com/google/uuid"
)

// AddingBookToCatalogFailedEventType is the event type identifier.
const AddingBookToCatalogFailedEventType = "AddingBookToCatalogFailed"

// AddingBookToCatalogFailed records that adding a book to the catalog was rejected.
type AddingBookToCatalogFailed struct {
	EventType   EventTypeString
	BookID      BookIDString
	ISBN        ISBNString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildAddingBookToCatalogFailed creates a new AddingBookToCatalogFailed event.
func BuildAddingBookToCatalogFailed(
	bookID uuid.UUID,
	isbn string,
	failureInfo string,
	occurredAt time.Time,
) AddingBookToCatalogFailed {

	return AddingBookToCatalogFailed{
		EventType:   AddingBookToCatalogFailedEventType,
		BookID:      bookID.String(),
		ISBN:        isbn,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e AddingBookToCatalogFailed) IsEventType() string {
	return AddingBookToCatalogFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e AddingBookToCatalogFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e AddingBookToCatalogFailed) IsErrorEvent() bool {
	return true
}
