package core

import (
	"time"

	"github.com/google/uuid"
)

// BorrowReturnedEventType is the event type identifier.
const BorrowReturnedEventType = "BorrowReturned"

// BorrowReturned represents that the student brought the book back; OccurredAt is the returned_at time.
type BorrowReturned struct {
	EventType  EventTypeString
	BorrowID   BorrowIDString
	StudentID  StudentIDString
	BookID     BookIDString
	OccurredAt OccurredAtTS
}

// BuildBorrowReturned creates a new BorrowReturned event.
func BuildBorrowReturned(borrowID uuid.UUID, studentID uuid.UUID, bookID uuid.UUID, occurredAt time.Time) BorrowReturned {
	return BorrowReturned{
		EventType:  BorrowReturnedEventType,
		BorrowID:   borrowID.String(),
		StudentID:  studentID.String(),
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BorrowReturned) IsEventType() string {
	return BorrowReturnedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowReturned) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BorrowReturned) IsErrorEvent() bool {
	return false
}
