package core

import (
	"time"

	"github.com/google/uuid"
)

// BorrowRequestedEventType is the event type identifier.
const BorrowRequestedEventType = "BorrowRequested"

// BorrowRequested represents an eligible student's request for a book.
// From now on the borrow is active and occupies one copy; OccurredAt is the requested_at time.
type BorrowRequested struct {
	EventType  EventTypeString
	BorrowID   BorrowIDString
	StudentID  StudentIDString
	BookID     BookIDString
	OccurredAt OccurredAtTS
}

// BuildBorrowRequested creates a new BorrowRequested event.
func BuildBorrowRequested(borrowID uuid.UUID, studentID uuid.UUID, bookID uuid.UUID, occurredAt time.Time) BorrowRequested {
	return BorrowRequested{
		EventType:  BorrowRequestedEventType,
		BorrowID:   borrowID.String(),
		StudentID:  studentID.String(),
		BookID:     bookID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BorrowRequested) IsEventType() string {
	return BorrowRequestedEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowRequested) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BorrowRequested) IsErrorEvent() bool {
	return false
}
