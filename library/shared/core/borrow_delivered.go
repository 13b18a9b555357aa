package core

import (
	"time"

	"github.com/google/uuid"
)

// BorrowDeliveredEventType is the event type identifier.
const BorrowDeliveredEventType = "BorrowDelivered"

// BorrowDelivered represents the hand-over of the book to the student; OccurredAt is the borrowed_at time.
type BorrowDelivered struct {
	EventType    EventTypeString
	BorrowID     BorrowIDString
	StudentID    StudentIDString
	BookID       BookIDString
	DurationDays int
	OccurredAt   OccurredAtTS
}

// BuildBorrowDelivered creates a new BorrowDelivered event.
func BuildBorrowDelivered(
	borrowID uuid.UUID,
	studentID uuid.UUID,
	bookID uuid.UUID,
	durationDays int,
	occurredAt time.Time,
) BorrowDelivered {

	return BorrowDelivered{
		EventType:    BorrowDeliveredEventType,
		BorrowID:     borrowID.String(),
		StudentID:    studentID.String(),
		BookID:       bookID.String(),
		DurationDays: durationDays,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BorrowDelivered) IsEventType() string {
	return BorrowDeliveredEventType
}

// HasOccurredAt returns when this event occurred.
func (e BorrowDelivered) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BorrowDelivered) IsErrorEvent() bool {
	return false
}
