package core

import (
	"time"

	"github.com/google/uuid"
)

// RequestingBorrowFailedEventType is the event type identifier.
const RequestingBorrowFailedEventType = "RequestingBorrowFailed"

// RequestingBorrowFailed records that a borrow request was rejected, e.g. because the student is ineligible or no copy is available.
type RequestingBorrowFailed struct {
	EventType   EventTypeString
	BorrowID    BorrowIDString
	StudentID   StudentIDString
	BookID      BookIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRequestingBorrowFailed creates a new RequestingBorrowFailed event.
func BuildRequestingBorrowFailed(
	borrowID uuid.UUID,
	studentID uuid.UUID,
	bookID uuid.UUID,
	failureInfo string,
	occurredAt time.Time,
) RequestingBorrowFailed {

	return RequestingBorrowFailed{
		EventType:   RequestingBorrowFailedEventType,
		BorrowID:    borrowID.String(),
		StudentID:   studentID.String(),
		BookID:      bookID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e RequestingBorrowFailed) IsEventType() string {
	return RequestingBorrowFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RequestingBorrowFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e RequestingBorrowFailed) IsErrorEvent() bool {
	return true
}
