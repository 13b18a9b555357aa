package core

import (
	"time"

	"github.com/google/uuid"
)

// ReturningBorrowFailedEventType is the event type identifier.
const ReturningBorrowFailedEventType = "ReturningBorrowFailed"

// ReturningBorrowFailed records that terminating a borrow was rejected.
type ReturningBorrowFailed struct {
	EventType   EventTypeString
	BorrowID    BorrowIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildReturningBorrowFailed creates a new ReturningBorrowFailed event.
func BuildReturningBorrowFailed(
	borrowID uuid.UUID,
	failureInfo string,
	occurredAt time.Time,
) ReturningBorrowFailed {

	return ReturningBorrowFailed{
		EventType:   ReturningBorrowFailedEventType,
		BorrowID:    borrowID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReturningBorrowFailed) IsEventType() string {
	return ReturningBorrowFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBorrowFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e ReturningBorrowFailed) IsErrorEvent() bool {
	return true
}
