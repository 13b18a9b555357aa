package core

import (
	"time"

	"github.com/google/uuid"
)

// DeliveringBorrowFailedEventType is the event type identifier.
const DeliveringBorrowFailedEventType = "DeliveringBorrowFailed"

// DeliveringBorrowFailed records that starting a borrow was rejected.
type DeliveringBorrowFailed struct {
	EventType   EventTypeString
	BorrowID    BorrowIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildDeliveringBorrowFailed creates a new DeliveringBorrowFailed event.
func BuildDeliveringBorrowFailed(
	borrowID uuid.UUID,
	failureInfo string,
	occurredAt time.Time,
) DeliveringBorrowFailed {

	return DeliveringBorrowFailed{
		EventType:   DeliveringBorrowFailedEventType,
		BorrowID:    borrowID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e DeliveringBorrowFailed) IsEventType() string {
	return DeliveringBorrowFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DeliveringBorrowFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e DeliveringBorrowFailed) IsErrorEvent() bool {
	return true
}
