package core

import (
	"time"

	"github.com/google/uuid"
)

// RecordingDelayPenaltyFailedEventType is the event type identifier.
const RecordingDelayPenaltyFailedEventType = "RecordingDelayPenaltyFailed"

// RecordingDelayPenaltyFailed records that recording the delay penalty of a borrow was rejected.
type RecordingDelayPenaltyFailed struct {
	EventType   EventTypeString
	BorrowID    BorrowIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildRecordingDelayPenaltyFailed creates a new RecordingDelayPenaltyFailed event.
func BuildRecordingDelayPenaltyFailed(
	borrowID uuid.UUID,
	failureInfo string,
	occurredAt time.Time,
) RecordingDelayPenaltyFailed {

	return RecordingDelayPenaltyFailed{
		EventType:   RecordingDelayPenaltyFailedEventType,
		BorrowID:    borrowID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e RecordingDelayPenaltyFailed) IsEventType() string {
	return RecordingDelayPenaltyFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e RecordingDelayPenaltyFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e RecordingDelayPenaltyFailed) IsErrorEvent() bool {
	return true
}
