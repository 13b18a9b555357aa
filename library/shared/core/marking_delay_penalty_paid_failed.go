package core

import (
	"time"

	"github.com/google/uuid"
)

// MarkingDelayPenaltyPaidFailedEventType is the event type identifier.
const MarkingDelayPenaltyPaidFailedEventType = "MarkingDelayPenaltyPaidFailed"

// MarkingDelayPenaltyPaidFailed records that marking a delay penalty as paid was rejected.
type MarkingDelayPenaltyPaidFailed struct {
	EventType   EventTypeString
	PenaltyID   PenaltyIDString
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildMarkingDelayPenaltyPaidFailed creates a new MarkingDelayPenaltyPaidFailed event.
func BuildMarkingDelayPenaltyPaidFailed(
	penaltyID uuid.UUID,
	failureInfo string,
	occurredAt time.Time,
) MarkingDelayPenaltyPaidFailed {

	return MarkingDelayPenaltyPaidFailed{
		EventType:   MarkingDelayPenaltyPaidFailedEventType,
		PenaltyID:   penaltyID.String(),
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e MarkingDelayPenaltyPaidFailed) IsEventType() string {
	return MarkingDelayPenaltyPaidFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e MarkingDelayPenaltyPaidFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e MarkingDelayPenaltyPaidFailed) IsErrorEvent() bool {
	return true
}
