package core

import (
	"time"

	"github.com/google/uuid"
)

// DelayPenaltyPaidEventType is the event type identifier.
const DelayPenaltyPaidEventType = "DelayPenaltyPaid"

// DelayPenaltyPaid represents that a delay penalty was settled.
type DelayPenaltyPaid struct {
	EventType  EventTypeString
	PenaltyID  PenaltyIDString
	BorrowID   BorrowIDString
	StudentID  StudentIDString
	OccurredAt OccurredAtTS
}

// BuildDelayPenaltyPaid creates a new DelayPenaltyPaid event.
func BuildDelayPenaltyPaid(penaltyID uuid.UUID, borrowID string, studentID string, occurredAt time.Time) DelayPenaltyPaid {
	return DelayPenaltyPaid{
		EventType:  DelayPenaltyPaidEventType,
		PenaltyID:  penaltyID.String(),
		BorrowID:   borrowID,
		StudentID:  studentID,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e DelayPenaltyPaid) IsEventType() string {
	return DelayPenaltyPaidEventType
}

// HasOccurredAt returns when this event occurred.
func (e DelayPenaltyPaid) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DelayPenaltyPaid) IsErrorEvent() bool {
	return false
}
