package core

import (
	"time"

	"github.com/google/uuid"
)

// DelayPenaltyImposedEventType is the event type identifier.
const DelayPenaltyImposedEventType = "DelayPenaltyImposed"

// DelayPenaltyImposed represents the unpaid penalty for a borrow that was returned overdue.
// Amount never changes afterward.
type DelayPenaltyImposed struct {
	EventType  EventTypeString
	PenaltyID  PenaltyIDString
	BorrowID   BorrowIDString
	StudentID  StudentIDString
	BookID     BookIDString
	OutDays    int
	Amount     int64
	OccurredAt OccurredAtTS
}

// BuildDelayPenaltyImposed creates a new DelayPenaltyImposed event, the PenaltyID is derived from the borrowID.
func BuildDelayPenaltyImposed(
	borrowID uuid.UUID,
	studentID uuid.UUID,
	bookID uuid.UUID,
	outDays int,
	occurredAt time.Time,
) DelayPenaltyImposed {

	return DelayPenaltyImposed{
		EventType:  DelayPenaltyImposedEventType,
		PenaltyID:  PenaltyIDFor(borrowID).String(),
		BorrowID:   borrowID.String(),
		StudentID:  studentID.String(),
		BookID:     bookID.String(),
		OutDays:    outDays,
		Amount:     PenaltyAmount(outDays),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e DelayPenaltyImposed) IsEventType() string {
	return DelayPenaltyImposedEventType
}

// HasOccurredAt returns when this event occurred.
func (e DelayPenaltyImposed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e DelayPenaltyImposed) IsErrorEvent() bool {
	return false
}
