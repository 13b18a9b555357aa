package core

import (
	"time"

	"github.com/google/uuid"
)

// CreatingTagFailedEventType is the event type identifier.
const CreatingTagFailedEventType = "CreatingTagFailed"

// CreatingTagFailed records that creating a tag was rejected.
type CreatingTagFailed struct {
	EventType   EventTypeString
	TagID       TagIDString
	Name        string
	FailureInfo string
	OccurredAt  OccurredAtTS
}

// BuildCreatingTagFailed creates a new CreatingTagFailed event.
func BuildCreatingTagFailed(
	tagID uuid.UUID,
	name string,
	failureInfo string,
	occurredAt time.Time,
) CreatingTagFailed {

	return CreatingTagFailed{
		EventType:   CreatingTagFailedEventType,
		TagID:       tagID.String(),
		Name:        name,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e CreatingTagFailed) IsEventType() string {
	return CreatingTagFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e CreatingTagFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected command.
func (e CreatingTagFailed) IsErrorEvent() bool {
	return true
}
