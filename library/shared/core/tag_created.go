package core

import (
	"time"

	"github.com/google/uuid"
)

// TagCreatedEventType is the event type identifier.
const TagCreatedEventType = "TagCreated"

// TagCreated represents that a new tag can be attached to catalog books.
type TagCreated struct {
	EventType  EventTypeString
	TagID      TagIDString
	Name       string
	OccurredAt OccurredAtTS
}

// BuildTagCreated creates a new TagCreated event.
func BuildTagCreated(tagID uuid.UUID, name string, occurredAt time.Time) TagCreated {
	return TagCreated{
		EventType:  TagCreatedEventType,
		TagID:      tagID.String(),
		Name:       name,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e TagCreated) IsEventType() string {
	return TagCreatedEventType
}

// HasOccurredAt returns when this event occurred.
func (e TagCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e TagCreated) IsErrorEvent() bool {
	return false
}
