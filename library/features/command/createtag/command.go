package createtag

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "CreateTag"
)

// Command represents the intent to create a tag.
type Command struct {
	TagID      uuid.UUID
	Name       string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(tagID uuid.UUID, name string, occurredAt time.Time) Command {
	return Command{
		TagID:      tagID,
		Name:       name,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
