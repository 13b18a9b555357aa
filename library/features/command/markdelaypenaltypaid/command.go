package markdelaypenaltypaid

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "MarkDelayPenaltyPaid"
)

// Command represents the intent to mark a delay penalty as paid.
type Command struct {
	PenaltyID  uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(penaltyID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		PenaltyID:  penaltyID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
