package recorddelaypenalty

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "RecordDelayPenalty"
)

// Command represents the intent to record the delay penalty of a returned borrow.
type Command struct {
	BorrowID   uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(borrowID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		BorrowID:   borrowID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
