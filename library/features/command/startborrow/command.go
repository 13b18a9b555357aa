package startborrow

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "StartBorrow"
)

// Command represents the hand-over of a requested book to the student.
// DurationDays is the number of days the student may keep the book.
type Command struct {
	BorrowID     uuid.UUID
	DurationDays int
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(borrowID uuid.UUID, durationDays int, occurredAt time.Time) Command {
	return Command{
		BorrowID:     borrowID,
		DurationDays: durationDays,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
