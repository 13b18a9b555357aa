package createborrow

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "CreateBorrow"
)

// Command represents a student's request to borrow a copy of a book.
type Command struct {
	BorrowID   uuid.UUID
	StudentID  uuid.UUID
	BookID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(borrowID uuid.UUID, studentID uuid.UUID, bookID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		BorrowID:   borrowID,
		StudentID:  studentID,
		BookID:     bookID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
