package addbooktocatalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	commandType = "AddBookToCatalog"
)

// Command represents the intent to add a book with its copies to the catalog.
type Command struct {
	BookID     uuid.UUID
	Title      string
	ISBN       string
	Authors    string
	BookType   core.BookType
	TagIDs     []uuid.UUID
	Copies     int
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	bookID uuid.UUID,
	title string,
	isbn string,
	authors string,
	bookType core.BookType,
	tagIDs []uuid.UUID,
	copies int,
	occurredAt time.Time,
) Command {

	return Command{
		BookID:     bookID,
		Title:      title,
		ISBN:       isbn,
		Authors:    authors,
		BookType:   bookType,
		TagIDs:     tagIDs,
		Copies:     copies,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
