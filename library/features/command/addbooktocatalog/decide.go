package addbooktocatalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	maxTitleLength = 200
	minISBNLength  = 10
	maxISBNLength  = 13
)

type state struct {
	bookAlreadyAdded bool
	existingISBN     string
	isbnIsTaken      bool
	knownTagIDs      map[string]bool
}

// Decide implements the business logic of adding a book to the catalog.
//
// Business Rules:
//
//	GIVEN: a book with BookID, ISBN, type, tags and number of copies
//	WHEN: AddBookToCatalog command is received
//	THEN: BookAddedToCatalog event is generated
//	ERROR: InvalidBook if the title, ISBN, type or copies are invalid
//	ERROR: DuplicateISBN if another book already has this ISBN
//	ERROR: TagNotFound if one of the tags does not exist
//	ERROR: BookIDConflict if a book with this BookID but another ISBN exists
//	IDEMPOTENCY: if the book was already added with the same ISBN, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.BookID.String(), command.ISBN)

	if s.bookAlreadyAdded {
		if s.existingISBN != command.ISBN {
			return failure(command, core.ErrBookIDConflict)
		}

		return core.IdempotentDecision()
	}

	if reason := invalidBookReason(command); reason != "" {
		return failure(command, fmt.Errorf("%w: %s", core.ErrInvalidBook, reason))
	}

	if s.isbnIsTaken {
		return failure(command, core.ErrDuplicateISBN)
	}

	for _, tagID := range command.TagIDs {
		if !s.knownTagIDs[tagID.String()] {
			return failure(command, fmt.Errorf("%w: %s", core.ErrTagNotFound, tagID))
		}
	}

	return core.SuccessDecision(
		core.BuildBookAddedToCatalog(
			command.BookID,
			command.Title,
			command.ISBN,
			command.Authors,
			command.BookType,
			command.TagIDs,
			command.Copies,
			command.OccurredAt,
		),
	)
}

func invalidBookReason(command Command) string {
	switch {
	case strings.TrimSpace(command.Title) == "":
		return "title is required"
	case utf8.RuneCountInString(command.Title) > maxTitleLength:
		return "title must not exceed 200 characters"
	case len(command.ISBN) < minISBNLength || len(command.ISBN) > maxISBNLength:
		return "isbn must have 10 to 13 characters"
	case !core.IsValidBookType(command.BookType):
		return "book type must be one of R, A, T, O"
	case command.Copies < 0:
		return "copies must not be negative"
	default:
		return ""
	}
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildAddingBookToCatalogFailed(command.BookID, command.ISBN, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

func project(history core.DomainEvents, bookID string, isbn string) state {
	s := state{knownTagIDs: make(map[string]bool)}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			switch {
			case e.BookID == bookID:
				s.bookAlreadyAdded = true
				s.existingISBN = e.ISBN
			case e.ISBN == isbn:
				s.isbnIsTaken = true
			}

		case core.TagCreated:
			s.knownTagIDs[e.TagID] = true
		}
	}

	return s
}

// BuildEventFilter selects the book itself, any book with the same ISBN and the referenced tags.
func BuildEventFilter(bookID uuid.UUID, isbn string, tagIDs []uuid.UUID) eventstore.Filter {
	books := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookAddedToCatalogEventType).
		AndAnyPredicateOf(
			eventstore.P("BookID", bookID.String()),
			eventstore.P("ISBN", isbn),
		)

	if len(tagIDs) == 0 {
		return books.Finalize()
	}

	tagPredicates := make([]eventstore.FilterPredicate, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		tagPredicates = append(tagPredicates, eventstore.P("TagID", tagID.String()))
	}

	return books.
		OrMatching().
		AnyEventTypeOf(core.TagCreatedEventType).
		AndAnyPredicateOf(tagPredicates[0], tagPredicates[1:]...).
		Finalize()
}
