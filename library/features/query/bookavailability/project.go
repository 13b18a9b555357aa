package bookavailability

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project counts the active borrows of the queried book and compares them with its copies.
// It returns core.ErrBookNotFound if the book is not in the catalog.
func Project(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) (BookAvailability, error) {

	bookID := query.BookID.String()
	bookExists := false
	copies := 0
	activeBorrows := make(map[string]bool)

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				bookExists = true
				copies = e.Copies
			}

		case core.BorrowRequested:
			if e.BookID == bookID {
				activeBorrows[e.BorrowID] = true
			}

		case core.BorrowReturned:
			delete(activeBorrows, e.BorrowID)
		}
	}

	if !bookExists {
		return BookAvailability{}, core.ErrBookNotFound
	}

	return BookAvailability{
		BookID:             bookID,
		Copies:             copies,
		OutstandingBorrows: len(activeBorrows),
		AvailableCopies:    max(copies-len(activeBorrows), 0),
		IsAvailable:        len(activeBorrows) < copies,
		SequenceNumber:     maxSequenceNumber,
	}, nil
}

// BuildEventFilter creates the filter for the catalog entry and the borrows of the book.
func BuildEventFilter(bookID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BorrowRequestedEventType,
			core.BorrowReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
		Finalize()
}
