package createborrow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

type state struct {
	borrowAlreadyRequested bool
	requestedByStudentID   string
	requestedForBookID     string
	bookExists             bool
	copies                 int
	activeBorrowsOfBook    map[string]bool
	activeBorrowsOfStudent map[string]bool
	unpaidPenalties        map[string]bool
}

// Decide implements the eligibility rules for creating a borrow.
//
// Business Rules:
//
//	GIVEN: a book with BookID and a student with StudentID
//	WHEN: CreateBorrow command is received
//	THEN: BorrowRequested event is generated, the borrow is in state Requested
//	ERROR: BookNotFound if the book is not in the catalog
//	ERROR: IneligibleStudent if the student has an active borrow
//	ERROR: IneligibleStudent if the student has an unpaid delay penalty
//	ERROR: BookUnavailable if all copies of the book are borrowed
//	ERROR: BorrowIDConflict if the BorrowID is taken by a borrow of another student or book
//	IDEMPOTENCY: if the borrow was already requested by the same student for the same book, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command)

	if s.borrowAlreadyRequested {
		if s.requestedByStudentID != command.StudentID.String() || s.requestedForBookID != command.BookID.String() {
			return failure(command, core.ErrBorrowIDConflict)
		}

		return core.IdempotentDecision()
	}

	if !s.bookExists {
		return failure(command, core.ErrBookNotFound)
	}

	if len(s.activeBorrowsOfStudent) > 0 {
		return failure(command, core.ErrStudentHasActiveBorrow)
	}

	if len(s.unpaidPenalties) > 0 {
		return failure(command, core.ErrStudentHasUnpaidPenalty)
	}

	if len(s.activeBorrowsOfBook) >= s.copies {
		return failure(command, core.ErrBookUnavailable)
	}

	return core.SuccessDecision(
		core.BuildBorrowRequested(command.BorrowID, command.StudentID, command.BookID, command.OccurredAt),
	)
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildRequestingBorrowFailed(
		command.BorrowID,
		command.StudentID,
		command.BookID,
		reason.Error(),
		command.OccurredAt,
	)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

func project(history core.DomainEvents, command Command) state {
	borrowID := command.BorrowID.String()
	studentID := command.StudentID.String()
	bookID := command.BookID.String()

	s := state{
		activeBorrowsOfBook:    make(map[string]bool),
		activeBorrowsOfStudent: make(map[string]bool),
		unpaidPenalties:        make(map[string]bool),
	}

	for _, event := range history {
		switch e := event.(type) {
		case core.BookAddedToCatalog:
			if e.BookID == bookID {
				s.bookExists = true
				s.copies = e.Copies
			}

		case core.BorrowRequested:
			if e.BorrowID == borrowID {
				s.borrowAlreadyRequested = true
				s.requestedByStudentID = e.StudentID
				s.requestedForBookID = e.BookID
			}

			if e.BookID == bookID {
				s.activeBorrowsOfBook[e.BorrowID] = true
			}

			if e.StudentID == studentID {
				s.activeBorrowsOfStudent[e.BorrowID] = true
			}

		case core.BorrowReturned:
			delete(s.activeBorrowsOfBook, e.BorrowID)
			delete(s.activeBorrowsOfStudent, e.BorrowID)

		case core.DelayPenaltyImposed:
			if e.StudentID == studentID {
				s.unpaidPenalties[e.PenaltyID] = true
			}

		case core.DelayPenaltyPaid:
			delete(s.unpaidPenalties, e.PenaltyID)
		}
	}

	return s
}

// BuildEventFilter selects the facts the eligibility rules depend on:
// the book and its borrows, the student's borrows and penalties, and the borrow itself.
func BuildEventFilter(borrowID uuid.UUID, studentID uuid.UUID, bookID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BookAddedToCatalogEventType,
			core.BorrowRequestedEventType,
			core.BorrowReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BookID", bookID.String())).
		OrMatching().
		AnyEventTypeOf(
			core.BorrowRequestedEventType,
			core.BorrowReturnedEventType,
			core.DelayPenaltyImposedEventType,
			core.DelayPenaltyPaidEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", studentID.String())).
		OrMatching().
		AnyEventTypeOf(core.BorrowRequestedEventType).
		AndAnyPredicateOf(eventstore.P("BorrowID", borrowID.String())).
		Finalize()
}
