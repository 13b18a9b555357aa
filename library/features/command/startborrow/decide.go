package startborrow

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

type state struct {
	borrowState core.BorrowState
	studentID   uuid.UUID
	bookID      uuid.UUID
}

// Decide implements the Requested -> Delivered transition of a borrow.
//
// Business Rules:
//
//	GIVEN: a borrow with BorrowID in state Requested
//	WHEN: StartBorrow command is received with a positive duration
//	THEN: BorrowDelivered event is generated, OccurredAt is the borrowed_at time
//	ERROR: BorrowNotFound if the borrow was never requested
//	ERROR: AlreadyDelivered if the borrow is Delivered or Returned
//	ERROR: DurationRequired if the duration is not positive
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history)

	switch s.borrowState {
	case core.BorrowStateUnknown:
		return failure(command, core.ErrBorrowNotFound)
	case core.BorrowStateDelivered, core.BorrowStateReturned:
		return failure(command, core.ErrAlreadyDelivered)
	}

	if command.DurationDays <= 0 {
		return failure(command, core.ErrDurationRequired)
	}

	return core.SuccessDecision(
		core.BuildBorrowDelivered(command.BorrowID, s.studentID, s.bookID, command.DurationDays, command.OccurredAt),
	)
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildDeliveringBorrowFailed(command.BorrowID, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

func project(history core.DomainEvents) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.BorrowRequested:
			s.borrowState = core.BorrowStateRequested
			s.studentID = uuid.MustParse(e.StudentID)
			s.bookID = uuid.MustParse(e.BookID)

		case core.BorrowDelivered:
			s.borrowState = core.BorrowStateDelivered

		case core.BorrowReturned:
			s.borrowState = core.BorrowStateReturned
		}
	}

	return s
}

// BuildEventFilter selects the lifecycle events of the borrow.
func BuildEventFilter(borrowID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BorrowRequestedEventType,
			core.BorrowDeliveredEventType,
			core.BorrowReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BorrowID", borrowID.String())).
		Finalize()
}
