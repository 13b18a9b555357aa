package terminateborrow

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

type state struct {
	borrowState  core.BorrowState
	studentID    uuid.UUID
	bookID       uuid.UUID
	borrowedAt   time.Time
	durationDays int
}

// Decide implements the Delivered -> Returned transition of a borrow and the penalty on overdue returns.
//
// Business Rules:
//
//	GIVEN: a borrow with BorrowID in state Delivered
//	WHEN: TerminateBorrow command is received
//	THEN: BorrowReturned event is generated, OccurredAt is the returned_at time
//	AND: DelayPenaltyImposed event is generated if out-days exceed the duration
//	ERROR: BorrowNotFound if the borrow was never requested
//	ERROR: NotYetDelivered if the borrow is Requested
//	ERROR: AlreadyReturned if the borrow is Returned
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history)

	switch s.borrowState {
	case core.BorrowStateUnknown:
		return failure(command, core.ErrBorrowNotFound)
	case core.BorrowStateRequested:
		return failure(command, core.ErrNotYetDelivered)
	case core.BorrowStateReturned:
		return failure(command, core.ErrAlreadyReturned)
	}

	returned := core.BuildBorrowReturned(command.BorrowID, s.studentID, s.bookID, command.OccurredAt)

	outDays := core.OutDays(s.borrowedAt, command.OccurredAt)
	if !core.IsOverdue(outDays, s.durationDays) {
		return core.SuccessDecision(returned)
	}

	return core.SuccessDecision(
		returned,
		core.BuildDelayPenaltyImposed(command.BorrowID, s.studentID, s.bookID, outDays, command.OccurredAt),
	)
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildReturningBorrowFailed(command.BorrowID, reason.Error(), command.OccurredAt)

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
			s.borrowedAt = e.OccurredAt
			s.durationDays = e.DurationDays

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
			core.DelayPenaltyImposedEventType,
		).
		AndAnyPredicateOf(eventstore.P("BorrowID", borrowID.String())).
		Finalize()
}
