package recorddelaypenalty

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

type state struct {
	borrowState    core.BorrowState
	studentID      uuid.UUID
	bookID         uuid.UUID
	borrowedAt     time.Time
	returnedAt     time.Time
	durationDays   int
	penaltyImposed bool
}

// Decide implements the business logic of recording a delay penalty.
//
// Business Rules:
//
//	GIVEN: a returned borrow with BorrowID
//	WHEN: RecordDelayPenalty command is received
//	THEN: DelayPenaltyImposed event is generated if the borrow was returned overdue
//	ERROR: BorrowNotFound if the borrow was never requested
//	ERROR: NotYetReturned if the borrow is not Returned
//	IDEMPOTENCY: if a penalty exists or the borrow was returned in time, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history)

	switch s.borrowState {
	case core.BorrowStateUnknown:
		return failure(command, core.ErrBorrowNotFound)
	case core.BorrowStateRequested, core.BorrowStateDelivered:
		return failure(command, core.ErrNotYetReturned)
	}

	if s.penaltyImposed {
		return core.IdempotentDecision()
	}

	outDays := core.OutDays(s.borrowedAt, s.returnedAt)
	if !core.IsOverdue(outDays, s.durationDays) {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildDelayPenaltyImposed(command.BorrowID, s.studentID, s.bookID, outDays, command.OccurredAt),
	)
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildRecordingDelayPenaltyFailed(command.BorrowID, reason.Error(), command.OccurredAt)

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
			s.returnedAt = e.OccurredAt

		case core.DelayPenaltyImposed:
			s.penaltyImposed = true
		}
	}

	return s
}

// BuildEventFilter selects the lifecycle events of the borrow and its penalty.
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
