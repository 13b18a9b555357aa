package markdelaypenaltypaid

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

type state struct {
	penaltyExists bool
	isPaid        bool
	borrowID      string
	studentID     string
}

// Decide implements the business logic of marking a delay penalty as paid.
//
// Business Rules:
//
//	GIVEN: an imposed delay penalty with PenaltyID
//	WHEN: MarkDelayPenaltyPaid command is received
//	THEN: DelayPenaltyPaid event is generated
//	ERROR: PenaltyNotFound if no penalty with this ID was imposed
//	IDEMPOTENCY: if the penalty is already paid, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history)

	if !s.penaltyExists {
		return failure(command, core.ErrPenaltyNotFound)
	}

	if s.isPaid {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildDelayPenaltyPaid(command.PenaltyID, s.borrowID, s.studentID, command.OccurredAt),
	)
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildMarkingDelayPenaltyPaidFailed(command.PenaltyID, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

func project(history core.DomainEvents) state {
	var s state

	for _, event := range history {
		switch e := event.(type) {
		case core.DelayPenaltyImposed:
			s.penaltyExists = true
			s.borrowID = e.BorrowID
			s.studentID = e.StudentID

		case core.DelayPenaltyPaid:
			s.isPaid = true
		}
	}

	return s
}

// BuildEventFilter selects the events of the penalty.
func BuildEventFilter(penaltyID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.DelayPenaltyImposedEventType,
			core.DelayPenaltyPaidEventType,
		).
		AndAnyPredicateOf(eventstore.P("PenaltyID", penaltyID.String())).
		Finalize()
}
