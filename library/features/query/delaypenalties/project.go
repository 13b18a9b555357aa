package delaypenalties

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project builds the ledger from the penalty events and applies the restrictions of the query.
func Project(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) DelayPenalties {

	penalties := make(map[string]*DelayPenalty)
	order := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.DelayPenaltyImposed:
			if _, exists := penalties[e.PenaltyID]; exists {
				continue
			}

			penalties[e.PenaltyID] = &DelayPenalty{
				PenaltyID: e.PenaltyID,
				BorrowID:  e.BorrowID,
				StudentID: e.StudentID,
				BookID:    e.BookID,
				OutDays:   e.OutDays,
				Amount:    e.Amount,
				ImposedAt: e.OccurredAt,
			}
			order = append(order, e.PenaltyID)

		case core.DelayPenaltyPaid:
			if penalty, ok := penalties[e.PenaltyID]; ok {
				paidAt := e.OccurredAt
				penalty.IsPaid = true
				penalty.PaidAt = &paidAt
			}
		}
	}

	list := make([]DelayPenalty, 0, len(order))
	for _, penaltyID := range order {
		penalty := penalties[penaltyID]

		if !matches(*penalty, query) {
			continue
		}

		list = append(list, *penalty)
	}

	return DelayPenalties{
		Penalties:      list,
		Count:          len(list),
		SequenceNumber: maxSequenceNumber,
	}
}

func matches(penalty DelayPenalty, query Query) bool {
	if query.StudentID != uuid.Nil && penalty.StudentID != query.StudentID.String() {
		return false
	}

	if query.PenaltyID != uuid.Nil && penalty.PenaltyID != query.PenaltyID.String() {
		return false
	}

	return query.IsPaid == nil || penalty.IsPaid == *query.IsPaid
}

// BuildEventFilter creates the filter for the penalty events, restricted to the student and the penalty the query names.
func BuildEventFilter(query Query) eventstore.Filter {
	// a predicate with an empty value is dropped by the builder
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.DelayPenaltyImposedEventType,
			core.DelayPenaltyPaidEventType,
		).
		AndAllPredicatesOf(
			eventstore.P("StudentID", idOrEmpty(query.StudentID)),
			eventstore.P("PenaltyID", idOrEmpty(query.PenaltyID)),
		).
		Finalize()
}

func idOrEmpty(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}

	return id.String()
}
