package borrowdetails

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project folds the events of the borrow into BorrowDetails.
// It returns core.ErrBorrowNotFound if the borrow was never requested.
func Project(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) (BorrowDetails, error) {

	borrowID := query.BorrowID.String()
	details := BorrowDetails{State: core.BorrowStateUnknown}

	for _, event := range history {
		switch e := event.(type) {
		case core.BorrowRequested:
			if e.BorrowID == borrowID {
				details.BorrowID = e.BorrowID
				details.StudentID = e.StudentID
				details.BookID = e.BookID
				details.State = core.BorrowStateRequested
				details.RequestedAt = e.OccurredAt
			}

		case core.BorrowDelivered:
			if e.BorrowID == borrowID {
				borrowedAt := e.OccurredAt
				details.State = core.BorrowStateDelivered
				details.BorrowedAt = &borrowedAt
				details.DurationDays = e.DurationDays
			}

		case core.BorrowReturned:
			if e.BorrowID == borrowID {
				returnedAt := e.OccurredAt
				details.State = core.BorrowStateReturned
				details.ReturnedAt = &returnedAt
			}

		case core.DelayPenaltyImposed:
			if e.BorrowID == borrowID {
				details.Penalty = &PenaltyInfo{
					PenaltyID: e.PenaltyID,
					OutDays:   e.OutDays,
					Amount:    e.Amount,
					ImposedAt: e.OccurredAt,
				}
			}

		case core.DelayPenaltyPaid:
			if e.BorrowID == borrowID && details.Penalty != nil {
				paidAt := e.OccurredAt
				details.Penalty.IsPaid = true
				details.Penalty.PaidAt = &paidAt
			}
		}
	}

	if details.State == core.BorrowStateUnknown {
		return BorrowDetails{}, core.ErrBorrowNotFound
	}

	if details.BorrowedAt != nil {
		endingAt := query.Now
		if details.ReturnedAt != nil {
			endingAt = *details.ReturnedAt
		}

		details.OutDays = core.OutDays(*details.BorrowedAt, endingAt)
		details.IsOverdue = core.IsOverdue(details.OutDays, details.DurationDays)
	}

	details.SequenceNumber = maxSequenceNumber

	return details, nil
}

// BuildEventFilter creates the filter for all lifecycle and penalty events of the borrow.
func BuildEventFilter(borrowID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BorrowRequestedEventType,
			core.BorrowDeliveredEventType,
			core.BorrowReturnedEventType,
			core.DelayPenaltyImposedEventType,
			core.DelayPenaltyPaidEventType,
		).
		AndAnyPredicateOf(eventstore.P("BorrowID", borrowID.String())).
		Finalize()
}
