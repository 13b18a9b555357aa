package borrowlist

import (
	"slices"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project builds the list from the lifecycle events.
// Delivered and Returned events of borrows whose request is not in the history are ignored,
// that happens when the filter starts at RequestedFrom.
func Project(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) BorrowList {

	borrows := make(map[string]*BorrowSummary)
	order := make([]string, 0)

	for _, event := range history {
		switch e := event.(type) {
		case core.BorrowRequested:
			if !isInWindow(e, query) {
				continue
			}

			borrows[e.BorrowID] = &BorrowSummary{
				BorrowID:    e.BorrowID,
				StudentID:   e.StudentID,
				BookID:      e.BookID,
				State:       core.BorrowStateRequested,
				RequestedAt: e.OccurredAt,
			}
			order = append(order, e.BorrowID)

		case core.BorrowDelivered:
			if borrow, ok := borrows[e.BorrowID]; ok {
				borrowedAt := e.OccurredAt
				borrow.State = core.BorrowStateDelivered
				borrow.BorrowedAt = &borrowedAt
				borrow.DurationDays = e.DurationDays
			}

		case core.BorrowReturned:
			if borrow, ok := borrows[e.BorrowID]; ok {
				returnedAt := e.OccurredAt
				borrow.State = core.BorrowStateReturned
				borrow.ReturnedAt = &returnedAt
			}
		}
	}

	list := make([]BorrowSummary, 0, len(order))
	for _, borrowID := range slices.Backward(order) {
		list = append(list, *borrows[borrowID])
	}

	slices.SortStableFunc(list, func(a, b BorrowSummary) int {
		return b.RequestedAt.Compare(a.RequestedAt)
	})

	return BorrowList{
		Borrows:        list,
		Count:          len(list),
		SequenceNumber: maxSequenceNumber,
	}
}

func isInWindow(e core.BorrowRequested, query Query) bool {
	if !query.RequestedFrom.IsZero() && e.OccurredAt.Before(query.RequestedFrom) {
		return false
	}

	if !query.RequestedUntil.IsZero() && e.OccurredAt.After(query.RequestedUntil) {
		return false
	}

	return true
}

// BuildEventFilter creates the filter for the lifecycle events, restricted to the student if the query names one.
// RequestedFrom narrows the filter, RequestedUntil can not because later transitions must still be seen.
func BuildEventFilter(query Query) eventstore.Filter {
	studentID := ""
	if query.StudentID != uuid.Nil {
		studentID = query.StudentID.String()
	}

	// a predicate with an empty value is dropped by the builder
	item := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.BorrowRequestedEventType,
			core.BorrowDeliveredEventType,
			core.BorrowReturnedEventType,
		).
		AndAnyPredicateOf(eventstore.P("StudentID", studentID))

	if query.RequestedFrom.IsZero() {
		return item.Finalize()
	}

	return item.OccurredFrom(query.RequestedFrom).Finalize()
}
