package helper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// FixedNow is the reference "now" of the fixtures, a morning in UTC so that day boundaries are far away.
var FixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

// DaysAgo returns FixedNow minus the given number of days.
func DaysAgo(days int) time.Time {
	return FixedNow.AddDate(0, 0, -days)
}

// GivenUniqueID creates a new time ordered UUID.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// ISBNFor derives a unique 13 character ISBN from a book ID.
func ISBNFor(bookID uuid.UUID) string {
	return strings.ReplaceAll(bookID.String(), "-", "")[:13]
}

// FixtureTagCreated builds a TagCreated event for the tag.
func FixtureTagCreated(tagID uuid.UUID, name string) core.TagCreated {
	return core.BuildTagCreated(tagID, name, DaysAgo(100))
}

// FixtureBookAddedToCatalog builds a BookAddedToCatalog event with generated title, ISBN and authors.
func FixtureBookAddedToCatalog(bookID uuid.UUID, bookType core.BookType, copies int, tagIDs ...uuid.UUID) core.BookAddedToCatalog {
	return core.BuildBookAddedToCatalog(
		bookID,
		"Title of "+bookID.String()[:8],
		ISBNFor(bookID),
		"Jane Doe, John Roe",
		bookType,
		tagIDs,
		copies,
		DaysAgo(90),
	)
}

// FixtureBorrowRequested builds a BorrowRequested event.
func FixtureBorrowRequested(borrowID, studentID, bookID uuid.UUID, at time.Time) core.BorrowRequested {
	return core.BuildBorrowRequested(borrowID, studentID, bookID, at)
}

// FixtureBorrowDelivered builds a BorrowDelivered event.
func FixtureBorrowDelivered(borrowID, studentID, bookID uuid.UUID, durationDays int, at time.Time) core.BorrowDelivered {
	return core.BuildBorrowDelivered(borrowID, studentID, bookID, durationDays, at)
}

// FixtureBorrowReturned builds a BorrowReturned event.
func FixtureBorrowReturned(borrowID, studentID, bookID uuid.UUID, at time.Time) core.BorrowReturned {
	return core.BuildBorrowReturned(borrowID, studentID, bookID, at)
}

// FixtureDelayPenaltyImposed builds a DelayPenaltyImposed event.
func FixtureDelayPenaltyImposed(borrowID, studentID, bookID uuid.UUID, outDays int, at time.Time) core.DelayPenaltyImposed {
	return core.BuildDelayPenaltyImposed(borrowID, studentID, bookID, outDays, at)
}

// FixtureDelayPenaltyPaid builds a DelayPenaltyPaid event for the penalty of the borrow.
func FixtureDelayPenaltyPaid(borrowID, studentID uuid.UUID, at time.Time) core.DelayPenaltyPaid {
	return core.BuildDelayPenaltyPaid(core.PenaltyIDFor(borrowID), borrowID.String(), studentID.String(), at)
}

// FixtureDeliveredBorrow builds the events of a borrow that was requested and delivered daysAgo days before FixedNow.
func FixtureDeliveredBorrow(borrowID, studentID, bookID uuid.UUID, durationDays int, daysAgo int) core.DomainEvents {
	return core.DomainEvents{
		FixtureBorrowRequested(borrowID, studentID, bookID, DaysAgo(daysAgo)),
		FixtureBorrowDelivered(borrowID, studentID, bookID, durationDays, DaysAgo(daysAgo)),
	}
}

// GivenEventsAppended appends the events one by one, each without a consistency condition.
func GivenEventsAppended(t testing.TB, ctx context.Context, es shell.EventStore, events ...core.DomainEvent) {
	t.Helper()

	filter := eventstore.BuildEventFilter().MatchingAnyEvent()

	for _, event := range events {
		storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(event)
		require.NoError(t, err, "error in arranging test data")

		maxSequenceNumber := QueryMaxSequenceNumberBeforeAppend(t, ctx, es, filter)

		err = es.Append(ctx, filter, maxSequenceNumber, storableEvent)
		require.NoError(t, err, "error in arranging test data")
	}
}

// QueryMaxSequenceNumberBeforeAppend queries the filter with strong consistency and returns the max sequence number.
func QueryMaxSequenceNumberBeforeAppend(
	t testing.TB,
	ctx context.Context,
	es shell.QueriesEvents,
	filter eventstore.Filter,
) eventstore.MaxSequenceNumberUint {

	t.Helper()

	_, maxSequenceNumber, err := es.Query(eventstore.WithStrongConsistency(ctx), filter)
	require.NoError(t, err, "error in arranging test data")

	return maxSequenceNumber
}

// QueryDomainEvents queries the filter and maps the result to domain events.
func QueryDomainEvents(t testing.TB, ctx context.Context, es shell.QueriesEvents, filter eventstore.Filter) core.DomainEvents {
	t.Helper()

	storableEvents, _, err := es.Query(eventstore.WithStrongConsistency(ctx), filter)
	require.NoError(t, err, "error querying events")

	domainEvents, err := shell.DomainEventsFrom(storableEvents)
	require.NoError(t, err, "error mapping events")

	return domainEvents
}

// FilterAllEventTypesForBorrow matches every event carrying the BorrowID.
func FilterAllEventTypesForBorrow(borrowID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("BorrowID", borrowID.String())).
		Finalize()
}

// FilterAllEventTypesForBook matches every event carrying the BookID.
func FilterAllEventTypesForBook(bookID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("BookID", bookID.String())).
		Finalize()
}
