// Package eventstore holds the storage-agnostic building blocks of the circulation event store.
//
// An event store persists StorableEvent values and answers queries described by a Filter.
// There are no aggregates and no fixed streams: each decision defines its own "dynamic event stream"
// by filtering on event types and JSON payload predicates, optionally restricted to a time window.
//
// Query returns the matching events together with the highest sequence number among them.
// Append takes the same filter and that number and only writes when no matching event was
// appended in between, otherwise it fails with ErrConcurrencyConflict:
//
//	filter := eventstore.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(core.BorrowRequestedEventType, core.BorrowReturnedEventType).
//		AndAnyPredicateOf(eventstore.P("BookID", bookID)).
//		Finalize()
//
//	events, maxSeq, err := store.Query(ctx, filter)
//	// decide ...
//	err = store.Append(ctx, filter, maxSeq, newEvent)
package eventstore
