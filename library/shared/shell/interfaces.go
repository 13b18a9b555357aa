package shell

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
)

// QueriesEvents is the part of the event store that query handlers need.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// AppendsEvents is the part of the event store that command handlers need in addition to QueriesEvents.
type AppendsEvents interface {
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		storableEvent eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// EventStore combines QueriesEvents and AppendsEvents.
type EventStore interface {
	QueriesEvents
	AppendsEvents
}

// Query represents the contract for all query types.
// The QueryType method enables polymorphic handling and observability instrumentation.
type Query interface {
	QueryType() string
}

// QueryResult represents the contract for all query result types (projections).
// GetSequenceNumber returns the highest event sequence number the projection has seen.
type QueryResult interface {
	GetSequenceNumber() uint
}

// QueryHandler processes a query and returns its projection.
// Implementations contain no observability code, observable.QueryWrapper adds it.
type QueryHandler[Q Query, R QueryResult] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Command represents the contract for all command types.
type Command interface {
	CommandType() string
}

// CommandHandler processes a command with Query -> Unmarshal -> Decide -> Append.
// Implementations contain no observability code, observable.CommandWrapper adds it.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, command C) (HandlerResult, error)
}
