package eventstore

import "context"

// ConsistencyLevel tells an EventStore implementation where a Query may read from.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary database, so a decision sees every committed append.
	// Command handlers must use it for their Query → Decide → Append cycle.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency may read from a replica. Read models that tolerate slightly stale data use it.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key under which the ConsistencyLevel is stored.
const ConsistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency returns a context that forces reads from the primary database.
//
//	ctx = eventstore.WithStrongConsistency(ctx)
//	events, maxSeq, err := store.Query(ctx, filter)
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency returns a context that allows reads from a replica database.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel extracts the ConsistencyLevel from ctx, falling back to StrongConsistency.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
