package delaypenalties

import (
	"context"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// QueryHandler runs Query -> Unmarshal -> Project.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided EventStore dependency.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{
		eventStore: eventStore,
	}
}

// Handle reads with eventual consistency, the result may lag behind the primary.
func (h QueryHandler) Handle(ctx context.Context, query Query) (DelayPenalties, error) {
	filter := BuildEventFilter(query)

	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return DelayPenalties{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return DelayPenalties{}, err
	}

	return Project(history, query, maxSequenceNumber), nil
}
