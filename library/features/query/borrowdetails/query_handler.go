package borrowdetails

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
func (h QueryHandler) Handle(ctx context.Context, query Query) (BorrowDetails, error) {
	filter := BuildEventFilter(query.BorrowID)

	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return BorrowDetails{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return BorrowDetails{}, err
	}

	return Project(history, query, maxSequenceNumber)
}
