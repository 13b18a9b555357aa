package borrowdetails

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	queryType = "BorrowDetails"
)

// Query represents the intent to look at one borrow as of Now.
type Query struct {
	BorrowID uuid.UUID
	Now      time.Time
}

// BuildQuery creates a new Query with the provided parameters.
func BuildQuery(borrowID uuid.UUID, now time.Time) Query {
	return Query{
		BorrowID: borrowID,
		Now:      core.ToOccurredAt(now),
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
