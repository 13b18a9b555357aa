package delaypenalties

import (
	"github.com/google/uuid"
)

const (
	queryType = "DelayPenalties"
)

// Query represents the intent to list delay penalties.
// Nil IDs and a nil IsPaid do not restrict the list.
type Query struct {
	StudentID uuid.UUID
	PenaltyID uuid.UUID
	IsPaid    *bool
}

// BuildQuery creates a new Query for all penalties.
func BuildQuery() Query {
	return Query{}
}

// BuildQueryForStudent creates a new Query for the penalties of one student.
func BuildQueryForStudent(studentID uuid.UUID) Query {
	return Query{
		StudentID: studentID,
	}
}

// BuildQueryForPenalty creates a new Query for a single penalty.
func BuildQueryForPenalty(penaltyID uuid.UUID) Query {
	return Query{
		PenaltyID: penaltyID,
	}
}

// WithIsPaid returns a copy of the query restricted to paid or unpaid penalties.
func (q Query) WithIsPaid(isPaid bool) Query {
	q.IsPaid = &isPaid

	return q
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
