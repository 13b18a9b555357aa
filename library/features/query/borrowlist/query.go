package borrowlist

import (
	"time"

	"github.com/google/uuid"
)

const (
	queryType = "BorrowList"
)

// Query represents the intent to list borrows.
// A nil StudentID lists the borrows of all students, zero times leave the request window open.
type Query struct {
	StudentID      uuid.UUID
	RequestedFrom  time.Time
	RequestedUntil time.Time
}

// BuildQuery creates a new Query for all borrows.
func BuildQuery() Query {
	return Query{}
}

// BuildQueryForStudent creates a new Query for the borrows of one student.
func BuildQueryForStudent(studentID uuid.UUID) Query {
	return Query{
		StudentID: studentID,
	}
}

// RequestedBetween returns a copy of the query restricted to borrows requested in [from, until].
func (q Query) RequestedBetween(from time.Time, until time.Time) Query {
	q.RequestedFrom = from
	q.RequestedUntil = until

	return q
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
