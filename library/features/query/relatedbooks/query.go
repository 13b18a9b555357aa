package relatedbooks

import (
	"github.com/google/uuid"
)

const (
	queryType = "RelatedBooks"

	// DefaultPageSize is used when the query does not ask for a page size.
	DefaultPageSize = 10

	// MaxPageSize caps the page size of a query.
	MaxPageSize = 100
)

// Query represents the intent to list one page of the books related to a book.
type Query struct {
	BookID   uuid.UUID
	Page     int
	PageSize int
}

// BuildQuery creates a new Query. Page is 1-based, a page below 1 means the first page.
// A pageSize of 0 or less means DefaultPageSize, larger than MaxPageSize means MaxPageSize.
func BuildQuery(bookID uuid.UUID, page int, pageSize int) Query {
	if page < 1 {
		page = 1
	}

	switch {
	case pageSize <= 0:
		pageSize = DefaultPageSize
	case pageSize > MaxPageSize:
		pageSize = MaxPageSize
	}

	return Query{
		BookID:   bookID,
		Page:     page,
		PageSize: pageSize,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
