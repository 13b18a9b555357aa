package catalogsearch

import (
	"strings"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const (
	queryType = "CatalogSearch"
)

// Query represents the intent to search the catalog.
type Query struct {
	Term   string
	Types  []core.BookType
	TagIDs []uuid.UUID
}

// BuildQuery creates a new Query with the provided parameters, the term is trimmed.
func BuildQuery(term string, types []core.BookType, tagIDs []uuid.UUID) Query {
	return Query{
		Term:   strings.TrimSpace(term),
		Types:  types,
		TagIDs: tagIDs,
	}
}

// QueryType returns the query type.
func (q Query) QueryType() string {
	return queryType
}
