package catalogsearch

import (
	"slices"
	"strings"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project returns the catalog entries matching the query, in the order they were added.
func Project(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) CatalogSearchResult {

	term := strings.ToLower(query.Term)
	tagIDs := make([]core.TagIDString, 0, len(query.TagIDs))
	for _, tagID := range query.TagIDs {
		tagIDs = append(tagIDs, tagID.String())
	}

	books := make([]Book, 0)

	for _, event := range history {
		e, ok := event.(core.BookAddedToCatalog)
		if !ok {
			continue
		}

		if !matchesTerm(e, term) || !matchesType(e, query.Types) || !matchesAnyTag(e, tagIDs) {
			continue
		}

		books = append(books, Book{
			BookID:   e.BookID,
			Title:    e.Title,
			ISBN:     e.ISBN,
			Authors:  e.Authors,
			BookType: e.BookType,
			TagIDs:   e.TagIDs,
			Copies:   e.Copies,
		})
	}

	return CatalogSearchResult{
		Books:          books,
		Count:          len(books),
		SequenceNumber: maxSequenceNumber,
	}
}

func matchesTerm(e core.BookAddedToCatalog, term string) bool {
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.ISBN), term) ||
		strings.Contains(strings.ToLower(e.Authors), term)
}

func matchesType(e core.BookAddedToCatalog, types []core.BookType) bool {
	return len(types) == 0 || slices.Contains(types, e.BookType)
}

func matchesAnyTag(e core.BookAddedToCatalog, tagIDs []core.TagIDString) bool {
	if len(tagIDs) == 0 {
		return true
	}

	return slices.ContainsFunc(e.TagIDs, func(tagID core.TagIDString) bool {
		return slices.Contains(tagIDs, tagID)
	})
}

// BuildEventFilter creates the filter for the catalog entries, narrowed to the book types if the query names some.
// Tags are matched in memory, a JSON array does not match a single value predicate.
func BuildEventFilter(query Query) eventstore.Filter {
	item := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookAddedToCatalogEventType)

	if len(query.Types) == 0 {
		return item.Finalize()
	}

	predicates := make([]eventstore.FilterPredicate, 0, len(query.Types))
	for _, bookType := range query.Types {
		predicates = append(predicates, eventstore.P("BookType", bookType))
	}

	return item.
		AndAnyPredicateOf(predicates[0], predicates[1:]...).
		Finalize()
}
