package relatedbooks

import (
	"cmp"
	"slices"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Project finds the books related to the queried book and cuts out the requested page.
// History must be in catalog order. It returns core.ErrBookNotFound if the book is not in the catalog.
func Project(
	history core.DomainEvents,
	query Query,
	maxSequenceNumber eventstore.MaxSequenceNumberUint,
) (RelatedBooks, error) {

	bookID := query.BookID.String()
	catalog := make([]core.BookAddedToCatalog, 0, len(history))
	var book *core.BookAddedToCatalog

	for _, event := range history {
		if e, ok := event.(core.BookAddedToCatalog); ok {
			catalog = append(catalog, e)

			if e.BookID == bookID {
				book = &e
			}
		}
	}

	if book == nil {
		return RelatedBooks{}, core.ErrBookNotFound
	}

	related := make([]RelatedBook, 0)

	for _, candidate := range catalog {
		if candidate.BookID == book.BookID || candidate.BookType != book.BookType {
			continue
		}

		shared := countSharedTags(book.TagIDs, candidate.TagIDs)
		if shared == 0 {
			continue
		}

		related = append(related, RelatedBook{
			BookID:     candidate.BookID,
			Title:      candidate.Title,
			ISBN:       candidate.ISBN,
			Authors:    candidate.Authors,
			BookType:   candidate.BookType,
			TagIDs:     candidate.TagIDs,
			Copies:     candidate.Copies,
			SharedTags: shared,
		})
	}

	// stable, so equal counts keep the catalog order
	slices.SortStableFunc(related, func(a, b RelatedBook) int {
		return cmp.Compare(b.SharedTags, a.SharedTags)
	})

	return RelatedBooks{
		BookID:         bookID,
		Count:          len(related),
		Page:           query.Page,
		PageSize:       query.PageSize,
		Results:        pageOf(related, query.Page, query.PageSize),
		SequenceNumber: maxSequenceNumber,
	}, nil
}

func countSharedTags(tagIDs []core.TagIDString, otherTagIDs []core.TagIDString) int {
	shared := 0

	for _, tagID := range slices.Compact(slices.Sorted(slices.Values(tagIDs))) {
		if slices.Contains(otherTagIDs, tagID) {
			shared++
		}
	}

	return shared
}

func pageOf(related []RelatedBook, page int, pageSize int) []RelatedBook {
	if page < 1 || pageSize < 1 {
		return []RelatedBook{}
	}

	// compared before multiplying, (page-1)*pageSize overflows for huge pages
	if page-1 >= (len(related)+pageSize-1)/pageSize {
		return []RelatedBook{}
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, len(related))

	return related[start:end]
}

// BuildEventFilter creates the filter for the whole catalog, relations are computed in memory.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.BookAddedToCatalogEventType).
		Finalize()
}
