package catalogsearch

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// Book is a matching catalog entry.
type Book struct {
	BookID   core.BookIDString
	Title    string
	ISBN     core.ISBNString
	Authors  string
	BookType core.BookType
	TagIDs   []core.TagIDString
	Copies   int
}

// CatalogSearchResult holds the matching books in catalog order.
type CatalogSearchResult struct {
	Books          []Book
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the highest sequence number of the events the result was projected from.
func (r CatalogSearchResult) GetSequenceNumber() uint {
	return r.SequenceNumber
}
