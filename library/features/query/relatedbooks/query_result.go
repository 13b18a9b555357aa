package relatedbooks

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// RelatedBook is a catalog entry together with the number of tags it shares with the queried book.
type RelatedBook struct {
	BookID     core.BookIDString
	Title      string
	ISBN       core.ISBNString
	Authors    string
	BookType   core.BookType
	TagIDs     []core.TagIDString
	Copies     int
	SharedTags int
}

// RelatedBooks is one page of the books related to BookID.
type RelatedBooks struct {
	BookID         core.BookIDString
	Count          int
	Page           int
	PageSize       int
	Results        []RelatedBook
	SequenceNumber uint
}

// GetSequenceNumber returns the highest sequence number of the events the result was projected from.
func (r RelatedBooks) GetSequenceNumber() uint {
	return r.SequenceNumber
}
