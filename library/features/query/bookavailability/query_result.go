package bookavailability

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BookAvailability is the current availability of a catalog book.
type BookAvailability struct {
	BookID             core.BookIDString
	Copies             int
	OutstandingBorrows int
	AvailableCopies    int
	IsAvailable        bool
	SequenceNumber     uint
}

// GetSequenceNumber returns the highest sequence number of the events the result was projected from.
func (r BookAvailability) GetSequenceNumber() uint {
	return r.SequenceNumber
}
