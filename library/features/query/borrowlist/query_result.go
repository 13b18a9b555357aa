package borrowlist

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// BorrowSummary is one entry of the list.
type BorrowSummary struct {
	BorrowID     core.BorrowIDString
	StudentID    core.StudentIDString
	BookID       core.BookIDString
	State        core.BorrowState
	RequestedAt  time.Time
	BorrowedAt   *time.Time
	DurationDays int
	ReturnedAt   *time.Time
}

// BorrowList holds the borrows, newest request first.
type BorrowList struct {
	Borrows        []BorrowSummary
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the highest sequence number of the events the result was projected from.
func (r BorrowList) GetSequenceNumber() uint {
	return r.SequenceNumber
}
