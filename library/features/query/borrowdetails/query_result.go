package borrowdetails

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// PenaltyInfo is the delay penalty of the borrow.
type PenaltyInfo struct {
	PenaltyID core.PenaltyIDString
	OutDays   int
	Amount    int64
	IsPaid    bool
	ImposedAt time.Time
	PaidAt    *time.Time
}

// BorrowDetails is the state of one borrow. BorrowedAt and ReturnedAt are nil until the transitions happened.
type BorrowDetails struct {
	BorrowID       core.BorrowIDString
	StudentID      core.StudentIDString
	BookID         core.BookIDString
	State          core.BorrowState
	RequestedAt    time.Time
	BorrowedAt     *time.Time
	DurationDays   int
	ReturnedAt     *time.Time
	OutDays        int
	IsOverdue      bool
	Penalty        *PenaltyInfo
	SequenceNumber uint
}

// GetSequenceNumber returns the highest sequence number of the events the result was projected from.
func (r BorrowDetails) GetSequenceNumber() uint {
	return r.SequenceNumber
}
