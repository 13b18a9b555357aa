package delaypenalties

import (
	"time"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

// DelayPenalty is one entry of the penalty ledger.
type DelayPenalty struct {
	PenaltyID core.PenaltyIDString
	BorrowID  core.BorrowIDString
	StudentID core.StudentIDString
	BookID    core.BookIDString
	OutDays   int
	Amount    int64
	IsPaid    bool
	ImposedAt time.Time
	PaidAt    *time.Time
}

// DelayPenalties holds the penalties in the order they were imposed.
type DelayPenalties struct {
	Penalties      []DelayPenalty
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the highest sequence number of the events the result was projected from.
func (r DelayPenalties) GetSequenceNumber() uint {
	return r.SequenceNumber
}
