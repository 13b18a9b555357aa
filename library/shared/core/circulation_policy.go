package core

import (
	"time"

	"github.com/google/uuid"
)

// PenaltyPerOutDay is the penalty amount charged for each out-day of an overdue borrow.
const PenaltyPerOutDay int64 = 1000

const hoursPerDay = 24

// penaltyIDNamespace scopes the name-based penalty IDs, so each borrow maps to exactly one penalty.
var penaltyIDNamespace = uuid.MustParse("6c0f3a9e-8c5b-4a53-9d3e-0f6f2a1f9b27")

// BookType classifies catalog entries. Related books must share the type.
type BookType = string

const (
	BookTypeResource BookType = "R"
	BookTypeArticle  BookType = "A"
	BookTypeThesis   BookType = "T"
	BookTypeOther    BookType = "O"
)

// IsValidBookType reports whether t is one of the known book types.
func IsValidBookType(t string) bool {
	switch t {
	case BookTypeResource, BookTypeArticle, BookTypeThesis, BookTypeOther:
		return true
	default:
		return false
	}
}

// BorrowState is the explicit lifecycle state of a borrow.
type BorrowState string

const (
	BorrowStateUnknown   BorrowState = ""
	BorrowStateRequested BorrowState = "requested"
	BorrowStateDelivered BorrowState = "delivered"
	BorrowStateReturned  BorrowState = "returned"
)

// IsActive reports whether a borrow in this state occupies a copy of its book.
func (s BorrowState) IsActive() bool {
	return s == BorrowStateRequested || s == BorrowStateDelivered
}

// OutDays counts the calendar days (UTC) from borrowedAt to endingAt, both inclusive.
// A borrow that was never delivered has zero out-days.
func OutDays(borrowedAt time.Time, endingAt time.Time) int {
	if borrowedAt.IsZero() {
		return 0
	}

	days := calendarDay(endingAt).Sub(calendarDay(borrowedAt)).Hours() / hoursPerDay

	return int(days) + 1
}

// IsOverdue reports whether outDays exceed the agreed duration.
func IsOverdue(outDays int, durationDays int) bool {
	return outDays > durationDays
}

// PenaltyAmount is the delay penalty for the given out-days.
func PenaltyAmount(outDays int) int64 {
	return int64(outDays) * PenaltyPerOutDay
}

// PenaltyIDFor derives the ID of the delay penalty of a borrow.
func PenaltyIDFor(borrowID uuid.UUID) uuid.UUID {
	return uuid.NewSHA1(penaltyIDNamespace, borrowID[:])
}

func calendarDay(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
