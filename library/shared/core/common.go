package core

import (
	"time"
)

type (
	EventTypeString = string
	BookIDString    = string
	StudentIDString = string
	BorrowIDString  = string
	PenaltyIDString = string
	TagIDString     = string
	ISBNString      = string
	OccurredAtTS    = time.Time
)

// ToOccurredAt normalizes t to UTC with microsecond precision, which is what Postgres stores.
func ToOccurredAt(t time.Time) OccurredAtTS {
	return t.UTC().Truncate(time.Microsecond)
}
