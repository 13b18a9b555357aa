package core_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

func Test_OutDays(t *testing.T) {
	day0 := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		borrowedAt time.Time
		endingAt   time.Time
		expected   int
	}{
		{name: "never delivered", borrowedAt: time.Time{}, endingAt: day0, expected: 0},
		{name: "returned on the same day", borrowedAt: day0, endingAt: day0.Add(2 * time.Hour), expected: 1},
		{name: "returned the next morning", borrowedAt: day0.Add(14 * time.Hour), endingAt: day0.Add(23 * time.Hour), expected: 2},
		{name: "returned after ten days", borrowedAt: day0, endingAt: day0.AddDate(0, 0, 10), expected: 11},
		{name: "returned after twenty days", borrowedAt: day0, endingAt: day0.AddDate(0, 0, 20), expected: 21},
		{
			name:       "dates are compared in UTC",
			borrowedAt: time.Date(2025, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60)), // 2025-03-02 04:30 UTC
			endingAt:   time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
			expected:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, core.OutDays(tt.borrowedAt, tt.endingAt))
		})
	}
}

func Test_IsOverdue(t *testing.T) {
	assert.False(t, core.IsOverdue(0, 10))
	assert.False(t, core.IsOverdue(10, 10))
	assert.True(t, core.IsOverdue(11, 10))
}

func Test_PenaltyAmount(t *testing.T) {
	assert.Equal(t, int64(11000), core.PenaltyAmount(11))
	assert.Equal(t, int64(0), core.PenaltyAmount(0))
}

func Test_PenaltyIDFor_IsDeterministicPerBorrow(t *testing.T) {
	borrowID := uuid.New()

	assert.Equal(t, core.PenaltyIDFor(borrowID), core.PenaltyIDFor(borrowID))
	assert.NotEqual(t, core.PenaltyIDFor(borrowID), core.PenaltyIDFor(uuid.New()))
	assert.NotEqual(t, borrowID, core.PenaltyIDFor(borrowID))
}

func Test_BuildDelayPenaltyImposed_ComputesAmount(t *testing.T) {
	// arrange
	borrowID := uuid.New()

	// act
	event := core.BuildDelayPenaltyImposed(borrowID, uuid.New(), uuid.New(), 11, time.Unix(0, 0))

	// assert
	assert.Equal(t, int64(11000), event.Amount)
	assert.Equal(t, core.PenaltyIDFor(borrowID).String(), event.PenaltyID)
}

func Test_BorrowState_IsActive(t *testing.T) {
	assert.False(t, core.BorrowStateUnknown.IsActive())
	assert.True(t, core.BorrowStateRequested.IsActive())
	assert.True(t, core.BorrowStateDelivered.IsActive())
	assert.False(t, core.BorrowStateReturned.IsActive())
}

func Test_IsValidBookType(t *testing.T) {
	for _, bookType := range []string{"R", "A", "T", "O"} {
		assert.True(t, core.IsValidBookType(bookType), bookType)
	}

	assert.False(t, core.IsValidBookType("X"))
	assert.False(t, core.IsValidBookType(""))
}
