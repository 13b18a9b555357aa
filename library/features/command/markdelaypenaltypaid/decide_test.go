package markdelaypenaltypaid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/markdelaypenaltypaid"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenUnpaid(t *testing.T) {
	// arrange
	borrowID, studentID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	penaltyID := core.PenaltyIDFor(borrowID)
	history := core.DomainEvents{FixtureDelayPenaltyImposed(borrowID, studentID, bookID, 11, DaysAgo(1))}

	// act
	result := markdelaypenaltypaid.Decide(history, markdelaypenaltypaid.BuildCommand(penaltyID, FixedNow))

	// assert
	require.NoError(t, result.HasError())

	event, ok := result.Event.(core.DelayPenaltyPaid)
	require.True(t, ok, "expected a DelayPenaltyPaid event")
	assert.Equal(t, penaltyID.String(), event.PenaltyID)
	assert.Equal(t, borrowID.String(), event.BorrowID)
	assert.Equal(t, studentID.String(), event.StudentID)
}

func Test_Decide_Idempotent_WhenAlreadyPaid(t *testing.T) {
	borrowID, studentID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureDelayPenaltyImposed(borrowID, studentID, bookID, 11, DaysAgo(2)),
		FixtureDelayPenaltyPaid(borrowID, studentID, DaysAgo(1)),
	}

	result := markdelaypenaltypaid.Decide(history, markdelaypenaltypaid.BuildCommand(core.PenaltyIDFor(borrowID), FixedNow))

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_UnknownPenalty(t *testing.T) {
	penaltyID := GivenUniqueID(t)

	result := markdelaypenaltypaid.Decide(nil, markdelaypenaltypaid.BuildCommand(penaltyID, FixedNow))

	require.ErrorIs(t, result.HasError(), core.ErrPenaltyNotFound)
	assert.ErrorIs(t, result.HasError(), core.ErrNotFound)

	event, ok := result.Event.(core.MarkingDelayPenaltyPaidFailed)
	require.True(t, ok, "expected a MarkingDelayPenaltyPaidFailed event")
	assert.Equal(t, penaltyID.String(), event.PenaltyID)
}
