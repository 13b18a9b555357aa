package recorddelaypenalty_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/recorddelaypenalty"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_CommandHandler_Handle_RecordingTwiceImposesOnePenalty(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := recorddelaypenalty.NewCommandHandler(es)
	borrowID, studentID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)

	// arrange
	GivenEventsAppended(t, ctx, es, returnedBorrow(borrowID, studentID, bookID, 6, 10)...)

	// act
	first, err := handler.Handle(ctx, recorddelaypenalty.BuildCommand(borrowID, FixedNow))
	require.NoError(t, err)

	second, err := handler.Handle(ctx, recorddelaypenalty.BuildCommand(borrowID, FixedNow.Add(time.Hour)))
	require.NoError(t, err)

	// assert
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.DelayPenaltyImposedEventType))
}

func Test_CommandHandler_Handle_Error_NotYetReturned(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := recorddelaypenalty.NewCommandHandler(es)
	borrowID := GivenUniqueID(t)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureDeliveredBorrow(borrowID, GivenUniqueID(t), GivenUniqueID(t), 6, 10)...)

	// act
	_, err := handler.Handle(ctx, recorddelaypenalty.BuildCommand(borrowID, FixedNow))

	// assert
	require.ErrorIs(t, err, core.ErrNotYetReturned)
	assert.ErrorIs(t, err, core.ErrStateConflict)
	assert.Equal(t, 0, CountEventsOfType(t, wrapper, core.DelayPenaltyImposedEventType))
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.RecordingDelayPenaltyFailedEventType))
}

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	wrapper := CreateWrapperWithTestTable(t, "events_recorddelaypenalty")

	t.Cleanup(func() {
		cancel()
		wrapper.Close()
	})

	return ctx, wrapper
}
