package markdelaypenaltypaid_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/markdelaypenaltypaid"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_CommandHandler_Handle_Success_ThenIdempotent(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := markdelaypenaltypaid.NewCommandHandler(es)
	borrowID, studentID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	penaltyID := core.PenaltyIDFor(borrowID)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureDelayPenaltyImposed(borrowID, studentID, bookID, 11, DaysAgo(1)))

	// act
	first, err := handler.Handle(ctx, markdelaypenaltypaid.BuildCommand(penaltyID, FixedNow))
	require.NoError(t, err)

	second, err := handler.Handle(ctx, markdelaypenaltypaid.BuildCommand(penaltyID, FixedNow.Add(time.Hour)))
	require.NoError(t, err)

	// assert
	assert.False(t, first.Idempotent)
	assert.True(t, second.Idempotent)
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.DelayPenaltyPaidEventType))
}

func Test_CommandHandler_Handle_Error_UnknownPenalty(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := markdelaypenaltypaid.NewCommandHandler(wrapper.GetEventStore())

	// act
	_, err := handler.Handle(ctx, markdelaypenaltypaid.BuildCommand(GivenUniqueID(t), FixedNow))

	// assert
	require.ErrorIs(t, err, core.ErrPenaltyNotFound)
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.MarkingDelayPenaltyPaidFailedEventType))
}

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	wrapper := CreateWrapperWithTestTable(t, "events_markdelaypenaltypaid")

	t.Cleanup(func() {
		cancel()
		wrapper.Close()
	})

	return ctx, wrapper
}
