package createtag_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createtag"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := createtag.NewCommandHandler(wrapper.GetEventStore())
	tagID := GivenUniqueID(t)

	// act
	result, err := handler.Handle(ctx, createtag.BuildCommand(tagID, "physics", FixedNow))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)
	assert.Equal(t, 1, result.RetryAttempts)
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.TagCreatedEventType))
}

func Test_CommandHandler_Handle_Idempotent_WhenRepeated(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := createtag.NewCommandHandler(wrapper.GetEventStore())
	command := createtag.BuildCommand(GivenUniqueID(t), "physics", FixedNow)

	_, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.TagCreatedEventType))
}

func Test_CommandHandler_Handle_Error_DuplicateName(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := createtag.NewCommandHandler(wrapper.GetEventStore())

	_, err := handler.Handle(ctx, createtag.BuildCommand(GivenUniqueID(t), "physics", FixedNow))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, createtag.BuildCommand(GivenUniqueID(t), "physics", FixedNow))

	// assert
	require.ErrorIs(t, err, core.ErrDuplicateTagName)
	assert.False(t, result.Idempotent)
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.TagCreatedEventType))
	assert.Equal(t, 1, CountEventsOfType(t, wrapper, core.CreatingTagFailedEventType))
}

func Test_CommandHandler_Handle_Error_ContextCanceled(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := createtag.NewCommandHandler(wrapper.GetEventStore())

	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()

	// act
	_, err := handler.Handle(canceledCtx, createtag.BuildCommand(GivenUniqueID(t), "physics", FixedNow))

	// assert
	require.Error(t, err)
	assert.ErrorIs(t, err, eventstore.ErrQueryingEventsFailed)
	assert.Equal(t, 0, CountEventsOfType(t, wrapper, core.TagCreatedEventType))
}

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	wrapper := CreateWrapperWithTestTable(t, "events_createtag")

	t.Cleanup(func() {
		cancel()
		wrapper.Close()
	})

	return ctx, wrapper
}
