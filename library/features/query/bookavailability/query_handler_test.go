package bookavailability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/startborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/terminateborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_QueryHandler_Handle_FollowsTheBorrowLifecycle(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := bookavailability.NewQueryHandler(es)
	bookID, borrowID, studentID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1))

	// act + assert
	result, err := handler.Handle(ctx, bookavailability.BuildQuery(bookID))
	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
	assert.Equal(t, 1, result.AvailableCopies)

	_, err = createborrow.NewCommandHandler(es).Handle(ctx, createborrow.BuildCommand(borrowID, studentID, bookID, DaysAgo(5)))
	require.NoError(t, err)

	result, err = handler.Handle(ctx, bookavailability.BuildQuery(bookID))
	require.NoError(t, err)
	assert.False(t, result.IsAvailable, "a requested borrow occupies the copy")
	assert.Equal(t, 1, result.OutstandingBorrows)

	_, err = startborrow.NewCommandHandler(es).Handle(ctx, startborrow.BuildCommand(borrowID, 7, DaysAgo(5)))
	require.NoError(t, err)

	result, err = handler.Handle(ctx, bookavailability.BuildQuery(bookID))
	require.NoError(t, err)
	assert.False(t, result.IsAvailable, "a delivered borrow occupies the copy")

	_, err = terminateborrow.NewCommandHandler(es).Handle(ctx, terminateborrow.BuildCommand(borrowID, FixedNow))
	require.NoError(t, err)

	result, err = handler.Handle(ctx, bookavailability.BuildQuery(bookID))
	require.NoError(t, err)
	assert.True(t, result.IsAvailable)
	assert.Equal(t, 0, result.OutstandingBorrows)
	assert.Positive(t, result.SequenceNumber)
}

func Test_QueryHandler_Handle_Error_BookNotFound(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := bookavailability.NewQueryHandler(wrapper.GetEventStore())

	// act
	_, err := handler.Handle(ctx, bookavailability.BuildQuery(GivenUniqueID(t)))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func Test_QueryHandler_Handle_Error_CanceledContext(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := bookavailability.NewQueryHandler(wrapper.GetEventStore())
	canceledCtx, cancel := context.WithCancel(ctx)
	cancel()

	// act
	_, err := handler.Handle(canceledCtx, bookavailability.BuildQuery(GivenUniqueID(t)))

	// assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrBookNotFound)
}

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	wrapper := CreateWrapperWithTestTable(t, "events_bookavailability")

	t.Cleanup(func() {
		cancel()
		wrapper.Close()
	})

	return ctx, wrapper
}
