package createborrow_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_CommandHandler_Handle_Success(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := createborrow.NewCommandHandler(es)
	borrowID, studentID, bookID := givenIDs(t)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1))

	// act
	result, err := handler.Handle(ctx, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	events := QueryDomainEvents(t, ctx, es, FilterAllEventTypesForBorrow(borrowID))
	require.Len(t, events, 1)
	assert.IsType(t, core.BorrowRequested{}, events[0])
}

func Test_CommandHandler_Handle_Idempotent_WhenReplayed(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := createborrow.NewCommandHandler(es)
	borrowID, studentID, bookID := givenIDs(t)
	command := createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1))
	_, err := handler.Handle(ctx, command)
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, command)

	// assert
	require.NoError(t, err)
	assert.True(t, result.Idempotent)
	assert.Len(t, QueryDomainEvents(t, ctx, es, FilterAllEventTypesForBorrow(borrowID)), 1)
}

func Test_CommandHandler_Handle_Error_WhenBorrowIDIsReusedByAnotherStudent(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := createborrow.NewCommandHandler(es)
	borrowID, studentID, bookID := givenIDs(t)
	otherStudentID := GivenUniqueID(t)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 2))
	_, err := handler.Handle(ctx, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))
	require.NoError(t, err)

	// act
	result, err := handler.Handle(ctx, createborrow.BuildCommand(borrowID, otherStudentID, bookID, FixedNow))

	// assert
	require.ErrorIs(t, err, core.ErrBorrowIDConflict)
	assert.False(t, result.Idempotent)

	requested := make([]core.BorrowRequested, 0)
	for _, event := range QueryDomainEvents(t, ctx, es, FilterAllEventTypesForBorrow(borrowID)) {
		if e, ok := event.(core.BorrowRequested); ok {
			requested = append(requested, e)
		}
	}

	require.Len(t, requested, 1)
	assert.Equal(t, studentID.String(), requested[0].StudentID)
}

func Test_CommandHandler_Handle_Error_UnpaidPenaltyBlocksNewBorrows(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := createborrow.NewCommandHandler(es)
	borrowID, studentID, bookID := givenIDs(t)
	previousBorrowID := GivenUniqueID(t)

	// arrange: borrowed 10 days ago for 6 days, so 11 out-days and 11000 penalty
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 3))
	GivenEventsAppended(t, ctx, es, FixtureDeliveredBorrow(previousBorrowID, studentID, bookID, 6, 10)...)
	GivenEventsAppended(t, ctx, es,
		FixtureBorrowReturned(previousBorrowID, studentID, bookID, FixedNow),
		FixtureDelayPenaltyImposed(previousBorrowID, studentID, bookID, 11, FixedNow),
	)

	// act
	_, err := handler.Handle(ctx, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

	// assert
	require.ErrorIs(t, err, core.ErrIneligibleStudent)
	assert.ErrorIs(t, err, core.ErrStudentHasUnpaidPenalty)

	events := QueryDomainEvents(t, ctx, es, FilterAllEventTypesForBorrow(borrowID))
	require.Len(t, events, 1)
	assert.IsType(t, core.RequestingBorrowFailed{}, events[0])
}

func Test_CommandHandler_Handle_ConcurrentBorrowsOfTheLastCopy(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := createborrow.NewCommandHandler(es, createborrow.WithRetryOptions(shell.WithMaxAttempts(10)))
	bookID := GivenUniqueID(t)

	// arrange
	GivenEventsAppended(t, ctx, es, FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1))

	commands := []createborrow.Command{
		createborrow.BuildCommand(GivenUniqueID(t), GivenUniqueID(t), bookID, FixedNow),
		createborrow.BuildCommand(GivenUniqueID(t), GivenUniqueID(t), bookID, FixedNow),
	}
	errs := make([]error, len(commands))

	// act
	group, groupCtx := errgroup.WithContext(ctx)
	for i, command := range commands {
		group.Go(func() error {
			_, errs[i] = handler.Handle(groupCtx, command)
			return nil
		})
	}
	require.NoError(t, group.Wait())

	// assert
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}

		assert.ErrorIs(t, err, core.ErrBookUnavailable)
	}

	assert.Equal(t, 1, succeeded, "exactly one student gets the last copy")
	assert.Equal(t, 1, countActiveBorrowsOfBook(t, ctx, es, bookID))
}

func countActiveBorrowsOfBook(t *testing.T, ctx context.Context, es shell.QueriesEvents, bookID uuid.UUID) int {
	t.Helper()

	active := 0
	for _, event := range QueryDomainEvents(t, ctx, es, FilterAllEventTypesForBook(bookID)) {
		switch event.(type) {
		case core.BorrowRequested:
			active++
		case core.BorrowReturned:
			active--
		}
	}

	return active
}

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	wrapper := CreateWrapperWithTestTable(t, "events_createborrow")

	t.Cleanup(func() {
		cancel()
		wrapper.Close()
	})

	return ctx, wrapper
}
