package createborrow_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenAllPreconditionsMet(t *testing.T) {
	// arrange
	borrowID, studentID, bookID := givenIDs(t)
	history := core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)}
	command := createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow)

	// act
	result := createborrow.Decide(history, command)

	// assert
	require.NoError(t, result.HasError())
	require.Len(t, result.AllEvents(), 1)

	event, ok := result.Event.(core.BorrowRequested)
	require.True(t, ok, "expected a BorrowRequested event")
	assert.Equal(t, borrowID.String(), event.BorrowID)
	assert.Equal(t, studentID.String(), event.StudentID)
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, FixedNow, event.OccurredAt)
}

func Test_Decide_Success_WhenOtherCopiesAreBorrowed(t *testing.T) {
	borrowID, studentID, bookID := givenIDs(t)
	history := core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 2)}
	history = append(history, FixtureDeliveredBorrow(uuid.New(), uuid.New(), bookID, 7, 2)...)

	result := createborrow.Decide(history, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Success_AfterPreviousBorrowWasReturnedAndPenaltyPaid(t *testing.T) {
	// arrange
	borrowID, studentID, bookID := givenIDs(t)
	previousBorrowID := uuid.New()

	history := core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)}
	history = append(history, FixtureDeliveredBorrow(previousBorrowID, studentID, bookID, 6, 10)...)
	history = append(history,
		FixtureBorrowReturned(previousBorrowID, studentID, bookID, FixedNow),
		FixtureDelayPenaltyImposed(previousBorrowID, studentID, bookID, 11, FixedNow),
		FixtureDelayPenaltyPaid(previousBorrowID, studentID, FixedNow),
	)

	// act
	result := createborrow.Decide(history, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

	// assert
	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Idempotent_WhenBorrowAlreadyRequested(t *testing.T) {
	// arrange
	borrowID, studentID, bookID := givenIDs(t)
	history := core.DomainEvents{
		FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1),
		FixtureBorrowRequested(borrowID, studentID, bookID, DaysAgo(1)),
	}

	// act
	result := createborrow.Decide(history, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

	// assert
	assert.True(t, result.IsIdempotent())
	assert.NoError(t, result.HasError())
}

func Test_Decide_Error_WhenBorrowIDBelongsToAnotherBorrow(t *testing.T) {
	borrowID, studentID, bookID := givenIDs(t)
	otherStudentID, otherBookID := uuid.New(), uuid.New()

	testCases := []struct {
		name    string
		command createborrow.Command
	}{
		{name: "other student", command: createborrow.BuildCommand(borrowID, otherStudentID, bookID, FixedNow)},
		{name: "other book", command: createborrow.BuildCommand(borrowID, studentID, otherBookID, FixedNow)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			history := core.DomainEvents{
				FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 2),
				FixtureBookAddedToCatalog(otherBookID, core.BookTypeResource, 2),
				FixtureBorrowRequested(borrowID, studentID, bookID, DaysAgo(1)),
			}

			// act
			result := createborrow.Decide(history, tc.command)

			// assert
			assert.False(t, result.IsIdempotent())
			require.ErrorIs(t, result.HasError(), core.ErrBorrowIDConflict)
			assert.ErrorIs(t, result.HasError(), core.ErrStateConflict)

			event, ok := result.Event.(core.RequestingBorrowFailed)
			require.True(t, ok, "expected a RequestingBorrowFailed event")
			assert.Equal(t, borrowID.String(), event.BorrowID)
		})
	}
}

func Test_Decide_BusinessErrors(t *testing.T) {
	borrowID, studentID, bookID := givenIDs(t)
	otherBorrowID := uuid.New()
	otherBookID := uuid.New()
	otherStudentID := uuid.New()

	testCases := []struct {
		name          string
		history       core.DomainEvents
		expectedError error
		expectedKind  error
	}{
		{
			name:          "book not in catalog",
			history:       nil,
			expectedError: core.ErrBookNotFound,
			expectedKind:  core.ErrNotFound,
		},
		{
			name: "student has a requested borrow of another book",
			history: core.DomainEvents{
				FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1),
				FixtureBorrowRequested(otherBorrowID, studentID, otherBookID, DaysAgo(1)),
			},
			expectedError: core.ErrStudentHasActiveBorrow,
			expectedKind:  core.ErrIneligibility,
		},
		{
			name: "student has a delivered borrow",
			history: append(
				core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 5)},
				FixtureDeliveredBorrow(otherBorrowID, studentID, otherBookID, 7, 3)...,
			),
			expectedError: core.ErrStudentHasActiveBorrow,
			expectedKind:  core.ErrIneligibility,
		},
		{
			name: "student has an unpaid delay penalty",
			history: append(
				append(
					core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)},
					FixtureDeliveredBorrow(otherBorrowID, studentID, otherBookID, 6, 10)...,
				),
				FixtureBorrowReturned(otherBorrowID, studentID, otherBookID, FixedNow),
				FixtureDelayPenaltyImposed(otherBorrowID, studentID, otherBookID, 11, FixedNow),
			),
			expectedError: core.ErrStudentHasUnpaidPenalty,
			expectedKind:  core.ErrIneligibility,
		},
		{
			name: "all copies borrowed",
			history: append(
				core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)},
				FixtureBorrowRequested(otherBorrowID, otherStudentID, bookID, DaysAgo(1)),
			),
			expectedError: core.ErrBookUnavailable,
			expectedKind:  core.ErrIneligibility,
		},
		{
			name:          "book without copies",
			history:       core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 0)},
			expectedError: core.ErrBookUnavailable,
			expectedKind:  core.ErrIneligibility,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := createborrow.Decide(tc.history, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

			// assert
			require.ErrorIs(t, result.HasError(), tc.expectedError)
			assert.Equal(t, tc.expectedKind, core.Kind(result.HasError()))

			event, ok := result.Event.(core.RequestingBorrowFailed)
			require.True(t, ok, "expected a RequestingBorrowFailed event")
			assert.Equal(t, borrowID.String(), event.BorrowID)
			assert.Equal(t, tc.expectedError.Error(), event.FailureInfo)
		})
	}
}

func Test_Decide_IneligibleStudentReasonsMatchTheGeneralError(t *testing.T) {
	borrowID, studentID, bookID := givenIDs(t)
	history := append(
		core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeResource, 1)},
		FixtureBorrowRequested(uuid.New(), studentID, uuid.New(), DaysAgo(1)),
	)

	result := createborrow.Decide(history, createborrow.BuildCommand(borrowID, studentID, bookID, FixedNow))

	assert.ErrorIs(t, result.HasError(), core.ErrIneligibleStudent)
}

func givenIDs(t *testing.T) (uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()

	return GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
}
