package borrowlist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowlist"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper" //nolint:revive
)

func Test_Project_NewestRequestFirst(t *testing.T) {
	studentID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	oldBorrowID, newBorrowID := GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureBorrowRequested(oldBorrowID, studentID, bookID, DaysAgo(20)),
		FixtureBorrowDelivered(oldBorrowID, studentID, bookID, 7, DaysAgo(19)),
		FixtureBorrowReturned(oldBorrowID, studentID, bookID, DaysAgo(15)),
		FixtureBorrowRequested(newBorrowID, studentID, bookID, DaysAgo(2)),
	}

	result := borrowlist.Project(history, borrowlist.BuildQuery(), 9)

	require.Equal(t, 2, result.Count)
	assert.Equal(t, newBorrowID.String(), result.Borrows[0].BorrowID)
	assert.Equal(t, core.BorrowStateRequested, result.Borrows[0].State)
	assert.Nil(t, result.Borrows[0].BorrowedAt)
	assert.Equal(t, oldBorrowID.String(), result.Borrows[1].BorrowID)
	assert.Equal(t, core.BorrowStateReturned, result.Borrows[1].State)
	require.NotNil(t, result.Borrows[1].ReturnedAt)
	assert.Equal(t, DaysAgo(15), *result.Borrows[1].ReturnedAt)
	assert.Equal(t, 7, result.Borrows[1].DurationDays)
	assert.Equal(t, uint(9), result.GetSequenceNumber())
}

func Test_Project_RequestWindow(t *testing.T) {
	studentID, bookID := GivenUniqueID(t), GivenUniqueID(t)
	borrow1, borrow2, borrow3 := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureBorrowRequested(borrow1, studentID, bookID, DaysAgo(30)),
		FixtureBorrowRequested(borrow2, studentID, bookID, DaysAgo(10)),
		FixtureBorrowRequested(borrow3, studentID, bookID, DaysAgo(1)),
	}

	testCases := []struct {
		description string
		query       borrowlist.Query
		expected    []string
	}{
		{
			description: "open window",
			query:       borrowlist.BuildQuery(),
			expected:    []string{borrow3.String(), borrow2.String(), borrow1.String()},
		},
		{
			description: "bounds are inclusive",
			query:       borrowlist.BuildQuery().RequestedBetween(DaysAgo(30), DaysAgo(10)),
			expected:    []string{borrow2.String(), borrow1.String()},
		},
		{
			description: "window ends before the later requests",
			query:       borrowlist.BuildQuery().RequestedBetween(DaysAgo(60), DaysAgo(11)),
			expected:    []string{borrow1.String()},
		},
		{
			description: "empty window",
			query:       borrowlist.BuildQuery().RequestedBetween(DaysAgo(9), DaysAgo(2)),
			expected:    []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result := borrowlist.Project(history, tc.query, 0)

			actual := make([]string, 0, len(result.Borrows))
			for _, borrow := range result.Borrows {
				actual = append(actual, borrow.BorrowID)
			}

			assert.Equal(t, tc.expected, actual)
			assert.Equal(t, len(tc.expected), result.Count)
		})
	}
}

func Test_Project_IgnoresTransitionsOfBorrowsOutsideTheHistory(t *testing.T) {
	borrowID, studentID, bookID := GivenUniqueID(t), GivenUniqueID(t), GivenUniqueID(t)
	history := core.DomainEvents{
		FixtureBorrowDelivered(borrowID, studentID, bookID, 7, DaysAgo(3)),
		FixtureBorrowReturned(borrowID, studentID, bookID, DaysAgo(1)),
	}

	result := borrowlist.Project(history, borrowlist.BuildQuery(), 0)

	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.Borrows)
}

func Test_BuildEventFilter(t *testing.T) {
	studentID := GivenUniqueID(t)

	t.Run("all students", func(t *testing.T) {
		filter := borrowlist.BuildEventFilter(borrowlist.BuildQuery())

		require.Len(t, filter.Items(), 1)
		assert.Empty(t, filter.Items()[0].Predicates())
		assert.Len(t, filter.Items()[0].EventTypes(), 3)
		assert.True(t, filter.OccurredFrom().IsZero())
	})

	t.Run("one student from a point in time", func(t *testing.T) {
		query := borrowlist.BuildQueryForStudent(studentID).RequestedBetween(DaysAgo(7), FixedNow)
		filter := borrowlist.BuildEventFilter(query)

		require.Len(t, filter.Items(), 1)
		require.Len(t, filter.Items()[0].Predicates(), 1)
		assert.Equal(t, "StudentID", filter.Items()[0].Predicates()[0].Key())
		assert.Equal(t, studentID.String(), filter.Items()[0].Predicates()[0].Val())
		assert.Equal(t, DaysAgo(7), filter.OccurredFrom())
		assert.True(t, filter.OccurredUntil().IsZero())
	})
}
