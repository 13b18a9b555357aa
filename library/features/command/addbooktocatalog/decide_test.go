package addbooktocatalog_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbooktocatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper" //nolint:revive
)

func Test_Decide_Success_WhenAllPreconditionsMet(t *testing.T) {
	// arrange
	bookID := GivenUniqueID(t)
	tagID := GivenUniqueID(t)
	history := core.DomainEvents{FixtureTagCreated(tagID, "physics")}
	command := validCommand(bookID, tagID)

	// act
	result := addbooktocatalog.Decide(history, command)

	// assert
	require.NoError(t, result.HasError())

	event, ok := result.Event.(core.BookAddedToCatalog)
	require.True(t, ok, "expected a BookAddedToCatalog event")
	assert.Equal(t, bookID.String(), event.BookID)
	assert.Equal(t, command.ISBN, event.ISBN)
	assert.Equal(t, core.BookTypeArticle, event.BookType)
	assert.Equal(t, []string{tagID.String()}, event.TagIDs)
	assert.Equal(t, 3, event.Copies)
}

func Test_Decide_Success_WithZeroCopiesAndNoTags(t *testing.T) {
	command := validCommand(GivenUniqueID(t))
	command.Copies = 0

	result := addbooktocatalog.Decide(nil, command)

	assert.NoError(t, result.HasError())
	assert.True(t, result.HasEventToAppend())
}

func Test_Decide_Idempotent_WhenBookAlreadyAdded(t *testing.T) {
	bookID := GivenUniqueID(t)
	history := core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeArticle, 3)}

	result := addbooktocatalog.Decide(history, validCommand(bookID))

	assert.True(t, result.IsIdempotent())
}

func Test_Decide_Error_WhenBookIDHasAnotherISBN(t *testing.T) {
	// arrange
	bookID := GivenUniqueID(t)
	history := core.DomainEvents{FixtureBookAddedToCatalog(bookID, core.BookTypeArticle, 3)}
	command := validCommand(bookID)
	command.ISBN = "9780441013593"

	// act
	result := addbooktocatalog.Decide(history, command)

	// assert
	assert.False(t, result.IsIdempotent())
	require.ErrorIs(t, result.HasError(), core.ErrBookIDConflict)
	assert.ErrorIs(t, result.HasError(), core.ErrStateConflict)

	_, ok := result.Event.(core.AddingBookToCatalogFailed)
	assert.True(t, ok, "expected an AddingBookToCatalogFailed event")
}

func Test_Decide_BusinessErrors(t *testing.T) {
	bookID := GivenUniqueID(t)
	otherBookID := GivenUniqueID(t)
	unknownTagID := GivenUniqueID(t)

	testCases := []struct {
		name          string
		history       core.DomainEvents
		modify        func(c *addbooktocatalog.Command)
		expectedError error
	}{
		{
			name:          "empty title",
			modify:        func(c *addbooktocatalog.Command) { c.Title = "  " },
			expectedError: core.ErrInvalidBook,
		},
		{
			name:          "title too long",
			modify:        func(c *addbooktocatalog.Command) { c.Title = strings.Repeat("t", 201) },
			expectedError: core.ErrInvalidBook,
		},
		{
			name:          "isbn too short",
			modify:        func(c *addbooktocatalog.Command) { c.ISBN = "123456789" },
			expectedError: core.ErrInvalidBook,
		},
		{
			name:          "isbn too long",
			modify:        func(c *addbooktocatalog.Command) { c.ISBN = "12345678901234" },
			expectedError: core.ErrInvalidBook,
		},
		{
			name:          "unknown book type",
			modify:        func(c *addbooktocatalog.Command) { c.BookType = "X" },
			expectedError: core.ErrInvalidBook,
		},
		{
			name:          "negative copies",
			modify:        func(c *addbooktocatalog.Command) { c.Copies = -1 },
			expectedError: core.ErrInvalidBook,
		},
		{
			name:    "isbn used by another book",
			history: core.DomainEvents{FixtureBookAddedToCatalog(otherBookID, core.BookTypeArticle, 1)},
			modify: func(c *addbooktocatalog.Command) {
				c.ISBN = ISBNFor(otherBookID)
			},
			expectedError: core.ErrDuplicateISBN,
		},
		{
			name:          "unknown tag",
			modify:        func(c *addbooktocatalog.Command) { c.TagIDs = []uuid.UUID{unknownTagID} },
			expectedError: core.ErrTagNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// arrange
			command := validCommand(bookID)
			tc.modify(&command)

			// act
			result := addbooktocatalog.Decide(tc.history, command)

			// assert
			require.ErrorIs(t, result.HasError(), tc.expectedError)

			event, ok := result.Event.(core.AddingBookToCatalogFailed)
			require.True(t, ok, "expected an AddingBookToCatalogFailed event")
			assert.Equal(t, bookID.String(), event.BookID)
			assert.NotEmpty(t, event.FailureInfo)
		})
	}
}

func validCommand(bookID uuid.UUID, tagIDs ...uuid.UUID) addbooktocatalog.Command {
	return addbooktocatalog.BuildCommand(
		bookID,
		"Event Sourcing in Practice",
		ISBNFor(bookID),
		"Jane Doe",
		core.BookTypeArticle,
		tagIDs,
		3,
		FixedNow,
	)
}
