package relatedbooks_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbooktocatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createtag"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/relatedbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_QueryHandler_Handle_ReturnsRelatedBooksOfTheCatalog(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	es := wrapper.GetEventStore()
	handler := relatedbooks.NewQueryHandler(es)
	createTag := createtag.NewCommandHandler(es)
	addBook := addbooktocatalog.NewCommandHandler(es)

	// arrange
	tag1ID, tag2ID := GivenUniqueID(t), GivenUniqueID(t)
	_, err := createTag.Handle(ctx, createtag.BuildCommand(tag1ID, "databases", DaysAgo(30)))
	require.NoError(t, err)
	_, err = createTag.Handle(ctx, createtag.BuildCommand(tag2ID, "distributed systems", DaysAgo(30)))
	require.NoError(t, err)

	books := testBookIDs{
		book1ID: GivenUniqueID(t),
		book2ID: GivenUniqueID(t),
		book3ID: GivenUniqueID(t),
		book4ID: GivenUniqueID(t),
		book5ID: GivenUniqueID(t),
	}

	for _, book := range []struct {
		id       uuid.UUID
		bookType core.BookType
		tags     []uuid.UUID
	}{
		{id: books.book1ID, bookType: core.BookTypeArticle, tags: nil},
		{id: books.book2ID, bookType: core.BookTypeResource, tags: []uuid.UUID{tag1ID}},
		{id: books.book3ID, bookType: core.BookTypeThesis, tags: []uuid.UUID{tag2ID}},
		{id: books.book4ID, bookType: core.BookTypeResource, tags: []uuid.UUID{tag1ID, tag2ID}},
		{id: books.book5ID, bookType: core.BookTypeResource, tags: []uuid.UUID{tag1ID, tag2ID}},
	} {
		command := addbooktocatalog.BuildCommand(
			book.id, "Title of "+book.id.String()[:8], ISBNFor(book.id), "Jane Doe", book.bookType, book.tags, 1, DaysAgo(20),
		)
		_, err = addBook.Handle(ctx, command)
		require.NoError(t, err)
	}

	// act
	result, err := handler.Handle(ctx, relatedbooks.BuildQuery(books.book4ID, 1, 10))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assertResultOrder(t, []uuid.UUID{books.book5ID, books.book2ID}, result.Results)
	assert.Positive(t, result.SequenceNumber)
}

func Test_QueryHandler_Handle_Error_BookNotFound(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	handler := relatedbooks.NewQueryHandler(wrapper.GetEventStore())

	// act
	_, err := handler.Handle(ctx, relatedbooks.BuildQuery(GivenUniqueID(t), 1, 10))

	// assert
	assert.ErrorIs(t, err, core.ErrBookNotFound)
}

func setupTestEnvironment(t *testing.T) (context.Context, Wrapper) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	wrapper := CreateWrapperWithTestTable(t, "events_relatedbooks")

	t.Cleanup(func() {
		cancel()
		wrapper.Close()
	})

	return ctx, wrapper
}
