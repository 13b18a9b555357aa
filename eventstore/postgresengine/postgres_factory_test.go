package postgresengine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/eventstore/postgresengine"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper"                 //nolint:revive
	. "github.com/AntonStoeckl/library-circulation-go/testutil/helper/postgreswrapper" //nolint:revive
)

func Test_FactoryFunctions_ShouldPanic_WithUnsupportedAdapterType(t *testing.T) {
	t.Setenv("ADAPTER_TYPE", "unsupported")

	assert.Panics(t, func() {
		_ = TryCreateEventStore(t)
	})
}

func Test_FactoryFunctions_ShouldFail_WithNilDatabaseConnection(t *testing.T) {
	testCases := []struct {
		name        string
		factoryFunc func() (*postgresengine.EventStore, error)
	}{
		{
			name: "NewEventStoreFromPGXPool with nil",
			factoryFunc: func() (*postgresengine.EventStore, error) {
				return postgresengine.NewEventStoreFromPGXPool(nil)
			},
		},
		{
			name: "NewEventStoreFromPGXPoolAndReplica with nil",
			factoryFunc: func() (*postgresengine.EventStore, error) {
				return postgresengine.NewEventStoreFromPGXPoolAndReplica(nil, nil)
			},
		},
		{
			name: "NewEventStoreFromSQLDB with nil",
			factoryFunc: func() (*postgresengine.EventStore, error) {
				return postgresengine.NewEventStoreFromSQLDB(nil)
			},
		},
		{
			name: "NewEventStoreFromSQLX with nil",
			factoryFunc: func() (*postgresengine.EventStore, error) {
				return postgresengine.NewEventStoreFromSQLX(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			_, err := tc.factoryFunc()

			// assert
			assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)
		})
	}
}

func Test_FactoryFunctions_ShouldFail_WithEmptyTableName(t *testing.T) {
	// act
	err := TryCreateEventStore(t, postgresengine.WithTableName(""))

	// assert
	assert.ErrorIs(t, err, eventstore.ErrEmptyEventsTableName)
}

func Test_FactoryFunctions_EventStore_WithTableName_ShouldWorkCorrectly(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)
	customWrapper := CreateWrapperWithTestConfig(t, postgresengine.WithTableName("circulation_events"))
	defer customWrapper.Close()
	CleanUp(t, customWrapper)
	es := customWrapper.GetEventStore()

	// arrange
	bookID := GivenUniqueID(t)
	filter := FilterAllEventTypesForBook(bookID)

	// act
	err := es.Append(ctx, filter, 0, toStorable(t, FixtureBookAddedToCatalog(bookID, core.BookTypeArticle, 1)))
	require.NoError(t, err)
	storableEvents, _, queryErr := es.Query(ctx, filter)

	// assert
	assert.NoError(t, queryErr)
	assert.Len(t, storableEvents, 1)
	assert.Equal(t, "circulation_events", es.TableName())
	assert.Equal(t, 0, CountEventsOfType(t, wrapper, core.BookAddedToCatalogEventType), "the default table must stay untouched")
}

func Test_CreateSchema_IsIdempotent(t *testing.T) {
	// setup
	ctx, wrapper := setupTestEnvironment(t)

	// act
	err := wrapper.GetEventStore().CreateSchema(ctx)

	// assert
	assert.NoError(t, err)
}
