package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

func Test_StorableEventsFrom_SharesCausationAndCorrelation(t *testing.T) {
	// arrange
	borrowID, studentID, bookID := uuid.New(), uuid.New(), uuid.New()
	returned := core.BuildBorrowReturned(borrowID, studentID, bookID, time.Unix(1000, 0))
	imposed := core.BuildDelayPenaltyImposed(borrowID, studentID, bookID, 12, time.Unix(1000, 0))

	// act
	storableEvents, err := shell.StorableEventsFrom(core.DomainEvents{returned, imposed})
	require.NoError(t, err)

	domainEvents, err := shell.DomainEventsFrom(storableEvents)
	require.NoError(t, err)
	first, err := shell.EventMetadataFrom(storableEvents[0])
	require.NoError(t, err)
	second, err := shell.EventMetadataFrom(storableEvents[1])
	require.NoError(t, err)

	// assert
	assert.Equal(t, core.DomainEvents{returned, imposed}, domainEvents)
	assert.Equal(t, first.CausationID, second.CausationID)
	assert.Equal(t, first.CorrelationID, second.CorrelationID)
	assert.NotEqual(t, first.MessageID, second.MessageID)
}

func Test_DomainEventFrom_KeepsBookTagsAndType(t *testing.T) {
	// arrange
	tagIDs := []uuid.UUID{uuid.New(), uuid.New()}
	added := core.BuildBookAddedToCatalog(
		uuid.New(),
		"Learning Domain-Driven Design",
		"9781098100131",
		"Vlad Khononov",
		core.BookTypeResource,
		tagIDs,
		3,
		time.Unix(0, 0),
	)

	storableEvent, err := shell.StorableEventWithEmptyMetadataFrom(added)
	require.NoError(t, err)

	// act
	domainEvent, err := shell.DomainEventFrom(storableEvent)

	// assert
	require.NoError(t, err)
	assert.Equal(t, added, domainEvent)
	assert.Equal(t, core.BookAddedToCatalogEventType, storableEvent.EventType)
}

func Test_DomainEventFrom_UnknownEventType(t *testing.T) {
	// arrange
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata("BookCopyLentToReader", time.Now(), []byte("{}"))
	require.NoError(t, err)

	// act
	_, err = shell.DomainEventFrom(storableEvent)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventUnknownEventType)
}

func Test_DomainEventFrom_BrokenPayload(t *testing.T) {
	// arrange
	storableEvent, err := eventstore.BuildStorableEventWithEmptyMetadata(
		core.BorrowDeliveredEventType,
		time.Now(),
		[]byte(`{"DurationDays": "seven"}`),
	)
	require.NoError(t, err)

	// act
	_, err = shell.DomainEventFrom(storableEvent)

	// assert
	assert.ErrorIs(t, err, shell.ErrMappingToDomainEventFailed)
}
