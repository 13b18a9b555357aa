package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	payloadJSON := storableEvent.PayloadJSON

	switch storableEvent.EventType {
	case core.TagCreatedEventType:
		return unmarshalPayload[core.TagCreated](payloadJSON)

	case core.BookAddedToCatalogEventType:
		return unmarshalPayload[core.BookAddedToCatalog](payloadJSON)

	case core.BorrowRequestedEventType:
		return unmarshalPayload[core.BorrowRequested](payloadJSON)

	case core.BorrowDeliveredEventType:
		return unmarshalPayload[core.BorrowDelivered](payloadJSON)

	case core.BorrowReturnedEventType:
		return unmarshalPayload[core.BorrowReturned](payloadJSON)

	case core.DelayPenaltyImposedEventType:
		return unmarshalPayload[core.DelayPenaltyImposed](payloadJSON)

	case core.DelayPenaltyPaidEventType:
		return unmarshalPayload[core.DelayPenaltyPaid](payloadJSON)

	case core.CreatingTagFailedEventType:
		return unmarshalPayload[core.CreatingTagFailed](payloadJSON)

	case core.AddingBookToCatalogFailedEventType:
		return unmarshalPayload[core.AddingBookToCatalogFailed](payloadJSON)

	case core.RequestingBorrowFailedEventType:
		return unmarshalPayload[core.RequestingBorrowFailed](payloadJSON)

	case core.DeliveringBorrowFailedEventType:
		return unmarshalPayload[core.DeliveringBorrowFailed](payloadJSON)

	case core.ReturningBorrowFailedEventType:
		return unmarshalPayload[core.ReturningBorrowFailed](payloadJSON)

	case core.RecordingDelayPenaltyFailedEventType:
		return unmarshalPayload[core.RecordingDelayPenaltyFailed](payloadJSON)

	case core.MarkingDelayPenaltyPaidFailedEventType:
		return unmarshalPayload[core.MarkingDelayPenaltyPaidFailed](payloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	payload := new(E)

	err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, payload)
	if err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return *payload, nil
}
