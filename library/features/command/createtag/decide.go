package createtag

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/eventstore"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

const maxTagNameLength = 50

type state struct {
	tagAlreadyExists bool
	existingName     string
	nameIsTaken      bool
}

// Decide implements the business logic of creating a tag.
//
// Business Rules:
//
//	GIVEN: a tag with TagID and Name
//	WHEN: CreateTag command is received
//	THEN: TagCreated event is generated
//	ERROR: InvalidTagName if the name is empty or longer than 50 characters
//	ERROR: DuplicateTagName if another tag already has this name
//	ERROR: TagIDConflict if a tag with this TagID but another name exists
//	IDEMPOTENCY: if the tag was already created with the same name, no event is generated
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command.TagID.String(), command.Name)

	if s.tagAlreadyExists {
		if s.existingName != command.Name {
			return failure(command, core.ErrTagIDConflict)
		}

		return core.IdempotentDecision()
	}

	if length := utf8.RuneCountInString(command.Name); length == 0 || length > maxTagNameLength {
		return failure(command, core.ErrInvalidTagName)
	}

	if s.nameIsTaken {
		return failure(command, core.ErrDuplicateTagName)
	}

	return core.SuccessDecision(core.BuildTagCreated(command.TagID, command.Name, command.OccurredAt))
}

func failure(command Command, reason error) core.DecisionResult {
	event := core.BuildCreatingTagFailed(command.TagID, command.Name, reason.Error(), command.OccurredAt)

	return core.ErrorDecision(event, fmt.Errorf("%s: %w", event.EventType, reason))
}

func project(history core.DomainEvents, tagID string, name string) state {
	var s state

	for _, event := range history {
		if e, ok := event.(core.TagCreated); ok {
			switch {
			case e.TagID == tagID:
				s.tagAlreadyExists = true
				s.existingName = e.Name
			case e.Name == name:
				s.nameIsTaken = true
			}
		}
	}

	return s
}

// BuildEventFilter selects the tag itself and any tag that already uses the name.
func BuildEventFilter(tagID uuid.UUID, name string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(core.TagCreatedEventType).
		AndAnyPredicateOf(
			eventstore.P("TagID", tagID.String()),
			eventstore.P("Name", name),
		).
		Finalize()
}
