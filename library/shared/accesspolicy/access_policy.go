package accesspolicy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrForbidden is returned when the actor may not perform the action.
	ErrForbidden = errors.New("forbidden")

	// ErrUnknownRole is returned by ParseRole for anything but manager or student.
	ErrUnknownRole = errors.New("unknown role")

	// ErrMissingActorID is returned by BuildActor for the nil UUID.
	ErrMissingActorID = errors.New("actor id must not be empty")
)

// Role of an actor.
type Role string

const (
	RoleManager Role = "manager"
	RoleStudent Role = "student"
)

// ParseRole converts the textual role.
func ParseRole(role string) (Role, error) {
	switch Role(role) {
	case RoleManager, RoleStudent:
		return Role(role), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// Action is an operation guarded by the policy.
type Action string

const (
	ActionCreateTag            Action = "create_tag"
	ActionAddBookToCatalog     Action = "add_book_to_catalog"
	ActionViewCatalog          Action = "view_catalog"
	ActionCreateBorrow         Action = "create_borrow"
	ActionStartBorrow          Action = "start_borrow"
	ActionTerminateBorrow      Action = "terminate_borrow"
	ActionViewBorrows          Action = "view_borrows"
	ActionRecordDelayPenalty   Action = "record_delay_penalty"
	ActionMarkDelayPenaltyPaid Action = "mark_delay_penalty_paid"
	ActionViewDelayPenalties   Action = "view_delay_penalties"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// BuildActor creates an Actor, the role must already be parsed.
func BuildActor(id uuid.UUID, role Role) (Actor, error) {
	if id == uuid.Nil {
		return Actor{}, ErrMissingActorID
	}

	return Actor{ID: id, Role: role}, nil
}

// IsManager reports whether the actor has the manager role.
func (a Actor) IsManager() bool {
	return a.Role == RoleManager
}

// studentActions are the actions a student may perform, mapped to whether they are limited to the student's own resources.
var studentActions = map[Action]bool{
	ActionViewCatalog:        false,
	ActionCreateBorrow:       true,
	ActionViewBorrows:        true,
	ActionViewDelayPenalties: true,
}

// Authorize returns nil if actor may perform action on a resource owned by resourceOwner.
// resourceOwner is the student the resource belongs to, uuid.Nil for resources without an owner.
// Managers may do everything, students only act on the catalog and on their own borrows and penalties.
func Authorize(actor Actor, action Action, resourceOwner uuid.UUID) error {
	switch actor.Role {
	case RoleManager:
		return nil

	case RoleStudent:
		ownOnly, allowed := studentActions[action]
		if !allowed {
			return fmt.Errorf("%w: a %s may not %s", ErrForbidden, actor.Role, action)
		}

		if ownOnly && resourceOwner != actor.ID {
			return fmt.Errorf("%w: a %s may only %s for themselves", ErrForbidden, actor.Role, action)
		}

		return nil

	default:
		return fmt.Errorf("%w: %w", ErrForbidden, ErrUnknownRole)
	}
}
