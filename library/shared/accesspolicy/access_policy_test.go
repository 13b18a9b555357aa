package accesspolicy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/accesspolicy"
)

func Test_Authorize(t *testing.T) {
	studentID := uuid.New()
	otherStudentID := uuid.New()
	student := accesspolicy.Actor{ID: studentID, Role: accesspolicy.RoleStudent}
	manager := accesspolicy.Actor{ID: uuid.New(), Role: accesspolicy.RoleManager}

	testCases := []struct {
		description   string
		actor         accesspolicy.Actor
		action        accesspolicy.Action
		resourceOwner uuid.UUID
		allowed       bool
	}{
		{"manager creates a tag", manager, accesspolicy.ActionCreateTag, uuid.Nil, true},
		{"manager adds a book", manager, accesspolicy.ActionAddBookToCatalog, uuid.Nil, true},
		{"manager starts a borrow", manager, accesspolicy.ActionStartBorrow, studentID, true},
		{"manager terminates a borrow", manager, accesspolicy.ActionTerminateBorrow, studentID, true},
		{"manager records a penalty", manager, accesspolicy.ActionRecordDelayPenalty, studentID, true},
		{"manager marks a penalty paid", manager, accesspolicy.ActionMarkDelayPenaltyPaid, studentID, true},
		{"manager views all borrows", manager, accesspolicy.ActionViewBorrows, uuid.Nil, true},
		{"manager views all penalties", manager, accesspolicy.ActionViewDelayPenalties, uuid.Nil, true},
		{"student views the catalog", student, accesspolicy.ActionViewCatalog, uuid.Nil, true},
		{"student borrows for themselves", student, accesspolicy.ActionCreateBorrow, studentID, true},
		{"student borrows for someone else", student, accesspolicy.ActionCreateBorrow, otherStudentID, false},
		{"student views own borrows", student, accesspolicy.ActionViewBorrows, studentID, true},
		{"student views borrows of someone else", student, accesspolicy.ActionViewBorrows, otherStudentID, false},
		{"student views all borrows", student, accesspolicy.ActionViewBorrows, uuid.Nil, false},
		{"student views own penalties", student, accesspolicy.ActionViewDelayPenalties, studentID, true},
		{"student views penalties of someone else", student, accesspolicy.ActionViewDelayPenalties, otherStudentID, false},
		{"student creates a tag", student, accesspolicy.ActionCreateTag, uuid.Nil, false},
		{"student adds a book", student, accesspolicy.ActionAddBookToCatalog, uuid.Nil, false},
		{"student starts own borrow", student, accesspolicy.ActionStartBorrow, studentID, false},
		{"student terminates own borrow", student, accesspolicy.ActionTerminateBorrow, studentID, false},
		{"student records own penalty", student, accesspolicy.ActionRecordDelayPenalty, studentID, false},
		{"student marks own penalty paid", student, accesspolicy.ActionMarkDelayPenaltyPaid, studentID, false},
		{"unknown role", accesspolicy.Actor{ID: uuid.New(), Role: "janitor"}, accesspolicy.ActionViewCatalog, uuid.Nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := accesspolicy.Authorize(tc.actor, tc.action, tc.resourceOwner)

			if tc.allowed {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, accesspolicy.ErrForbidden)
		})
	}
}

func Test_ParseRole(t *testing.T) {
	role, err := accesspolicy.ParseRole("manager")
	require.NoError(t, err)
	assert.Equal(t, accesspolicy.RoleManager, role)

	role, err = accesspolicy.ParseRole("student")
	require.NoError(t, err)
	assert.Equal(t, accesspolicy.RoleStudent, role)

	_, err = accesspolicy.ParseRole("Manager")
	assert.ErrorIs(t, err, accesspolicy.ErrUnknownRole)
}

func Test_BuildActor_Error_NilID(t *testing.T) {
	_, err := accesspolicy.BuildActor(uuid.Nil, accesspolicy.RoleStudent)

	assert.ErrorIs(t, err, accesspolicy.ErrMissingActorID)
}
