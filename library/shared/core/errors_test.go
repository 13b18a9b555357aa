package core_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

func Test_DomainErrors_BelongToExactlyOneKind(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{core.ErrDurationRequired, core.ErrValidation},
		{core.ErrInvalidBook, core.ErrValidation},
		{core.ErrInvalidTagName, core.ErrValidation},
		{core.ErrIneligibleStudent, core.ErrIneligibility},
		{core.ErrStudentHasActiveBorrow, core.ErrIneligibility},
		{core.ErrStudentHasUnpaidPenalty, core.ErrIneligibility},
		{core.ErrBookUnavailable, core.ErrIneligibility},
		{core.ErrAlreadyDelivered, core.ErrStateConflict},
		{core.ErrNotYetDelivered, core.ErrStateConflict},
		{core.ErrAlreadyReturned, core.ErrStateConflict},
		{core.ErrNotYetReturned, core.ErrStateConflict},
		{core.ErrDuplicateISBN, core.ErrStateConflict},
		{core.ErrDuplicateTagName, core.ErrStateConflict},
		{core.ErrBorrowIDConflict, core.ErrStateConflict},
		{core.ErrBookIDConflict, core.ErrStateConflict},
		{core.ErrTagIDConflict, core.ErrStateConflict},
		{core.ErrBorrowNotFound, core.ErrNotFound},
		{core.ErrBookNotFound, core.ErrNotFound},
		{core.ErrPenaltyNotFound, core.ErrNotFound},
		{core.ErrTagNotFound, core.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.kind, core.Kind(tt.err))
		})
	}
}

func Test_IneligibilityReasons_AreIneligibleStudentErrors(t *testing.T) {
	// arrange
	wrapped := fmt.Errorf("%s: %w", core.RequestingBorrowFailedEventType, core.ErrStudentHasUnpaidPenalty)

	// assert
	assert.ErrorIs(t, wrapped, core.ErrStudentHasUnpaidPenalty)
	assert.ErrorIs(t, wrapped, core.ErrIneligibleStudent)
	assert.ErrorIs(t, wrapped, core.ErrIneligibility)
	assert.NotErrorIs(t, wrapped, core.ErrStudentHasActiveBorrow)
	assert.NotErrorIs(t, core.ErrBookUnavailable, core.ErrIneligibleStudent)
	assert.Equal(t, "RequestingBorrowFailed: student has an unpaid delay penalty", wrapped.Error())
}

func Test_Kind_OfForeignError_IsNil(t *testing.T) {
	assert.Nil(t, core.Kind(errors.New("database down")))
	assert.Nil(t, core.Kind(nil))
}
