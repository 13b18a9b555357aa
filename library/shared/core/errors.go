package core

import (
	"errors"
)

// Error kinds. Every domain error below matches exactly one of them with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrIneligibility = errors.New("ineligibility error")
	ErrStateConflict = errors.New("state conflict")
	ErrNotFound      = errors.New("not found")
)

// Validation errors.
var (
	ErrDurationRequired = newDomainError(ErrValidation, "a positive borrow duration in days is required")
	ErrInvalidBook      = newDomainError(ErrValidation, "invalid book")
	ErrInvalidTagName   = newDomainError(ErrValidation, "tag name must have 1 to 50 characters")
)

// Ineligibility errors.
var (
	ErrIneligibleStudent       = newDomainError(ErrIneligibility, "student is not eligible to borrow")
	ErrStudentHasActiveBorrow  = ErrIneligibleStudent.withReason("student has not returned a previously borrowed book")
	ErrStudentHasUnpaidPenalty = ErrIneligibleStudent.withReason("student has an unpaid delay penalty")
	ErrBookUnavailable         = newDomainError(ErrIneligibility, "no copy of this book is available right now")
)

// State conflicts.
var (
	ErrAlreadyDelivered = newDomainError(ErrStateConflict, "borrow was already delivered")
	ErrNotYetDelivered  = newDomainError(ErrStateConflict, "borrow was not delivered yet")
	ErrAlreadyReturned  = newDomainError(ErrStateConflict, "borrow was already returned")
	ErrNotYetReturned   = newDomainError(ErrStateConflict, "borrow was not returned yet")
	ErrDuplicateISBN    = newDomainError(ErrStateConflict, "a book with this ISBN already exists")
	ErrDuplicateTagName = newDomainError(ErrStateConflict, "a tag with this name already exists")
	ErrBorrowIDConflict = newDomainError(ErrStateConflict, "a different borrow with this ID already exists")
	ErrBookIDConflict   = newDomainError(ErrStateConflict, "a different book with this ID already exists")
	ErrTagIDConflict    = newDomainError(ErrStateConflict, "a different tag with this ID already exists")
)

// Not found errors.
var (
	ErrBorrowNotFound  = newDomainError(ErrNotFound, "borrow not found")
	ErrBookNotFound    = newDomainError(ErrNotFound, "book not found")
	ErrPenaltyNotFound = newDomainError(ErrNotFound, "delay penalty not found")
	ErrTagNotFound     = newDomainError(ErrNotFound, "tag not found")
)

// DomainError is a business rule violation of one kind, optionally refining a more general DomainError.
type DomainError struct {
	kind    error
	general *DomainError
	message string
}

func newDomainError(kind error, message string) *DomainError {
	return &DomainError{kind: kind, message: message}
}

func (e *DomainError) withReason(message string) *DomainError {
	return &DomainError{kind: e.kind, general: e, message: message}
}

func (e *DomainError) Error() string {
	return e.message
}

// Unwrap exposes the kind and the more general error to errors.Is.
func (e *DomainError) Unwrap() []error {
	if e.general == nil {
		return []error{e.kind}
	}

	return []error{e.kind, e.general}
}

// Kind returns ErrValidation, ErrIneligibility, ErrStateConflict or ErrNotFound for domain errors, nil otherwise.
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrIneligibility, ErrStateConflict, ErrNotFound} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
