package shell

import (
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

var domainErrorKindLabels = map[error]string{
	core.ErrValidation:    "validation",
	core.ErrIneligibility: "ineligibility",
	core.ErrStateConflict: "state_conflict",
	core.ErrNotFound:      "not_found",
}

// IsDomainError checks if an error is a business rule violation rather than a technical failure.
func IsDomainError(err error) bool {
	return core.Kind(err) != nil
}

// DomainErrorKind returns a label for the kind of a domain error, or an empty string for other errors.
func DomainErrorKind(err error) string {
	kind := core.Kind(err)
	if kind == nil {
		return ""
	}

	return domainErrorKindLabels[kind]
}
