package httpapi

import (
	"errors"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/accesspolicy"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

var (
	// ErrMissingActor is returned when the actor headers are missing or malformed.
	ErrMissingActor = errors.New("missing or invalid actor")

	// ErrInvalidRequest is returned for request bodies, path or query parameters that can not be parsed.
	ErrInvalidRequest = errors.New("invalid request")
)

type errorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps an error to the HTTP status of the response.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingActor):
		return http.StatusUnauthorized
	case errors.Is(err, accesspolicy.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	}

	switch core.Kind(err) {
	case core.ErrValidation, core.ErrIneligibility:
		return http.StatusBadRequest
	case core.ErrStateConflict:
		return http.StatusConflict
	case core.ErrNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// messageFor strips the failure event type the command handlers prefix domain errors with.
func messageFor(err error, status int) string {
	if status == http.StatusInternalServerError {
		return http.StatusText(status)
	}

	message := err.Error()

	var domainErr *core.DomainError
	if errors.As(err, &domainErr) {
		if i := strings.Index(message, domainErr.Error()); i > 0 {
			return message[i:]
		}
	}

	return message
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	}

	writeJSON(w, status, errorResponse{Error: messageFor(err, status)})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(body)
}
