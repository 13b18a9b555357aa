package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
)

const maxBodyBytes = 1 << 20

type createTagRequest struct {
	TagID string `json:"tag_id"`
	Name  string `json:"name"`
}

type addBookRequest struct {
	BookID  string   `json:"book_id"`
	Title   string   `json:"title"`
	ISBN    string   `json:"isbn"`
	Authors string   `json:"authors"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
	Copies  int      `json:"copies"`
}

type createBorrowRequest struct {
	BorrowID  string `json:"borrow_id"`
	BookID    string `json:"book"`
	StudentID string `json:"student"`
}

type startBorrowRequest struct {
	Duration int `json:"duration"`
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	decoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))

	if err := decoder.Decode(target); err != nil {
		return errors.Join(ErrInvalidRequest, fmt.Errorf("malformed JSON body: %w", err))
	}

	return nil
}

func parseID(name string, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, errors.Join(ErrInvalidRequest, fmt.Errorf("%s must be a UUID", name))
	}

	return id, nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	return parseID("id", mux.Vars(r)["id"])
}

// idOrNew parses a client supplied ID, which makes retries of a create request idempotent, or generates one.
func (s *Server) idOrNew(name string, value string) (uuid.UUID, error) {
	if strings.TrimSpace(value) != "" {
		return parseID(name, value)
	}

	return s.newID()
}

func optionalID(values url.Values, name string) (uuid.UUID, error) {
	if values.Get(name) == "" {
		return uuid.Nil, nil
	}

	return parseID(name, values.Get(name))
}

// multiValue accepts repeated parameters as well as comma separated lists.
func multiValue(values url.Values, name string) []string {
	result := make([]string, 0)

	for _, value := range values[name] {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
	}

	return result
}

func optionalInt(values url.Values, name string) (int, error) {
	if values.Get(name) == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(values.Get(name))
	if err != nil {
		return 0, errors.Join(ErrInvalidRequest, fmt.Errorf("%s must be an integer", name))
	}

	return n, nil
}

func optionalBool(values url.Values, name string) (*bool, error) {
	if values.Get(name) == "" {
		return nil, nil
	}

	b, err := strconv.ParseBool(values.Get(name))
	if err != nil {
		return nil, errors.Join(ErrInvalidRequest, fmt.Errorf("%s must be true or false", name))
	}

	return &b, nil
}

// optionalTime accepts RFC 3339 timestamps and dates, a date as upper bound means the end of that day.
func optionalTime(values url.Values, name string, upperBound bool) (time.Time, error) {
	value := values.Get(name)
	if value == "" {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidRequest, fmt.Errorf("%s must be a date or an RFC 3339 timestamp", name))
	}

	if upperBound {
		return day.AddDate(0, 0, 1).Add(-time.Microsecond), nil
	}

	return day, nil
}

func invalidParameter(name string, reason string) error {
	return errors.Join(ErrInvalidRequest, fmt.Errorf("%s %s", name, reason))
}
