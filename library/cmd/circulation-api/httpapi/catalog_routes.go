package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/addbooktocatalog"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createtag"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/bookavailability"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/catalogsearch"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/relatedbooks"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/accesspolicy"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/shell"
)

// createdStatus is 201 unless the command was a replay.
func createdStatus(result shell.HandlerResult) int {
	if result.Idempotent {
		return http.StatusOK
	}

	return http.StatusCreated
}

func (s *Server) createTag(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionCreateTag, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req createTagRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tagID, err := s.idOrNew("tag_id", req.TagID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.CreateTag.Handle(r.Context(), createtag.BuildCommand(tagID, req.Name, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, createdStatus(result), tagResponse{TagID: tagID.String(), Name: req.Name})
}

func (s *Server) addBookToCatalog(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionAddBookToCatalog, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	var req addBookRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	bookID, err := s.idOrNew("book_id", req.BookID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	tagIDs := make([]uuid.UUID, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tagID, err := parseID("tags", tag)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		tagIDs = append(tagIDs, tagID)
	}

	command := addbooktocatalog.BuildCommand(
		bookID, req.Title, req.ISBN, req.Authors, req.Type, tagIDs, req.Copies, s.now(),
	)

	result, err := s.handlers.AddBookToCatalog.Handle(r.Context(), command)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	availability, err := s.handlers.BookAvailability.Handle(r.Context(), bookavailability.BuildQuery(bookID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, createdStatus(result), availabilityResponseFrom(availability))
}

func (s *Server) searchCatalog(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionViewCatalog, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	values := r.URL.Query()

	types := multiValue(values, "type")
	for _, bookType := range types {
		if !core.IsValidBookType(bookType) {
			s.writeError(w, r, invalidParameter("type", "must be one of R, A, T, O"))
			return
		}
	}

	tags := multiValue(values, "tag")
	tagIDs := make([]uuid.UUID, 0, len(tags))
	for _, tag := range tags {
		tagID, err := parseID("tag", tag)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		tagIDs = append(tagIDs, tagID)
	}

	result, err := s.handlers.CatalogSearch.Handle(r.Context(), catalogsearch.BuildQuery(values.Get("search"), types, tagIDs))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookListResponseFrom(result))
}

func (s *Server) bookAvailability(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionViewCatalog, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.BookAvailability.Handle(r.Context(), bookavailability.BuildQuery(bookID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponseFrom(result))
}

func (s *Server) relatedBooks(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionViewCatalog, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	bookID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := optionalInt(r.URL.Query(), "page")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	pageSize, err := optionalInt(r.URL.Query(), "page_size")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.RelatedBooks.Handle(r.Context(), relatedbooks.BuildQuery(bookID, page, pageSize))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, relatedBooksResponseFrom(result))
}
