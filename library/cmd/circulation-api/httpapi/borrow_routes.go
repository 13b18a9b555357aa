package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/createborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/recorddelaypenalty"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/startborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/command/terminateborrow"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowdetails"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/borrowlist"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/accesspolicy"
)

func (s *Server) createBorrow(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())

	var req createBorrowRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	bookID, err := parseID("book", req.BookID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	studentID := actor.ID
	if req.StudentID != "" {
		if studentID, err = parseID("student", req.StudentID); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	if err = accesspolicy.Authorize(actor, accesspolicy.ActionCreateBorrow, studentID); err != nil {
		s.writeError(w, r, err)
		return
	}

	borrowID, err := s.idOrNew("borrow_id", req.BorrowID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	now := s.now()

	result, err := s.handlers.CreateBorrow.Handle(r.Context(), createborrow.BuildCommand(borrowID, studentID, bookID, now))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.respondWithBorrow(w, r, createdStatus(result), borrowID)
}

func (s *Server) listBorrows(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	values := r.URL.Query()

	studentID, err := listOwner(actor, values.Get("student"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err = accesspolicy.Authorize(actor, accesspolicy.ActionViewBorrows, studentID); err != nil {
		s.writeError(w, r, err)
		return
	}

	from, err := optionalTime(values, "requested_from", false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	until, err := optionalTime(values, "requested_until", true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	query := borrowlist.BuildQueryForStudent(studentID).RequestedBetween(from, until)

	result, err := s.handlers.BorrowList.Handle(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, borrowListResponseFrom(result))
}

func (s *Server) borrowDetails(w http.ResponseWriter, r *http.Request) {
	borrowID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	details, err := s.handlers.BorrowDetails.Handle(r.Context(), borrowdetails.BuildQuery(borrowID, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	owner, err := uuid.Parse(details.StudentID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err = accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionViewBorrows, owner); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, borrowResponseFrom(details))
}

func (s *Server) startBorrow(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionStartBorrow, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	borrowID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var req startBorrowRequest
	if err = decodeBody(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err = s.handlers.StartBorrow.Handle(r.Context(), startborrow.BuildCommand(borrowID, req.Duration, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.respondWithBorrow(w, r, http.StatusOK, borrowID)
}

func (s *Server) terminateBorrow(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionTerminateBorrow, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	borrowID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err = s.handlers.TerminateBorrow.Handle(r.Context(), terminateborrow.BuildCommand(borrowID, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.respondWithBorrow(w, r, http.StatusOK, borrowID)
}

func (s *Server) recordDelayPenalty(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionRecordDelayPenalty, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	borrowID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err = s.handlers.RecordDelayPenalty.Handle(r.Context(), recorddelaypenalty.BuildCommand(borrowID, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.respondWithBorrow(w, r, http.StatusOK, borrowID)
}

// respondWithBorrow reads the borrow back through its read model.
func (s *Server) respondWithBorrow(w http.ResponseWriter, r *http.Request, status int, borrowID uuid.UUID) {
	details, err := s.handlers.BorrowDetails.Handle(r.Context(), borrowdetails.BuildQuery(borrowID, s.now()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, status, borrowResponseFrom(details))
}

// listOwner resolves whose borrows or penalties are listed. Students default to themselves, managers to everyone.
func listOwner(actor accesspolicy.Actor, student string) (uuid.UUID, error) {
	if student != "" {
		return parseID("student", student)
	}

	if actor.IsManager() {
		return uuid.Nil, nil
	}

	return actor.ID, nil
}
