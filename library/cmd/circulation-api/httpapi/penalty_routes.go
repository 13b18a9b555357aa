package httpapi

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/features/command/markdelaypenaltypaid"
	"github.com/AntonStoeckl/library-circulation-go/library/features/query/delaypenalties"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/accesspolicy"
	"github.com/AntonStoeckl/library-circulation-go/library/shared/core"
)

func (s *Server) listDelayPenalties(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	values := r.URL.Query()

	studentID, err := listOwner(actor, values.Get("student"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err = accesspolicy.Authorize(actor, accesspolicy.ActionViewDelayPenalties, studentID); err != nil {
		s.writeError(w, r, err)
		return
	}

	isPaid, err := optionalBool(values, "is_paid")
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	query := delaypenalties.BuildQueryForStudent(studentID)
	query.IsPaid = isPaid

	result, err := s.handlers.DelayPenalties.Handle(r.Context(), query)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, penaltyListResponseFrom(result))
}

func (s *Server) markDelayPenaltyPaid(w http.ResponseWriter, r *http.Request) {
	if err := accesspolicy.Authorize(actorFrom(r.Context()), accesspolicy.ActionMarkDelayPenaltyPaid, uuid.Nil); err != nil {
		s.writeError(w, r, err)
		return
	}

	penaltyID, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if _, err = s.handlers.MarkDelayPenaltyPaid.Handle(r.Context(), markdelaypenaltypaid.BuildCommand(penaltyID, s.now())); err != nil {
		s.writeError(w, r, err)
		return
	}

	result, err := s.handlers.DelayPenalties.Handle(r.Context(), delaypenalties.BuildQueryForPenalty(penaltyID))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if result.Count == 0 {
		s.writeError(w, r, core.ErrPenaltyNotFound)
		return
	}

	writeJSON(w, http.StatusOK, penaltyResponseFrom(result.Penalties[0]))
}
