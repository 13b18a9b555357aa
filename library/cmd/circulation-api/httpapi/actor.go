package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-circulation-go/library/shared/accesspolicy"
)

const (
	// HeaderActorID carries the UUID of the caller.
	HeaderActorID = "X-Actor-ID"

	// HeaderActorRole carries "manager" or "student".
	HeaderActorRole = "X-Actor-Role"
)

type actorContextKey struct{}

func withActor(ctx context.Context, actor accesspolicy.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func actorFrom(ctx context.Context) accesspolicy.Actor {
	actor, _ := ctx.Value(actorContextKey{}).(accesspolicy.Actor)

	return actor
}

func actorFromHeaders(header http.Header) (accesspolicy.Actor, error) {
	id, err := uuid.Parse(header.Get(HeaderActorID))
	if err != nil {
		return accesspolicy.Actor{}, errors.Join(ErrMissingActor, err)
	}

	role, err := accesspolicy.ParseRole(strings.ToLower(strings.TrimSpace(header.Get(HeaderActorRole))))
	if err != nil {
		return accesspolicy.Actor{}, errors.Join(ErrMissingActor, err)
	}

	actor, err := accesspolicy.BuildActor(id, role)
	if err != nil {
		return accesspolicy.Actor{}, errors.Join(ErrMissingActor, err)
	}

	return actor, nil
}

func (s *Server) requireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorFromHeaders(r.Header)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withActor(r.Context(), actor)))
	})
}
