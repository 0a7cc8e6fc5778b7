package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

type contextKey string

const ActorKey contextKey = "actor"

// ActorHeader carries the logged-in user's record id on every API call.
const ActorHeader = "X-Actor-Id"

// CurrentActor extracts the authenticated actor from the request context.
func CurrentActor(r *http.Request) services.Actor {
	if val, ok := r.Context().Value(ActorKey).(services.Actor); ok {
		return val
	}
	return services.Actor{}
}

// RequireActor resolves the X-Actor-Id header to a user record and
// stores the actor in the request context. Requests without a valid
// actor are rejected with 401.
func RequireActor(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.Header.Get(ActorHeader)
		if id == "" {
			return apiError(e, http.StatusUnauthorized, "Not logged in")
		}

		actor, err := store.GetActor(app, id)
		if err != nil {
			return apiError(e, http.StatusUnauthorized, "Not logged in")
		}

		ctx := context.WithValue(e.Request.Context(), ActorKey, actor)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// RequireAdmin wraps a handler so only admin actors reach it. It expects
// RequireActor to have run first.
func RequireAdmin(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !CurrentActor(e.Request).IsAdmin() {
			return apiError(e, http.StatusForbidden, "Admin access required")
		}
		return next(e)
	}
}
