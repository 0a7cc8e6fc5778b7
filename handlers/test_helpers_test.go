package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withActor puts an actor into the request context the way RequireActor
// does, so handlers behind the middleware can be tested in isolation.
func withActor(req *http.Request, actor services.Actor) *http.Request {
	ctx := context.WithValue(req.Context(), ActorKey, actor)
	return req.WithContext(ctx)
}
