package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleDraftCreate opens a new empty draft for the logged-in user and
// parks it in the session store under the next quote number.
func HandleDraftCreate(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		actor := CurrentActor(e.Request)

		number, err := services.NextQuoteNumber(app)
		if err != nil {
			log.Printf("draft_create: could not allocate quote number: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not create draft")
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_create: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not create draft")
		}

		draft := engine.NewDraft(number, actor.ID)
		sessions.Put(draft)
		return e.JSON(http.StatusOK, draft)
	}
}

// HandleDraftGet returns the current state of an open draft.
func HandleDraftGet(sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}
		return e.JSON(http.StatusOK, draft)
	}
}

// HandleQuoteEdit reopens a saved quote as a draft session so it can be
// modified and saved again under the same number.
func HandleQuoteEdit(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")

		quote, err := store.GetQuote(app, number)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Quote not found")
		}

		actor := CurrentActor(e.Request)
		if !services.CanSee(actor, quote.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your quote")
		}

		sessions.Put(quote)
		return e.JSON(http.StatusOK, quote)
	}
}
