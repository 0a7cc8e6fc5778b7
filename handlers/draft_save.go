package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleDraftSave validates and persists an open draft, then closes the
// session. Saving the same number again replaces the stored quote.
func HandleDraftSave(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_save: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not save draft")
		}

		if err := engine.Validate(draft); err != nil {
			if errors.Is(err, services.ErrNoCustomer) {
				return apiError(e, http.StatusUnprocessableEntity, "Select a customer before saving")
			}
			return apiError(e, http.StatusUnprocessableEntity, err.Error())
		}

		if err := store.UpsertQuote(app, draft); err != nil {
			log.Printf("draft_save: could not persist %s: %v", number, err)
			return apiError(e, http.StatusInternalServerError, "Could not save draft")
		}

		sessions.Discard(number)
		return e.JSON(http.StatusOK, draft)
	}
}

// HandleDraftDiscard drops an open draft without saving. Unknown
// numbers are a no-op.
func HandleDraftDiscard(sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		if draft, ok := sessions.Get(number); ok {
			if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
				return apiError(e, http.StatusForbidden, "Not your draft")
			}
		}
		sessions.Discard(number)
		return e.NoContent(http.StatusNoContent)
	}
}
