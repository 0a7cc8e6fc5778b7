package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleDraftCustomer points an open draft at a different customer and
// re-derives the tax branch from the customer's address.
func HandleDraftCustomer(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}

		var req struct {
			CustomerID string `json:"customerId"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		if req.CustomerID != "" {
			if _, err := store.GetCustomer(app, req.CustomerID); err != nil {
				return apiError(e, http.StatusNotFound, "Customer not found")
			}
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_settings: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not update draft")
		}

		updated, err := engine.ChangeCustomer(draft, req.CustomerID)
		if err != nil {
			log.Printf("draft_settings: change customer on %s: %v", number, err)
			return apiError(e, http.StatusUnprocessableEntity, "Could not recompute the draft")
		}

		sessions.Put(updated)
		return e.JSON(http.StatusOK, updated)
	}
}

// HandleDraftCurrency switches the display currency of an open draft.
// Line snapshots keep their captured currencies; only totals move.
func HandleDraftCurrency(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}

		var req struct {
			Currency string `json:"currency"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_settings: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not update draft")
		}

		updated, err := engine.ChangeCurrency(draft, services.Currency(req.Currency))
		if err != nil {
			log.Printf("draft_settings: change currency on %s: %v", number, err)
			return apiError(e, http.StatusUnprocessableEntity, "Could not switch the draft currency")
		}

		sessions.Put(updated)
		return e.JSON(http.StatusOK, updated)
	}
}

// HandleDraftTerms replaces the terms text on an open draft. Terms do
// not affect totals, so no recomputation happens.
func HandleDraftTerms(sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}

		var req struct {
			Terms string `json:"terms"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		draft.Terms = req.Terms
		sessions.Put(draft)
		return e.JSON(http.StatusOK, draft)
	}
}
