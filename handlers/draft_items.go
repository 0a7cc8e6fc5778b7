package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleDraftAddItem snapshots a product onto an open draft. Adding a
// product already on the draft bumps its quantity instead.
func HandleDraftAddItem(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
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
			ProductID string `json:"productId"`
		}
		if err := decodeJSON(e, &req); err != nil || req.ProductID == "" {
			return apiError(e, http.StatusBadRequest, "Missing product id")
		}

		product, err := store.GetProduct(app, req.ProductID)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Product not found")
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_items: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not update draft")
		}

		updated, err := engine.AddItem(draft, product)
		if err != nil {
			log.Printf("draft_items: add item to %s: %v", number, err)
			return apiError(e, http.StatusUnprocessableEntity, "Could not price the item in the draft currency")
		}

		sessions.Put(updated)
		return e.JSON(http.StatusOK, updated)
	}
}

// HandleDraftRemoveItem drops a product line from an open draft.
func HandleDraftRemoveItem(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		productID := e.Request.PathValue("productId")

		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_items: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not update draft")
		}

		updated, err := engine.RemoveItem(draft, productID)
		if err != nil {
			log.Printf("draft_items: remove item from %s: %v", number, err)
			return apiError(e, http.StatusUnprocessableEntity, "Could not recompute the draft")
		}

		sessions.Put(updated)
		return e.JSON(http.StatusOK, updated)
	}
}

// HandleDraftQty nudges the quantity of a product line on an open draft
// by a delta. The quantity never drops below 1.
func HandleDraftQty(app *pocketbase.PocketBase, sessions *services.Sessions) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")
		productID := e.Request.PathValue("productId")

		draft, ok := sessions.Get(number)
		if !ok {
			return apiError(e, http.StatusNotFound, "No open draft with that number")
		}
		if !services.CanSee(CurrentActor(e.Request), draft.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your draft")
		}

		var req struct {
			Delta int `json:"delta"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		engine, err := draftEngine(app)
		if err != nil {
			log.Printf("draft_items: could not load rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not update draft")
		}

		updated, err := engine.ChangeQty(draft, productID, req.Delta)
		if err != nil {
			log.Printf("draft_items: change qty on %s: %v", number, err)
			return apiError(e, http.StatusUnprocessableEntity, "Could not recompute the draft")
		}

		sessions.Put(updated)
		return e.JSON(http.StatusOK, updated)
	}
}
