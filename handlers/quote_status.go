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

// HandleQuoteStatus moves a saved quote to another lifecycle status.
// Any known status can be set at any time.
func HandleQuoteStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")

		var req struct {
			Status string `json:"status"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		if !services.IsValidStatus(req.Status) {
			return apiError(e, http.StatusBadRequest, "Unknown status")
		}

		if err := store.SetQuoteStatus(app, number, req.Status); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return apiError(e, http.StatusNotFound, "Quote not found")
			}
			log.Printf("quote_status: %s -> %s: %v", number, req.Status, err)
			return apiError(e, http.StatusInternalServerError, "Could not update status")
		}

		return e.JSON(http.StatusOK, map[string]string{"number": number, "status": req.Status})
	}
}
