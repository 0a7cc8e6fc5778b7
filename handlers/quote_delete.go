package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/store"
)

// HandleQuoteDelete removes a saved quote. Deleting an absent number
// succeeds quietly.
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")

		if err := store.DeleteQuote(app, number); err != nil {
			log.Printf("quote_delete: %s: %v", number, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete quote")
		}

		return e.NoContent(http.StatusNoContent)
	}
}
