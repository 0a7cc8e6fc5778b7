package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleQuoteList returns the saved quotes visible to the logged-in
// user, filtered by the optional customer, status, from, to and q query
// parameters.
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		actor := CurrentActor(e.Request)
		query := e.Request.URL.Query()

		filter := store.QuoteFilter{
			CustomerID: query.Get("customer"),
			Status:     query.Get("status"),
			DateFrom:   query.Get("from"),
			DateTo:     query.Get("to"),
			Search:     query.Get("q"),
		}

		quotes, err := store.ListQuotes(app, actor, filter)
		if err != nil {
			log.Printf("quote_list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load quotes")
		}

		return e.JSON(http.StatusOK, quotes)
	}
}

// HandleQuoteView returns one saved quote by number.
func HandleQuoteView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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

		return e.JSON(http.StatusOK, quote)
	}
}
