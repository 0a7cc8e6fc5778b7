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

// HandleRatesGet returns the official exchange rate table, in INR per
// foreign unit.
func HandleRatesGet(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rates, err := store.OfficialRates(app)
		if err != nil {
			log.Printf("rates: load: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load rates")
		}
		return e.JSON(http.StatusOK, rates)
	}
}

// HandleRatesUpdate replaces the official rate table. Admin only.
func HandleRatesUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rates services.RateTable
		if err := decodeJSON(e, &rates); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		for currency := range rates {
			if !services.IsSupportedCurrency(currency) || currency == services.BaseCurrency {
				return apiError(e, http.StatusBadRequest, "Unsupported currency "+string(currency))
			}
		}

		if err := store.SetOfficialRates(app, rates); err != nil {
			var invalid *services.InvalidRateError
			if errors.As(err, &invalid) {
				return apiError(e, http.StatusBadRequest, invalid.Error())
			}
			log.Printf("rates: update: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not update rates")
		}

		return e.JSON(http.StatusOK, rates)
	}
}

// HandleRatesLive fetches indicative market rates from the public feed.
// The official table is untouched; an admin reviews and applies them
// via the update endpoint.
func HandleRatesLive(app *pocketbase.PocketBase, feedURL string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		live, err := services.FetchLiveRates(e.Request.Context(), feedURL)
		if err != nil {
			log.Printf("rates: live fetch: %v", err)
			return apiError(e, http.StatusBadGateway, "Live rates are unavailable right now")
		}
		return e.JSON(http.StatusOK, live)
	}
}
