package store

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// OfficialRates loads the official table. Every read returns a fresh
// copy, so callers can hold or modify their table without aliasing a
// later read. Draft recomputations reload the table per mutation, so
// an admin rate update applies from the next edit onward.
func OfficialRates(app *pocketbase.PocketBase) (services.RateTable, error) {
	records, err := app.FindAllRecords("exchange_rates")
	if err != nil {
		return nil, fmt.Errorf("load exchange rates: %w", err)
	}

	rates := make(services.RateTable, len(records))
	for _, r := range records {
		currency := services.Currency(r.GetString("currency"))
		rates[currency] = r.GetFloat("rate")
	}
	return rates, nil
}

// SetOfficialRates replaces the stored table in one pass: existing
// currencies are updated, new ones inserted, and entries missing from
// the new table removed.
func SetOfficialRates(app *pocketbase.PocketBase, rates services.RateTable) error {
	for currency, rate := range rates {
		if rate <= 0 {
			return &services.InvalidRateError{Currency: currency, Rate: rate}
		}
	}

	col, err := app.FindCollectionByNameOrId("exchange_rates")
	if err != nil {
		return fmt.Errorf("find exchange_rates collection: %w", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("load exchange rates: %w", err)
	}

	seen := make(map[services.Currency]bool, len(rates))
	for _, r := range existing {
		currency := services.Currency(r.GetString("currency"))
		rate, ok := rates[currency]
		if !ok {
			if err := app.Delete(r); err != nil {
				return fmt.Errorf("remove rate %s: %w", currency, err)
			}
			continue
		}
		seen[currency] = true
		r.Set("rate", rate)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("update rate %s: %w", currency, err)
		}
	}

	for currency, rate := range rates {
		if seen[currency] {
			continue
		}
		record := core.NewRecord(col)
		record.Set("currency", string(currency))
		record.Set("rate", rate)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("insert rate %s: %w", currency, err)
		}
	}
	return nil
}
