package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"onyxcrm/services"
)

// MigrateQuoteCurrency backfills quotes saved before the currency field
// existed. Such quotes take the currency of their first line item, or
// INR when they have no items. Safe to call on every startup -- returns
// early if nothing to migrate.
func MigrateQuoteCurrency(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	orphans, err := app.FindRecordsByFilter(
		quotesCol,
		"currency = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query quotes without currency: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	log.Printf("migrate: found %d quote(s) without a currency -- backfilling...\n", len(orphans))

	for _, quote := range orphans {
		currency := services.BaseCurrency

		var items []services.LineItem
		if err := quote.UnmarshalJSONField("items", &items); err == nil && len(items) > 0 {
			if services.IsSupportedCurrency(items[0].UnitCurrency) {
				currency = items[0].UnitCurrency
			}
		}

		quote.Set("currency", string(currency))
		if err := app.Save(quote); err != nil {
			log.Printf("migrate: failed to backfill currency for quote %q: %v\n", quote.GetString("number"), err)
			continue
		}

		log.Printf("migrate: quote %q -> %s\n", quote.GetString("number"), currency)
	}

	log.Println("migrate: quote currency migration complete.")
	return nil
}
