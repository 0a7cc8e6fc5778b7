package handlers

import (
	"github.com/pocketbase/pocketbase"

	"onyxcrm/services"
	"onyxcrm/store"
)

// draftEngine builds an engine over the current official rate table.
// Customer jurisdictions are resolved live so a draft picks up address
// corrections made while it is open.
func draftEngine(app *pocketbase.PocketBase) (services.Engine, error) {
	rates, err := store.OfficialRates(app)
	if err != nil {
		return services.Engine{}, err
	}
	return services.Engine{
		Rates: rates,
		Customer: func(id string) (services.Jurisdiction, bool) {
			c, err := store.GetCustomer(app, id)
			if err != nil {
				return services.Jurisdiction{}, false
			}
			return c.Jurisdiction(), true
		},
	}, nil
}
