package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

type userDef struct {
	username string
	password string
	name     string
	role     string
}

type productDef struct {
	name            string
	sku             string
	price           float64
	currency        services.Currency
	category        string
	hsn             string
	details         string
	optionalDetails string
}

var seedUsers = []userDef{
	{username: "admin", password: "123", name: "Administrator", role: services.RoleAdmin},
}

var seedCategories = []string{
	"WET PROCESS MACHINES",
	"DRY PROCESS MACHINES",
	"AUXILIARY MACHINES",
	"Hydraulic",
	"CNC",
	"Logistics",
	"Parts",
}

var seedProducts = []productDef{
	{
		name:     "OM-200 Hydraulic Press",
		sku:      "HP-200",
		price:    15000,
		currency: services.USD,
		category: "Hydraulic",
		hsn:      "8462",
		details: "High pressure hydraulic press for industrial use.\n" +
			"- Capacity: 200 Tons\n- Stroke: 500mm\n- Motor: 15HP",
		optionalDetails: "Includes 1 year onsite warranty.",
	},
}

// seedRates is the official table on first boot: INR per foreign unit.
var seedRates = services.RateTable{
	services.USD: 84.00,
	services.EUR: 90.00,
	services.GBP: 105.00,
	services.AED: 22.80,
}

// Seed populates an empty database with the default admin account, the
// starter category list, the sample product and the official exchange
// rates. It is safe to call on every startup because it returns early
// if any user records already exist.
func Seed(app *pocketbase.PocketBase) error {
	usersCol, err := app.FindCollectionByNameOrId("app_users")
	if err != nil {
		return fmt.Errorf("seed: could not find app_users collection: %w", err)
	}
	existing, err := app.FindAllRecords(usersCol)
	if err != nil {
		return fmt.Errorf("seed: could not query app_users: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: app_users collection is empty – inserting seed data …")

	categoriesCol, err := app.FindCollectionByNameOrId("categories")
	if err != nil {
		return fmt.Errorf("seed: could not find categories collection: %w", err)
	}
	productsCol, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return fmt.Errorf("seed: could not find products collection: %w", err)
	}
	ratesCol, err := app.FindCollectionByNameOrId("exchange_rates")
	if err != nil {
		return fmt.Errorf("seed: could not find exchange_rates collection: %w", err)
	}

	for _, u := range seedUsers {
		r := core.NewRecord(usersCol)
		r.Set("username", u.username)
		r.Set("password", u.password)
		r.Set("name", u.name)
		r.Set("role", u.role)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save user %q: %w", u.username, err)
		}
	}

	for _, name := range seedCategories {
		r := core.NewRecord(categoriesCol)
		r.Set("name", name)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save category %q: %w", name, err)
		}
	}

	for _, p := range seedProducts {
		r := core.NewRecord(productsCol)
		r.Set("name", p.name)
		r.Set("sku", p.sku)
		r.Set("price", p.price)
		r.Set("currency", string(p.currency))
		r.Set("category", p.category)
		r.Set("hsn", p.hsn)
		r.Set("details", p.details)
		r.Set("optional_details", p.optionalDetails)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save product %q: %w", p.name, err)
		}
	}

	for _, c := range services.SupportedCurrencies {
		if c == services.BaseCurrency {
			continue
		}
		r := core.NewRecord(ratesCol)
		r.Set("currency", string(c))
		r.Set("rate", seedRates[c])
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save rate %s: %w", c, err)
		}
	}

	log.Println("seed: all seed data inserted successfully (1 user, 7 categories, 1 product, 4 rates)")
	return nil
}
