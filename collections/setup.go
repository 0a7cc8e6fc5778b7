package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// Setup programmatically creates/ensures the app_users, categories,
// customers, products, quotes and exchange_rates collections exist.
func Setup(app *pocketbase.PocketBase) {
	users := ensureCollection(app, "app_users", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "username", Required: true})
		c.Fields.Add(&core.TextField{Name: "password", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  true,
			Values:    []string{services.RoleAdmin, services.RoleUser},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "categories", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.TextField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "website", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.TextField{Name: "state", Required: false})
		c.Fields.Add(&core.TextField{Name: "country", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:          "owner",
			Required:      false,
			CollectionId:  users.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "sku", Required: false})
		c.Fields.Add(&core.NumberField{Name: "price", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "currency",
			Required:  true,
			Values:    currencyValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.TextField{Name: "hsn", Required: false})
		c.Fields.Add(&core.TextField{Name: "details", Required: false})
		c.Fields.Add(&core.TextField{Name: "optional_details", Required: false})
		c.Fields.Add(&core.TextField{Name: "image", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      false,
			CollectionId:  customers.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:          "owner",
			Required:      false,
			CollectionId:  users.Id,
			CascadeDelete: false,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "date", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "currency",
			Required:  false,
			Values:    currencyValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.JSONField{Name: "items", Required: false})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.JSONField{Name: "tax_breakdown", Required: false})
		c.Fields.Add(&core.TextField{Name: "tax_label", Required: false})
		c.Fields.Add(&core.NumberField{Name: "tax_total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "grand_total", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    services.QuoteStatuses,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "terms", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "exchange_rates", func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "currency",
			Required:  true,
			Values:    currencyValues(),
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "rate", Required: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// currencyValues lists the select values for currency fields.
func currencyValues() []string {
	values := make([]string, 0, len(services.SupportedCurrencies))
	for _, c := range services.SupportedCurrencies {
		values = append(values, string(c))
	}
	return values
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
