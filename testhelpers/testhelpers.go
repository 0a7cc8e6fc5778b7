// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"encoding/json"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/collections"
	"onyxcrm/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestUser creates an app_users record and returns it.
func CreateTestUser(t *testing.T, app *pocketbase.PocketBase, username, role string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("app_users")
	if err != nil {
		t.Fatalf("failed to find app_users collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("username", username)
	record.Set("password", "secret")
	record.Set("name", username)
	record.Set("role", role)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test user: %v", err)
	}

	return record
}

// CreateTestCustomer creates a customer record owned by ownerID.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name, state, country, ownerID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("contact_person", "Test Contact")
	record.Set("state", state)
	record.Set("country", country)
	record.Set("owner", ownerID)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestProduct creates a product record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, name, sku string, price float64, currency services.Currency) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("sku", sku)
	record.Set("price", price)
	record.Set("currency", string(currency))
	record.Set("category", "Hydraulic")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestQuote persists a quote value and returns its record.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, q services.Quote) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	items, err := json.Marshal(q.Items)
	if err != nil {
		t.Fatalf("failed to marshal items: %v", err)
	}
	breakdown, err := json.Marshal(q.TaxBreakdown)
	if err != nil {
		t.Fatalf("failed to marshal tax breakdown: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("number", q.Number)
	record.Set("customer", q.CustomerID)
	record.Set("owner", q.OwnerID)
	record.Set("date", q.Date)
	record.Set("currency", string(q.Currency))
	record.Set("items", string(items))
	record.Set("subtotal", q.Subtotal)
	record.Set("tax_breakdown", string(breakdown))
	record.Set("tax_label", q.TaxLabel)
	record.Set("tax_total", q.TaxTotal)
	record.Set("grand_total", q.GrandTotal)
	record.Set("status", q.Status)
	record.Set("terms", q.Terms)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// SetTestRates replaces the exchange_rates collection contents with the
// given table.
func SetTestRates(t *testing.T, app *pocketbase.PocketBase, rates services.RateTable) {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("exchange_rates")
	if err != nil {
		t.Fatalf("failed to find exchange_rates collection: %v", err)
	}

	existing, err := app.FindAllRecords(col)
	if err != nil {
		t.Fatalf("failed to list exchange rates: %v", err)
	}
	for _, r := range existing {
		if err := app.Delete(r); err != nil {
			t.Fatalf("failed to clear exchange rate: %v", err)
		}
	}

	for currency, rate := range rates {
		record := core.NewRecord(col)
		record.Set("currency", string(currency))
		record.Set("rate", rate)
		if err := app.Save(record); err != nil {
			t.Fatalf("failed to save exchange rate %s: %v", currency, err)
		}
	}
}
