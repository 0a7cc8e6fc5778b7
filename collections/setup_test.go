package collections_test

import (
	"testing"

	"onyxcrm/collections"
	"onyxcrm/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"app_users",
	"categories",
	"customers",
	"products",
	"quotes",
	"exchange_rates",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q id changed after second Setup(): %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_AppUsersFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("app_users")

	fields := []string{"username", "password", "name", "role", "created", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("app_users: missing field %q", f)
		}
	}

	roleField := col.Fields.GetByName("role")
	if sf, ok := roleField.(*core.SelectField); ok {
		expected := map[string]bool{"admin": true, "user": true}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected role value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing role value: %q", v)
		}
	} else {
		t.Errorf("role field is not a SelectField")
	}
}

func TestSetup_CustomersFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("customers")

	fields := []string{
		"name", "contact_person", "email", "phone", "website",
		"address", "state", "country", "owner", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("customers: missing field %q", f)
		}
	}

	ownerField := col.Fields.GetByName("owner")
	if rf, ok := ownerField.(*core.RelationField); ok {
		if rf.MaxSelect != 1 {
			t.Errorf("customers.owner: expected MaxSelect=1, got %d", rf.MaxSelect)
		}
	} else {
		t.Errorf("customers.owner is not a RelationField")
	}
}

func TestSetup_ProductsFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("products")

	fields := []string{
		"name", "sku", "price", "currency", "category", "hsn",
		"details", "optional_details", "image", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("products: missing field %q", f)
		}
	}

	currencyField := col.Fields.GetByName("currency")
	if sf, ok := currencyField.(*core.SelectField); ok {
		if len(sf.Values) != 5 {
			t.Errorf("products.currency: expected 5 values, got %d", len(sf.Values))
		}
	} else {
		t.Errorf("products.currency is not a SelectField")
	}
}

func TestSetup_QuotesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("quotes")

	fields := []string{
		"number", "customer", "owner", "date", "currency", "items",
		"subtotal", "tax_breakdown", "tax_label", "tax_total",
		"grand_total", "status", "terms", "created", "updated",
	}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("quotes: missing field %q", f)
		}
	}

	statusField := col.Fields.GetByName("status")
	if sf, ok := statusField.(*core.SelectField); ok {
		expected := map[string]bool{
			"Draft": true, "Sent": true, "Follow Up": true,
			"Order Confirmed": true, "Rejected": true,
		}
		for _, v := range sf.Values {
			if !expected[v] {
				t.Errorf("unexpected status value: %q", v)
			}
			delete(expected, v)
		}
		for v := range expected {
			t.Errorf("missing status value: %q", v)
		}
	} else {
		t.Errorf("status field is not a SelectField")
	}

	customerField := col.Fields.GetByName("customer")
	if rf, ok := customerField.(*core.RelationField); ok {
		if rf.MaxSelect != 1 {
			t.Errorf("quotes.customer: expected MaxSelect=1, got %d", rf.MaxSelect)
		}
	} else {
		t.Errorf("quotes.customer is not a RelationField")
	}
}

func TestSetup_ExchangeRatesFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("exchange_rates")

	fields := []string{"currency", "rate", "updated"}
	for _, f := range fields {
		if col.Fields.GetByName(f) == nil {
			t.Errorf("exchange_rates: missing field %q", f)
		}
	}
}
