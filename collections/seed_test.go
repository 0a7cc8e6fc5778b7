package collections_test

import (
	"testing"

	"onyxcrm/collections"
	"onyxcrm/testhelpers"
)

func TestSeed_CreatesData(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	usersCol, _ := app.FindCollectionByNameOrId("app_users")
	users, err := app.FindAllRecords(usersCol)
	if err != nil {
		t.Fatalf("query app_users error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	if users[0].GetString("username") != "admin" || users[0].GetString("role") != "admin" {
		t.Errorf("seed user = %q/%q, want admin/admin", users[0].GetString("username"), users[0].GetString("role"))
	}

	categoriesCol, _ := app.FindCollectionByNameOrId("categories")
	categories, _ := app.FindAllRecords(categoriesCol)
	if len(categories) != 7 {
		t.Errorf("expected 7 categories, got %d", len(categories))
	}

	productsCol, _ := app.FindCollectionByNameOrId("products")
	products, _ := app.FindAllRecords(productsCol)
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].GetString("name") != "OM-200 Hydraulic Press" {
		t.Errorf("product name = %q", products[0].GetString("name"))
	}
	if products[0].GetString("currency") != "USD" || products[0].GetFloat("price") != 15000 {
		t.Errorf("product price = %v %s", products[0].GetFloat("price"), products[0].GetString("currency"))
	}

	ratesCol, _ := app.FindCollectionByNameOrId("exchange_rates")
	rates, _ := app.FindAllRecords(ratesCol)
	if len(rates) != 4 {
		t.Errorf("expected 4 exchange rates, got %d", len(rates))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	usersCol, _ := app.FindCollectionByNameOrId("app_users")
	users, _ := app.FindAllRecords(usersCol)
	if len(users) != 1 {
		t.Errorf("expected 1 user after idempotent seed, got %d", len(users))
	}

	productsCol, _ := app.FindCollectionByNameOrId("products")
	products, _ := app.FindAllRecords(productsCol)
	if len(products) != 1 {
		t.Errorf("expected 1 product after idempotent seed, got %d", len(products))
	}
}

func TestSeed_SkipsWhenUsersExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// Create a user first (not via Seed)
	testhelpers.CreateTestUser(t, app, "sales1", "user")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	usersCol, _ := app.FindCollectionByNameOrId("app_users")
	users, _ := app.FindAllRecords(usersCol)
	if len(users) != 1 {
		t.Errorf("expected 1 user (pre-existing only), got %d", len(users))
	}
	if users[0].GetString("username") != "sales1" {
		t.Errorf("expected pre-existing user, got %q", users[0].GetString("username"))
	}

	// No seed categories either
	categoriesCol, _ := app.FindCollectionByNameOrId("categories")
	categories, _ := app.FindAllRecords(categoriesCol)
	if len(categories) != 0 {
		t.Errorf("expected 0 categories, got %d", len(categories))
	}
}
