package store_test

import (
	"testing"

	"onyxcrm/services"
	"onyxcrm/store"
	"onyxcrm/testhelpers"
)

func TestListProducts_Search(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestProduct(t, app, "OM-200 Hydraulic Press", "HP-200", 15000, services.USD)
	testhelpers.CreateTestProduct(t, app, "Washing Unit W-50", "WU-50", 250000, services.INR)

	tests := []struct {
		name     string
		search   string
		category string
		want     int
	}{
		{"all", "", "", 2},
		{"by_name", "hydraulic", "", 1},
		{"by_sku", "wu-50", "", 1},
		{"no_match", "lathe", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ListProducts(app, tt.search, tt.category)
			if err != nil {
				t.Fatalf("ListProducts() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d products, want %d", len(got), tt.want)
			}
		})
	}
}

func TestSaveProduct_InsertAndUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	saved, err := store.SaveProduct(app, services.Product{
		Name:     "OM-200 Hydraulic Press",
		SKU:      "HP-200",
		Price:    15000,
		Currency: services.USD,
		Category: "Hydraulic",
		HSN:      "8462",
	})
	if err != nil {
		t.Fatalf("SaveProduct() error = %v", err)
	}
	if saved.ID == "" {
		t.Fatal("insert did not assign an ID")
	}

	saved.Price = 16500
	if _, err := store.SaveProduct(app, saved); err != nil {
		t.Fatalf("SaveProduct(update) error = %v", err)
	}

	got, err := store.GetProduct(app, saved.ID)
	if err != nil {
		t.Fatalf("GetProduct() error = %v", err)
	}
	if got.Price != 16500 || got.HSN != "8462" {
		t.Errorf("stored product = %+v", got)
	}
}

func TestCategories(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := store.AddCategory(app, "Hydraulic"); err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	// Duplicates are ignored.
	if err := store.AddCategory(app, "Hydraulic"); err != nil {
		t.Fatalf("AddCategory(dup) error = %v", err)
	}
	if err := store.AddCategory(app, "CNC"); err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}

	names, err := store.ListCategories(app)
	if err != nil {
		t.Fatalf("ListCategories() error = %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("categories = %v, want 2 entries", names)
	}

	if err := store.DeleteCategory(app, "CNC"); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	names, _ = store.ListCategories(app)
	if len(names) != 1 || names[0] != "Hydraulic" {
		t.Errorf("categories after delete = %v", names)
	}

	if err := store.DeleteCategory(app, "missing"); err != nil {
		t.Errorf("DeleteCategory(absent) error = %v", err)
	}
}
