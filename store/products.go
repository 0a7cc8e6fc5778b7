package store

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// ProductFromRecord rebuilds a product value from its record.
func ProductFromRecord(r *core.Record) services.Product {
	return services.Product{
		ID:              r.Id,
		Name:            r.GetString("name"),
		SKU:             r.GetString("sku"),
		Price:           r.GetFloat("price"),
		Currency:        services.Currency(r.GetString("currency")),
		Category:        r.GetString("category"),
		HSN:             r.GetString("hsn"),
		Details:         r.GetString("details"),
		OptionalDetails: r.GetString("optional_details"),
		Image:           r.GetString("image"),
	}
}

// applyProduct writes a product value onto a record.
func applyProduct(r *core.Record, p services.Product) {
	r.Set("name", p.Name)
	r.Set("sku", p.SKU)
	r.Set("price", p.Price)
	r.Set("currency", string(p.Currency))
	r.Set("category", p.Category)
	r.Set("hsn", p.HSN)
	r.Set("details", p.Details)
	r.Set("optional_details", p.OptionalDetails)
	r.Set("image", p.Image)
}

// ListProducts returns the catalog, oldest first, optionally narrowed
// by a case-insensitive name/SKU search and a category.
func ListProducts(app *pocketbase.PocketBase, search, category string) ([]services.Product, error) {
	records, err := app.FindRecordsByFilter("products", "id != ''", "created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	search = strings.ToLower(strings.TrimSpace(search))

	products := make([]services.Product, 0, len(records))
	for _, r := range records {
		p := ProductFromRecord(r)
		if category != "" && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct fetches one product by record id.
func GetProduct(app *pocketbase.PocketBase, id string) (services.Product, error) {
	record, err := app.FindRecordById("products", id)
	if err != nil {
		return services.Product{}, ErrNotFound
	}
	return ProductFromRecord(record), nil
}

// SaveProduct inserts a new product (empty ID) or updates an existing
// one, returning the stored value with its ID set.
func SaveProduct(app *pocketbase.PocketBase, p services.Product) (services.Product, error) {
	var record *core.Record
	if p.ID == "" {
		col, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			return p, fmt.Errorf("find products collection: %w", err)
		}
		record = core.NewRecord(col)
	} else {
		var err error
		record, err = app.FindRecordById("products", p.ID)
		if err != nil {
			return p, ErrNotFound
		}
	}

	applyProduct(record, p)
	if err := app.Save(record); err != nil {
		return p, fmt.Errorf("save product %q: %w", p.Name, err)
	}
	p.ID = record.Id
	return p, nil
}

// DeleteProduct removes a product by id. Absent ids are a no-op.
func DeleteProduct(app *pocketbase.PocketBase, id string) error {
	record, err := app.FindRecordById("products", id)
	if err != nil {
		return nil
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return nil
}

// ListCategories returns all category names, oldest first.
func ListCategories(app *pocketbase.PocketBase) ([]string, error) {
	records, err := app.FindRecordsByFilter("categories", "id != ''", "created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.GetString("name"))
	}
	return names, nil
}

// AddCategory appends a category if it is not already present.
func AddCategory(app *pocketbase.PocketBase, name string) error {
	existing, err := app.FindFirstRecordByData("categories", "name", name)
	if err == nil && existing != nil {
		return nil
	}
	col, err := app.FindCollectionByNameOrId("categories")
	if err != nil {
		return fmt.Errorf("find categories collection: %w", err)
	}
	record := core.NewRecord(col)
	record.Set("name", name)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save category %q: %w", name, err)
	}
	return nil
}

// DeleteCategory removes a category by name. Absent names are a no-op.
func DeleteCategory(app *pocketbase.PocketBase, name string) error {
	record, err := app.FindFirstRecordByData("categories", "name", name)
	if err != nil {
		return nil
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete category %q: %w", name, err)
	}
	return nil
}
