package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleProductList returns the catalog, optionally narrowed by the q
// and category query parameters.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		query := e.Request.URL.Query()
		products, err := store.ListProducts(app, query.Get("q"), query.Get("category"))
		if err != nil {
			log.Printf("products: list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load products")
		}
		return e.JSON(http.StatusOK, products)
	}
}

// HandleProductSave creates or updates a catalog product. Existing
// quote lines keep their snapshots; only new lines pick up the change.
func HandleProductSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var p services.Product
		if err := decodeJSON(e, &p); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return apiError(e, http.StatusBadRequest, "Product name is required")
		}
		if p.Price < 0 {
			return apiError(e, http.StatusBadRequest, "Price cannot be negative")
		}
		if !services.IsSupportedCurrency(p.Currency) {
			return apiError(e, http.StatusBadRequest, "Unsupported currency")
		}

		saved, err := store.SaveProduct(app, p)
		if err != nil {
			log.Printf("products: save %q: %v", p.Name, err)
			return apiError(e, http.StatusInternalServerError, "Could not save product")
		}
		return e.JSON(http.StatusOK, saved)
	}
}

// HandleProductDelete removes a product by id. Quote lines referencing
// it keep their snapshots.
func HandleProductDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if err := store.DeleteProduct(app, id); err != nil {
			log.Printf("products: delete %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete product")
		}
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleProductsExportCSV downloads the product catalog as CSV.
func HandleProductsExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		products, err := store.ListProducts(app, "", "")
		if err != nil {
			log.Printf("products: export: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load products")
		}

		csvBytes, err := services.ProductsCSV(products)
		if err != nil {
			log.Printf("products: failed to generate CSV: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate CSV")
		}

		filename := fmt.Sprintf("products_%s.csv", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}

// HandleCategoryList returns the category names.
func HandleCategoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		names, err := store.ListCategories(app)
		if err != nil {
			log.Printf("products: categories: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load categories")
		}
		return e.JSON(http.StatusOK, names)
	}
}

// HandleCategoryAdd appends a category. Duplicates are ignored.
func HandleCategoryAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Name string `json:"name"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apiError(e, http.StatusBadRequest, "Category name is required")
		}

		if err := store.AddCategory(app, req.Name); err != nil {
			log.Printf("products: add category %q: %v", req.Name, err)
			return apiError(e, http.StatusInternalServerError, "Could not save category")
		}
		return e.JSON(http.StatusOK, map[string]string{"name": req.Name})
	}
}

// HandleCategoryDelete removes a category by name.
func HandleCategoryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		name := e.Request.PathValue("name")
		if err := store.DeleteCategory(app, name); err != nil {
			log.Printf("products: delete category %q: %v", name, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete category")
		}
		return e.NoContent(http.StatusNoContent)
	}
}
