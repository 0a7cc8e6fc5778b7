package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// Snapshot is a full portable dump of the business data. User accounts
// are deliberately excluded so a snapshot can be shared without leaking
// credentials.
type Snapshot struct {
	ID         string              `json:"id"`
	CreatedAt  string              `json:"createdAt"`
	Categories []string            `json:"categories"`
	Customers  []services.Customer `json:"customers"`
	Products   []services.Product  `json:"products"`
	Quotes     []services.Quote    `json:"quotes"`
	Rates      services.RateTable  `json:"rates"`
}

// HandleBackupExport downloads the full dataset as a JSON snapshot.
// Admin only.
func HandleBackupExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		admin := CurrentActor(e.Request)

		categories, err := store.ListCategories(app)
		if err != nil {
			log.Printf("backup: categories: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not build snapshot")
		}
		customers, err := store.ListCustomers(app, admin)
		if err != nil {
			log.Printf("backup: customers: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not build snapshot")
		}
		products, err := store.ListProducts(app, "", "")
		if err != nil {
			log.Printf("backup: products: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not build snapshot")
		}
		quotes, err := store.ListQuotes(app, admin, store.QuoteFilter{})
		if err != nil {
			log.Printf("backup: quotes: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not build snapshot")
		}
		rates, err := store.OfficialRates(app)
		if err != nil {
			log.Printf("backup: rates: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not build snapshot")
		}

		snapshot := Snapshot{
			ID:         uuid.NewString(),
			CreatedAt:  time.Now().Format(time.RFC3339),
			Categories: categories,
			Customers:  customers,
			Products:   products,
			Quotes:     quotes,
			Rates:      rates,
		}

		filename := fmt.Sprintf("onyxcrm_backup_%s.json", time.Now().Format("2006-01-02"))
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		return e.JSON(http.StatusOK, snapshot)
	}
}

// HandleBackupImport restores a snapshot on top of the current data.
// Records are matched by id (quotes by number) and upserted; nothing is
// deleted, so a partial snapshot only adds. Admin only.
func HandleBackupImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var snapshot Snapshot
		if err := decodeJSON(e, &snapshot); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid snapshot file")
		}

		admin := CurrentActor(e.Request)
		restored := map[string]int{}

		for _, name := range snapshot.Categories {
			if err := store.AddCategory(app, name); err != nil {
				log.Printf("backup: restore category %q: %v", name, err)
				continue
			}
			restored["categories"]++
		}

		// Snapshot ids belong to the source database; restored records
		// that don't resolve locally are inserted fresh.
		for _, c := range snapshot.Customers {
			if c.ID != "" {
				if _, err := store.GetCustomer(app, c.ID); err != nil {
					c.ID = ""
				}
			}
			if c.OwnerID != "" {
				if _, err := store.GetActor(app, c.OwnerID); err != nil {
					c.OwnerID = ""
				}
			}
			if c.OwnerID == "" {
				c.OwnerID = admin.ID
			}
			if _, err := store.SaveCustomer(app, c); err != nil {
				log.Printf("backup: restore customer %q: %v", c.Name, err)
				continue
			}
			restored["customers"]++
		}

		for _, p := range snapshot.Products {
			if p.ID != "" {
				if _, err := store.GetProduct(app, p.ID); err != nil {
					p.ID = ""
				}
			}
			if _, err := store.SaveProduct(app, p); err != nil {
				log.Printf("backup: restore product %q: %v", p.Name, err)
				continue
			}
			restored["products"]++
		}

		for _, q := range snapshot.Quotes {
			if q.OwnerID != "" {
				if _, err := store.GetActor(app, q.OwnerID); err != nil {
					q.OwnerID = ""
				}
			}
			if q.OwnerID == "" {
				q.OwnerID = admin.ID
			}
			if q.CustomerID != "" {
				if _, err := store.GetCustomer(app, q.CustomerID); err != nil {
					q.CustomerID = ""
				}
			}
			if err := store.UpsertQuote(app, q); err != nil {
				log.Printf("backup: restore quote %s: %v", q.Number, err)
				continue
			}
			restored["quotes"]++
		}

		if len(snapshot.Rates) > 0 {
			if err := store.SetOfficialRates(app, snapshot.Rates); err != nil {
				log.Printf("backup: restore rates: %v", err)
			} else {
				restored["rates"] = len(snapshot.Rates)
			}
		}

		return e.JSON(http.StatusOK, map[string]any{
			"snapshotId": snapshot.ID,
			"restored":   restored,
		})
	}
}
