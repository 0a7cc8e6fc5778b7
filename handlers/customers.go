package handlers

import (
	"errors"
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

// HandleCustomerList returns the customers visible to the logged-in user.
func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customers, err := store.ListCustomers(app, CurrentActor(e.Request))
		if err != nil {
			log.Printf("customers: list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load customers")
		}
		return e.JSON(http.StatusOK, customers)
	}
}

// HandleCustomerSave creates or updates a customer. New customers are
// owned by the logged-in user.
func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var c services.Customer
		if err := decodeJSON(e, &c); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		c.Name = strings.TrimSpace(c.Name)
		if c.Name == "" {
			return apiError(e, http.StatusBadRequest, "Customer name is required")
		}

		actor := CurrentActor(e.Request)
		if c.ID == "" {
			c.OwnerID = actor.ID
		} else {
			existing, err := store.GetCustomer(app, c.ID)
			if err != nil {
				return apiError(e, http.StatusNotFound, "Customer not found")
			}
			if !services.CanSee(actor, existing.OwnerID) {
				return apiError(e, http.StatusForbidden, "Not your customer")
			}
			c.OwnerID = existing.OwnerID
		}

		saved, err := store.SaveCustomer(app, c)
		if err != nil {
			log.Printf("customers: save %q: %v", c.Name, err)
			return apiError(e, http.StatusInternalServerError, "Could not save customer")
		}
		return e.JSON(http.StatusOK, saved)
	}
}

// HandleCustomerDelete removes a customer by id.
func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		existing, err := store.GetCustomer(app, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return e.NoContent(http.StatusNoContent)
			}
			log.Printf("customers: load %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete customer")
		}
		if !services.CanSee(CurrentActor(e.Request), existing.OwnerID) {
			return apiError(e, http.StatusForbidden, "Not your customer")
		}

		if err := store.DeleteCustomer(app, id); err != nil {
			log.Printf("customers: delete %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete customer")
		}
		return e.NoContent(http.StatusNoContent)
	}
}

// HandleCustomersExportCSV downloads the visible customer list as CSV.
func HandleCustomersExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customers, err := store.ListCustomers(app, CurrentActor(e.Request))
		if err != nil {
			log.Printf("customers: export: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load customers")
		}

		csvBytes, err := services.CustomersCSV(customers)
		if err != nil {
			log.Printf("customers: failed to generate CSV: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate CSV")
		}

		filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}
