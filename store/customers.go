package store

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// CustomerFromRecord rebuilds a customer value from its record.
func CustomerFromRecord(r *core.Record) services.Customer {
	return services.Customer{
		ID:            r.Id,
		Name:          r.GetString("name"),
		ContactPerson: r.GetString("contact_person"),
		Email:         r.GetString("email"),
		Phone:         r.GetString("phone"),
		Website:       r.GetString("website"),
		Address:       r.GetString("address"),
		State:         r.GetString("state"),
		Country:       r.GetString("country"),
		OwnerID:       r.GetString("owner"),
	}
}

// applyCustomer writes a customer value onto a record.
func applyCustomer(r *core.Record, c services.Customer) {
	r.Set("name", c.Name)
	r.Set("contact_person", c.ContactPerson)
	r.Set("email", c.Email)
	r.Set("phone", c.Phone)
	r.Set("website", c.Website)
	r.Set("address", c.Address)
	r.Set("state", c.State)
	r.Set("country", c.Country)
	r.Set("owner", c.OwnerID)
}

// ListCustomers returns the customers visible to actor, oldest first.
func ListCustomers(app *pocketbase.PocketBase, actor services.Actor) ([]services.Customer, error) {
	records, err := app.FindRecordsByFilter("customers", "id != ''", "created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]services.Customer, 0, len(records))
	for _, r := range records {
		c := CustomerFromRecord(r)
		if !services.CanSee(actor, c.OwnerID) {
			continue
		}
		customers = append(customers, c)
	}
	return customers, nil
}

// GetCustomer fetches one customer by record id.
func GetCustomer(app *pocketbase.PocketBase, id string) (services.Customer, error) {
	record, err := app.FindRecordById("customers", id)
	if err != nil {
		return services.Customer{}, ErrNotFound
	}
	return CustomerFromRecord(record), nil
}

// SaveCustomer inserts a new customer (empty ID) or updates an existing
// one, returning the stored value with its ID set.
func SaveCustomer(app *pocketbase.PocketBase, c services.Customer) (services.Customer, error) {
	var record *core.Record
	if c.ID == "" {
		col, err := app.FindCollectionByNameOrId("customers")
		if err != nil {
			return c, fmt.Errorf("find customers collection: %w", err)
		}
		record = core.NewRecord(col)
	} else {
		var err error
		record, err = app.FindRecordById("customers", c.ID)
		if err != nil {
			return c, ErrNotFound
		}
	}

	applyCustomer(record, c)
	if err := app.Save(record); err != nil {
		return c, fmt.Errorf("save customer %q: %w", c.Name, err)
	}
	c.ID = record.Id
	return c, nil
}

// DeleteCustomer removes a customer by id. Absent ids are a no-op.
func DeleteCustomer(app *pocketbase.PocketBase, id string) error {
	record, err := app.FindRecordById("customers", id)
	if err != nil {
		return nil
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	return nil
}

// customerNameIndex maps customer id -> name for search and display.
func customerNameIndex(app *pocketbase.PocketBase) (map[string]string, error) {
	records, err := app.FindAllRecords("customers")
	if err != nil {
		return nil, fmt.Errorf("index customers: %w", err)
	}
	names := make(map[string]string, len(records))
	for _, r := range records {
		names[r.Id] = r.GetString("name")
	}
	return names, nil
}

// CustomerNames exposes the id -> name index to handlers.
func CustomerNames(app *pocketbase.PocketBase) (map[string]string, error) {
	return customerNameIndex(app)
}
