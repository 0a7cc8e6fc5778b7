package store_test

import (
	"errors"
	"testing"

	"onyxcrm/services"
	"onyxcrm/store"
	"onyxcrm/testhelpers"
)

func TestSaveCustomer_InsertAndUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	owner := testhelpers.CreateTestUser(t, app, "sales1", services.RoleUser)

	saved, err := store.SaveCustomer(app, services.Customer{
		Name:          "Shree Filtration",
		ContactPerson: "R. Mehta",
		Email:         "info@shreefiltration.in",
		State:         "Gujarat",
		Country:       "India",
		OwnerID:       owner.Id,
	})
	if err != nil {
		t.Fatalf("SaveCustomer() error = %v", err)
	}
	if saved.ID == "" {
		t.Fatal("insert did not assign an ID")
	}

	saved.State = "Maharashtra"
	updated, err := store.SaveCustomer(app, saved)
	if err != nil {
		t.Fatalf("SaveCustomer(update) error = %v", err)
	}
	if updated.ID != saved.ID {
		t.Errorf("update changed ID: %s -> %s", saved.ID, updated.ID)
	}

	got, err := store.GetCustomer(app, saved.ID)
	if err != nil {
		t.Fatalf("GetCustomer() error = %v", err)
	}
	if got.State != "Maharashtra" || got.ContactPerson != "R. Mehta" {
		t.Errorf("stored customer = %+v", got)
	}
}

func TestSaveCustomer_UnknownID(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	_, err := store.SaveCustomer(app, services.Customer{ID: "missing123", Name: "Ghost"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("SaveCustomer(unknown id) = %v, want ErrNotFound", err)
	}
}

func TestListCustomers_Visibility(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	alice := testhelpers.CreateTestUser(t, app, "alice", services.RoleUser)
	bob := testhelpers.CreateTestUser(t, app, "bob", services.RoleUser)
	admin := testhelpers.CreateTestUser(t, app, "root", services.RoleAdmin)

	testhelpers.CreateTestCustomer(t, app, "Shree Filtration", "Gujarat", "India", alice.Id)
	testhelpers.CreateTestCustomer(t, app, "Pune Packers", "Maharashtra", "India", bob.Id)

	aliceSees, err := store.ListCustomers(app, services.Actor{ID: alice.Id, Role: services.RoleUser})
	if err != nil {
		t.Fatalf("ListCustomers(alice) error = %v", err)
	}
	if len(aliceSees) != 1 || aliceSees[0].Name != "Shree Filtration" {
		t.Errorf("alice sees %+v", aliceSees)
	}

	adminSees, err := store.ListCustomers(app, services.Actor{ID: admin.Id, Role: services.RoleAdmin})
	if err != nil {
		t.Fatalf("ListCustomers(admin) error = %v", err)
	}
	if len(adminSees) != 2 {
		t.Errorf("admin sees %d customers, want 2", len(adminSees))
	}
}

func TestDeleteCustomer_NoOpWhenAbsent(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	owner := testhelpers.CreateTestUser(t, app, "sales1", services.RoleUser)
	c := testhelpers.CreateTestCustomer(t, app, "Shree Filtration", "Gujarat", "India", owner.Id)

	if err := store.DeleteCustomer(app, c.Id); err != nil {
		t.Fatalf("DeleteCustomer() error = %v", err)
	}
	if _, err := store.GetCustomer(app, c.Id); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetCustomer after delete = %v, want ErrNotFound", err)
	}
	if err := store.DeleteCustomer(app, "missing123"); err != nil {
		t.Errorf("DeleteCustomer(absent) error = %v", err)
	}
}

func TestCustomerNames(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	owner := testhelpers.CreateTestUser(t, app, "sales1", services.RoleUser)
	a := testhelpers.CreateTestCustomer(t, app, "Shree Filtration", "Gujarat", "India", owner.Id)
	b := testhelpers.CreateTestCustomer(t, app, "Pune Packers", "Maharashtra", "India", owner.Id)

	names, err := store.CustomerNames(app)
	if err != nil {
		t.Fatalf("CustomerNames() error = %v", err)
	}
	if names[a.Id] != "Shree Filtration" || names[b.Id] != "Pune Packers" {
		t.Errorf("names = %v", names)
	}
}
