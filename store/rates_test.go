package store_test

import (
	"errors"
	"math"
	"testing"

	"onyxcrm/services"
	"onyxcrm/store"
	"onyxcrm/testhelpers"
)

func TestOfficialRates_RoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	want := services.RateTable{services.USD: 84, services.EUR: 90}
	if err := store.SetOfficialRates(app, want); err != nil {
		t.Fatalf("SetOfficialRates() error = %v", err)
	}

	got, err := store.OfficialRates(app)
	if err != nil {
		t.Fatalf("OfficialRates() error = %v", err)
	}
	if len(got) != 2 || math.Abs(got[services.USD]-84) > 1e-9 || math.Abs(got[services.EUR]-90) > 1e-9 {
		t.Errorf("rates = %v", got)
	}
}

func TestSetOfficialRates_Diff(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := store.SetOfficialRates(app, services.RateTable{services.USD: 84, services.EUR: 90}); err != nil {
		t.Fatalf("initial SetOfficialRates() error = %v", err)
	}

	// USD updated, EUR dropped, GBP added.
	if err := store.SetOfficialRates(app, services.RateTable{services.USD: 85.5, services.GBP: 105}); err != nil {
		t.Fatalf("second SetOfficialRates() error = %v", err)
	}

	got, err := store.OfficialRates(app)
	if err != nil {
		t.Fatalf("OfficialRates() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("rates = %v, want 2 entries", got)
	}
	if math.Abs(got[services.USD]-85.5) > 1e-9 || math.Abs(got[services.GBP]-105) > 1e-9 {
		t.Errorf("rates = %v", got)
	}
	if _, ok := got[services.EUR]; ok {
		t.Error("EUR should have been removed")
	}
}

func TestSetOfficialRates_RejectsInvalid(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	err := store.SetOfficialRates(app, services.RateTable{services.USD: 0})
	var invalid *services.InvalidRateError
	if !errors.As(err, &invalid) {
		t.Fatalf("SetOfficialRates(zero) = %v, want InvalidRateError", err)
	}
	if invalid.Currency != services.USD {
		t.Errorf("Currency = %s", invalid.Currency)
	}

	// Nothing should have been written.
	got, _ := store.OfficialRates(app)
	if len(got) != 0 {
		t.Errorf("rates after rejected write = %v", got)
	}
}

func TestOfficialRates_ReturnsFreshCopy(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := store.SetOfficialRates(app, services.RateTable{services.USD: 84}); err != nil {
		t.Fatalf("SetOfficialRates() error = %v", err)
	}

	first, _ := store.OfficialRates(app)
	first[services.USD] = 1

	second, _ := store.OfficialRates(app)
	if second[services.USD] != 84 {
		t.Errorf("mutating a loaded table leaked into the store: %v", second)
	}
}
