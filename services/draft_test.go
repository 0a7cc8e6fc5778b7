package services

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testEngine() Engine {
	customers := map[string]Jurisdiction{
		"cust-guj":    {Country: "India", State: "Gujarat"},
		"cust-mah":    {Country: "India", State: "Maharashtra"},
		"cust-export": {Country: "USA", State: "California"},
	}
	return Engine{
		Rates: defaultRates(),
		Customer: func(id string) (Jurisdiction, bool) {
			j, ok := customers[id]
			return j, ok
		},
	}
}

func sampleProduct() Product {
	return Product{
		ID:       "prod-1",
		Name:     "OM-200 Dissolved Oxygen Meter",
		SKU:      "OM-200",
		Price:    1000,
		Currency: INR,
		Category: "Meters",
		Details:  "Portable DO meter",
	}
}

func TestEngine_NewDraft(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	if q.Number != "QT-1001" {
		t.Errorf("Number = %q", q.Number)
	}
	if q.OwnerID != "user-1" {
		t.Errorf("OwnerID = %q", q.OwnerID)
	}
	if q.Currency != INR {
		t.Errorf("Currency = %q, want INR", q.Currency)
	}
	if q.Status != StatusDraft {
		t.Errorf("Status = %q, want Draft", q.Status)
	}
	if len(q.Items) != 0 {
		t.Errorf("Items = %v, want empty", q.Items)
	}
}

func TestEngine_AddItem(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")

	q, err := e.AddItem(q, sampleProduct())
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if len(q.Items) != 1 {
		t.Fatalf("Items = %d, want 1", len(q.Items))
	}
	it := q.Items[0]
	if it.Qty != 1 || it.UnitPrice != 1000 || it.UnitCurrency != INR || it.SKU != "OM-200" {
		t.Errorf("snapshot = %+v", it)
	}
	if math.Abs(q.Subtotal-1000) > 1e-9 {
		t.Errorf("Subtotal = %v, want 1000", q.Subtotal)
	}
}

func TestEngine_AddItem_MergesDuplicate(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	p := sampleProduct()

	q, _ = e.AddItem(q, p)

	// Catalog edit between adds must not touch the captured snapshot.
	p.Price = 9999
	p.Name = "Renamed"
	q, err := e.AddItem(q, p)
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if len(q.Items) != 1 {
		t.Fatalf("Items = %d, want 1 merged line", len(q.Items))
	}
	if q.Items[0].Qty != 2 {
		t.Errorf("Qty = %d, want 2", q.Items[0].Qty)
	}
	if q.Items[0].UnitPrice != 1000 || q.Items[0].Name != "OM-200 Dissolved Oxygen Meter" {
		t.Errorf("snapshot re-captured on merge: %+v", q.Items[0])
	}
	if math.Abs(q.Subtotal-2000) > 1e-9 {
		t.Errorf("Subtotal = %v, want 2000", q.Subtotal)
	}
}

func TestEngine_RemoveItem(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())

	q, err := e.RemoveItem(q, "prod-1")
	if err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if len(q.Items) != 0 {
		t.Errorf("Items = %d, want 0", len(q.Items))
	}
	if q.Subtotal != 0 || q.GrandTotal != 0 {
		t.Errorf("totals not reset: subtotal=%v grand=%v", q.Subtotal, q.GrandTotal)
	}

	// Removing something not on the quote is a harmless no-op.
	q2, err := e.RemoveItem(q, "no-such-product")
	if err != nil {
		t.Fatalf("RemoveItem(missing) error = %v", err)
	}
	if len(q2.Items) != 0 {
		t.Errorf("Items = %d, want 0", len(q2.Items))
	}
}

func TestEngine_ChangeQty(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())

	tests := []struct {
		name    string
		delta   int
		wantQty int
	}{
		{"up", 4, 5},
		{"down_clamps_at_one", -1, 1},
		{"big_negative_clamps", -3, 1},
		{"zero_keeps", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ChangeQty(q, "prod-1", tt.delta)
			if err != nil {
				t.Fatalf("ChangeQty() error = %v", err)
			}
			if got.Items[0].Qty != tt.wantQty {
				t.Errorf("Qty = %d, want %d", got.Items[0].Qty, tt.wantQty)
			}
			want := 1000 * float64(tt.wantQty)
			if math.Abs(got.Subtotal-want) > 1e-9 {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, want)
			}
		})
	}
}

func TestEngine_ChangeQty_DeltasAccumulate(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())

	q, _ = e.ChangeQty(q, "prod-1", 1)
	q, _ = e.ChangeQty(q, "prod-1", 1)
	if q.Items[0].Qty != 3 {
		t.Errorf("Qty = %d, want 3", q.Items[0].Qty)
	}
	if math.Abs(q.Subtotal-3000) > 1e-9 {
		t.Errorf("Subtotal = %v, want 3000", q.Subtotal)
	}
}

func TestEngine_ChangeQty_DoesNotMutateInput(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())

	_, err := e.ChangeQty(q, "prod-1", 7)
	if err != nil {
		t.Fatalf("ChangeQty() error = %v", err)
	}
	if q.Items[0].Qty != 1 {
		t.Errorf("input quote mutated: Qty = %d, want 1", q.Items[0].Qty)
	}
}

func TestEngine_TaxBranches(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name       string
		customerID string
		wantTax    float64
		wantGrand  float64
		wantLabel  string
	}{
		{"gujarat", "cust-guj", 160, 1160, "GST (Intra-state)"},
		{"maharashtra", "cust-mah", 180, 1180, "IGST (Inter-state)"},
		{"export", "cust-export", 0, 1000, "Export (No Tax)"},
		{"no_customer", "", 0, 1000, "Tax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := e.NewDraft("QT-1001", "user-1")
			q, _ = e.AddItem(q, sampleProduct())
			q, err := e.ChangeCustomer(q, tt.customerID)
			if err != nil {
				t.Fatalf("ChangeCustomer() error = %v", err)
			}
			if math.Abs(q.TaxTotal-tt.wantTax) > 1e-9 {
				t.Errorf("TaxTotal = %v, want %v", q.TaxTotal, tt.wantTax)
			}
			if math.Abs(q.GrandTotal-tt.wantGrand) > 1e-9 {
				t.Errorf("GrandTotal = %v, want %v", q.GrandTotal, tt.wantGrand)
			}
			if q.TaxLabel != tt.wantLabel {
				t.Errorf("TaxLabel = %q, want %q", q.TaxLabel, tt.wantLabel)
			}
		})
	}
}

func TestEngine_ChangeCurrency(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, Product{ID: "p-usd", Name: "Sensor", Price: 100, Currency: USD})

	q, err := e.ChangeCurrency(q, EUR)
	if err != nil {
		t.Fatalf("ChangeCurrency() error = %v", err)
	}
	want := 100 * 84.0 / 90.0
	if math.Abs(q.Subtotal-want) > 1e-6 {
		t.Errorf("Subtotal = %v, want %v", q.Subtotal, want)
	}
	if q.Items[0].UnitCurrency != USD {
		t.Errorf("line currency rewritten to %s, want USD kept", q.Items[0].UnitCurrency)
	}
}

func TestEngine_ChangeCurrency_Unsupported(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())

	got, err := e.ChangeCurrency(q, "JPY")
	if err == nil {
		t.Fatal("expected error for unsupported currency")
	}
	if !reflect.DeepEqual(got, q) {
		t.Error("quote changed despite error")
	}
}

func TestEngine_Recompute_MissingRateLeavesQuoteUntouched(t *testing.T) {
	e := Engine{Rates: RateTable{USD: 84}}
	q := e.NewDraft("QT-1001", "user-1")
	q, err := e.AddItem(q, Product{ID: "p-usd", Name: "Sensor", Price: 100, Currency: USD})
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	got, err := e.ChangeCurrency(q, EUR)
	if err == nil {
		t.Fatal("expected missing rate error")
	}
	var missing *MissingRateError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %T, want *MissingRateError", err)
	}
	if !reflect.DeepEqual(got, q) {
		t.Error("quote changed despite conversion failure")
	}
}

func TestEngine_Recompute_Idempotent(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())
	q, _ = e.AddItem(q, Product{ID: "p-usd", Name: "Sensor", Price: 100, Currency: USD})
	q, _ = e.ChangeCustomer(q, "cust-guj")

	again, err := e.Recompute(q, q)
	if err != nil {
		t.Fatalf("Recompute() error = %v", err)
	}
	if !reflect.DeepEqual(again, q) {
		t.Errorf("second recompute changed the quote:\n got %+v\nwant %+v", again, q)
	}
}

func TestEngine_MixedCurrencyLines(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")
	q, _ = e.AddItem(q, sampleProduct())                                        // 1000 INR
	q, _ = e.AddItem(q, Product{ID: "p-usd", Name: "Sensor", Price: 10, Currency: USD}) // 840 INR

	if math.Abs(q.Subtotal-1840) > 1e-9 {
		t.Errorf("Subtotal = %v, want 1840", q.Subtotal)
	}
}

func TestEngine_Validate(t *testing.T) {
	e := testEngine()
	q := e.NewDraft("QT-1001", "user-1")

	if err := e.Validate(q); !errors.Is(err, ErrNoCustomer) {
		t.Errorf("Validate() = %v, want ErrNoCustomer", err)
	}

	q, _ = e.ChangeCustomer(q, "cust-guj")
	if err := e.Validate(q); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range QuoteStatuses {
		if !IsValidStatus(s) {
			t.Errorf("IsValidStatus(%q) = false", s)
		}
	}
	if IsValidStatus("Archived") {
		t.Error("IsValidStatus(Archived) = true")
	}
}
