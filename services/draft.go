package services

import (
	"errors"
	"fmt"
	"time"
)

// Quote statuses, in lifecycle order. Any status may be set at any time;
// the pipeline is advisory, not a state machine.
const (
	StatusDraft          = "Draft"
	StatusSent           = "Sent"
	StatusFollowUp       = "Follow Up"
	StatusOrderConfirmed = "Order Confirmed"
	StatusRejected       = "Rejected"
)

// QuoteStatuses lists every valid status value.
var QuoteStatuses = []string{
	StatusDraft, StatusSent, StatusFollowUp, StatusOrderConfirmed, StatusRejected,
}

// IsValidStatus reports whether s is one of the known statuses.
func IsValidStatus(s string) bool {
	for _, v := range QuoteStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// LineItem is a snapshot of a product at the moment it was added to a
// quote. Later edits to the product catalog never touch existing lines.
type LineItem struct {
	ProductID       string   `json:"productId"`
	Name            string   `json:"name"`
	SKU             string   `json:"sku"`
	UnitPrice       float64  `json:"unitPrice"`
	UnitCurrency    Currency `json:"unitCurrency"`
	Qty             int      `json:"qty"`
	Details         string   `json:"details"`
	OptionalDetails string   `json:"optionalDetails"`
	Image           string   `json:"image"`
}

// Quote is a quotation in any lifecycle stage; drafts and saved quotes
// share the shape. All monetary totals are in Currency.
type Quote struct {
	Number       string     `json:"number"`
	CustomerID   string     `json:"customerId"`
	OwnerID      string     `json:"ownerId"`
	Date         string     `json:"date"`
	Items        []LineItem `json:"items"`
	Currency     Currency   `json:"currency"`
	Subtotal     float64    `json:"subtotal"`
	TaxBreakdown []TaxLine  `json:"taxBreakdown"`
	TaxLabel     string     `json:"taxLabel"`
	TaxTotal     float64    `json:"taxTotal"`
	GrandTotal   float64    `json:"grandTotal"`
	Status       string     `json:"status"`
	Terms        string     `json:"terms"`
}

// Product is a catalog entry line items are snapshotted from.
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	SKU             string   `json:"sku"`
	Price           float64  `json:"price"`
	Currency        Currency `json:"currency"`
	Category        string   `json:"category"`
	HSN             string   `json:"hsn"`
	Details         string   `json:"details"`
	OptionalDetails string   `json:"optionalDetails"`
	Image           string   `json:"image"`
}

// ErrNoCustomer rejects saving a quote without a customer.
var ErrNoCustomer = errors.New("quote has no customer")

// ErrUnknownProduct rejects adding a line for a product the catalog
// lookup cannot resolve.
var ErrUnknownProduct = errors.New("unknown product")

// Engine turns draft edits into recomputed quotes. Every mutator takes
// a quote by value and returns a new quote with totals re-derived; on
// error the input comes back unchanged. Rates is the official table
// snapshot the engine prices with and Customer resolves a customer id
// to its tax jurisdiction.
type Engine struct {
	Rates    RateTable
	Customer func(id string) (Jurisdiction, bool)
}

// NewDraft starts an empty draft owned by ownerID, dated today, priced
// in INR.
func (e Engine) NewDraft(number, ownerID string) Quote {
	return Quote{
		Number:   number,
		OwnerID:  ownerID,
		Date:     time.Now().Format("2006-01-02"),
		Items:    []LineItem{},
		Currency: BaseCurrency,
		Status:   StatusDraft,
	}
}

// AddItem appends a snapshot of p, or bumps the quantity when the
// product is already on the quote. The existing snapshot is kept as-is
// on a merge.
func (e Engine) AddItem(q Quote, p Product) (Quote, error) {
	items := cloneItems(q.Items)
	merged := false
	for i := range items {
		if items[i].ProductID == p.ID {
			items[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, LineItem{
			ProductID:       p.ID,
			Name:            p.Name,
			SKU:             p.SKU,
			UnitPrice:       p.Price,
			UnitCurrency:    p.Currency,
			Qty:             1,
			Details:         p.Details,
			OptionalDetails: p.OptionalDetails,
			Image:           p.Image,
		})
	}
	next := q
	next.Items = items
	return e.Recompute(q, next)
}

// RemoveItem drops the line for productID. Removing an absent product
// is a no-op apart from recomputation.
func (e Engine) RemoveItem(q Quote, productID string) (Quote, error) {
	items := make([]LineItem, 0, len(q.Items))
	for _, it := range q.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	next := q
	next.Items = items
	return e.Recompute(q, next)
}

// ChangeQty nudges the quantity of the line for productID by delta,
// never letting it drop below 1. Unknown products are left alone.
func (e Engine) ChangeQty(q Quote, productID string, delta int) (Quote, error) {
	items := cloneItems(q.Items)
	for i := range items {
		if items[i].ProductID == productID {
			qty := items[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			items[i].Qty = qty
			break
		}
	}
	next := q
	next.Items = items
	return e.Recompute(q, next)
}

// ChangeCustomer points the quote at a different customer and re-derives
// the tax branch.
func (e Engine) ChangeCustomer(q Quote, customerID string) (Quote, error) {
	next := q
	next.CustomerID = customerID
	return e.Recompute(q, next)
}

// ChangeCurrency switches the quote currency. Item snapshots keep their
// own captured currencies; only the totals move.
func (e Engine) ChangeCurrency(q Quote, code Currency) (Quote, error) {
	if !IsSupportedCurrency(code) {
		return q, fmt.Errorf("unsupported currency %q", code)
	}
	next := q
	next.Currency = code
	return e.Recompute(q, next)
}

// Recompute is the single totals path. Each line converts its captured
// unit price from its own currency into the quote currency, the
// subtotal feeds tax, and tax feeds the grand total. On any conversion
// failure prev is returned untouched.
func (e Engine) Recompute(prev, next Quote) (Quote, error) {
	subtotal := 0.0
	for _, it := range next.Items {
		unit, err := Convert(it.UnitPrice, it.UnitCurrency, next.Currency, e.Rates)
		if err != nil {
			return prev, fmt.Errorf("line %s: %w", it.ProductID, err)
		}
		subtotal += unit * float64(it.Qty)
	}

	var jurisdiction *Jurisdiction
	if next.CustomerID != "" && e.Customer != nil {
		if j, ok := e.Customer(next.CustomerID); ok {
			jurisdiction = &j
		}
	}
	tax := CalcTax(subtotal, jurisdiction)

	next.Subtotal = subtotal
	next.TaxBreakdown = tax.Breakdown
	next.TaxLabel = tax.Label
	next.TaxTotal = tax.Total
	next.GrandTotal = subtotal + tax.Total
	return next, nil
}

// Validate checks a quote is fit to persist.
func (e Engine) Validate(q Quote) error {
	if q.CustomerID == "" {
		return ErrNoCustomer
	}
	return nil
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
