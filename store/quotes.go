// Package store maps PocketBase records to and from the domain types.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
)

// ErrNotFound reports an operation against a record that does not exist.
var ErrNotFound = errors.New("record not found")

// QuoteFilter narrows ListQuotes. Zero values mean "no constraint".
type QuoteFilter struct {
	CustomerID string
	Status     string
	DateFrom   string // inclusive, YYYY-MM-DD
	DateTo     string // inclusive, YYYY-MM-DD
	Search     string // matches quote number or customer name
}

// QuoteFromRecord rebuilds a quote value from its record.
func QuoteFromRecord(r *core.Record) (services.Quote, error) {
	q := services.Quote{
		Number:     r.GetString("number"),
		CustomerID: r.GetString("customer"),
		OwnerID:    r.GetString("owner"),
		Date:       r.GetString("date"),
		Currency:   services.Currency(r.GetString("currency")),
		Subtotal:   r.GetFloat("subtotal"),
		TaxLabel:   r.GetString("tax_label"),
		TaxTotal:   r.GetFloat("tax_total"),
		GrandTotal: r.GetFloat("grand_total"),
		Status:     r.GetString("status"),
		Terms:      r.GetString("terms"),
	}

	if err := r.UnmarshalJSONField("items", &q.Items); err != nil {
		return q, fmt.Errorf("quote %s: decode items: %w", q.Number, err)
	}
	if err := r.UnmarshalJSONField("tax_breakdown", &q.TaxBreakdown); err != nil {
		return q, fmt.Errorf("quote %s: decode tax breakdown: %w", q.Number, err)
	}
	if q.Items == nil {
		q.Items = []services.LineItem{}
	}
	return q, nil
}

// applyQuote writes a quote value onto a record.
func applyQuote(r *core.Record, q services.Quote) error {
	items, err := json.Marshal(q.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	breakdown, err := json.Marshal(q.TaxBreakdown)
	if err != nil {
		return fmt.Errorf("encode tax breakdown: %w", err)
	}

	r.Set("number", q.Number)
	r.Set("customer", q.CustomerID)
	r.Set("owner", q.OwnerID)
	r.Set("date", q.Date)
	r.Set("currency", string(q.Currency))
	r.Set("items", string(items))
	r.Set("subtotal", q.Subtotal)
	r.Set("tax_breakdown", string(breakdown))
	r.Set("tax_label", q.TaxLabel)
	r.Set("tax_total", q.TaxTotal)
	r.Set("grand_total", q.GrandTotal)
	r.Set("status", q.Status)
	r.Set("terms", q.Terms)
	return nil
}

// findQuoteRecord resolves a quote number to its record.
func findQuoteRecord(app *pocketbase.PocketBase, number string) (*core.Record, error) {
	record, err := app.FindFirstRecordByData("quotes", "number", number)
	if err != nil {
		return nil, ErrNotFound
	}
	return record, nil
}

// ListQuotes returns the quotes visible to actor, oldest first, after
// applying the filter. The free-text search matches the quote number
// and the customer name, case-insensitively.
func ListQuotes(app *pocketbase.PocketBase, actor services.Actor, filter QuoteFilter) ([]services.Quote, error) {
	records, err := app.FindRecordsByFilter("quotes", "id != ''", "created", 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	var customerNames map[string]string
	if filter.Search != "" {
		customerNames, err = customerNameIndex(app)
		if err != nil {
			return nil, err
		}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	quotes := make([]services.Quote, 0, len(records))
	for _, r := range records {
		q, err := QuoteFromRecord(r)
		if err != nil {
			return nil, err
		}
		if !services.CanSee(actor, q.OwnerID) {
			continue
		}
		if filter.CustomerID != "" && q.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		if filter.DateFrom != "" && q.Date < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && q.Date > filter.DateTo {
			continue
		}
		if search != "" {
			name := strings.ToLower(customerNames[q.CustomerID])
			if !strings.Contains(strings.ToLower(q.Number), search) && !strings.Contains(name, search) {
				continue
			}
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// GetQuote fetches one quote by number.
func GetQuote(app *pocketbase.PocketBase, number string) (services.Quote, error) {
	record, err := findQuoteRecord(app, number)
	if err != nil {
		return services.Quote{}, err
	}
	return QuoteFromRecord(record)
}

// UpsertQuote inserts the quote, or replaces the stored one carrying
// the same number.
func UpsertQuote(app *pocketbase.PocketBase, q services.Quote) error {
	record, err := findQuoteRecord(app, q.Number)
	if err != nil {
		col, err := app.FindCollectionByNameOrId("quotes")
		if err != nil {
			return fmt.Errorf("find quotes collection: %w", err)
		}
		record = core.NewRecord(col)
	}
	if err := applyQuote(record, q); err != nil {
		return err
	}
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save quote %s: %w", q.Number, err)
	}
	return nil
}

// DeleteQuote removes the quote with the given number. Deleting an
// absent number is a no-op.
func DeleteQuote(app *pocketbase.PocketBase, number string) error {
	record, err := findQuoteRecord(app, number)
	if err != nil {
		return nil
	}
	if err := app.Delete(record); err != nil {
		return fmt.Errorf("delete quote %s: %w", number, err)
	}
	return nil
}

// SetQuoteStatus updates only the status of a stored quote. Unknown
// numbers return ErrNotFound rather than creating a record.
func SetQuoteStatus(app *pocketbase.PocketBase, number, status string) error {
	record, err := findQuoteRecord(app, number)
	if err != nil {
		return err
	}
	record.Set("status", status)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("set status on quote %s: %w", number, err)
	}
	return nil
}
