package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// CustomersCSV renders the customer directory as CSV, one row per
// customer, for the settings export.
func CustomersCSV(customers []Customer) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Company Name", "Contact Person", "Email", "Phone", "Website", "Address", "State", "Country"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, c := range customers {
		row := []string{c.Name, c.ContactPerson, c.Email, c.Phone, c.Website, c.Address, c.State, c.Country}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ProductsCSV renders the product catalog as CSV.
func ProductsCSV(products []Product) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "SKU", "Category", "HSN", "Price", "Currency", "Details"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, p := range products {
		row := []string{
			p.Name, p.SKU, p.Category, p.HSN,
			strconv.FormatFloat(p.Price, 'f', 2, 64),
			string(p.Currency), p.Details,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// QuotesCSV renders a quote list as CSV, one row per quote with totals
// in the quote currency.
func QuotesCSV(quotes []Quote, customerName func(id string) string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Number", "Date", "Customer", "Status", "Currency", "Subtotal", "Tax", "Grand Total"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, q := range quotes {
		name := ""
		if customerName != nil {
			name = customerName(q.CustomerID)
		}
		row := []string{
			q.Number, q.Date, name, q.Status, string(q.Currency),
			strconv.FormatFloat(q.Subtotal, 'f', 2, 64),
			strconv.FormatFloat(q.TaxTotal, 'f', 2, 64),
			strconv.FormatFloat(q.GrandTotal, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
