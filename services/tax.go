package services

import "strings"

const (
	gstHalfRate = 0.08 // CGST and SGST each, intra-state Gujarat
	igstRate    = 0.18 // inter-state within India

	homeCountry = "india"
	homeState   = "gujarat"
)

// Jurisdiction is the tax-relevant slice of a customer's address.
type Jurisdiction struct {
	Country string
	State   string
}

// TaxLine is one labelled component of the tax charge.
type TaxLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// TaxResult carries the total tax, a summary label for list views, and
// the per-component breakdown shown on the quotation itself.
type TaxResult struct {
	Total     float64   `json:"total"`
	Label     string    `json:"label"`
	Breakdown []TaxLine `json:"breakdown"`
}

// CalcTax applies Indian GST rules to a subtotal already expressed in
// the quote currency. A nil customer is taxed at zero, exports outside
// India are zero-rated, Gujarat customers split GST into CGST and SGST,
// and every other Indian state pays IGST.
func CalcTax(subtotal float64, customer *Jurisdiction) TaxResult {
	if customer == nil {
		return TaxResult{
			Total:     0,
			Label:     "Tax",
			Breakdown: []TaxLine{{Label: "Tax (0%)", Amount: 0}},
		}
	}

	country := strings.ToLower(strings.TrimSpace(customer.Country))
	state := strings.ToLower(strings.TrimSpace(customer.State))

	if country != homeCountry {
		return TaxResult{
			Total:     0,
			Label:     "Export (No Tax)",
			Breakdown: []TaxLine{{Label: "Tax (0%)", Amount: 0}},
		}
	}

	if state == homeState {
		half := subtotal * gstHalfRate
		return TaxResult{
			Total: half + half,
			Label: "GST (Intra-state)",
			Breakdown: []TaxLine{
				{Label: "CGST (8%)", Amount: half},
				{Label: "SGST (8%)", Amount: half},
			},
		}
	}

	igst := subtotal * igstRate
	return TaxResult{
		Total:     igst,
		Label:     "IGST (Inter-state)",
		Breakdown: []TaxLine{{Label: "IGST (18%)", Amount: igst}},
	}
}
