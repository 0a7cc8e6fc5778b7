package services

// QuoteExportRow is one printable line of a quotation.
type QuoteExportRow struct {
	Index           int
	Name            string
	SKU             string
	Details         string
	OptionalDetails string
	Qty             int
	UnitPrice       float64 // in the quote currency
	LineTotal       float64 // UnitPrice * Qty
}

// QuoteExport holds everything the PDF and Excel renderers need for one
// quotation, fully resolved: prices already converted into the quote
// currency, tax lines labelled, words spelled out.
type QuoteExport struct {
	Company       CompanyInfo
	Number        string
	Date          string
	Status        string
	Currency      Currency
	CustomerName  string
	ContactPerson string
	Address       string
	State         string
	Country       string
	Rows          []QuoteExportRow
	Subtotal      float64
	TaxLines      []TaxLine
	GrandTotal    float64
	AmountInWords string
	Terms         string
}

// BuildQuoteExport assembles the export view of a quote. Line unit
// prices are converted from each item's captured currency into the
// quote currency with the supplied rates.
func BuildQuoteExport(q Quote, customer Customer, rates RateTable) (QuoteExport, error) {
	rows := make([]QuoteExportRow, 0, len(q.Items))
	for i, it := range q.Items {
		unit, err := Convert(it.UnitPrice, it.UnitCurrency, q.Currency, rates)
		if err != nil {
			return QuoteExport{}, err
		}
		rows = append(rows, QuoteExportRow{
			Index:           i + 1,
			Name:            it.Name,
			SKU:             it.SKU,
			Details:         it.Details,
			OptionalDetails: it.OptionalDetails,
			Qty:             it.Qty,
			UnitPrice:       unit,
			LineTotal:       unit * float64(it.Qty),
		})
	}

	terms := q.Terms
	if terms == "" {
		terms = DefaultTerms
	}

	return QuoteExport{
		Company:       Company,
		Number:        q.Number,
		Date:          q.Date,
		Status:        q.Status,
		Currency:      q.Currency,
		CustomerName:  customer.Name,
		ContactPerson: customer.ContactPerson,
		Address:       customer.Address,
		State:         customer.State,
		Country:       customer.Country,
		Rows:          rows,
		Subtotal:      q.Subtotal,
		TaxLines:      q.TaxBreakdown,
		GrandTotal:    q.GrandTotal,
		AmountInWords: AmountToWords(q.GrandTotal, q.Currency),
		Terms:         terms,
	}, nil
}
