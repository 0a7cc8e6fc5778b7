package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// formatQuoteNumber constructs a quote number from its sequence value.
func formatQuoteNumber(n int) string {
	return fmt.Sprintf("QT-%d", n)
}

// NextQuoteNumber creates the next quotation number. Numbers start at
// QT-1001 and advance with the size of the quotes collection, so deleted
// quotes can leave gaps but numbers never repeat while the collection
// only grows.
func NextQuoteNumber(app *pocketbase.PocketBase) (string, error) {
	records, err := app.FindAllRecords("quotes")
	if err != nil {
		return "", fmt.Errorf("counting quotes: %w", err)
	}
	return formatQuoteNumber(1000 + len(records) + 1), nil
}
