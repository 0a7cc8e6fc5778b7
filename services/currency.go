package services

import "fmt"

// Currency is an ISO 4217 code the application trades in.
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	AED Currency = "AED"
)

// BaseCurrency anchors the rate table. All rates are stored as units of
// INR per one foreign unit, so INR itself is never present in the table.
const BaseCurrency = INR

// SupportedCurrencies lists every currency a product or quote may use,
// in display order.
var SupportedCurrencies = []Currency{INR, USD, EUR, GBP, AED}

// IsSupportedCurrency reports whether code belongs to the closed set of
// currencies the application understands.
func IsSupportedCurrency(code Currency) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// RateTable maps a foreign currency to its value in INR.
// Example: {"USD": 84} means 1 USD = 84 INR.
type RateTable map[Currency]float64

// Clone returns an independent copy of the table.
func (rt RateTable) Clone() RateTable {
	out := make(RateTable, len(rt))
	for c, r := range rt {
		out[c] = r
	}
	return out
}

// MissingRateError reports a conversion involving a currency the rate
// table has no entry for.
type MissingRateError struct {
	Currency Currency
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for %s", e.Currency)
}

// InvalidRateError reports a rate table entry that is zero or negative.
type InvalidRateError struct {
	Currency Currency
	Rate     float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid exchange rate for %s: %v", e.Currency, e.Rate)
}

// rateOf resolves a currency to its INR value. The base currency is
// always 1 and never consulted against the table.
func rateOf(code Currency, rates RateTable) (float64, error) {
	if code == BaseCurrency {
		return 1, nil
	}
	rate, ok := rates[code]
	if !ok {
		return 0, &MissingRateError{Currency: code}
	}
	if rate <= 0 {
		return 0, &InvalidRateError{Currency: code, Rate: rate}
	}
	return rate, nil
}

// Convert translates an amount between two currencies through the INR
// base: amount * rate(from) / rate(to). Converting a currency to itself
// returns the amount untouched without consulting the table.
func Convert(amount float64, from, to Currency, rates RateTable) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromRate, err := rateOf(from, rates)
	if err != nil {
		return 0, err
	}
	toRate, err := rateOf(to, rates)
	if err != nil {
		return 0, err
	}
	return amount * fromRate / toRate, nil
}
