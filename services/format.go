package services

import (
	"fmt"
	"strings"
)

// CurrencySymbol returns the display symbol for a currency, falling back
// to the code itself for anything unknown.
func CurrencySymbol(code Currency) string {
	switch code {
	case INR:
		return "₹"
	case USD:
		return "$"
	case EUR:
		return "€"
	case GBP:
		return "£"
	case AED:
		return "Dh"
	default:
		return string(code)
	}
}

// FormatMoney renders an amount with its currency symbol and exactly two
// decimal places. INR amounts use the Indian numbering system where the
// rightmost 3 digits group together and every 2 digits after that
// (e.g. ₹1,23,45,678.90); other currencies group in threes.
func FormatMoney(amount float64, code Currency) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	var formatted string
	if code == INR {
		formatted = applyIndianGrouping(intPart)
	} else {
		formatted = applyWesternGrouping(intPart)
	}

	result := CurrencySymbol(code) + formatted + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatINR is FormatMoney fixed to rupees, kept for the INR-only spots
// (amount in words footer, dashboard totals).
func FormatINR(amount float64) string {
	return FormatMoney(amount, INR)
}

// applyIndianGrouping inserts commas into an integer string using the
// Indian numbering system: the rightmost 3 digits form the first group,
// then every 2 digits form subsequent groups.
func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}

// applyWesternGrouping inserts commas every 3 digits from the right.
func applyWesternGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	var groups []string
	for n > 3 {
		groups = append([]string{s[n-3:]}, groups...)
		s = s[:n-3]
		n = len(s)
	}
	return s + "," + strings.Join(groups, ",")
}
