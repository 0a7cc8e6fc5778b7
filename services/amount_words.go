package services

import (
	"math"
	"strings"
)

// currencyUnitName is the plural unit printed after the words.
func currencyUnitName(code Currency) string {
	switch code {
	case INR:
		return "Rupees"
	case USD:
		return "Dollars"
	case EUR:
		return "Euros"
	case GBP:
		return "Pounds"
	case AED:
		return "Dirhams"
	default:
		return string(code)
	}
}

// AmountToWords converts a rounded amount to English words for the
// quotation footer. INR uses the Indian system (Crores and Lakhs);
// other currencies use Millions and Billions.
// Example: 913183.00 INR → "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"
func AmountToWords(amount float64, code Currency) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount, code)
	}

	units := int64(math.Round(amount))
	name := currencyUnitName(code)

	if units == 0 {
		return "Zero " + name + " Only/-"
	}

	var words string
	if code == INR {
		words = convertToIndianWords(units)
	} else {
		words = convertToWesternWords(units)
	}
	return words + " " + name + " Only/-"
}

func convertToIndianWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= 10000000 {
		crores := n / 10000000
		parts = append(parts, convertUnder100(crores)+" Crores")
		n %= 10000000
	}

	if n >= 100000 {
		lakhs := n / 100000
		parts = append(parts, convertUnder100(lakhs)+" Lakhs")
		n %= 100000
	}

	if n >= 1000 {
		thousands := n / 1000
		parts = append(parts, convertUnder100(thousands)+" Thousand")
		n %= 1000
	}

	if n >= 100 {
		hundreds := n / 100
		parts = append(parts, ones[hundreds]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertToWesternWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= 1000000000 {
		billions := n / 1000000000
		parts = append(parts, convertUnder1000(billions)+" Billion")
		n %= 1000000000
	}

	if n >= 1000000 {
		millions := n / 1000000
		parts = append(parts, convertUnder1000(millions)+" Million")
		n %= 1000000
	}

	if n >= 1000 {
		thousands := n / 1000
		parts = append(parts, convertUnder1000(thousands)+" Thousand")
		n %= 1000
	}

	if n >= 100 {
		hundreds := n / 100
		parts = append(parts, ones[hundreds]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n < 100 {
		return convertUnder100(n)
	}
	result := ones[n/100] + " Hundred"
	if n%100 != 0 {
		result += " " + convertUnder100(n%100)
	}
	return result
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
