// Package currencyutils provides amount parsing and display formatting for
// bank-export values. Parsing handles currency symbols, thousands separators,
// and accounting-negative parentheses; formatting is used only for preview
// rendering, never for parsing.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolRe = regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪\s]`)

// ParseSignedAmount parses raw bank-export value text into a signed decimal.
// The second return is false when the text is empty or not a number.
//
// Sign markers are independent of whatever sign the numeral itself carries:
// a value wrapped in parentheses or carrying a leading minus is negative, and
// the marker is applied to the absolute value of the parsed number.
func ParseSignedAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, false
	}

	negative := false

	// Accounting-negative convention: (1,234.50) means -1234.50.
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = StandardizeAmount(s)

	if strings.HasPrefix(s, "-") {
		negative = true
		s = strings.TrimPrefix(s, "-")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	amount = amount.Abs()
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}

// StandardizeAmount strips currency symbols, internal whitespace, and
// thousands separators so the result can be parsed by decimal.NewFromString.
// Handles patterns like "CHF 1'234.56", "$1,234.56", "1 234.56".
func StandardizeAmount(amountStr string) string {
	amountStr = symbolRe.ReplaceAllString(amountStr, "")
	amountStr = strings.ReplaceAll(amountStr, "CHF", "")

	// Commas and apostrophes only ever appear as thousands separators in the
	// exports this engine accepts; the decimal separator is a period.
	amountStr = strings.ReplaceAll(amountStr, ",", "")
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount formats a decimal amount for display with the given currency,
// two decimal places, no thousands separators. Returns strings like
// "$1234.56" or "CHF 1234.56".
func FormatAmount(amount decimal.Decimal, currency string) string {
	formattedAmount := amount.StringFixed(2)

	if currency != "" {
		switch strings.ToUpper(currency) {
		case "EUR":
			return "€" + formattedAmount
		case "USD":
			return "$" + formattedAmount
		case "GBP":
			return "£" + formattedAmount
		case "JPY":
			return "¥" + formattedAmount
		case "CHF":
			return "CHF " + formattedAmount
		default:
			return currency + " " + formattedAmount
		}
	}

	return formattedAmount
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsPositive checks if an amount is positive
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}
