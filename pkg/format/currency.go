// Package format renders monetary values for human-readable output.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "₱"

// Currency returns a currency string with a peso sign and thousands separators (e.g., "-₱1,234.56").
func Currency(amount decimal.Decimal) string {
	formatted := formatPositiveCurrency(amount.Abs())
	if isNegative(amount) {
		return "-" + CurrencySymbol + formatted
	}
	return CurrencySymbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount decimal.Decimal) string {
	sign := ""
	if isNegative(amount) {
		sign = "-"
	}
	formatted := formatPositiveCurrency(amount.Abs())
	return sign + formatted
}

// Percent renders an annual rate held in percent (e.g., "8.50%").
func Percent(rate decimal.Decimal) string {
	return rate.StringFixed(2) + "%"
}

// isNegative ignores values that round to zero so -0.001 prints as 0.00.
func isNegative(amount decimal.Decimal) bool {
	return amount.Round(2).IsNegative()
}

func formatPositiveCurrency(value decimal.Decimal) string {
	formatted := value.StringFixed(2)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
