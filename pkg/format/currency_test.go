package format

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "₱0.00"},
		{"5", "₱5.00"},
		{"999.999", "₱1,000.00"},
		{"1234.56", "₱1,234.56"},
		{"5337610.375", "₱5,337,610.38"},
		{"-205000", "-₱205,000.00"},
		{"-0.001", "₱0.00"},
		{"1000000000", "₱1,000,000,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := Currency(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Errorf("Currency(%s) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0.00"},
		{"100", "100.00"},
		{"4270088.3", "4,270,088.30"},
		{"-1234.5", "-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got := NumericCurrency(decimal.RequireFromString(tt.amount))
			if got != tt.expected {
				t.Errorf("NumericCurrency(%s) = %s, expected %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(decimal.NewFromFloat(8.5)); got != "8.50%" {
		t.Errorf("Percent(8.5) = %s, expected 8.50%%", got)
	}
	if got := Percent(decimal.NewFromFloat(6.25)); got != "6.25%" {
		t.Errorf("Percent(6.25) = %s, expected 6.25%%", got)
	}
}
