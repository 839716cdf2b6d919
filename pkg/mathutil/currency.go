// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

var percentageMultiplier = decimal.NewFromFloat(constants.PercentageMultiplier)

// Centavo is the smallest payable amount.
var Centavo = decimal.New(1, -constants.DecimalPlaces)

// Round rounds a value to two decimals, i.e. to represent real currency.
func Round(val decimal.Decimal) decimal.Decimal {
	return val.Round(constants.DecimalPlaces)
}

// IsFinite reports whether a float is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// ApplyPercentage applies a percentage to a value, e.g. 8.5 of 1000 is 85.
func ApplyPercentage(value, percentage decimal.Decimal) decimal.Decimal {
	return value.Mul(percentage).Div(percentageMultiplier)
}

// MonthlyRate converts an annual percentage rate into a monthly fraction.
func MonthlyRate(annualPercentageRate decimal.Decimal) decimal.Decimal {
	return annualPercentageRate.DivRound(percentageMultiplier.Mul(decimal.NewFromInt(constants.MonthsPerYear)),
		constants.RateDecimalPlaces)
}

// PowInt raises base to a non-negative integer power by repeated squaring,
// keeping RateDecimalPlaces places at each step.
func PowInt(base decimal.Decimal, exponent int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base).Round(constants.RateDecimalPlaces)
		}
		base = base.Mul(base).Round(constants.RateDecimalPlaces)
		exponent >>= 1
	}
	return result
}
