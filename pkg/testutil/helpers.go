// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/homeloan-calculator/pkg/loans"
)

// Float returns a pointer to v for optional property prices.
func Float(v float64) *float64 {
	return &v
}

// ModelHouseRequest is a model house with separately priced lot and house,
// financed in-house over the given term.
func ModelHouseRequest(termYears int) loans.LoanRequest {
	return loans.LoanRequest{
		Property: loans.PropertyInput{
			BasePrice:             4707475,
			PropertyType:          loans.ModelHouse,
			LotPrice:              Float(1200000),
			HouseConstructionCost: Float(3507475),
		},
		FinancingOption:  "in-house",
		PaymentTermYears: termYears,
	}
}

// LotOnlyRequest is a lot priced under the government fee threshold,
// financed through Pag-IBIG over the given term.
func LotOnlyRequest(termYears int) loans.LoanRequest {
	return loans.LoanRequest{
		Property: loans.PropertyInput{
			BasePrice:    900000,
			PropertyType: loans.LotOnly,
		},
		FinancingOption:  "pag-ibig",
		PaymentTermYears: termYears,
	}
}

// MustCalculate runs the request against the default settings and fails the
// test on error.
func MustCalculate(t testing.TB, req loans.LoanRequest) *loans.LoanCalculationResult {
	t.Helper()
	result, err := loans.CalculateCompleteLoanDetails(req, loans.DefaultSettings())
	if err != nil {
		t.Fatalf("CalculateCompleteLoanDetails() error = %v", err)
	}
	return result
}
