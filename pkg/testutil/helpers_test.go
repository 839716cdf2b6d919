package testutil

import "testing"

func TestFixtures(t *testing.T) {
	modelHouse := MustCalculate(t, ModelHouseRequest(5))
	if got := modelHouse.PropertyBreakdown.TotalAllInPrice.StringFixed(3); got != "5337610.375" {
		t.Errorf("model house all-in price = %s, expected 5337610.375", got)
	}

	lot := MustCalculate(t, LotOnlyRequest(10))
	if got := lot.PropertyBreakdown.TotalAllInPrice.StringFixed(2); got != "1094500.00" {
		t.Errorf("lot all-in price = %s, expected 1094500.00", got)
	}
	if len(lot.LoanAmortization.Schedule) != 120 {
		t.Errorf("lot schedule has %d rows, expected 120", len(lot.LoanAmortization.Schedule))
	}
}
