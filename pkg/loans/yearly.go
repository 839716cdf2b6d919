package loans

import (
	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// YearlyLoanSummary rolls the monthly loan schedule up into one row per year.
func YearlyLoanSummary(rows []LoanAmortizationScheduleRow) []YearlySummaryRow {
	var summary []YearlySummaryRow
	for _, row := range rows {
		summary = accumulateYear(summary, row.Month, row.Payment, row.Principal, row.Interest, row.Balance)
	}
	return summary
}

// YearlyDownPaymentSummary rolls the monthly down payment schedule up into
// one row per year.
func YearlyDownPaymentSummary(rows []DownPaymentScheduleRow) []YearlySummaryRow {
	var summary []YearlySummaryRow
	for _, row := range rows {
		summary = accumulateYear(summary, row.Month, row.Payment, row.Principal, row.Interest, row.Balance)
	}
	return summary
}

func accumulateYear(summary []YearlySummaryRow, month int, payment, principal, interest, balance decimal.Decimal) []YearlySummaryRow {
	year := (month-1)/constants.MonthsPerYear + 1
	if len(summary) == 0 || summary[len(summary)-1].Year != year {
		summary = append(summary, YearlySummaryRow{
			Year:      year,
			Payment:   decimal.Zero,
			Principal: decimal.Zero,
			Interest:  decimal.Zero,
		})
	}
	current := &summary[len(summary)-1]
	current.Payment = current.Payment.Add(payment)
	current.Principal = current.Principal.Add(principal)
	current.Interest = current.Interest.Add(interest)
	current.EndingBalance = balance
	return summary
}
