package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/homeloan-calculator/pkg/loans"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// YearlyReport is a calculation result with both schedules rolled up by year.
type YearlyReport struct {
	PropertyBreakdown   loans.PropertyBreakdown  `json:"propertyBreakdown" yaml:"propertyBreakdown"`
	FinancingOption     loans.FinancingOption    `json:"financingOption" yaml:"financingOption"`
	PaymentTermYears    int                      `json:"paymentTermYears" yaml:"paymentTermYears"`
	TotalDownPayment    decimal.Decimal          `json:"totalDownPayment" yaml:"totalDownPayment"`
	DownPaymentInterest decimal.Decimal          `json:"downPaymentInterest" yaml:"downPaymentInterest"`
	NetLoanAmount       decimal.Decimal          `json:"netLoanAmount" yaml:"netLoanAmount"`
	MonthlyPayment      decimal.Decimal          `json:"monthlyPayment" yaml:"monthlyPayment"`
	TotalLoanInterest   decimal.Decimal          `json:"totalLoanInterest" yaml:"totalLoanInterest"`
	TotalProjectCost    decimal.Decimal          `json:"totalProjectCost" yaml:"totalProjectCost"`
	DownPaymentByYear   []loans.YearlySummaryRow `json:"downPaymentByYear" yaml:"downPaymentByYear"`
	LoanByYear          []loans.YearlySummaryRow `json:"loanByYear" yaml:"loanByYear"`
}

// NewYearlyReport rolls the monthly schedules of result up by year.
func NewYearlyReport(result *loans.LoanCalculationResult) YearlyReport {
	return YearlyReport{
		PropertyBreakdown:   result.PropertyBreakdown,
		FinancingOption:     result.FinancingOption,
		PaymentTermYears:    result.PaymentTermYears,
		TotalDownPayment:    result.TotalDownPayment,
		DownPaymentInterest: result.DownPaymentInterest,
		NetLoanAmount:       result.NetLoanAmount,
		MonthlyPayment:      result.LoanAmortization.MonthlyPayment,
		TotalLoanInterest:   result.LoanAmortization.TotalInterest,
		TotalProjectCost:    result.TotalProjectCost,
		DownPaymentByYear:   loans.YearlyDownPaymentSummary(result.DownPaymentSchedule),
		LoanByYear:          loans.YearlyLoanSummary(result.LoanAmortization.Schedule),
	}
}

// JSONFormat writes v as indented JSON. Decimal amounts are encoded as
// strings so no precision is lost.
func JSONFormat(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// YAMLFormat writes v as YAML.
func YAMLFormat(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
