// Package output provides utilities for formatting and displaying loan calculation results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/format"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Schedule names used in CSV output.
const (
	ScheduleDownPayment = "down-payment"
	ScheduleLoan        = "loan"
)

// WriteResult renders a complete calculation in the requested format. When
// yearly is set, the monthly schedules are replaced by their yearly rollups.
func WriteResult(w io.Writer, outputFormat string, result *loans.LoanCalculationResult, yearly bool) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, result, yearly)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, result, yearly)
	case constants.OutputFormatJSON:
		if yearly {
			return JSONFormat(w, NewYearlyReport(result))
		}
		return JSONFormat(w, result)
	case constants.OutputFormatYAML:
		if yearly {
			return YAMLFormat(w, NewYearlyReport(result))
		}
		return YAMLFormat(w, result)
	case constants.OutputFormatHTML:
		return HTMLFormat(w, result, yearly)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// WriteBreakdown renders a price breakdown in the requested format.
func WriteBreakdown(w io.Writer, outputFormat string, breakdown loans.PropertyBreakdown) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyBreakdown(w, breakdown)
		return nil
	case constants.OutputFormatCSV:
		return CsvBreakdown(w, breakdown)
	case constants.OutputFormatJSON:
		return JSONFormat(w, breakdown)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, breakdown)
	case constants.OutputFormatHTML:
		return HTMLBreakdown(w, breakdown)
	}
	return fmt.Errorf("unsupported output format %s", outputFormat)
}

// lineItem is one labelled amount in a price breakdown.
type lineItem struct {
	Label  string
	Amount decimal.Decimal
}

// breakdownItems lists the components of the all-in price in display order.
// Components that do not apply to the property type are omitted.
func breakdownItems(b loans.PropertyBreakdown) []lineItem {
	items := []lineItem{{"Base price", b.BasePrice}}
	if b.LotPrice != nil {
		items = append(items, lineItem{"Lot price", *b.LotPrice})
	}
	if b.HouseConstructionCost != nil {
		items = append(items, lineItem{"House construction cost", *b.HouseConstructionCost})
	}
	if b.LotFees != nil {
		items = append(items, lineItem{"Lot fees", *b.LotFees})
	}
	if b.ConstructionFees != nil {
		items = append(items, lineItem{"Construction fees", *b.ConstructionFees})
	}
	items = append(items,
		lineItem{"Reservation fee", b.ReservationFee},
		lineItem{"Government fees and taxes", b.GovernmentFeesAndTaxes},
		lineItem{"Total all-in price", b.TotalAllInPrice},
	)
	return items
}

// PrettyBreakdown outputs a human-readable price breakdown.
func PrettyBreakdown(w io.Writer, b loans.PropertyBreakdown) {
	fmt.Fprintf(w, "--- Price breakdown (%s) ---\n", b.PropertyType)
	for _, item := range breakdownItems(b) {
		fmt.Fprintf(w, "%-28s %18s\n", item.Label, format.Currency(item.Amount))
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, result *loans.LoanCalculationResult, yearly bool) {
	PrettyBreakdown(w, result.PropertyBreakdown)

	amortization := result.LoanAmortization
	fmt.Fprintf(w, "\n--- Financing: %s at %s over %d years ---\n",
		result.FinancingOption.Label, format.Percent(amortization.InterestRate), result.PaymentTermYears)
	summary := []lineItem{
		{"Down payment (20%)", result.TotalDownPayment},
		{"Down payment, monthly yr 1", result.DownPaymentMonthlyAmount},
		{"Down payment interest", result.DownPaymentInterest},
		{"Net loan amount", result.NetLoanAmount},
		{"Monthly amortization", amortization.MonthlyPayment},
		{"Total loan payments", amortization.TotalPayment},
		{"Total loan interest", amortization.TotalInterest},
		{"Total project cost", result.TotalProjectCost},
	}
	for _, item := range summary {
		fmt.Fprintf(w, "%-28s %18s\n", item.Label, format.Currency(item.Amount))
	}

	p := message.NewPrinter(language.English)
	if yearly {
		fmt.Fprintf(w, "\n--- Down payment by year ---\n")
		prettyYearly(w, p, loans.YearlyDownPaymentSummary(result.DownPaymentSchedule))
		fmt.Fprintf(w, "\n--- Loan amortization by year ---\n")
		prettyYearly(w, p, loans.YearlyLoanSummary(amortization.Schedule))
		return
	}

	fmt.Fprintf(w, "\n--- Down payment schedule ---\n")
	fmt.Fprintf(w, "Month | Payment        | Principal      | Interest     | Rate   | Balance\n")
	fmt.Fprintf(w, "_____ | ______________ | ______________ | ____________ | ______ | ______________\n")
	for _, row := range result.DownPaymentSchedule {
		_, _ = p.Fprintf(w, "%5d | %14.2f | %14.2f | %12.2f | %6s | %14.2f\n",
			row.Month, row.Payment.InexactFloat64(), row.Principal.InexactFloat64(),
			row.Interest.InexactFloat64(), format.Percent(row.InterestRate), row.Balance.InexactFloat64())
	}

	fmt.Fprintf(w, "\n--- Loan amortization schedule ---\n")
	fmt.Fprintf(w, "Month | Payment        | Principal      | Interest     | Balance\n")
	fmt.Fprintf(w, "_____ | ______________ | ______________ | ____________ | ______________\n")
	for _, row := range amortization.Schedule {
		_, _ = p.Fprintf(w, "%5d | %14.2f | %14.2f | %12.2f | %14.2f\n",
			row.Month, row.Payment.InexactFloat64(), row.Principal.InexactFloat64(),
			row.Interest.InexactFloat64(), row.Balance.InexactFloat64())
	}
}

func prettyYearly(w io.Writer, p *message.Printer, rows []loans.YearlySummaryRow) {
	fmt.Fprintf(w, "Year | Payment        | Principal      | Interest       | Ending balance\n")
	fmt.Fprintf(w, "____ | ______________ | ______________ | ______________ | ______________\n")
	for _, row := range rows {
		_, _ = p.Fprintf(w, "%4d | %14.2f | %14.2f | %14.2f | %14.2f\n",
			row.Year, row.Payment.InexactFloat64(), row.Principal.InexactFloat64(),
			row.Interest.InexactFloat64(), row.EndingBalance.InexactFloat64())
	}
}

// CsvFormat outputs both schedules in comma-separated value format. The
// first column names the schedule each row belongs to.
func CsvFormat(w io.Writer, result *loans.LoanCalculationResult, yearly bool) error {
	writer := csv.NewWriter(w)

	if yearly {
		_ = writer.Write([]string{"schedule", "year", "payment", "principal", "interest", "ending balance"})
		writeYearlyCsv(writer, ScheduleDownPayment, loans.YearlyDownPaymentSummary(result.DownPaymentSchedule))
		writeYearlyCsv(writer, ScheduleLoan, loans.YearlyLoanSummary(result.LoanAmortization.Schedule))
	} else {
		_ = writer.Write([]string{"schedule", "month", "payment", "principal", "interest", "interest rate", "balance"})
		for _, row := range result.DownPaymentSchedule {
			_ = writer.Write([]string{
				ScheduleDownPayment,
				strconv.Itoa(row.Month),
				row.Payment.StringFixed(2),
				row.Principal.StringFixed(2),
				row.Interest.StringFixed(2),
				row.InterestRate.StringFixed(2),
				row.Balance.StringFixed(2),
			})
		}
		rate := result.LoanAmortization.InterestRate.StringFixed(2)
		for _, row := range result.LoanAmortization.Schedule {
			_ = writer.Write([]string{
				ScheduleLoan,
				strconv.Itoa(row.Month),
				row.Payment.StringFixed(2),
				row.Principal.StringFixed(2),
				row.Interest.StringFixed(2),
				rate,
				row.Balance.StringFixed(2),
			})
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeYearlyCsv(writer *csv.Writer, schedule string, rows []loans.YearlySummaryRow) {
	for _, row := range rows {
		_ = writer.Write([]string{
			schedule,
			strconv.Itoa(row.Year),
			row.Payment.StringFixed(2),
			row.Principal.StringFixed(2),
			row.Interest.StringFixed(2),
			row.EndingBalance.StringFixed(2),
		})
	}
}

// CsvBreakdown outputs the price breakdown as item,amount rows.
func CsvBreakdown(w io.Writer, b loans.PropertyBreakdown) error {
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"item", "amount"})
	for _, item := range breakdownItems(b) {
		_ = writer.Write([]string{item.Label, item.Amount.StringFixed(2)})
	}
	writer.Flush()
	return writer.Error()
}

// CsvString renders the result as CSV and returns it as a string.
func CsvString(result *loans.LoanCalculationResult, yearly bool) (string, error) {
	var buf strings.Builder
	if err := CsvFormat(&buf, result, yearly); err != nil {
		return "", err
	}
	return buf.String(), nil
}
