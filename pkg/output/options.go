package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
)

// OptionsReport lists what a buyer may choose from.
type OptionsReport struct {
	FinancingOptions []loans.FinancingOption `json:"financingOptions" yaml:"financingOptions"`
	PaymentTermYears []int                   `json:"paymentTermYears" yaml:"paymentTermYears"`
}

// WriteOptions renders the active financing options and supported terms.
func WriteOptions(w io.Writer, outputFormat string, report OptionsReport) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		fmt.Fprintf(w, "--- Financing options ---\n")
		for _, option := range report.FinancingOptions {
			fmt.Fprintf(w, "%-12s %-28s %6.2f%%\n", option.Value, option.Label, option.InterestRate)
		}
		terms := make([]string, len(report.PaymentTermYears))
		for i, term := range report.PaymentTermYears {
			terms[i] = strconv.Itoa(term)
		}
		fmt.Fprintf(w, "\nPayment terms (years): %s\n", strings.Join(terms, ", "))
		return nil
	case constants.OutputFormatCSV:
		writer := csv.NewWriter(w)
		_ = writer.Write([]string{"value", "label", "interest rate"})
		for _, option := range report.FinancingOptions {
			_ = writer.Write([]string{option.Value, option.Label, strconv.FormatFloat(option.InterestRate, 'f', 2, 64)})
		}
		writer.Flush()
		return writer.Error()
	case constants.OutputFormatJSON:
		return JSONFormat(w, report)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, report)
	}
	return fmt.Errorf("output format %s is not supported for options", outputFormat)
}
