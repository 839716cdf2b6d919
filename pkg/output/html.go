package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/iwvelando/homeloan-calculator/pkg/format"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
)

var htmlFuncs = template.FuncMap{
	"currency": format.Currency,
	"numeric":  format.NumericCurrency,
	"percent":  format.Percent,
}

const htmlLayout = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; font-size: 11pt; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #999; padding: 0.2em 0.6em; }
td.amount, th.amount { text-align: right; }
tr.total td { font-weight: bold; }
@media print { body { margin: 0; } h2 { page-break-before: auto; } table { page-break-inside: auto; } tr { page-break-inside: avoid; } }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{template "breakdown" .Breakdown}}
{{if .Result}}{{template "result" .}}{{end}}
</body>
</html>
{{define "breakdown"}}<h2>Price breakdown ({{.PropertyType}})</h2>
<table>
{{range $i, $item := items .}}<tr{{if eq $item.Label "Total all-in price"}} class="total"{{end}}><td>{{$item.Label}}</td><td class="amount">{{currency $item.Amount}}</td></tr>
{{end}}</table>
{{end}}
{{define "result"}}{{with .Result}}<h2>{{.FinancingOption.Label}} at {{percent .LoanAmortization.InterestRate}} over {{.PaymentTermYears}} years</h2>
<table>
<tr><td>Down payment (20%)</td><td class="amount">{{currency .TotalDownPayment}}</td></tr>
<tr><td>Down payment, monthly (year 1)</td><td class="amount">{{currency .DownPaymentMonthlyAmount}}</td></tr>
<tr><td>Down payment interest</td><td class="amount">{{currency .DownPaymentInterest}}</td></tr>
<tr><td>Net loan amount</td><td class="amount">{{currency .NetLoanAmount}}</td></tr>
<tr><td>Monthly amortization</td><td class="amount">{{currency .LoanAmortization.MonthlyPayment}}</td></tr>
<tr><td>Total loan interest</td><td class="amount">{{currency .LoanAmortization.TotalInterest}}</td></tr>
<tr class="total"><td>Total project cost</td><td class="amount">{{currency .TotalProjectCost}}</td></tr>
</table>{{end}}
{{if .Yearly}}<h2>Down payment by year</h2>
{{template "yearly" .DownPaymentByYear}}
<h2>Loan amortization by year</h2>
{{template "yearly" .LoanByYear}}
{{else}}{{with .Result}}<h2>Down payment schedule</h2>
<table>
<tr><th>Month</th><th class="amount">Payment</th><th class="amount">Principal</th><th class="amount">Interest</th><th class="amount">Rate</th><th class="amount">Balance</th></tr>
{{range .DownPaymentSchedule}}<tr><td>{{.Month}}</td><td class="amount">{{numeric .Payment}}</td><td class="amount">{{numeric .Principal}}</td><td class="amount">{{numeric .Interest}}</td><td class="amount">{{percent .InterestRate}}</td><td class="amount">{{numeric .Balance}}</td></tr>
{{end}}</table>
<h2>Loan amortization schedule</h2>
<table>
<tr><th>Month</th><th class="amount">Payment</th><th class="amount">Principal</th><th class="amount">Interest</th><th class="amount">Balance</th></tr>
{{range .LoanAmortization.Schedule}}<tr><td>{{.Month}}</td><td class="amount">{{numeric .Payment}}</td><td class="amount">{{numeric .Principal}}</td><td class="amount">{{numeric .Interest}}</td><td class="amount">{{numeric .Balance}}</td></tr>
{{end}}</table>{{end}}{{end}}
{{end}}
{{define "yearly"}}<table>
<tr><th>Year</th><th class="amount">Payment</th><th class="amount">Principal</th><th class="amount">Interest</th><th class="amount">Ending balance</th></tr>
{{range .}}<tr><td>{{.Year}}</td><td class="amount">{{numeric .Payment}}</td><td class="amount">{{numeric .Principal}}</td><td class="amount">{{numeric .Interest}}</td><td class="amount">{{numeric .EndingBalance}}</td></tr>
{{end}}</table>
{{end}}`

var htmlTemplate = template.Must(template.New("report").
	Funcs(htmlFuncs).
	Funcs(template.FuncMap{"items": breakdownItems}).
	Parse(htmlLayout))

type htmlPage struct {
	Title             string
	Breakdown         loans.PropertyBreakdown
	Result            *loans.LoanCalculationResult
	Yearly            bool
	DownPaymentByYear []loans.YearlySummaryRow
	LoanByYear        []loans.YearlySummaryRow
}

// HTMLFormat writes a print-ready HTML report of the calculation.
func HTMLFormat(w io.Writer, result *loans.LoanCalculationResult, yearly bool) error {
	page := htmlPage{
		Title:     "Loan computation",
		Breakdown: result.PropertyBreakdown,
		Result:    result,
		Yearly:    yearly,
	}
	if yearly {
		page.DownPaymentByYear = loans.YearlyDownPaymentSummary(result.DownPaymentSchedule)
		page.LoanByYear = loans.YearlyLoanSummary(result.LoanAmortization.Schedule)
	}
	return renderHTML(w, page)
}

// HTMLBreakdown writes a print-ready HTML page with the price breakdown only.
func HTMLBreakdown(w io.Writer, breakdown loans.PropertyBreakdown) error {
	return renderHTML(w, htmlPage{Title: "Price breakdown", Breakdown: breakdown})
}

func renderHTML(w io.Writer, page htmlPage) error {
	if err := htmlTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}
