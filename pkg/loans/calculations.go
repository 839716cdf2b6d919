// Package loans computes the price breakdown, down payment schedule and loan
// amortization schedule for a property purchase.
package loans

import (
	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// CalculateMonthlyPayment calculates the monthly payment for a loan using the
// standard amortization formula.
func CalculateMonthlyPayment(loanAmount, annualInterestRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if err := validateLoanTerms(loanAmount, annualInterestRate, termYears); err != nil {
		return decimal.Zero, err
	}
	return annuityPayment(loanAmount, annualInterestRate, termYears*constants.MonthsPerYear), nil
}

// annuityPayment is the level payment that retires amount over the given
// number of months, rounded to the centavo. The final row of a schedule
// absorbs the rounding residue.
func annuityPayment(amount, annualInterestRate decimal.Decimal, months int) decimal.Decimal {
	one := decimal.NewFromInt(1)
	exact := amount.Div(decimal.NewFromInt(int64(months)))

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	if periodicInterestRate.IsPositive() {
		power := mathutil.PowInt(one.Add(periodicInterestRate), months)
		if growth := power.Sub(one); growth.IsPositive() {
			exact = amount.Mul(periodicInterestRate).Mul(power).DivRound(growth, constants.RateDecimalPlaces)
		}
	}

	payment := mathutil.Round(exact)
	// Rounding must not leave a payment that only covers the interest.
	if !payment.GreaterThan(CalculateInterestPayment(amount, annualInterestRate)) {
		payment = payment.Add(mathutil.Centavo)
	}
	return payment
}

// CalculateInterestPayment calculates the interest portion of a payment,
// rounded to the centavo.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate decimal.Decimal) decimal.Decimal {
	return mathutil.Round(remainingPrincipal.Mul(mathutil.MonthlyRate(annualInterestRate)))
}

// GenerateLoanAmortizationSchedule creates the monthly schedule for the
// financed balance. The final row absorbs any rounding residue so the
// balance ends at exactly zero.
func GenerateLoanAmortizationSchedule(loanAmount, annualInterestRate decimal.Decimal, termYears int,
	monthlyPayment decimal.Decimal) ([]LoanAmortizationScheduleRow, error) {

	if err := validateLoanTerms(loanAmount, annualInterestRate, termYears); err != nil {
		return nil, err
	}
	if !monthlyPayment.IsPositive() {
		return nil, invalidInput("monthlyPayment", monthlyPayment, "must be greater than zero")
	}
	if !monthlyPayment.GreaterThan(CalculateInterestPayment(loanAmount, annualInterestRate)) {
		return nil, invalidInput("monthlyPayment", monthlyPayment, "must exceed the first month's interest")
	}

	termMonths := termYears * constants.MonthsPerYear
	schedule := make([]LoanAmortizationScheduleRow, 0, termMonths)
	balance := loanAmount

	for month := 1; month <= termMonths; month++ {
		var row LoanAmortizationScheduleRow
		row.Month = month
		row.Interest = CalculateInterestPayment(balance, annualInterestRate)

		if month == termMonths {
			// Pay off whatever is left so the schedule closes at zero.
			row.Principal = balance
			row.Payment = row.Principal.Add(row.Interest)
			row.Balance = decimal.Zero
		} else {
			row.Payment = monthlyPayment
			row.Principal = monthlyPayment.Sub(row.Interest)
			if row.Principal.GreaterThan(balance) {
				row.Principal = balance
				row.Payment = row.Principal.Add(row.Interest)
			}
			row.Balance = balance.Sub(row.Principal)
		}

		schedule = append(schedule, row)
		balance = row.Balance
	}

	return schedule, nil
}

func validateLoanTerms(loanAmount, annualInterestRate decimal.Decimal, termYears int) error {
	if !loanAmount.IsPositive() {
		return invalidInput("loanAmount", loanAmount, "must be greater than zero")
	}
	if annualInterestRate.IsNegative() {
		return invalidInput("annualInterestRate", annualInterestRate, "must not be negative")
	}
	if termYears < constants.MinTermYears || termYears > constants.MaxTermYears {
		return invalidInput("termYears", termYears, "must be between 5 and 30 years")
	}
	return nil
}
