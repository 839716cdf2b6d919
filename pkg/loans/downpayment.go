package loans

import (
	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
)

// DownPaymentAmount is the down payment owed on an all-in price.
func DownPaymentAmount(totalAllInPrice decimal.Decimal) decimal.Decimal {
	return mathutil.ApplyPercentage(totalAllInPrice, decimal.NewFromFloat(constants.DownPaymentPercent))
}

// GenerateDownPaymentSchedule spreads the down payment over 24 months under
// the special rule. Months 1-12 each retire 1/24 of the principal, rounded to
// the centavo, with no interest. At month 13 the remaining balance is
// re-rated at the special rule rate and amortized with a level payment that
// closes the balance at month 24.
func GenerateDownPaymentSchedule(totalAllInPrice, specialRuleInterestRate decimal.Decimal) (DownPaymentSchedule, error) {
	if !totalAllInPrice.IsPositive() {
		return DownPaymentSchedule{}, invalidInput("totalAllInPrice", totalAllInPrice, "must be greater than zero")
	}
	if specialRuleInterestRate.IsNegative() {
		return DownPaymentSchedule{}, invalidInput("specialRuleInterestRate", specialRuleInterestRate, "must not be negative")
	}

	principal := DownPaymentAmount(totalAllInPrice)
	firstYearPayment := mathutil.Round(principal.Div(decimal.NewFromInt(constants.DownPaymentMonths)))

	schedule := make([]DownPaymentScheduleRow, 0, constants.DownPaymentMonths)
	balance := principal
	cumulative := decimal.Zero
	totalInterest := decimal.Zero

	for month := 1; month <= constants.InterestFreeMonths; month++ {
		balance = balance.Sub(firstYearPayment)
		cumulative = cumulative.Add(firstYearPayment)
		schedule = append(schedule, DownPaymentScheduleRow{
			Month:          month,
			Payment:        firstYearPayment,
			Principal:      firstYearPayment,
			Interest:       decimal.Zero,
			InterestRate:   decimal.Zero,
			IsFirstYear:    true,
			CumulativePaid: cumulative,
			Balance:        balance,
		})
	}

	secondYearMonths := constants.DownPaymentMonths - constants.InterestFreeMonths
	secondYearPayment := firstYearPayment
	if !specialRuleInterestRate.IsZero() {
		secondYearPayment = annuityPayment(balance, specialRuleInterestRate, secondYearMonths)
	}

	for month := constants.InterestFreeMonths + 1; month <= constants.DownPaymentMonths; month++ {
		row := DownPaymentScheduleRow{
			Month:        month,
			InterestRate: specialRuleInterestRate,
			Interest:     CalculateInterestPayment(balance, specialRuleInterestRate),
		}
		if month == constants.DownPaymentMonths {
			row.Principal = balance
		} else {
			row.Principal = secondYearPayment.Sub(row.Interest)
			if row.Principal.GreaterThan(balance) {
				row.Principal = balance
			}
		}
		row.Payment = row.Principal.Add(row.Interest)

		balance = balance.Sub(row.Principal)
		cumulative = cumulative.Add(row.Principal)
		totalInterest = totalInterest.Add(row.Interest)

		row.CumulativePaid = cumulative
		row.Balance = balance
		schedule = append(schedule, row)
	}

	return DownPaymentSchedule{
		Principal:          principal,
		MonthlyAmountYear1: firstYearPayment,
		TotalInterest:      totalInterest,
		Schedule:           schedule,
	}, nil
}
