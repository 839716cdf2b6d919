package loans

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDownPaymentSchedule(t *testing.T) {
	dp, err := GenerateDownPaymentSchedule(dec("1000000"), dec("8.5"))
	require.NoError(t, err)

	assertDecimal(t, "200000", dp.Principal)
	assertDecimal(t, "8333.33", dp.MonthlyAmountYear1)
	require.Len(t, dp.Schedule, 24)

	for i, row := range dp.Schedule {
		assert.Equal(t, i+1, row.Month)
		if row.Month <= 12 {
			assert.True(t, row.IsFirstYear, "month %d should be in the first year", row.Month)
			assert.True(t, row.Interest.IsZero(), "month %d interest = %s", row.Month, row.Interest)
			assert.True(t, row.InterestRate.IsZero(), "month %d rate = %s", row.Month, row.InterestRate)
			assert.True(t, row.Payment.Equal(dp.MonthlyAmountYear1), "month %d payment = %s", row.Month, row.Payment)
		} else {
			assert.False(t, row.IsFirstYear, "month %d should not be in the first year", row.Month)
			assertDecimal(t, "8.5", row.InterestRate, "month %d", row.Month)
			assert.True(t, row.Interest.IsPositive(), "month %d interest = %s", row.Month, row.Interest)
		}
		assert.True(t, row.Principal.Add(row.Interest).Equal(row.Payment), "month %d components do not add up", row.Month)
	}

	// First month of the second year charges interest on the remaining half.
	assertDecimal(t, "708.33", dp.Schedule[12].Interest)

	last := dp.Schedule[23]
	assert.True(t, last.Balance.IsZero(), "final balance = %s", last.Balance)
	assert.True(t, last.CumulativePaid.Equal(dp.Principal), "cumulative = %s", last.CumulativePaid)

	interest := decimal.Zero
	for _, row := range dp.Schedule {
		interest = interest.Add(row.Interest)
	}
	assert.True(t, interest.Equal(dp.TotalInterest))
}

func TestDownPaymentSecondYearPaymentIsLevel(t *testing.T) {
	dp, err := GenerateDownPaymentSchedule(dec("5337610.375"), dec("8.5"))
	require.NoError(t, err)

	level := dp.Schedule[12].Payment
	for _, row := range dp.Schedule[12:23] {
		assert.True(t, row.Payment.Equal(level), "month %d payment %s differs from %s", row.Month, row.Payment, level)
	}
	assert.True(t, dp.Schedule[23].Payment.Sub(level).Abs().LessThan(dec("0.15")),
		"final payment %s too far from %s", dp.Schedule[23].Payment, level)
}

func TestDownPaymentPaymentsAreRoundedToCentavo(t *testing.T) {
	dp, err := GenerateDownPaymentSchedule(dec("5337610.375"), dec("8.5"))
	require.NoError(t, err)

	// 1,067,522.075 / 24 = 44,480.086...
	assertDecimal(t, "44480.09", dp.MonthlyAmountYear1)
	for _, row := range dp.Schedule {
		assert.True(t, row.Payment.Equal(row.Payment.Round(2)), "month %d payment %s", row.Month, row.Payment)
		assert.True(t, row.CumulativePaid.Equal(row.CumulativePaid.Round(2)), "month %d cumulative %s", row.Month, row.CumulativePaid)
	}
	assertDecimal(t, "533761.08", dp.Schedule[11].CumulativePaid)
}

func TestDownPaymentRateExtremes(t *testing.T) {
	for _, rate := range []string{"0.0000000000001", "0.000000000000001", "10000"} {
		dp, err := GenerateDownPaymentSchedule(dec("1000000"), dec(rate))
		require.NoError(t, err, "rate %s", rate)

		previous := dp.Principal
		for _, row := range dp.Schedule {
			assert.False(t, row.Balance.GreaterThan(previous), "rate %s month %d balance increased", rate, row.Month)
			previous = row.Balance
		}
		assert.True(t, previous.IsZero(), "rate %s final balance = %s", rate, previous)
	}
}

func TestDownPaymentCumulativeIsMonotonic(t *testing.T) {
	for _, rate := range []string{"0", "4.5", "8.5", "18"} {
		dp, err := GenerateDownPaymentSchedule(dec("2750000"), dec(rate))
		require.NoError(t, err)

		previous := decimal.Zero
		for _, row := range dp.Schedule {
			assert.True(t, row.CumulativePaid.GreaterThan(previous), "rate %s month %d cumulative did not grow", rate, row.Month)
			assert.False(t, row.Balance.IsNegative(), "rate %s month %d negative balance", rate, row.Month)
			assert.True(t, row.CumulativePaid.Add(row.Balance).Equal(dp.Principal), "rate %s month %d cumulative + balance != principal", rate, row.Month)
			previous = row.CumulativePaid
		}
		assert.True(t, previous.Equal(dp.Principal))
	}
}

func TestDownPaymentZeroSpecialRate(t *testing.T) {
	dp, err := GenerateDownPaymentSchedule(dec("1000000"), decimal.Zero)
	require.NoError(t, err)

	assert.True(t, dp.TotalInterest.IsZero())
	for _, row := range dp.Schedule[:23] {
		assert.True(t, row.Payment.Equal(dp.MonthlyAmountYear1), "month %d payment = %s", row.Month, row.Payment)
	}
	// 200,000 less 23 payments of 8,333.33
	assertDecimal(t, "8333.41", dp.Schedule[23].Payment)
	assert.True(t, dp.Schedule[23].Balance.IsZero())
}

func TestGenerateDownPaymentScheduleRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		total string
		rate  string
		field string
	}{
		{"Zero total", "0", "8.5", "totalAllInPrice"},
		{"Negative total", "-1", "8.5", "totalAllInPrice"},
		{"Negative rate", "1000000", "-1", "specialRuleInterestRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateDownPaymentSchedule(dec(tt.total), dec(tt.rate))
			require.ErrorIs(t, err, ErrInvalidInput)
			var inputErr *InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}
