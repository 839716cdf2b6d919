package loans

import (
	"fmt"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/mathutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CalculateCompleteLoanDetails prices the property, builds the down payment
// and loan schedules, and totals the cost over the life of the loan. Either a
// complete result or an error is returned, never both.
func CalculateCompleteLoanDetails(req LoanRequest, settings Settings) (*LoanCalculationResult, error) {
	if !IsSupportedTerm(req.PaymentTermYears) {
		return nil, invalidInput("paymentTermYears", req.PaymentTermYears, "must be one of 5, 10, 15, 20, 25 or 30")
	}

	specialRate, err := resolveSpecialRuleRate(settings.SpecialRuleInterestRate)
	if err != nil {
		return nil, err
	}

	breakdown, err := ComputePropertyBreakdown(req.Property, settings.ReservationFees, settings.GovernmentFees, settings.ConstructionFees)
	if err != nil {
		return nil, err
	}

	downPayment, err := GenerateDownPaymentSchedule(breakdown.TotalAllInPrice, specialRate)
	if err != nil {
		return nil, err
	}

	option, err := FindFinancingOption(settings.FinancingOptions, req.FinancingOption)
	if err != nil {
		return nil, err
	}
	if !mathutil.IsFinite(option.InterestRate) {
		return nil, configurationError("financingOptions."+option.Value+".interestRate", "must be a finite number")
	}
	interestRate := decimal.NewFromFloat(option.InterestRate)

	netLoanAmount := breakdown.TotalAllInPrice.Sub(downPayment.Principal)
	monthlyPayment, err := CalculateMonthlyPayment(netLoanAmount, interestRate, req.PaymentTermYears)
	if err != nil {
		return nil, err
	}
	schedule, err := GenerateLoanAmortizationSchedule(netLoanAmount, interestRate, req.PaymentTermYears, monthlyPayment)
	if err != nil {
		return nil, err
	}

	totalPayment := decimal.Zero
	totalInterest := decimal.Zero
	for _, row := range schedule {
		totalPayment = totalPayment.Add(row.Payment)
		totalInterest = totalInterest.Add(row.Interest)
	}

	return &LoanCalculationResult{
		PropertyBreakdown:        breakdown,
		FinancingOption:          option,
		PaymentTermYears:         req.PaymentTermYears,
		TotalDownPayment:         downPayment.Principal,
		DownPaymentMonthlyAmount: downPayment.MonthlyAmountYear1,
		DownPaymentInterest:      downPayment.TotalInterest,
		DownPaymentSchedule:      downPayment.Schedule,
		NetLoanAmount:            netLoanAmount,
		LoanAmortization: LoanAmortization{
			LoanAmount:     netLoanAmount,
			InterestRate:   interestRate,
			MonthlyPayment: monthlyPayment,
			TotalPayment:   totalPayment,
			TotalInterest:  totalInterest,
			Schedule:       schedule,
		},
		TotalProjectCost: breakdown.TotalAllInPrice.Add(downPayment.TotalInterest).Add(totalInterest),
	}, nil
}

// FindFinancingOption returns the active option whose Value matches. A nil
// list falls back to the default options.
func FindFinancingOption(options []FinancingOption, value string) (FinancingOption, error) {
	if options == nil {
		options = DefaultFinancingOptions()
	}
	for _, option := range options {
		if option.Value != value {
			continue
		}
		if !option.IsActive {
			return FinancingOption{}, configurationError("financingOption", fmt.Sprintf("%q is not active", value))
		}
		return option, nil
	}
	return FinancingOption{}, configurationError("financingOption", fmt.Sprintf("%q is not a configured option", value))
}

// ActiveFinancingOptions filters the options a buyer may choose from.
func ActiveFinancingOptions(options []FinancingOption) []FinancingOption {
	if options == nil {
		options = DefaultFinancingOptions()
	}
	var active []FinancingOption
	for _, option := range options {
		if option.IsActive {
			active = append(active, option)
		}
	}
	return active
}

// IsSupportedTerm reports whether a term in years is offered to buyers.
func IsSupportedTerm(termYears int) bool {
	return termYears >= constants.MinTermYears && termYears <= constants.MaxTermYears &&
		termYears%constants.TermStepYears == 0
}

func resolveSpecialRuleRate(rate *float64) (decimal.Decimal, error) {
	if rate == nil {
		return decimal.NewFromFloat(constants.DefaultSpecialRuleInterestRate), nil
	}
	if !mathutil.IsFinite(*rate) || *rate < 0 {
		return decimal.Zero, configurationError("specialRuleInterestRate", "must be a finite number greater than or equal to zero")
	}
	return decimal.NewFromFloat(*rate), nil
}

// Calculator runs loan calculations and logs what it computed. It holds no
// state besides the logger and is safe for concurrent use.
type Calculator struct {
	logger *zap.Logger
}

// NewCalculator creates a new calculator instance
func NewCalculator(logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger}
}

// Calculate wraps CalculateCompleteLoanDetails with logging.
func (c *Calculator) Calculate(req LoanRequest, settings Settings) (*LoanCalculationResult, error) {
	result, err := CalculateCompleteLoanDetails(req, settings)
	if err != nil {
		c.logger.Debug("loan calculation rejected",
			zap.String("op", "loans.Calculate"),
			zap.String("propertyType", string(req.Property.PropertyType)),
			zap.String("financingOption", req.FinancingOption),
			zap.Int("paymentTermYears", req.PaymentTermYears),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Debug(fmt.Sprintf("computed %d down payment rows and %d loan rows for %s over %d years",
		len(result.DownPaymentSchedule), len(result.LoanAmortization.Schedule),
		result.FinancingOption.Value, result.PaymentTermYears),
		zap.String("op", "loans.Calculate"),
		zap.String("totalAllInPrice", result.PropertyBreakdown.TotalAllInPrice.StringFixed(2)),
		zap.String("netLoanAmount", result.NetLoanAmount.StringFixed(2)),
		zap.String("monthlyPayment", result.LoanAmortization.MonthlyPayment.StringFixed(2)),
	)
	return result, nil
}

// Breakdown wraps ComputePropertyBreakdown with logging.
func (c *Calculator) Breakdown(property PropertyInput, settings Settings) (PropertyBreakdown, error) {
	breakdown, err := ComputePropertyBreakdown(property, settings.ReservationFees, settings.GovernmentFees, settings.ConstructionFees)
	if err != nil {
		c.logger.Debug("price breakdown rejected",
			zap.String("op", "loans.Breakdown"),
			zap.Error(err),
		)
		return PropertyBreakdown{}, err
	}
	c.logger.Debug("computed price breakdown",
		zap.String("op", "loans.Breakdown"),
		zap.String("propertyType", string(breakdown.PropertyType)),
		zap.String("totalAllInPrice", breakdown.TotalAllInPrice.StringFixed(2)),
	)
	return breakdown, nil
}
