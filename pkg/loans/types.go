package loans

import (
	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// PropertyType distinguishes the fee rules that apply to a listing.
type PropertyType string

const (
	ModelHouse PropertyType = constants.PropertyTypeModelHouse
	LotOnly    PropertyType = constants.PropertyTypeLotOnly
)

// Valid reports whether the property type is one the engine prices.
func (p PropertyType) Valid() bool {
	return p == ModelHouse || p == LotOnly
}

// PropertyInput is the listing being priced. LotPrice and
// HouseConstructionCost are required for model houses and ignored otherwise.
type PropertyInput struct {
	BasePrice             float64      `json:"basePrice" yaml:"basePrice"`
	PropertyType          PropertyType `json:"propertyType" yaml:"propertyType"`
	LotPrice              *float64     `json:"lotPrice,omitempty" yaml:"lotPrice,omitempty"`
	HouseConstructionCost *float64     `json:"houseConstructionCost,omitempty" yaml:"houseConstructionCost,omitempty"`
}

// LoanRequest is everything a buyer chooses in the loan calculator.
type LoanRequest struct {
	Property         PropertyInput `json:"property" yaml:"property"`
	FinancingOption  string        `json:"financingOption" yaml:"financingOption"`
	PaymentTermYears int           `json:"paymentTermYears" yaml:"paymentTermYears"`
}

// ReservationFeeConfig holds the fixed reservation fee per property type.
type ReservationFeeConfig struct {
	IsActive   bool    `json:"isActive" yaml:"isActive"`
	ModelHouse float64 `json:"modelHouse" yaml:"modelHouse"`
	LotOnly    float64 `json:"lotOnly" yaml:"lotOnly"`
}

// GovernmentFeeConfig holds the two-tier government fees and taxes rule.
type GovernmentFeeConfig struct {
	IsActive             bool    `json:"isActive" yaml:"isActive"`
	FixedAmountThreshold float64 `json:"fixedAmountThreshold" yaml:"fixedAmountThreshold"`
	FixedAmount          float64 `json:"fixedAmount" yaml:"fixedAmount"`
	PercentageRate       float64 `json:"percentageRate" yaml:"percentageRate"`
}

// ConstructionFeeConfig holds the percentage fees charged on the lot and
// house components of a model house.
type ConstructionFeeConfig struct {
	IsActive                 bool    `json:"isActive" yaml:"isActive"`
	LotFeeRate               float64 `json:"lotFeeRate" yaml:"lotFeeRate"`
	HouseConstructionFeeRate float64 `json:"houseConstructionFeeRate" yaml:"houseConstructionFeeRate"`
}

// FinancingOption is a lender or program with its own annual interest rate.
type FinancingOption struct {
	Value        string  `json:"value" yaml:"value"`
	Label        string  `json:"label" yaml:"label"`
	InterestRate float64 `json:"interestRate" yaml:"interestRate"`
	IsActive     bool    `json:"isActive" yaml:"isActive"`
}

// Settings is the read-only pricing configuration handed to the engine. Nil
// members fall back to the documented defaults.
type Settings struct {
	ReservationFees         *ReservationFeeConfig
	GovernmentFees          *GovernmentFeeConfig
	ConstructionFees        *ConstructionFeeConfig
	FinancingOptions        []FinancingOption
	SpecialRuleInterestRate *float64
}

// DefaultReservationFeeConfig returns the stock reservation fees.
func DefaultReservationFeeConfig() ReservationFeeConfig {
	return ReservationFeeConfig{
		IsActive:   true,
		ModelHouse: constants.DefaultReservationFeeModelHouse,
		LotOnly:    constants.DefaultReservationFeeLotOnly,
	}
}

// DefaultGovernmentFeeConfig returns the stock government fee rule.
func DefaultGovernmentFeeConfig() GovernmentFeeConfig {
	return GovernmentFeeConfig{
		IsActive:             true,
		FixedAmountThreshold: constants.DefaultGovernmentFeeThreshold,
		FixedAmount:          constants.DefaultGovernmentFeeFixedAmount,
		PercentageRate:       constants.DefaultGovernmentFeePercentage,
	}
}

// DefaultConstructionFeeConfig returns the stock construction fee rates.
func DefaultConstructionFeeConfig() ConstructionFeeConfig {
	return ConstructionFeeConfig{
		IsActive:                 true,
		LotFeeRate:               constants.DefaultLotFeeRate,
		HouseConstructionFeeRate: constants.DefaultHouseConstructionFeeRate,
	}
}

// DefaultFinancingOptions returns the stock financing programs.
func DefaultFinancingOptions() []FinancingOption {
	return []FinancingOption{
		{Value: constants.FinancingInHouse, Label: "In-House Financing", InterestRate: constants.DefaultInHouseInterestRate, IsActive: true},
		{Value: constants.FinancingPagIBIG, Label: "Pag-IBIG Housing Loan", InterestRate: constants.DefaultPagIBIGInterestRate, IsActive: true},
		{Value: constants.FinancingBank, Label: "Bank Financing", InterestRate: constants.DefaultBankInterestRate, IsActive: true},
	}
}

// DefaultSettings returns a fully populated Settings.
func DefaultSettings() Settings {
	reservation := DefaultReservationFeeConfig()
	government := DefaultGovernmentFeeConfig()
	construction := DefaultConstructionFeeConfig()
	specialRate := constants.DefaultSpecialRuleInterestRate
	return Settings{
		ReservationFees:         &reservation,
		GovernmentFees:          &government,
		ConstructionFees:        &construction,
		FinancingOptions:        DefaultFinancingOptions(),
		SpecialRuleInterestRate: &specialRate,
	}
}

// PropertyBreakdown is the all-in price of a listing with each fee itemized.
type PropertyBreakdown struct {
	BasePrice              decimal.Decimal  `json:"basePrice" yaml:"basePrice"`
	PropertyType           PropertyType     `json:"propertyType" yaml:"propertyType"`
	LotPrice               *decimal.Decimal `json:"lotPrice,omitempty" yaml:"lotPrice,omitempty"`
	HouseConstructionCost  *decimal.Decimal `json:"houseConstructionCost,omitempty" yaml:"houseConstructionCost,omitempty"`
	LotFees                *decimal.Decimal `json:"lotFees,omitempty" yaml:"lotFees,omitempty"`
	ConstructionFees       *decimal.Decimal `json:"constructionFees,omitempty" yaml:"constructionFees,omitempty"`
	ReservationFee         decimal.Decimal  `json:"reservationFee" yaml:"reservationFee"`
	GovernmentFeesAndTaxes decimal.Decimal  `json:"governmentFeesAndTaxes" yaml:"governmentFeesAndTaxes"`
	TotalAllInPrice        decimal.Decimal  `json:"totalAllInPrice" yaml:"totalAllInPrice"`
}

// DownPaymentScheduleRow is one month of the 24-month down payment.
// InterestRate is the annual percentage applied that month.
type DownPaymentScheduleRow struct {
	Month          int             `json:"month" yaml:"month"`
	Payment        decimal.Decimal `json:"payment" yaml:"payment"`
	Principal      decimal.Decimal `json:"principal" yaml:"principal"`
	Interest       decimal.Decimal `json:"interest" yaml:"interest"`
	InterestRate   decimal.Decimal `json:"interestRate" yaml:"interestRate"`
	IsFirstYear    bool            `json:"isFirstYear" yaml:"isFirstYear"`
	CumulativePaid decimal.Decimal `json:"cumulativePaid" yaml:"cumulativePaid"`
	Balance        decimal.Decimal `json:"balance" yaml:"balance"`
}

// DownPaymentSchedule is the generated down payment plan.
type DownPaymentSchedule struct {
	Principal          decimal.Decimal          `json:"principal" yaml:"principal"`
	MonthlyAmountYear1 decimal.Decimal          `json:"monthlyAmountYear1" yaml:"monthlyAmountYear1"`
	TotalInterest      decimal.Decimal          `json:"totalInterest" yaml:"totalInterest"`
	Schedule           []DownPaymentScheduleRow `json:"schedule" yaml:"schedule"`
}

// LoanAmortizationScheduleRow holds the values for a given loan payment.
type LoanAmortizationScheduleRow struct {
	Month     int             `json:"month" yaml:"month"`
	Principal decimal.Decimal `json:"principal" yaml:"principal"`
	Interest  decimal.Decimal `json:"interest" yaml:"interest"`
	Payment   decimal.Decimal `json:"payment" yaml:"payment"`
	Balance   decimal.Decimal `json:"balance" yaml:"balance"`
}

// LoanAmortization summarizes the financed remainder after the down payment.
type LoanAmortization struct {
	LoanAmount     decimal.Decimal               `json:"loanAmount" yaml:"loanAmount"`
	InterestRate   decimal.Decimal               `json:"interestRate" yaml:"interestRate"`
	MonthlyPayment decimal.Decimal               `json:"monthlyPayment" yaml:"monthlyPayment"`
	TotalPayment   decimal.Decimal               `json:"totalPayment" yaml:"totalPayment"`
	TotalInterest  decimal.Decimal               `json:"totalInterest" yaml:"totalInterest"`
	Schedule       []LoanAmortizationScheduleRow `json:"schedule" yaml:"schedule"`
}

// LoanCalculationResult is the complete output of one calculation.
type LoanCalculationResult struct {
	PropertyBreakdown        PropertyBreakdown        `json:"propertyBreakdown" yaml:"propertyBreakdown"`
	FinancingOption          FinancingOption          `json:"financingOption" yaml:"financingOption"`
	PaymentTermYears         int                      `json:"paymentTermYears" yaml:"paymentTermYears"`
	TotalDownPayment         decimal.Decimal          `json:"totalDownPayment" yaml:"totalDownPayment"`
	DownPaymentMonthlyAmount decimal.Decimal          `json:"downPaymentMonthlyAmount" yaml:"downPaymentMonthlyAmount"`
	DownPaymentInterest      decimal.Decimal          `json:"downPaymentInterest" yaml:"downPaymentInterest"`
	DownPaymentSchedule      []DownPaymentScheduleRow `json:"downPaymentSchedule" yaml:"downPaymentSchedule"`
	NetLoanAmount            decimal.Decimal          `json:"netLoanAmount" yaml:"netLoanAmount"`
	LoanAmortization         LoanAmortization         `json:"loanAmortization" yaml:"loanAmortization"`
	TotalProjectCost         decimal.Decimal          `json:"totalProjectCost" yaml:"totalProjectCost"`
}

// YearlySummaryRow is twelve monthly rows rolled into one.
type YearlySummaryRow struct {
	Year          int             `json:"year" yaml:"year"`
	Payment       decimal.Decimal `json:"payment" yaml:"payment"`
	Principal     decimal.Decimal `json:"principal" yaml:"principal"`
	Interest      decimal.Decimal `json:"interest" yaml:"interest"`
	EndingBalance decimal.Decimal `json:"endingBalance" yaml:"endingBalance"`
}
