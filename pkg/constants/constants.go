// Package constants provides shared constants for the homeloan-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the number of places currency values are rounded to
	DecimalPlaces = 2

	// RateDecimalPlaces is the number of places kept for periodic rates and
	// compound growth factors
	RateDecimalPlaces = 34

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Down payment constants
const (
	// DownPaymentPercent is the share of the all-in price paid as down payment
	DownPaymentPercent = 20.0

	// DownPaymentMonths is the length of the down payment schedule
	DownPaymentMonths = 24

	// InterestFreeMonths is the number of leading down payment months that
	// accrue no interest under the special rule
	InterestFreeMonths = 12
)

// Payment term constants
const (
	// MinTermYears is the shortest supported loan term
	MinTermYears = 5

	// MaxTermYears is the longest supported loan term
	MaxTermYears = 30

	// TermStepYears is the spacing between the terms offered to buyers
	TermStepYears = 5
)

// SupportedTermYears lists the loan terms offered to buyers.
var SupportedTermYears = []int{5, 10, 15, 20, 25, 30}

// Property types
const (
	// PropertyTypeModelHouse is a house-and-lot unit built from a model house
	PropertyTypeModelHouse = "model-house"

	// PropertyTypeLotOnly is a lot sold without a house
	PropertyTypeLotOnly = "lot-only"
)

// Default pricing settings
const (
	DefaultReservationFeeModelHouse = 25000.0
	DefaultReservationFeeLotOnly    = 10000.0

	DefaultGovernmentFeeThreshold   = 1000000.0
	DefaultGovernmentFeeFixedAmount = 205000.0
	DefaultGovernmentFeePercentage  = 20.5

	DefaultLotFeeRate               = 8.5
	DefaultHouseConstructionFeeRate = 8.5

	// DefaultSpecialRuleInterestRate is the annual rate charged on the
	// second year of the down payment schedule
	DefaultSpecialRuleInterestRate = 8.5
)

// Default financing options
const (
	FinancingInHouse = "in-house"
	FinancingPagIBIG = "pag-ibig"
	FinancingBank    = "bank"

	DefaultInHouseInterestRate = 12.0
	DefaultPagIBIGInterestRate = 6.25
	DefaultBankInterestRate    = 7.5
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"

	// OutputFormatHTML is the print-ready HTML output format
	OutputFormatHTML = "html"
)

// OutputFormats lists every supported output format.
var OutputFormats = []string{
	OutputFormatPretty,
	OutputFormatCSV,
	OutputFormatJSON,
	OutputFormatYAML,
	OutputFormatHTML,
}

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "HOMELOAN"
)
