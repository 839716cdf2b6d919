package config

import (
	"fmt"

	"github.com/iwvelando/homeloan-calculator/pkg/validation"
)

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	warnings = append(warnings, validation.ValidateFinancingOptions(c.Settings.FinancingOptions)...)
	warnings = append(warnings, validation.ValidateGovernmentFees(c.Settings.GovernmentFees)...)
	warnings = append(warnings, validation.ValidateSpecialRuleRate(c.Settings.SpecialRuleInterestRate)...)

	if len(c.Settings.FinancingOptions) == 0 {
		warnings = append(warnings, "No financing options configured - using the default in-house, pag-ibig and bank options")
	}

	reservation := c.Settings.ReservationFees
	if reservation.IsActive && (reservation.ModelHouse < 0 || reservation.LotOnly < 0) {
		warnings = append(warnings, "Reservation fees must not be negative")
	}

	construction := c.Settings.ConstructionFees
	if construction.IsActive && (construction.LotFeeRate < 0 || construction.HouseConstructionFeeRate < 0) {
		warnings = append(warnings, "Construction fee rates must not be negative")
	}

	if c.Logging.Level != "" {
		if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
			warnings = append(warnings, fmt.Sprintf("Logging level rejected: %v", err))
		}
	}
	if c.Logging.Format != "" {
		if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("Logging format rejected: %v", err))
		}
	}

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("Output format ignored: %v", err))
		}
	}

	return warnings
}
