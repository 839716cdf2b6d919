package validation

import (
	"fmt"

	"github.com/iwvelando/homeloan-calculator/pkg/loans"
	"github.com/iwvelando/homeloan-calculator/pkg/mathutil"
)

// ValidateFinancingOptions reports options that a buyer could never select or
// that would be rejected by the engine.
func ValidateFinancingOptions(options []loans.FinancingOption) []string {
	var warnings []string

	seen := make(map[string]bool)
	active := 0
	for _, option := range options {
		if option.Value == "" {
			warnings = append(warnings, fmt.Sprintf("Financing option '%s' has no value and cannot be selected", option.Label))
			continue
		}
		if seen[option.Value] {
			warnings = append(warnings, fmt.Sprintf("Financing option '%s' is defined more than once - only the first definition is used", option.Value))
		}
		seen[option.Value] = true

		if !mathutil.IsFinite(option.InterestRate) || option.InterestRate < 0 {
			warnings = append(warnings, fmt.Sprintf("Financing option '%s' has invalid interest rate %v", option.Value, option.InterestRate))
		}
		if option.IsActive {
			active++
		}
	}

	if len(options) > 0 && active == 0 {
		warnings = append(warnings, "No financing option is active - every loan calculation will be rejected")
	}

	return warnings
}

// ValidateGovernmentFees warns when the two tiers of the government fee rule
// do not meet at the threshold, so a slightly cheaper property could pay more.
func ValidateGovernmentFees(cfg loans.GovernmentFeeConfig) []string {
	if !cfg.IsActive {
		return nil
	}

	var warnings []string
	if cfg.FixedAmountThreshold < 0 || cfg.FixedAmount < 0 || cfg.PercentageRate < 0 {
		warnings = append(warnings, "Government fee parameters must not be negative")
		return warnings
	}

	belowThreshold := cfg.FixedAmountThreshold * cfg.PercentageRate / 100
	if belowThreshold > cfg.FixedAmount {
		warnings = append(warnings, fmt.Sprintf(
			"Government fees drop at the threshold (%.2f%% of %.2f = %.2f > fixed %.2f) - properties just below the threshold pay more",
			cfg.PercentageRate, cfg.FixedAmountThreshold, belowThreshold, cfg.FixedAmount))
	}
	return warnings
}

// ValidateSpecialRuleRate flags special rule rates that the engine will reject
// or that look like a fraction entered instead of a percentage.
func ValidateSpecialRuleRate(rate float64) []string {
	switch {
	case !mathutil.IsFinite(rate) || rate < 0:
		return []string{fmt.Sprintf("Special rule interest rate %v is invalid", rate)}
	case rate > 0 && rate < 1:
		return []string{fmt.Sprintf("Special rule interest rate %v is below 1%% - rates are percentages, not fractions", rate)}
	}
	return nil
}
