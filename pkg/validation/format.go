// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/homeloan-calculator/pkg/constants"
	"github.com/iwvelando/homeloan-calculator/pkg/loans"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, supported := range constants.OutputFormats {
		if format == supported {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, got %s",
		strings.Join(constants.OutputFormats, ", "), format)
}

// ParsePropertyType maps a command-line property type onto the engine type.
func ParsePropertyType(value string) (loans.PropertyType, error) {
	propertyType := loans.PropertyType(value)
	if !propertyType.Valid() {
		return "", fmt.Errorf("expected property type of %s or %s, got %s",
			constants.PropertyTypeModelHouse, constants.PropertyTypeLotOnly, value)
	}
	return propertyType, nil
}

// ValidateLogLevel checks a log level name before it reaches the logger.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}

// ValidateLogFormat checks a log encoder name before it reaches the logger.
func ValidateLogFormat(format string) error {
	switch format {
	case "console", "json":
		return nil
	}
	return fmt.Errorf("invalid log format: %s", format)
}
