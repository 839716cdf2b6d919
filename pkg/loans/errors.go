package loans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("configuration error")
)

// InvalidInputError reports a malformed or out-of-range caller input.
type InvalidInputError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConfigurationError reports a settings object that cannot be used, such as
// an unknown financing option.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func invalidInput(field string, value interface{}, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}

func configurationError(field, reason string) error {
	return &ConfigurationError{Field: field, Reason: reason}
}
