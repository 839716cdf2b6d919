package validation

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name      string
		format    string
		expectErr bool
	}{
		{
			name:      "Valid pretty format",
			format:    "pretty",
			expectErr: false,
		},
		{
			name:      "Valid csv format",
			format:    "csv",
			expectErr: false,
		},
		{
			name:      "Valid json format",
			format:    "json",
			expectErr: false,
		},
		{
			name:      "Valid yaml format",
			format:    "yaml",
			expectErr: false,
		},
		{
			name:      "Valid html format",
			format:    "html",
			expectErr: false,
		},
		{
			name:      "Invalid format",
			format:    "xml",
			expectErr: true,
		},
		{
			name:      "Empty format",
			format:    "",
			expectErr: true,
		},
		{
			name:      "Case sensitive - uppercase",
			format:    "PRETTY",
			expectErr: true,
		},
		{
			name:      "Case sensitive - CSV uppercase",
			format:    "CSV",
			expectErr: true,
		},
		{
			name:      "Leading/trailing spaces",
			format:    " pretty ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.expectErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, expectErr %v", tt.format, err, tt.expectErr)
			}
		})
	}
}

func TestParsePropertyType(t *testing.T) {
	tests := []struct {
		value     string
		expectErr bool
	}{
		{"model-house", false},
		{"lot-only", false},
		{"Model-House", true},
		{"condo", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			propertyType, err := ParsePropertyType(tt.value)
			if (err != nil) != tt.expectErr {
				t.Fatalf("ParsePropertyType(%q) error = %v, expectErr %v", tt.value, err, tt.expectErr)
			}
			if !tt.expectErr && string(propertyType) != tt.value {
				t.Errorf("ParsePropertyType(%q) = %q", tt.value, propertyType)
			}
		})
	}
}

func TestValidateLogSettings(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) error = %v", level, err)
		}
	}
	if err := ValidateLogLevel("trace"); err == nil {
		t.Error("ValidateLogLevel(\"trace\") expected error but got none")
	}

	for _, format := range []string{"console", "json"} {
		if err := ValidateLogFormat(format); err != nil {
			t.Errorf("ValidateLogFormat(%q) error = %v", format, err)
		}
	}
	if err := ValidateLogFormat("logfmt"); err == nil {
		t.Error("ValidateLogFormat(\"logfmt\") expected error but got none")
	}
}
