package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name       string
		amountStr  string
		expected   decimal.Decimal
		hasError   bool
		skip       bool   // Skip tests that currently fail but could be fixed later
		skipReason string // Reason for skipping
	}{
		{"Empty string", "", decimal.Zero, false, false, ""},
		{"Simple decimal", "123.45", decimal.NewFromFloat(123.45), false, false, ""},
		{"Negative decimal", "-123.45", decimal.NewFromFloat(-123.45), false, false, ""},
		{"Integer", "100", decimal.NewFromInt(100), false, false, ""},
		{"With comma decimal separator", "123,45", decimal.NewFromFloat(123.45), false, false, ""},
		{"With thousand separator (comma)", "1,234.56", decimal.NewFromFloat(1234.56), false, false, ""},
		{"With thousand separator (apostrophe)", "1'234.56", decimal.NewFromFloat(1234.56), false, false, ""},
		{"European format", "1.234,56", decimal.NewFromFloat(1234.56), false, false, ""},
		{"With currency symbol (EUR)", "€123.45", decimal.NewFromFloat(123.45), false, false, ""},
		{"With currency symbol (USD)", "$123.45", decimal.NewFromFloat(123.45), false, false, ""},
		{"With currency code", "CHF 123.45", decimal.NewFromFloat(123.45), false, false, ""},
		{"With spaces", "  123.45  ", decimal.NewFromFloat(123.45), false, false, ""},
		{"With trailing zeros", "123.00", decimal.NewFromFloat(123), false, false, ""},
		{"Malformed decimal", "123.45.67", decimal.Zero, true, false, ""},
		{"Non-numeric", "abc", decimal.Zero, true, false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.skip {
				t.Skip(tc.skipReason)
			}

			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, tc.expected.Equal(result), "Expected %s but got %s", tc.expected.String(), result.String())
			}
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   string
		skip       bool   // Skip tests that currently fail but could be fixed later
		skipReason string // Reason for skipping
	}{
		{"Simple decimal", "123.45", "123.45", false, ""},
		{"Negative decimal", "-123.45", "-123.45", false, ""},
		{"With comma decimal separator", "123,45", "123.45", false, ""},
		{"With thousand separator (comma)", "1,234.56", "1234.56", false, ""},
		{"With thousand separator (apostrophe)", "1'234.56", "1234.56", false, ""},
		{"European format", "1.234,56", "1234.56", false, ""},
		{"With currency symbol (EUR)", "€123.45", "123.45", false, ""},
		{"With currency symbol (USD)", "$123.45", "123.45", false, ""},
		{"With currency code", "CHF 123.45", "123.45", false, ""},
		{"With spaces", "  123.45  ", "123.45", false, ""},
		{"Multiple separators", "1,234,567.89", "1234567.89", false, ""},
		{"European multiple separators", "1.234.567,89", "1234567.89", false, ""},
		{"Comma as thousands separator", "1,234", "1234", false, ""},
		{"Euro symbol and European format", "€1.234,56", "1234.56", false, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.skip {
				t.Skip(tc.skipReason)
			}

			result := StandardizeAmount(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestIsNegative(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		expected bool
	}{
		{"Positive amount", decimal.NewFromFloat(123.45), false},
		{"Negative amount", decimal.NewFromFloat(-123.45), true},
		{"Zero amount", decimal.Zero, false},
		{"Very small negative", decimal.NewFromFloat(-0.01), true},
		{"Very small positive", decimal.NewFromFloat(0.01), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := IsNegative(tc.amount)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestParseMT(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected decimal.Decimal
		hasError bool
	}{
		{"Comma decimal", "1234,56", decimal.NewFromFloat(1234.56), false},
		{"Trailing comma", "1234,", decimal.NewFromInt(1234), false},
		{"Empty string", "", decimal.Zero, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseMT(tc.input)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(result), "expected %s got %s", tc.expected, result)
		})
	}
}

func TestFormatMT(t *testing.T) {
	assert.Equal(t, "1234,56", FormatMT(decimal.NewFromFloat(1234.56)))
	assert.Equal(t, "0,00", FormatMT(decimal.Zero))
}
