// Package currencyutils provides common currency and decimal operations used throughout the application.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseAmount parses a string representation of an amount into a decimal value
// It handles various formats like "1,234.56", "1.234,56", "1234.56", "1234,56"
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	// Return zero for empty strings
	if amountStr == "" {
		return decimal.Zero, nil
	}

	// Standardize the amount string (remove currency symbols, extra spaces, etc.)
	standardized := StandardizeAmount(amountStr)

	// Parse the standardized string
	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various currency string formats to a standard format that can be parsed by decimal.NewFromString
// Handles patterns like "CHF 1'234.56", "€1.234,56", "$1,234.56", "1 234,56", etc.
func StandardizeAmount(amountStr string) string {
	// Remove all currency symbols and extra whitespace
	re := regexp.MustCompile(`[€$£¥₣₤₧₹₺₽₩฿₫₲₴₸₼₪CHF\s]`)
	amountStr = re.ReplaceAllString(amountStr, "")

	// Handle European format (1.234,56) -> (1234.56)
	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma thousand separators (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		// If only comma is present as decimal separator (1234,56) or thousand separator (1,234)
		// Determine if the comma is used as a decimal separator or thousand separator
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			// Comma used as decimal separator (1234,56)
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Comma used as thousand separator (1,234)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Remove apostrophes used as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// ParseMT parses a SWIFT MT wire amount, where the comma is always the
// decimal separator and there is no thousands separator (e.g. "1234,56"
// or "1234,"). Unlike ParseAmount it rejects anything that doesn't match
// this strict wire profile, since a misdetected separator in a money
// amount is a silent corruption, not a formatting quirk to normalize away.
func ParseMT(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, fmt.Errorf("empty MT amount")
	}
	if strings.Count(amountStr, ",") != 1 || strings.Trim(amountStr, "0123456789,") != "" {
		return decimal.Zero, fmt.Errorf("MT amount %q is not in comma-decimal wire form", amountStr)
	}
	normalized := strings.Replace(amountStr, ",", ".", 1)
	if strings.HasSuffix(normalized, ".") {
		normalized += "0"
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse MT amount %q: %w", amountStr, err)
	}
	return amount, nil
}

// FormatMT renders amount as a SWIFT MT wire amount: comma decimal
// separator, no thousands separator, e.g. "1234,56".
func FormatMT(amount decimal.Decimal) string {
	return strings.Replace(amount.Abs().StringFixed(2), ".", ",", 1)
}
