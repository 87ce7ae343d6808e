package codes

import "regexp"

var currencyShape = regexp.MustCompile(`^[A-Z]{3}$`)

// currencyDescriptions is not an exhaustive ISO-4217 table (that belongs
// in a generated data file a full product would ship); it covers the
// currencies this module's fixtures and the SEPA/DATEV domain actually
// use, with a structural fallback for anything else well-formed.
var currencyDescriptions = map[string]string{
	"EUR": "Euro",
	"CHF": "Swiss Franc",
	"USD": "US Dollar",
	"GBP": "Pound Sterling",
	"SEK": "Swedish Krona",
	"NOK": "Norwegian Krone",
	"DKK": "Danish Krone",
	"PLN": "Polish Zloty",
	"JPY": "Japanese Yen",
}

// IsValidCurrency reports whether code is a structurally well-formed
// ISO-4217 alphabetic currency code (three uppercase letters). This is a
// shape check, not a membership check against the full ISO list.
func IsValidCurrency(code string) bool {
	return currencyShape.MatchString(code)
}

// CurrencyDescription returns the human-readable name for a known
// currency code, and false if the code is not in this module's table
// (it may still be a valid ISO-4217 code IsValidCurrency accepts).
func CurrencyDescription(code string) (string, bool) {
	desc, ok := currencyDescriptions[code]
	return desc, ok
}

// IsZeroDecimalCurrency reports whether code conventionally has zero
// minor units (e.g. JPY). None of this module's fixtures exercise one,
// but the generator's fixed-two-fraction-digit rule is SEPA/EUR specific
// and this predicate documents the boundary explicitly.
func IsZeroDecimalCurrency(code string) bool {
	switch code {
	case "JPY":
		return true
	default:
		return false
	}
}
