// Package money provides the decimal-backed monetary value type shared by
// every entity and document in this module. Amounts are never represented
// as float64 internally; shopspring/decimal gives exact base-10 arithmetic,
// which both SWIFT MT amounts (comma-decimal) and ISO 20022 amounts
// (dot-decimal, up to 5 fraction digits) require.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount paired with its ISO 4217 currency code.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// New creates a Money value from a decimal.Decimal.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewFromFloat creates a Money value from a float64. Prefer NewFromString
// wherever the amount originates from wire text, since floats can lose
// precision on the fractional digits SWIFT/ISO 20022 amounts carry.
func NewFromFloat(amount float64, currency string) Money {
	return Money{Amount: decimal.NewFromFloat(amount), Currency: currency}
}

// NewFromString parses a dot-decimal string amount (the normalized form
// used internally; wire-format comma decimals are translated before
// reaching this constructor).
func NewFromString(amount, currency string) (Money, error) {
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string %q: %w", amount, err)
	}
	return Money{Amount: dec, Currency: currency}, nil
}

// Zero returns a zero-valued Money in the given currency.
func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

func (m Money) IsZero() bool     { return m.Amount.IsZero() }
func (m Money) IsPositive() bool { return m.Amount.IsPositive() }
func (m Money) IsNegative() bool { return m.Amount.IsNegative() }

// Abs returns the absolute value, keeping the currency.
func (m Money) Abs() Money { return Money{Amount: m.Amount.Abs(), Currency: m.Currency} }

// Neg returns the negated amount, keeping the currency.
func (m Money) Neg() Money { return Money{Amount: m.Amount.Neg(), Currency: m.Currency} }

// Signed returns the amount signed according to a SWIFT/ISO credit-debit
// mark: negative for debit, unchanged (positive) for credit. Used by the
// balance reconciliation invariant (closing = opening + sum(signed entries)).
func (m Money) Signed(debit bool) decimal.Decimal {
	if debit {
		return m.Amount.Neg()
	}
	return m.Amount
}

// Add adds two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}, nil
}

// Sub subtracts two Money values of the same currency.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot subtract different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}, nil
}

// Mul scales the amount by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(factor), Currency: m.Currency}
}

// String renders the amount fixed to two decimal places, suffixed with the
// currency code (display only; wire encoding lives in mtgen/iso20022gen).
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
}

// StringFixed renders the amount with the given number of fraction digits.
func (m Money) StringFixed(places int32) string {
	return m.Amount.StringFixed(places)
}

// Equal reports whether two Money values hold the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

// Compare orders two Money values of the same currency: -1, 0, or 1.
func (m Money) Compare(other Money) (int, error) {
	if m.Currency != other.Currency {
		return 0, fmt.Errorf("cannot compare different currencies: %s and %s", m.Currency, other.Currency)
	}
	return m.Amount.Cmp(other.Amount), nil
}

// WithinTolerance reports whether two amounts of the same currency differ
// by no more than tolerance, an absolute amount in the currency's major
// unit (e.g. 0.01 for one cent), per the balance reconciliation property.
func (m Money) WithinTolerance(other Money, tolerance decimal.Decimal) bool {
	if m.Currency != other.Currency {
		return false
	}
	return m.Amount.Sub(other.Amount).Abs().LessThanOrEqual(tolerance)
}
