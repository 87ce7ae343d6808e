package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromString(t *testing.T) {
	m, err := NewFromString("100.50", "CHF")
	require.NoError(t, err)
	assert.Equal(t, "100.50", m.StringFixed(2))
	assert.Equal(t, "CHF", m.Currency)

	_, err = NewFromString("not-a-number", "CHF")
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	a := NewFromFloat(100.50, "CHF")
	b := NewFromFloat(50.25, "CHF")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "150.75", sum.StringFixed(2))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "50.25", diff.StringFixed(2))

	other := NewFromFloat(100, "EUR")
	_, err = a.Add(other)
	assert.Error(t, err)
}

func TestSigned(t *testing.T) {
	m := NewFromFloat(10, "CHF")
	assert.True(t, m.Signed(true).Equal(decimal.NewFromInt(-10)))
	assert.True(t, m.Signed(false).Equal(decimal.NewFromInt(10)))
}

func TestWithinTolerance(t *testing.T) {
	a := NewFromFloat(10.00, "CHF")
	b := NewFromFloat(10.004, "CHF")
	assert.True(t, a.WithinTolerance(b, decimal.NewFromFloat(0.01)))

	c := NewFromFloat(10.02, "CHF")
	assert.False(t, a.WithinTolerance(c, decimal.NewFromFloat(0.01)))
}

func TestCompare(t *testing.T) {
	a := NewFromFloat(100.50, "CHF")
	b := NewFromFloat(50.25, "CHF")
	cmp, err := a.Compare(b)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
}
