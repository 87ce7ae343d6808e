package entities

import (
	"testing"

	"finfmt/internal/codes"
	"finfmt/internal/money"
	"finfmt/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooksLikeIBAN(t *testing.T) {
	assert.True(t, LooksLikeIBAN("DE89370400440532013000"))
	assert.False(t, LooksLikeIBAN("0001234567"))
}

func TestAccountIdentificationVariant(t *testing.T) {
	acct := FromIdentifier("DE89370400440532013000")
	assert.True(t, acct.IsIBAN())
	assert.Equal(t, "DE89370400440532013000", acct.Identifier())

	other := FromIdentifier("0001234567")
	assert.False(t, other.IsIBAN())
	assert.Equal(t, "0001234567", other.Other())
}

func TestLooksLikeBIC(t *testing.T) {
	assert.True(t, LooksLikeBIC("BANKDEFFAXXX"))
	assert.True(t, LooksLikeBIC("BANKDEFF"))
	assert.False(t, LooksLikeBIC("TOO-SHORT"))
}

func TestPartyValidity(t *testing.T) {
	p := Party{}
	assert.True(t, p.IsEmpty())
	assert.False(t, p.IsValid())

	p2 := NewParty("ACME GmbH")
	assert.True(t, p2.IsValid())
}

func TestRemittanceFromTextSplitsAt140(t *testing.T) {
	long := make([]byte, 300)
	for i := range long {
		long[i] = 'a'
	}
	r := RemittanceFromText(string(long))
	require.Len(t, r.Unstructured, 3)
	assert.Len(t, r.Unstructured[0], 140)
	assert.Len(t, r.Unstructured[1], 140)
	assert.Len(t, r.Unstructured[2], 20)
	assert.Equal(t, string(long), r.FullText())
}

func TestBalanceSigned(t *testing.T) {
	b := Balance{Direction: codes.DirectionDebit, Amount: money.NewFromFloat(10, "EUR")}
	assert.True(t, b.Signed().Amount.IsNegative())
}

type stubRandom struct{}

func (stubRandom) Fill(b []byte) error {
	for i := range b {
		b[i] = byte(i)
	}
	return nil
}

func TestGenerateUETRWellFormed(t *testing.T) {
	uetr, err := GenerateUETR(stubRandom{})
	require.NoError(t, err)
	assert.True(t, IsWellFormedUETR(uetr))
}

func TestGenerateUETRUsesDefaultSource(t *testing.T) {
	uetr, err := GenerateUETR(random.Default)
	require.NoError(t, err)
	assert.True(t, IsWellFormedUETR(uetr))
}

func TestPaymentInstructionControlSum(t *testing.T) {
	pi := PaymentInstruction{
		Transactions: []PaymentTransaction{
			{Amount: money.NewFromFloat(100, "EUR")},
			{Amount: money.NewFromFloat(50, "EUR")},
		},
	}
	sum, err := pi.ControlSum()
	require.NoError(t, err)
	assert.Equal(t, "150.00", sum.StringFixed(2))
}
