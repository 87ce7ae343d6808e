package mtgen

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finfmt/internal/codes"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/money"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestGenerateStatementMT940(t *testing.T) {
	doc := documents.StatementDocument{
		MessageID: "STARTUMS",
		Account:   entities.NewOtherAccount("12345678/9876543210", ""),
		Currency:  "EUR",
		OpeningBalance: entities.Balance{
			Direction: codes.DirectionCredit,
			Date:      time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Amount:    money.Money{Amount: amount(t, "1000.00"), Currency: "EUR"},
		},
		ClosingBalance: entities.Balance{
			Direction: codes.DirectionCredit,
			Date:      time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Amount:    money.Money{Amount: amount(t, "1039.42"), Currency: "EUR"},
		},
		Transactions: []entities.Transaction{
			{
				Direction:          codes.DirectionCredit,
				ValueDate:          time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
				Amount:             money.Money{Amount: amount(t, "39.42"), Currency: "EUR"},
				TransactionCode:    "NTRF",
				Reference:          "NONREF",
				AccountServicerRef: "BREF1",
			},
		},
	}

	out, err := StatementGenerator{Variant: VariantMT940}.GenerateStatement(doc)
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, ":20:STARTUMS\r\n"))
	assert.True(t, strings.Contains(out, ":25:12345678/9876543210\r\n"))
	assert.True(t, strings.Contains(out, ":60F:C250108EUR1000,00\r\n"))
	assert.True(t, strings.Contains(out, ":61:250108C39,42NTRFNONREF//BREF1\r\n"))
	assert.True(t, strings.Contains(out, ":62F:C250108EUR1039,42\r\n"))
	assert.True(t, strings.HasSuffix(out, "-"))
}

func TestGenerateMT942EmitsSummaryLines(t *testing.T) {
	doc := documents.StatementDocument{
		MessageID: "MSG1",
		Currency:  "EUR",
		Transactions: []entities.Transaction{
			{Direction: codes.DirectionCredit, ValueDate: time.Now(), Amount: money.Money{Amount: amount(t, "10.00"), Currency: "EUR"}},
			{Direction: codes.DirectionDebit, ValueDate: time.Now(), Amount: money.Money{Amount: amount(t, "5.00"), Currency: "EUR"}},
		},
	}
	out, err := StatementGenerator{Variant: VariantMT942}.GenerateStatement(doc)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, ":90D:1EUR5,00"))
	assert.True(t, strings.Contains(out, ":90C:1EUR10,00"))
}

func TestGenerateMT103Minimal(t *testing.T) {
	out, err := GenerateMT103(MT103Params{
		SenderReference:    "REF1",
		ValueDate:          time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC),
		Amount:             money.Money{Amount: amount(t, "39.42"), Currency: "EUR"},
		OrderingCustomer:   entities.NewParty("Jane Merchant"),
		OrderingAccount:    entities.NewOtherAccount("000000041000045", ""),
		Beneficiary:        entities.NewParty("Acme Corp"),
		BeneficiaryAccount: entities.NewOtherAccount("112345679", ""),
		OperationCode:      "CRED",
		Charges:            "OUR",
		Remittance:         "TR-PGTD0N",
	})
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, ":20:REF1\r\n"))
	assert.True(t, strings.Contains(out, ":23B:CRED\r\n"))
	assert.True(t, strings.Contains(out, ":32A:250512EUR39,42\r\n"))
	assert.True(t, strings.Contains(out, ":70:TR-PGTD0N\r\n"))
	assert.True(t, strings.Contains(out, ":71A:OUR\r\n"))
}

func TestEncodeSepaSegmentsPacksSubTagsForSwiftVariant(t *testing.T) {
	r := entities.RemittanceInformation{
		GVCCode:    "166",
		Structured: map[string]string{"EREF": "E2E123", "SVWZ": "Invoice 42"},
	}

	swift := encodeSepaSegments(r, false)
	assert.Equal(t, "166?20EREF+E2E123?21SVWZ+Invoice 42", swift)

	raw := encodeSepaSegments(r, true)
	assert.Equal(t, "166EREF+E2E123SVWZ+Invoice 42", raw)
}

func TestEncodeSepaSegmentsDefaultsGVCCodeWhenAbsent(t *testing.T) {
	r := entities.RemittanceInformation{Structured: map[string]string{"EREF": "E2E123"}}
	assert.Equal(t, "166?20EREF+E2E123", encodeSepaSegments(r, false))
}

func TestTagWrappedRespectsFieldLineLimit(t *testing.T) {
	w := &Writer{}
	err := w.TagWrapped("70", strings.Repeat("A", 78*5))
	assert.Error(t, err)
}
