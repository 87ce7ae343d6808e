package documents

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finfmt/internal/codes"
	"finfmt/internal/entities"
	"finfmt/internal/money"
)

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestStatementControlSumAndReconciliation(t *testing.T) {
	doc := StatementDocument{
		Currency: "EUR",
		OpeningBalance: entities.Balance{
			Type:      entities.BalanceOpening,
			Direction: codes.DirectionCredit,
			Amount:    money.Money{Amount: mustAmount(t, "100.00"), Currency: "EUR"},
		},
		ClosingBalance: entities.Balance{
			Type:      entities.BalanceClosing,
			Direction: codes.DirectionCredit,
			Amount:    money.Money{Amount: mustAmount(t, "139.42"), Currency: "EUR"},
		},
		Transactions: []entities.Transaction{
			{
				Direction: codes.DirectionCredit,
				Amount:    money.Money{Amount: mustAmount(t, "39.42"), Currency: "EUR"},
			},
		},
	}

	assert.Equal(t, 1, doc.CountTransactions())
	sum, err := doc.CalculateControlSum()
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(mustAmount(t, "39.42")))

	errs := doc.Validate()
	assert.False(t, errs.HasErrors(), "expected no reconciliation errors, got %v", errs.Errors)
}

func TestStatementValidateDetectsBrokenReconciliation(t *testing.T) {
	doc := StatementDocument{
		Currency: "EUR",
		OpeningBalance: entities.Balance{
			Amount: money.Money{Amount: mustAmount(t, "100.00"), Currency: "EUR"},
		},
		ClosingBalance: entities.Balance{
			Amount: money.Money{Amount: mustAmount(t, "999.99"), Currency: "EUR"},
		},
		Transactions: []entities.Transaction{
			{Direction: codes.DirectionCredit, Amount: money.Money{Amount: mustAmount(t, "39.42"), Currency: "EUR"}},
		},
	}
	errs := doc.Validate()
	assert.True(t, errs.HasErrors())
}

func TestStatementDeriveMissingBalance(t *testing.T) {
	doc := StatementDocument{
		Currency: "EUR",
		OpeningBalance: entities.Balance{
			Direction: codes.DirectionCredit,
			Date:      time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Amount:    money.Money{Amount: mustAmount(t, "100.00"), Currency: "EUR"},
		},
		Transactions: []entities.Transaction{
			{Direction: codes.DirectionCredit, Amount: money.Money{Amount: mustAmount(t, "39.42"), Currency: "EUR"}},
		},
	}
	derived, err := doc.DeriveMissingBalance()
	require.NoError(t, err)
	assert.True(t, derived.ClosingBalance.Amount.Amount.Equal(mustAmount(t, "139.42")))
}

func TestStatementHasRejectionsFromEntries(t *testing.T) {
	doc := StatementDocument{
		Entries: []entities.Entry{
			{Direction: codes.DirectionDebit, IsReversal: true},
		},
	}
	assert.True(t, doc.HasRejections())
	assert.False(t, doc.IsFullyAccepted())
}

func TestPaymentInitiationControlSumInvariant(t *testing.T) {
	tx := entities.PaymentTransaction{
		Amount: money.Money{Amount: mustAmount(t, "250.00"), Currency: "EUR"},
	}
	doc := PaymentInitiationDocument{
		Header: entities.GroupHeader{
			NumberOfTransactions: 1,
			ControlSum:           money.Money{Amount: mustAmount(t, "250.00"), Currency: "EUR"},
		},
		Instructions: []entities.PaymentInstruction{
			{Transactions: []entities.PaymentTransaction{tx}},
		},
	}
	assert.Equal(t, 1, doc.CountTransactions())
	errs := doc.Validate()
	assert.False(t, errs.HasErrors(), "expected no control-sum errors, got %v", errs.Errors)
}

func TestPaymentInitiationControlSumMismatch(t *testing.T) {
	doc := PaymentInitiationDocument{
		Header: entities.GroupHeader{
			NumberOfTransactions: 2,
			ControlSum:           money.Money{Amount: mustAmount(t, "250.00"), Currency: "EUR"},
		},
		Instructions: []entities.PaymentInstruction{
			{Transactions: []entities.PaymentTransaction{
				{Amount: money.Money{Amount: mustAmount(t, "250.00"), Currency: "EUR"}},
			}},
		},
	}
	errs := doc.Validate()
	assert.True(t, errs.HasErrors())
}

func TestStatusReportRejectionDetection(t *testing.T) {
	doc := StatusReportDocument{
		OriginalNbOfTxs: 2,
		TransactionStatuses: []TransactionStatus{
			{Status: "ACSC"},
			{Status: "RJCT", ReasonCode: "AC04"},
		},
	}
	assert.True(t, doc.HasRejections())
	assert.False(t, doc.IsFullyAccepted())
	assert.False(t, doc.Validate().HasErrors())
}
