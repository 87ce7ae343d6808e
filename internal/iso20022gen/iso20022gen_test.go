package iso20022gen

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

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestGeneratePaymentInitiationPain001(t *testing.T) {
	doc := documents.PaymentInitiationDocument{
		Header: entities.GroupHeader{
			MessageID:            "MSG001",
			CreationDateTime:     time.Date(2025, 1, 8, 10, 30, 0, 0, time.UTC),
			NumberOfTransactions: 2,
			ControlSum:           money.Money{Amount: mustAmount(t, "150.00"), Currency: "EUR"},
			InitiatingParty:      entities.NewParty("Acme Corp"),
		},
		Instructions: []entities.PaymentInstruction{
			{
				PaymentInformationID:   "PMTINF1",
				PaymentMethod:          "TRF",
				RequestedExecutionDate: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
				ChargeBearer:           "SLEV",
				Debtor:                 entities.NewParty("Acme Corp"),
				DebtorAccount:          entities.NewIBANAccount("DE89370400440532013000"),
				DebtorAgent:            entities.FinancialInstitutionIdentification{BIC: "COBADEFFXXX"},
				Transactions: []entities.PaymentTransaction{
					{
						PaymentID:       entities.PaymentIdentification{EndToEndID: "E2E1"},
						Amount:          money.Money{Amount: mustAmount(t, "100.00"), Currency: "EUR"},
						Creditor:        entities.NewParty("Supplier One"),
						CreditorAccount: entities.NewIBANAccount("FR1420041010050500013M02606"),
					},
					{
						PaymentID:       entities.PaymentIdentification{EndToEndID: "E2E2"},
						Amount:          money.Money{Amount: mustAmount(t, "50.00"), Currency: "EUR"},
						Creditor:        entities.NewParty("Supplier Two"),
						CreditorAccount: entities.NewIBANAccount("FR1420041010050500013M02607"),
					},
				},
			},
		},
	}

	out, err := PaymentGenerator{TypeCode: "001", Version: "12"}.GeneratePayment(doc)
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "urn:iso:std:iso:20022:tech:xsd:pain.001.001.12"))
	assert.True(t, strings.Contains(out, "<CstmrCdtTrfInitn>"))
	assert.True(t, strings.Contains(out, "<MsgId>MSG001</MsgId>"))
	assert.True(t, strings.Contains(out, "<NbOfTxs>2</NbOfTxs>"))
	assert.True(t, strings.Contains(out, "<CtrlSum>150.00</CtrlSum>"))
	assert.True(t, strings.Contains(out, `<InstdAmt Ccy="EUR">100.00</InstdAmt>`))
	assert.True(t, strings.Contains(out, "<IBAN>FR1420041010050500013M02606</IBAN>"))
}

func TestGenerateStatementCamt053IBANAndOther(t *testing.T) {
	doc := documents.StatementDocument{
		MessageID:        "MSG001",
		CreationDateTime: time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC),
		Account:          entities.NewIBANAccount("DE89370400440532013000"),
		Currency:         "EUR",
		OpeningBalance: entities.Balance{
			Direction: codes.DirectionCredit,
			Date:      time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Amount:    money.Money{Amount: mustAmount(t, "1000.00"), Currency: "EUR"},
		},
		ClosingBalance: entities.Balance{
			Direction: codes.DirectionCredit,
			Date:      time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			Amount:    money.Money{Amount: mustAmount(t, "1039.42"), Currency: "EUR"},
		},
		Entries: []entities.Entry{
			{
				Amount:             money.Money{Amount: mustAmount(t, "39.42"), Currency: "EUR"},
				BookingDate:        time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
				ValueDate:          time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
				AccountServicerRef: "BREF1",
				EndToEndID:         "NONREF",
				Debtor:             entities.NewParty("Acme Corp"),
				Remittance:         entities.RemittanceInformation{Unstructured: []string{"Rechnung 123"}},
			},
		},
	}

	out, err := StatementGenerator{TypeCode: "053"}.GenerateStatement(doc)
	require.NoError(t, err)

	assert.True(t, strings.Contains(out, "<BkToCstmrStmt>"))
	assert.True(t, strings.Contains(out, "<IBAN>DE89370400440532013000</IBAN>"))
	assert.True(t, strings.Contains(out, "<Ustrd>Rechnung 123</Ustrd>"))

	other := documents.StatementDocument{
		MessageID: "MSG002",
		Account:   entities.NewOtherAccount("12345678/9876543210", ""),
		Currency:  "EUR",
	}
	outOther, err := StatementGenerator{TypeCode: "053"}.GenerateStatement(other)
	require.NoError(t, err)
	assert.True(t, strings.Contains(outOther, "<Othr>"))
	assert.True(t, strings.Contains(outOther, "<Id>12345678/9876543210</Id>"))
}
