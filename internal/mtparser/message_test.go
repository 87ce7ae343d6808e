package mtparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finfmt/internal/mtgen"
)

const sampleMT940 = "{1:F01BANKDEFFAXXX0000000000}{2:O9400000000000BANKDEFFAXXX00000000000000000000N}{3:{108:STMT001}}{4:\r\n:20:STMT001\r\n:25:DE89370400440532013000\r\n:28C:1/1\r\n:60F:C230101EUR1000,00\r\n:61:2301010101C100,00NTRFNONREF//BANKREF1\r\n:86:166?20EREF+E2E123?21SVWZ+Invoice 42\r\n:62F:C230102EUR1100,00\r\n-}{5:{CHK:123456789ABC}}"

func TestParseStatementAssemblesFullDocument(t *testing.T) {
	doc, err := ParseStatement(sampleMT940, 2023)
	require.NoError(t, err)

	assert.Equal(t, "STMT001", doc.MessageID)
	assert.True(t, doc.Account.IsIBAN())
	assert.Equal(t, "DE89370400440532013000", doc.Account.IBAN())
	assert.Equal(t, "EUR", doc.Currency)
	assert.True(t, doc.OpeningBalance.Amount.Amount.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, doc.ClosingBalance.Amount.Amount.Equal(decimal.RequireFromString("1100.00")))

	require.Len(t, doc.Transactions, 1)
	tx := doc.Transactions[0]
	assert.Equal(t, "NONREF", tx.Reference)
	assert.Equal(t, "BANKREF1", tx.AccountServicerRef)
	require.True(t, tx.Remittance.IsStructured())
	v, ok := tx.Remittance.Field("EREF")
	require.True(t, ok)
	assert.Equal(t, "E2E123", v)
}

func TestParseStatementRejectsUnbalancedBraces(t *testing.T) {
	_, err := ParseStatement("{1:F01BANKDEFFAXXX0000000000", 2023)
	assert.Error(t, err)
}

func TestGVCCodedRemittanceRoundTripsThroughBothVariants(t *testing.T) {
	doc, err := ParseStatement(sampleMT940, 2023)
	require.NoError(t, err)
	require.Len(t, doc.Transactions, 1)
	require.Equal(t, "166", doc.Transactions[0].Remittance.GVCCode)

	swiftOut, err := mtgen.StatementGenerator{Variant: mtgen.VariantMT940}.GenerateStatement(doc)
	require.NoError(t, err)
	assert.Contains(t, swiftOut, "166?20EREF+E2E123?21SVWZ+Invoice 42")

	datevOut, err := mtgen.StatementGenerator{Variant: mtgen.VariantMT940, SepaRaw: true}.GenerateStatement(doc)
	require.NoError(t, err)
	assert.Contains(t, datevOut, "166EREF+E2E123SVWZ+Invoice 42")
}

const sampleMT103 = "{1:F01BANKDEFFAXXX0000000000}{2:I103BANKFRPPXXXXN}{4:\r\n:20:FT21001\r\n:23B:CRED\r\n:32A:230102EUR1500,00\r\n:50K:/DE89370400440532013000\r\nACME GmbH\r\nMusterstr 1\r\n12345 Berlin\r\n:52A:BANKDEFFXXX\r\n:53B:CORRDEFFXXX\r\n:56A:INTMFRPPXXX\r\n:57A:ACWIFRPPXXX\r\n:59:/FR1420041010050500013M02606\r\nContoso SARL\r\n:70:Invoice 42\r\n:71A:OUR\r\n-}"

func TestParseMT103DecodesAllFields(t *testing.T) {
	p, err := ParseMT103(sampleMT103)
	require.NoError(t, err)

	assert.Equal(t, "FT21001", p.SenderReference)
	assert.Equal(t, "CRED", p.OperationCode)
	assert.Equal(t, "EUR", p.Amount.Currency)
	assert.True(t, p.Amount.Amount.Equal(decimal.RequireFromString("1500.00")))
	assert.Equal(t, "ACME GmbH", p.OrderingCustomer.Name)
	assert.Equal(t, "DE89370400440532013000", p.OrderingAccount.IBAN())
	assert.Equal(t, "BANKDEFFXXX", p.OrderingInstitution.BIC)
	assert.Equal(t, "CORRDEFFXXX", p.SendersCorrespondent.BIC)
	assert.Equal(t, "INTMFRPPXXX", p.IntermediaryInstitution.BIC)
	assert.Equal(t, "ACWIFRPPXXX", p.AccountWithInstitution.BIC)
	assert.Equal(t, "Contoso SARL", p.Beneficiary.Name)
	assert.Equal(t, "FR1420041010050500013M02606", p.BeneficiaryAccount.IBAN())
	assert.Equal(t, "Invoice 42", p.Remittance)
	assert.Equal(t, "OUR", p.Charges)
}

func TestGenerateMT103RoundTripsInstitutionLegs(t *testing.T) {
	p, err := ParseMT103(sampleMT103)
	require.NoError(t, err)

	out, err := mtgen.GenerateMT103(p)
	require.NoError(t, err)
	assert.Contains(t, out, ":52A:BANKDEFFXXX")
	assert.Contains(t, out, ":53A:CORRDEFFXXX")
	assert.Contains(t, out, ":56A:INTMFRPPXXX")
	assert.Contains(t, out, ":57A:ACWIFRPPXXX")
}
