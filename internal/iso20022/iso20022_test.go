package iso20022

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finfmt/internal/codes"
)

const sampleCamt053 = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.08">
  <BkToCstmrStmt>
    <GrpHdr>
      <MsgId>MSG001</MsgId>
      <CreDtTm>2025-01-08T10:00:00</CreDtTm>
    </GrpHdr>
    <Stmt>
      <Id>STMT001</Id>
      <ElctrncSeqNb>1</ElctrncSeqNb>
      <Acct>
        <Id><IBAN>DE89370400440532013000</IBAN></Id>
        <Ccy>EUR</Ccy>
        <Ownr><Nm>Jane Merchant</Nm></Ownr>
        <Svcr><FinInstnId><BIC>COBADEFFXXX</BIC></FinInstnId></Svcr>
      </Acct>
      <Bal>
        <Tp><CdOrPrtry><Cd>OPBD</Cd></CdOrPrtry></Tp>
        <Amt Ccy="EUR">1000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt><Dt>2025-01-08</Dt></Dt>
      </Bal>
      <Bal>
        <Tp><CdOrPrtry><Cd>CLBD</Cd></CdOrPrtry></Tp>
        <Amt Ccy="EUR">1039.42</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Dt><Dt>2025-01-08</Dt></Dt>
      </Bal>
      <Ntry>
        <Amt Ccy="EUR">39.42</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <Sts>BOOK</Sts>
        <BookgDt><Dt>2025-01-08</Dt></BookgDt>
        <ValDt><Dt>2025-01-08</Dt></ValDt>
        <AcctSvcrRef>BREF1</AcctSvcrRef>
        <BkTxCd><Domn><Cd>PMNT</Cd><Fmly><Cd>RCDT</Cd><SubFmlyCd>ESCT</SubFmlyCd></Fmly></Domn></BkTxCd>
        <NtryDtls>
          <TxDtls>
            <Refs><EndToEndId>NONREF</EndToEndId></Refs>
            <RltdPties><Dbtr><Nm>Acme Corp</Nm></Dbtr></RltdPties>
            <RmtInf><Ustrd>Rechnung 123</Ustrd></RmtInf>
          </TxDtls>
        </NtryDtls>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

func TestReadStatementCamt053(t *testing.T) {
	doc, err := ReadStatement(sampleCamt053)
	require.NoError(t, err)

	assert.Equal(t, "MSG001", doc.MessageID)
	assert.Equal(t, "DE89370400440532013000", doc.Account.IBAN())
	assert.Equal(t, "COBADEFFXXX", doc.AccountServicerBIC)
	assert.Equal(t, "EUR", doc.Currency)
	require.Len(t, doc.Entries, 1)

	entry := doc.Entries[0]
	assert.Equal(t, codes.DirectionCredit, entry.Direction)
	assert.True(t, entry.Amount.Amount.Equal(mustDecimal(t, "39.42")))
	assert.Equal(t, "NONREF", entry.EndToEndID)
	assert.Equal(t, "Acme Corp", entry.Debtor.Name)
	require.Len(t, entry.Remittance.Unstructured, 1)
	assert.Equal(t, "Rechnung 123", entry.Remittance.Unstructured[0])

	assert.False(t, doc.Validate().HasErrors())
}

const samplePain001 = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.12">
  <CstmrCdtTrfInitn>
    <GrpHdr>
      <MsgId>MSG001</MsgId>
      <CreDtTm>2025-01-08T10:00:00</CreDtTm>
      <NbOfTxs>2</NbOfTxs>
      <CtrlSum>150.00</CtrlSum>
      <InitgPty><Nm>Acme Corp</Nm></InitgPty>
    </GrpHdr>
    <PmtInf>
      <PmtInfId>PMTINF1</PmtInfId>
      <PmtMtd>TRF</PmtMtd>
      <ReqdExctnDt><Dt>2025-01-10</Dt></ReqdExctnDt>
      <ChrgBr>SLEV</ChrgBr>
      <Dbtr><Nm>Acme Corp</Nm></Dbtr>
      <DbtrAcct><Id><IBAN>DE89370400440532013000</IBAN></Id></DbtrAcct>
      <DbtrAgt><FinInstnId><BIC>COBADEFFXXX</BIC></FinInstnId></DbtrAgt>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>E2E1</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="EUR">100.00</InstdAmt></Amt>
        <CdtrAgt><FinInstnId><BIC>DEUTDEFFXXX</BIC></FinInstnId></CdtrAgt>
        <Cdtr><Nm>Supplier One</Nm></Cdtr>
        <CdtrAcct><Id><IBAN>DE02100100100006820101</IBAN></Id></CdtrAcct>
      </CdtTrfTxInf>
      <CdtTrfTxInf>
        <PmtId><EndToEndId>E2E2</EndToEndId></PmtId>
        <Amt><InstdAmt Ccy="EUR">50.00</InstdAmt></Amt>
        <CdtrAgt><FinInstnId><BIC>DEUTDEFFXXX</BIC></FinInstnId></CdtrAgt>
        <Cdtr><Nm>Supplier Two</Nm></Cdtr>
        <CdtrAcct><Id><IBAN>DE02100100100006820102</IBAN></Id></CdtrAcct>
      </CdtTrfTxInf>
    </PmtInf>
  </CstmrCdtTrfInitn>
</Document>`

func TestReadPaymentInitiationPain001(t *testing.T) {
	doc, err := ReadPaymentInitiation(samplePain001)
	require.NoError(t, err)

	assert.Equal(t, "MSG001", doc.Header.MessageID)
	assert.Equal(t, 2, doc.Header.NumberOfTransactions)
	assert.True(t, doc.Header.ControlSum.Amount.Equal(mustDecimal(t, "150.00")))
	require.Len(t, doc.Instructions, 1)
	assert.Len(t, doc.Instructions[0].Transactions, 2)

	assert.Equal(t, 2, doc.CountTransactions())
	sum, err := doc.CalculateControlSum()
	require.NoError(t, err)
	assert.True(t, sum.Amount.Equal(mustDecimal(t, "150.00")))
	assert.False(t, doc.Validate().HasErrors())
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
