package entities

import (
	"time"

	"finfmt/internal/codes"
	"finfmt/internal/money"
)

// Transaction is an MT940/942 statement line (the entity built from a
// :61:/:86: tag pair). CurrencyMark carries the single-character wire
// hint from :61: when present; the full Currency on Amount is always
// inherited from the statement's opening balance (see Document.Currency),
// per the defined behaviour in the Design Notes regarding :61: currency
// handling.
type Transaction struct {
	Direction           codes.Direction
	IsReversal          bool
	ValueDate           time.Time
	BookingDate         time.Time
	Amount              money.Money
	CurrencyMark        string
	TransactionCode     string
	Reference            string
	AccountServicerRef   string
	Purpose             string
	AdditionalInfo       string
	CounterpartyName     string
	CounterpartyIBAN     string
	CounterpartyBIC      string
	Remittance           RemittanceInformation
}

// Signed returns the transaction amount signed by its credit/debit
// direction, for balance-reconciliation summation.
func (t Transaction) Signed() money.Money {
	return money.Money{Amount: t.Amount.Signed(t.Direction == codes.DirectionDebit), Currency: t.Amount.Currency}
}

// EffectiveDate returns BookingDate if set, otherwise ValueDate.
func (t Transaction) EffectiveDate() time.Time {
	if !t.BookingDate.IsZero() {
		return t.BookingDate
	}
	return t.ValueDate
}

// Entry is the CAMT counterpart of Transaction: a superset carrying
// status, bank transaction code classification, and the richer party/
// agent references the ISO 20022 wire profile supports.
type Entry struct {
	EntryReference        string
	Direction              codes.Direction
	IsReversal             bool
	Status                 string
	Amount                 money.Money
	BookingDate            time.Time
	ValueDate              time.Time
	BankTransactionCode    codes.BankTransactionCode
	EndToEndID             string
	InstructionID          string
	MandateID              string
	ReturnReason           string
	TechnicalInputChannel  string
	PurposeCode            string
	LocalInstrument        string
	InstructingAgent       FinancialInstitutionIdentification
	InstructedAgent        FinancialInstitutionIdentification
	DebtorAgent            FinancialInstitutionIdentification
	CreditorAgent          FinancialInstitutionIdentification
	Debtor                 Party
	Creditor               Party
	DebtorAccount          AccountIdentification
	CreditorAccount        AccountIdentification
	AccountServicerRef     string
	AdditionalInfo         string
	Remittance             RemittanceInformation
}

// Signed returns the entry amount signed by its credit/debit direction.
func (e Entry) Signed() money.Money {
	return money.Money{Amount: e.Amount.Signed(e.Direction == codes.DirectionDebit), Currency: e.Amount.Currency}
}

// IsCredit reports whether the entry represents incoming funds.
func (e Entry) IsCredit() bool { return e.Direction == codes.DirectionCredit }

// IsDebit reports whether the entry represents outgoing funds.
func (e Entry) IsDebit() bool { return e.Direction == codes.DirectionDebit }

// Counterparty returns the relevant party given the entry's direction:
// for debits, the creditor (who receives the money); for credits, the
// debtor (who sent it).
func (e Entry) Counterparty() Party {
	if e.IsDebit() {
		return e.Creditor
	}
	return e.Debtor
}

// IsRejected reports whether the entry's bank transaction code marks it
// as returned or rejected.
func (e Entry) IsRejected() bool { return e.BankTransactionCode.IsReturn() }
