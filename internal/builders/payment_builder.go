package builders

import (
	"time"

	"github.com/google/uuid"

	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/money"
)

// PaymentInitiationBuilder accumulates a documents.PaymentInitiationDocument
// (pain.001/pain.008). It follows the same persistent-accumulator
// discipline as StatementBuilder, plus the pain.001-specific begin/add/end
// sub-builder for PaymentInstruction described in spec §4.6: while open
// is non-nil, AddTransaction/SetPaymentMethod/SetRequestedExecutionDate/
// SetChargesCode mutate the open instruction rather than the outer
// document, and EndPaymentInstruction folds it back in. Build implicitly
// closes a still-open instruction before validating.
type PaymentInitiationBuilder struct {
	doc  documents.PaymentInitiationDocument
	open *entities.PaymentInstruction
	sink DiagnosticSink
}

// NewPaymentInitiationBuilder returns an empty PaymentInitiationBuilder.
func NewPaymentInitiationBuilder() PaymentInitiationBuilder {
	return PaymentInitiationBuilder{}
}

// WithDiagnosticSink sets the callback Build uses to report non-fatal
// diagnostics, e.g. building a document with no payment instructions.
// Nil (the default) disables these diagnostics entirely.
func (b PaymentInitiationBuilder) WithDiagnosticSink(sink DiagnosticSink) PaymentInitiationBuilder {
	b.sink = sink
	return b
}

// WithMessageID sets the group header's message identifier.
func (b PaymentInitiationBuilder) WithMessageID(id string) PaymentInitiationBuilder {
	b.doc.Header.MessageID = id
	return b
}

// WithCreationDateTime sets the group header's creation timestamp.
func (b PaymentInitiationBuilder) WithCreationDateTime(t time.Time) PaymentInitiationBuilder {
	b.doc.Header.CreationDateTime = t
	return b
}

// WithNumberOfTransactions sets the group header's declared transaction
// count. Build's validation pass checks this against the accumulated
// instructions' actual transaction count (spec §3.4).
func (b PaymentInitiationBuilder) WithNumberOfTransactions(n int) PaymentInitiationBuilder {
	b.doc.Header.NumberOfTransactions = n
	return b
}

// WithControlSum sets the group header's declared control sum.
func (b PaymentInitiationBuilder) WithControlSum(sum money.Money) PaymentInitiationBuilder {
	b.doc.Header.ControlSum = sum
	return b
}

// WithInitiatingParty sets the group header's initiating party.
func (b PaymentInitiationBuilder) WithInitiatingParty(p entities.Party) PaymentInitiationBuilder {
	b.doc.Header.InitiatingParty = p
	return b
}

// WithHeaderTotals derives NumberOfTransactions and ControlSum from the
// instructions accumulated so far, folding in a still-open instruction
// first. Use this after adding all instructions/transactions instead of
// setting the totals by hand.
func (b PaymentInitiationBuilder) WithHeaderTotals() (PaymentInitiationBuilder, error) {
	b = b.closeOpenInstruction()
	b.doc.Header.NumberOfTransactions = b.doc.CountTransactions()
	sum, err := b.doc.CalculateControlSum()
	if err != nil {
		return b, err
	}
	b.doc.Header.ControlSum = sum
	return b, nil
}

// BeginPaymentInstruction opens a nested PaymentInstruction builder. Any
// previously open instruction is closed (folded into the document) first,
// matching "build() on the outer builder implicitly closes an open
// instruction" — the same rule applies when a new one begins.
func (b PaymentInitiationBuilder) BeginPaymentInstruction(paymentInformationID string) PaymentInitiationBuilder {
	b = b.closeOpenInstruction()
	instr := entities.PaymentInstruction{PaymentInformationID: paymentInformationID}
	b.open = &instr
	return b
}

// SetPaymentMethod sets the open instruction's payment method (e.g.
// "TRF", "DD"). It is a no-op if no instruction is open.
func (b PaymentInitiationBuilder) SetPaymentMethod(method string) PaymentInitiationBuilder {
	if b.open == nil {
		return b
	}
	open := *b.open
	open.PaymentMethod = method
	b.open = &open
	return b
}

// SetRequestedExecutionDate sets the open instruction's requested
// execution date. It is a no-op if no instruction is open.
func (b PaymentInitiationBuilder) SetRequestedExecutionDate(d time.Time) PaymentInitiationBuilder {
	if b.open == nil {
		return b
	}
	open := *b.open
	open.RequestedExecutionDate = d
	b.open = &open
	return b
}

// SetChargesCode sets the open instruction's charge-bearer code (e.g.
// "SLEV", "SHAR", "DEBT", "CRED"). It is a no-op if no instruction is open.
func (b PaymentInitiationBuilder) SetChargesCode(code string) PaymentInitiationBuilder {
	if b.open == nil {
		return b
	}
	open := *b.open
	open.ChargeBearer = code
	b.open = &open
	return b
}

// SetDebtor sets the open instruction's debtor party/account/agent. It is
// a no-op if no instruction is open.
func (b PaymentInitiationBuilder) SetDebtor(p entities.Party, acct entities.AccountIdentification, agent entities.FinancialInstitutionIdentification) PaymentInitiationBuilder {
	if b.open == nil {
		return b
	}
	open := *b.open
	open.Debtor = p
	open.DebtorAccount = acct
	open.DebtorAgent = agent
	b.open = &open
	return b
}

// AddTransaction appends a transaction to the open instruction. It is a
// no-op if no instruction is open.
func (b PaymentInitiationBuilder) AddTransaction(tx entities.PaymentTransaction) PaymentInitiationBuilder {
	if b.open == nil {
		return b
	}
	open := *b.open
	open.Transactions = append(append([]entities.PaymentTransaction{}, open.Transactions...), tx)
	b.open = &open
	return b
}

// EndPaymentInstruction folds the open instruction into the document. It
// is a no-op if no instruction is open.
func (b PaymentInitiationBuilder) EndPaymentInstruction() PaymentInitiationBuilder {
	return b.closeOpenInstruction()
}

func (b PaymentInitiationBuilder) closeOpenInstruction() PaymentInitiationBuilder {
	if b.open == nil {
		return b
	}
	b.doc.Instructions = append(append([]entities.PaymentInstruction{}, b.doc.Instructions...), *b.open)
	b.open = nil
	return b
}

// Build implicitly closes a still-open instruction, runs
// documents.PaymentInitiationDocument.Validate's single validation pass,
// and returns the finished document or the accumulated validation
// failures as an error. A message id left unset is generated, the same
// default-on-build behaviour as the teacher's NewTransactionBuilder
// defaulting Number to a fresh uuid.
func (b PaymentInitiationBuilder) Build() (documents.PaymentInitiationDocument, error) {
	b = b.closeOpenInstruction()
	if b.doc.Header.MessageID == "" {
		b.doc.Header.MessageID = uuid.New().String()
	}
	if len(b.doc.Instructions) == 0 {
		b.sink.emit("built a payment initiation document with no payment instructions")
	}
	if errs := b.doc.Validate(); errs.HasErrors() {
		return documents.PaymentInitiationDocument{}, errs.ErrorOrNil()
	}
	return b.doc, nil
}
