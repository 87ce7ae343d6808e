// Package builders implements C6: fluent construction helpers for the
// document aggregates in internal/documents. Statement and payment-
// initiation builders follow the *persistent accumulator* discipline
// (spec §4.6/§9): every With* method returns a new builder value sharing
// unchanged fields with the receiver, so a partially-built variant can be
// branched from a common base without the branches stepping on each
// other. The DATEV builder instead mutates itself in place, the allowance
// spec §9 makes for "incremental row accumulation" workloads.
//
// Grounded on the teacher's internal/models/builder.go TransactionBuilder:
// same With* vocabulary and deferred-error-until-Build shape, adapted from
// a pointer-receiver/mutating style to persistent value receivers, since
// the teacher's own Clone() method shows the author already reaching for
// persistent semantics when a caller needs to branch a builder.
package builders

import (
	"time"

	"github.com/google/uuid"

	"finfmt/internal/codes"
	"finfmt/internal/documents"
	"finfmt/internal/entities"
	"finfmt/internal/money"
)

// StatementBuilder accumulates a documents.StatementDocument. The zero
// value is a valid empty builder.
type StatementBuilder struct {
	doc  documents.StatementDocument
	sink DiagnosticSink
}

// NewStatementBuilder returns an empty StatementBuilder.
func NewStatementBuilder() StatementBuilder {
	return StatementBuilder{}
}

// WithDiagnosticSink sets the callback Build uses to report non-fatal
// diagnostics, e.g. building a document with no entries or transactions.
// Nil (the default) disables these diagnostics entirely.
func (b StatementBuilder) WithDiagnosticSink(sink DiagnosticSink) StatementBuilder {
	b.sink = sink
	return b
}

// WithMessageID sets the statement's message identifier.
func (b StatementBuilder) WithMessageID(id string) StatementBuilder {
	b.doc.MessageID = id
	return b
}

// WithCreationDateTime sets the statement's creation timestamp.
func (b StatementBuilder) WithCreationDateTime(t time.Time) StatementBuilder {
	b.doc.CreationDateTime = t
	return b
}

// WithAccount sets the statement's account identification.
func (b StatementBuilder) WithAccount(acct entities.AccountIdentification) StatementBuilder {
	b.doc.Account = acct
	return b
}

// WithAccountOwner sets the party that owns the account.
func (b StatementBuilder) WithAccountOwner(p entities.Party) StatementBuilder {
	b.doc.AccountOwner = p
	return b
}

// WithAccountServicerBIC sets the BIC of the bank servicing the account.
func (b StatementBuilder) WithAccountServicerBIC(bic string) StatementBuilder {
	b.doc.AccountServicerBIC = bic
	return b
}

// WithSequenceNumber sets the statement/sequence number (MT28C-derived).
func (b StatementBuilder) WithSequenceNumber(seq string) StatementBuilder {
	b.doc.SequenceNumber = seq
	return b
}

// WithPageNumber sets the page number within the sequence.
func (b StatementBuilder) WithPageNumber(n int) StatementBuilder {
	b.doc.PageNumber = n
	return b
}

// WithCurrency sets the statement's account currency.
func (b StatementBuilder) WithCurrency(ccy string) StatementBuilder {
	b.doc.Currency = ccy
	return b
}

// WithOpeningBalance sets the opening balance, built from dir/date/amount.
func (b StatementBuilder) WithOpeningBalance(dir codes.Direction, date time.Time, amount money.Money) StatementBuilder {
	b.doc.OpeningBalance = entities.Balance{
		Type: entities.BalanceOpening, Direction: dir, Date: date, Amount: amount,
	}
	return b
}

// WithClosingBalance sets the closing balance, built from dir/date/amount.
func (b StatementBuilder) WithClosingBalance(dir codes.Direction, date time.Time, amount money.Money) StatementBuilder {
	b.doc.ClosingBalance = entities.Balance{
		Type: entities.BalanceClosing, Direction: dir, Date: date, Amount: amount,
	}
	return b
}

// AddTransaction appends an MT940/942 statement line. A document
// populates either Transactions or Entries, never both; the caller picks
// the right wire family by calling AddTransaction or AddEntry.
func (b StatementBuilder) AddTransaction(tx entities.Transaction) StatementBuilder {
	b.doc.Transactions = append(append([]entities.Transaction{}, b.doc.Transactions...), tx)
	return b
}

// AddEntry appends a CAMT entry.
func (b StatementBuilder) AddEntry(e entities.Entry) StatementBuilder {
	b.doc.Entries = append(append([]entities.Entry{}, b.doc.Entries...), e)
	return b
}

// DeriveMissingBalance fills in whichever of opening/closing is unset from
// the other balance plus the accumulated control sum (spec §3.4).
func (b StatementBuilder) DeriveMissingBalance() (StatementBuilder, error) {
	doc, err := b.doc.DeriveMissingBalance()
	if err != nil {
		return b, err
	}
	b.doc = doc
	return b, nil
}

// Build runs the single validation pass documents.StatementDocument.Validate
// performs and returns the finished document, or the accumulated
// validation failures as an error. A message id left unset is generated,
// mirroring the teacher's NewTransactionBuilder defaulting Number to a
// fresh uuid.
func (b StatementBuilder) Build() (documents.StatementDocument, error) {
	if b.doc.MessageID == "" {
		b.doc.MessageID = uuid.New().String()
	}
	if len(b.doc.Transactions) == 0 && len(b.doc.Entries) == 0 {
		b.sink.emit("built a statement document with no entries or transactions")
	}
	if errs := b.doc.Validate(); errs.HasErrors() {
		return documents.StatementDocument{}, errs.ErrorOrNil()
	}
	return b.doc, nil
}

// BuildUnchecked returns the accumulated document without running
// Validate, for callers assembling a document to feed back through
// DeriveMissingBalance or further builder calls before a final Build.
func (b StatementBuilder) BuildUnchecked() documents.StatementDocument {
	return b.doc
}
