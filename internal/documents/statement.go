// Package documents implements C3: the thin per-message-type aggregates
// that hold a fully-parsed document's immutable state and expose the
// cheap derived queries and cross-field invariant checks described in
// spec §3.4/§4.3. A Document never parses or renders itself — ToWire
// delegates to a Generator collaborator injected by the caller, and
// construction is the parser's job — the aggregate only validates and
// answers questions about state it already holds.
package documents

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finfmt/internal/codes"
	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/logging"
	"finfmt/internal/money"
)

// tolerance is the rounding slack the balance-reconciliation invariant
// allows, since wire amounts are quantized to the currency's minor unit
// at two decimal places but intermediate sums are kept at full decimal
// precision.
var tolerance = decimal.NewFromFloat(0.005)

// StatementGenerator renders a StatementDocument to its wire form: an MT
// generator for MT940/942/920/950, an XML generator for camt.052/053/054.
type StatementGenerator interface {
	GenerateStatement(d StatementDocument) (string, error)
}

// StatementDocument is the MT940/942/920/950 and camt.052/053/054
// aggregate: an account statement or report, built from an ordered
// sequence of entries plus optional opening/closing balances.
type StatementDocument struct {
	MessageID          string
	CreationDateTime   time.Time
	Account            entities.AccountIdentification
	AccountOwner       entities.Party
	AccountServicerBIC string
	SequenceNumber     string
	PageNumber         int
	Currency           string

	OpeningBalance entities.Balance
	ClosingBalance entities.Balance

	// Transactions carries MT940/942 statement lines; Entries carries
	// the richer CAMT form. A single document populates exactly one,
	// never both — the parser that built it determined the wire family.
	Transactions []entities.Transaction
	Entries      []entities.Entry
}

// CountTransactions returns the number of statement lines/entries,
// whichever form this document carries.
func (d StatementDocument) CountTransactions() int {
	if len(d.Entries) > 0 {
		return len(d.Entries)
	}
	return len(d.Transactions)
}

// CalculateControlSum sums the signed amount of every entry/transaction,
// the value the balance-reconciliation invariant compares against the
// opening/closing balance delta.
func (d StatementDocument) CalculateControlSum() (money.Money, error) {
	sum := money.Zero(d.Currency)
	var err error
	for _, tx := range d.Transactions {
		sum, err = sum.Add(tx.Signed())
		if err != nil {
			return money.Money{}, err
		}
	}
	for _, e := range d.Entries {
		sum, err = sum.Add(e.Signed())
		if err != nil {
			return money.Money{}, err
		}
	}
	return sum, nil
}

// HasRejections reports whether any CAMT entry carries a return bank
// transaction code or is flagged as a reversal. MT940/942 transactions carry no status field, so
// this is always false for MT-sourced documents.
func (d StatementDocument) HasRejections() bool {
	for _, e := range d.Entries {
		if e.IsRejected() || e.IsReversal {
			return true
		}
	}
	return false
}

// IsFullyAccepted reports the inverse of HasRejections: true when every
// entry posted without a return or reversal.
func (d StatementDocument) IsFullyAccepted() bool {
	return !d.HasRejections()
}

// Validate runs the cross-field invariants spec §3.4 assigns to
// statement documents: balance reconciliation when both balances are
// present. A :61: currency mark that disagrees with the statement
// currency (MT-sourced documents) is logged as a warning and adds no
// error.
func (d StatementDocument) Validate() finerr.List {
	var errs finerr.List

	if !d.OpeningBalance.IsZero() && !d.ClosingBalance.IsZero() {
		sum, err := d.CalculateControlSum()
		if err != nil {
			errs.Add(finerr.New(finerr.Inconsistency, "ControlSum", err.Error()))
			return errs
		}
		expectedClosing, err := d.OpeningBalance.Signed().Add(sum)
		if err != nil {
			errs.Add(finerr.New(finerr.Inconsistency, "ClosingBalance", err.Error()))
			return errs
		}
		if !expectedClosing.WithinTolerance(d.ClosingBalance.Signed(), tolerance) {
			errs.Add(finerr.New(finerr.Inconsistency, "ClosingBalance",
				fmt.Sprintf("expected %s, got %s", expectedClosing, d.ClosingBalance.Signed())))
		}
	}

	for i, tx := range d.Transactions {
		if tx.CurrencyMark != "" && d.Currency != "" && tx.CurrencyMark[0] != d.Currency[0] {
			logging.GetLogger().Warn(fmt.Sprintf("currency mark %q does not agree with statement currency %q", tx.CurrencyMark, d.Currency),
				logging.Field{Key: "path", Value: fmt.Sprintf("Transactions[%d]/CurrencyMark", i)})
		}
	}

	return errs
}

// ToWire delegates rendering to gen, the family-appropriate generator
// (MT or XML) the caller selected for this document's origin.
func (d StatementDocument) ToWire(gen StatementGenerator) (string, error) {
	return gen.GenerateStatement(d)
}

// DeriveMissingBalance fills in whichever of opening/closing is the zero
// value from the other balance plus the transaction control sum, per the
// "if only one is provided the other is derived" rule in spec §3.4. It
// returns a new document; the receiver is left unchanged.
func (d StatementDocument) DeriveMissingBalance() (StatementDocument, error) {
	sum, err := d.CalculateControlSum()
	if err != nil {
		return StatementDocument{}, err
	}
	switch {
	case d.OpeningBalance.IsZero() && !d.ClosingBalance.IsZero():
		opening, err := d.ClosingBalance.Signed().Sub(sum)
		if err != nil {
			return StatementDocument{}, err
		}
		d.OpeningBalance = entities.Balance{
			Type:      entities.BalanceOpening,
			Direction: directionOf(opening),
			Date:      d.ClosingBalance.Date,
			Amount:    opening.Abs(),
		}
	case d.ClosingBalance.IsZero() && !d.OpeningBalance.IsZero():
		closing, err := d.OpeningBalance.Signed().Add(sum)
		if err != nil {
			return StatementDocument{}, err
		}
		d.ClosingBalance = entities.Balance{
			Type:      entities.BalanceClosing,
			Direction: directionOf(closing),
			Date:      d.OpeningBalance.Date,
			Amount:    closing.Abs(),
		}
	}
	return d, nil
}

func directionOf(m money.Money) codes.Direction {
	if m.IsNegative() {
		return codes.DirectionDebit
	}
	return codes.DirectionCredit
}
