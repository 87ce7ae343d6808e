package documents

import (
	"fmt"

	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/money"
)

// PaymentGenerator renders a PaymentInitiationDocument to its wire form
// (a pain.001/pain.008 XML generator).
type PaymentGenerator interface {
	GeneratePayment(d PaymentInitiationDocument) (string, error)
}

// PaymentInitiationDocument is the pain.001 (credit transfer) / pain.008
// (direct debit) aggregate: a group header plus an ordered sequence of
// payment instructions, each batching one or more transactions under a
// shared execution date and charge-bearer code.
type PaymentInitiationDocument struct {
	Header       entities.GroupHeader
	Instructions []entities.PaymentInstruction
}

// CountTransactions sums the transaction count across every instruction,
// the value that must agree with Header.NumberOfTransactions (spec §3.4
// control-sum invariant).
func (d PaymentInitiationDocument) CountTransactions() int {
	n := 0
	for _, pi := range d.Instructions {
		n += len(pi.Transactions)
	}
	return n
}

// CalculateControlSum sums every transaction's amount across every
// instruction, the value that must agree with Header.ControlSum.
func (d PaymentInitiationDocument) CalculateControlSum() (money.Money, error) {
	currency := d.Header.ControlSum.Currency
	if currency == "" {
		currency = currencyOfFirstTransaction(d.Instructions)
	}
	sum := money.Zero(currency)
	for _, pi := range d.Instructions {
		piSum, err := pi.ControlSum()
		if err != nil {
			return money.Money{}, err
		}
		if piSum.IsZero() && piSum.Currency == "" {
			continue
		}
		sum, err = sum.Add(piSum)
		if err != nil {
			return money.Money{}, err
		}
	}
	return sum, nil
}

func currencyOfFirstTransaction(instrs []entities.PaymentInstruction) string {
	for _, pi := range instrs {
		if len(pi.Transactions) > 0 {
			return pi.Transactions[0].Amount.Currency
		}
	}
	return ""
}

// HasRejections is always false for a payment initiation document: a
// pain.001/pain.008 message carries instructions to execute, not their
// outcome. Status reporting lives in the pain.002 StatusReportDocument.
func (d PaymentInitiationDocument) HasRejections() bool { return false }

// IsFullyAccepted mirrors HasRejections: initiation documents have no
// acceptance status of their own.
func (d PaymentInitiationDocument) IsFullyAccepted() bool { return true }

// Validate checks the control-sum and transaction-count invariants spec
// §3.4 assigns to pain.001/pain.008 documents.
func (d PaymentInitiationDocument) Validate() finerr.List {
	var errs finerr.List

	count := d.CountTransactions()
	if d.Header.NumberOfTransactions != count {
		errs.Add(finerr.New(finerr.Inconsistency, "GrpHdr/NbOfTxs",
			fmt.Sprintf("header declares %d, instructions carry %d", d.Header.NumberOfTransactions, count)))
	}

	sum, err := d.CalculateControlSum()
	if err != nil {
		errs.Add(finerr.New(finerr.Inconsistency, "GrpHdr/CtrlSum", err.Error()))
		return errs
	}
	if !d.Header.ControlSum.IsZero() || count > 0 {
		if !sum.WithinTolerance(d.Header.ControlSum, tolerance) {
			errs.Add(finerr.New(finerr.Inconsistency, "GrpHdr/CtrlSum",
				fmt.Sprintf("header declares %s, transactions sum to %s", d.Header.ControlSum, sum)))
		}
	}

	for i, pi := range d.Instructions {
		for j, tx := range pi.Transactions {
			if tx.PaymentID.UETR != "" && !entities.IsWellFormedUETR(tx.PaymentID.UETR) {
				errs.Add(finerr.New(finerr.InvalidValue,
					fmt.Sprintf("Instructions[%d]/Transactions[%d]/UETR", i, j),
					"not a well-formed version-4 UUID"))
			}
		}
	}

	return errs
}

// ToWire delegates rendering to gen, the pain XML generator.
func (d PaymentInitiationDocument) ToWire(gen PaymentGenerator) (string, error) {
	return gen.GeneratePayment(d)
}

// StatusReportDocument is the pain.002 aggregate: a group status plus
// per-original-instruction acceptance/rejection outcomes.
type StatusReportDocument struct {
	Header              entities.GroupHeader
	OriginalMessageID    string
	OriginalNbOfTxs      int
	GroupStatus          string
	TransactionStatuses  []TransactionStatus
}

// TransactionStatus carries one original instruction's reported outcome.
type TransactionStatus struct {
	OriginalInstructionID string
	OriginalEndToEndID    string
	Status                string // ACCP, RJCT, ACSC, PDNG, ...
	ReasonCode            string
	AdditionalInfo        string
}

// IsRejected reports whether this transaction's status code is a rejection.
func (t TransactionStatus) IsRejected() bool { return t.Status == "RJCT" }

func (d StatusReportDocument) CountTransactions() int { return len(d.TransactionStatuses) }

// HasRejections reports whether any reported transaction status is RJCT.
func (d StatusReportDocument) HasRejections() bool {
	for _, t := range d.TransactionStatuses {
		if t.IsRejected() {
			return true
		}
	}
	return false
}

// IsFullyAccepted reports whether every reported transaction accepted
// (no RJCT status anywhere in the report).
func (d StatusReportDocument) IsFullyAccepted() bool { return !d.HasRejections() }

// Validate checks that the declared original transaction count agrees
// with the number of per-transaction statuses carried, when both are set.
func (d StatusReportDocument) Validate() finerr.List {
	var errs finerr.List
	if d.OriginalNbOfTxs != 0 && d.OriginalNbOfTxs != len(d.TransactionStatuses) {
		errs.Add(finerr.New(finerr.Inconsistency, "OrgnlNbOfTxs",
			fmt.Sprintf("declares %d, report carries %d transaction statuses", d.OriginalNbOfTxs, len(d.TransactionStatuses))))
	}
	return errs
}
