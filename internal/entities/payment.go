package entities

import (
	"fmt"
	"regexp"
	"time"

	"finfmt/internal/money"
	"finfmt/internal/random"
)

// PaymentIdentification carries the instruction/end-to-end/UETR triple
// that threads a payment through the pain.001/camt chain.
type PaymentIdentification struct {
	InstructionID string
	EndToEndID    string
	UETR          string
}

// uetrPattern is the RFC 4122 v4 UUID shape a generated UETR must match
// (§8 property 8).
var uetrPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// GenerateUETR produces a version-4 UUID with the RFC 4122 §4.4 byte
// layout (version nibble set to 4, variant bits set to 10) using src as
// the entropy source. This is the only place in the core where
// randomness enters; src is an injected capability so tests can supply a
// deterministic stub instead of depending on a platform facility.
func GenerateUETR(src random.Source) (string, error) {
	var b [16]byte
	if err := src.Fill(b[:]); err != nil {
		return "", fmt.Errorf("generating UETR: %w", err)
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	uetr := fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
	return uetr, nil
}

// IsWellFormedUETR reports whether s matches the RFC 4122 v4 shape.
func IsWellFormedUETR(s string) bool { return uetrPattern.MatchString(s) }

// GroupHeader is the pain.001/pain.008 message-level header: message id,
// creation timestamp, and the control totals the builder must keep
// consistent with the transaction set (§3.4 control-sum invariant).
type GroupHeader struct {
	MessageID           string
	CreationDateTime    time.Time
	NumberOfTransactions int
	ControlSum           money.Money
	InitiatingParty      Party
}

// Mandate is a SEPA direct-debit mandate reference, used by pain.008 and
// carried through to camt entries that originate from a mandated debit.
type Mandate struct {
	MandateID     string
	DateOfSigning time.Time
	Scheme        string // CORE, COR1, B2B, INST
}

// PaymentInstruction is one payment-method batch inside a pain.001
// document: a requested execution date and charge-bearer code shared by
// all of its constituent transactions.
type PaymentInstruction struct {
	PaymentInformationID    string
	PaymentMethod           string
	RequestedExecutionDate  time.Time
	ChargeBearer             string
	Debtor                   Party
	DebtorAccount            AccountIdentification
	DebtorAgent              FinancialInstitutionIdentification
	Transactions             []PaymentTransaction
}

// PaymentTransaction is a single credit-transfer leg inside a
// PaymentInstruction.
type PaymentTransaction struct {
	PaymentID       PaymentIdentification
	Amount          money.Money
	Creditor        Party
	CreditorAccount AccountIdentification
	CreditorAgent   FinancialInstitutionIdentification
	RemittanceInfo  RemittanceInformation
	PurposeCode     string
}

// ControlSum computes the sum of the instruction's transaction amounts.
func (pi PaymentInstruction) ControlSum() (money.Money, error) {
	if len(pi.Transactions) == 0 {
		return money.Money{}, nil
	}
	sum := money.Zero(pi.Transactions[0].Amount.Currency)
	for _, tx := range pi.Transactions {
		var err error
		sum, err = sum.Add(tx.Amount)
		if err != nil {
			return money.Money{}, err
		}
	}
	return sum, nil
}
