package entities

import (
	"time"

	"finfmt/internal/codes"
	"finfmt/internal/money"
)

// BalanceType is the MT/CAMT balance type code: opening/closing, booked,
// available, forward-available, intraday, or previously-closed.
type BalanceType int

const (
	BalanceUnknown BalanceType = iota
	BalanceOpening              // OPBD / :60F:,:60M:
	BalanceClosing              // CLBD / :62F:,:62M:
	BalanceClosingAvailable     // CLAV / :64:
	BalanceForwardAvailable     // FWAV / :65:
	BalanceInterim              // ITBD
	BalancePreviouslyClosed     // PRCD
)

var balanceCodes = map[BalanceType]string{
	BalanceOpening:          "OPBD",
	BalanceClosing:          "CLBD",
	BalanceClosingAvailable: "CLAV",
	BalanceForwardAvailable: "FWAV",
	BalanceInterim:          "ITBD",
	BalancePreviouslyClosed: "PRCD",
}

func (b BalanceType) CAMTCode() string { return balanceCodes[b] }

// BalanceTypeFromCAMTCode parses the CAMT Bal/Tp/CdOrPrtry/Cd enumeration.
func BalanceTypeFromCAMTCode(code string) (BalanceType, bool) {
	for t, c := range balanceCodes {
		if c == code {
			return t, true
		}
	}
	return BalanceUnknown, false
}

// Balance is an immutable opening/closing/available balance snapshot.
type Balance struct {
	Type      BalanceType
	Direction codes.Direction
	Date      time.Time
	Amount    money.Money
}

// Signed returns the balance amount signed by its credit/debit direction,
// the value the balance-reconciliation invariant (§8 property 3) sums.
func (b Balance) Signed() money.Money {
	return money.Money{Amount: b.Amount.Signed(b.Direction == codes.DirectionDebit), Currency: b.Amount.Currency}
}

// IsZero reports whether the balance carries no date and no amount, the
// shape an unset optional Balance field takes on a Document.
func (b Balance) IsZero() bool {
	return b.Date.IsZero() && b.Amount.Amount.IsZero() && b.Amount.Currency == ""
}
