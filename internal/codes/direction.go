// Package codes holds the closed enumerations and code tables shared by
// every entity, document, parser, and generator: currencies, credit/debit
// direction, message-type registries, charge/purpose codes, the GVC and
// SEPA remittance keyword tables, and bank-transaction-code classification.
// Every table here is total-over-its-supported-set: parsing an unknown
// wire code yields a zero value and ok=false, never a panic.
package codes

import "strings"

// Direction is the credit/debit polarity of a balance or entry.
type Direction int

const (
	DirectionUnknown Direction = iota
	DirectionCredit
	DirectionDebit
)

func (d Direction) String() string {
	switch d {
	case DirectionCredit:
		return "CREDIT"
	case DirectionDebit:
		return "DEBIT"
	default:
		return "UNKNOWN"
	}
}

// DirectionFromMT parses the MT dc_mark: "C", "D", "RC" (reversal of
// credit), or "RD" (reversal of debit). Reversal markers still classify
// by the resulting polarity; callers that need the reversal flag check it
// separately (see entities.Entry.IsReversal).
func DirectionFromMT(mark string) (dir Direction, reversal bool, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case "C":
		return DirectionCredit, false, true
	case "D":
		return DirectionDebit, false, true
	case "RC":
		return DirectionCredit, true, true
	case "RD":
		return DirectionDebit, true, true
	default:
		return DirectionUnknown, false, false
	}
}

// MTCode renders the direction back to its non-reversal MT letter code.
func (d Direction) MTCode() string {
	switch d {
	case DirectionCredit:
		return "C"
	case DirectionDebit:
		return "D"
	default:
		return ""
	}
}

// MTReversalCode renders the direction to its reversal MT letter code.
func (d Direction) MTReversalCode() string {
	switch d {
	case DirectionCredit:
		return "RC"
	case DirectionDebit:
		return "RD"
	default:
		return ""
	}
}

// DirectionFromCAMT parses the CAMT CdtDbtInd enumeration: "CRDT"/"DBIT".
func DirectionFromCAMT(code string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "CRDT":
		return DirectionCredit, true
	case "DBIT":
		return DirectionDebit, true
	default:
		return DirectionUnknown, false
	}
}

// CAMTCode renders the direction to its CAMT enumeration value.
func (d Direction) CAMTCode() string {
	switch d {
	case DirectionCredit:
		return "CRDT"
	case DirectionDebit:
		return "DBIT"
	default:
		return ""
	}
}

// DirectionFromDATEV parses the DATEV Soll/Haben-Kennzeichen: "S" (Soll,
// debit) or "H" (Haben, credit).
func DirectionFromDATEV(mark string) (Direction, bool) {
	switch strings.ToUpper(strings.TrimSpace(mark)) {
	case "S":
		return DirectionDebit, true
	case "H":
		return DirectionCredit, true
	default:
		return DirectionUnknown, false
	}
}

// DATEVCode renders the direction to its Soll/Haben-Kennzeichen letter.
func (d Direction) DATEVCode() string {
	switch d {
	case DirectionDebit:
		return "S"
	case DirectionCredit:
		return "H"
	default:
		return ""
	}
}
