// Package entities holds the immutable domain value types shared across
// every document family: parties, accounts, financial institutions,
// balances, transactions, entries, remittance information, and payment
// identification. Every constructor returns a fully-formed value; there
// is no invalid intermediate state to observe once a value exists.
package entities

import (
	"regexp"
	"strings"
)

var ibanShape = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)

// LooksLikeIBAN reports whether id is structurally IBAN-shaped: two
// letters, two digits, then 11-30 alphanumerics, for a total length of
// 15-34. This is a structural heuristic only — per this module's
// non-goals it never validates the mod-97 check digits.
func LooksLikeIBAN(id string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(id, " ", ""))
	return ibanShape.MatchString(normalized)
}

// AccountIdentification is a closed variant: either an IBAN or some other
// scheme-qualified identifier, never both. Currency and a display name
// are optional tags carried alongside either form.
type AccountIdentification struct {
	iban     string
	other    string
	scheme   string
	Currency string
	Name     string
}

// NewIBANAccount builds an IBAN-variant identification. The IBAN is
// normalized (uppercased, spaces stripped) but not checksum-validated.
func NewIBANAccount(iban string) AccountIdentification {
	return AccountIdentification{iban: strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(iban), " ", ""))}
}

// NewOtherAccount builds an Other-variant identification with an optional
// scheme qualifier (e.g. "BBAN", "CHAN").
func NewOtherAccount(id, scheme string) AccountIdentification {
	return AccountIdentification{other: strings.TrimSpace(id), scheme: strings.TrimSpace(scheme)}
}

// FromIdentifier builds an account identification by structural
// detection: IBAN-shaped identifiers become the IBAN variant, anything
// else becomes the Other variant with no scheme set.
func FromIdentifier(id string) AccountIdentification {
	if LooksLikeIBAN(id) {
		return NewIBANAccount(id)
	}
	return NewOtherAccount(id, "")
}

// IsIBAN reports whether this identification is the IBAN variant.
func (a AccountIdentification) IsIBAN() bool { return a.iban != "" }

// IBAN returns the IBAN value; empty if this is an Other-variant value.
func (a AccountIdentification) IBAN() string { return a.iban }

// Other returns the raw other-scheme identifier; empty for the IBAN variant.
func (a AccountIdentification) Other() string { return a.other }

// Scheme returns the optional scheme qualifier of an Other-variant value.
func (a AccountIdentification) Scheme() string { return a.scheme }

// Identifier returns whichever of IBAN/Other is populated, for display
// and wire-encoding purposes that don't care which variant it is.
func (a AccountIdentification) Identifier() string {
	if a.IsIBAN() {
		return a.iban
	}
	return a.other
}

func (a AccountIdentification) IsEmpty() bool {
	return a.iban == "" && a.other == ""
}

func (a AccountIdentification) Equal(other AccountIdentification) bool {
	return a.iban == other.iban && a.other == other.other && a.scheme == other.scheme &&
		a.Currency == other.Currency
}
