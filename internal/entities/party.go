package entities

import (
	"fmt"
	"regexp"
	"strings"
)

var bicShape = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

// LooksLikeBIC reports whether id is structurally BIC-shaped: 8 or 11
// alphanumeric characters with the first 6 letters (bank + country code).
// This is a classification predicate only, never a directory lookup —
// consistent with the module-wide rule that BIC/IBAN validity is judged
// by shape, not by checksum or registry membership.
func LooksLikeBIC(id string) bool {
	return bicShape.MatchString(strings.ToUpper(strings.TrimSpace(id)))
}

// PostalAddress is the free-form address carried by a Party when no
// structured address components are available, matching the address-line
// wire profile (up to four lines, each length-capped by the builder).
type PostalAddress struct {
	Lines   []string
	Country string
}

// Party is an immutable value representing a person or organisation
// appearing as payer, payee, debtor, creditor, or ultimate party. At
// least one of Name, Identifier, or BIC must be set for the party to be
// considered valid; validity is checked by IsValid, not enforced by the
// constructor, since intermediate parser states may carry a partial party
// before validation time.
type Party struct {
	Name        string
	Address     *PostalAddress
	Identifier  string
	BIC         string
	Country     string
	BirthDate   string
	BirthPlace  string
	BirthCountry string
}

func NewParty(name string) Party {
	return Party{Name: strings.TrimSpace(name)}
}

// IsEmpty reports whether the party carries no identifying information at all.
func (p Party) IsEmpty() bool {
	return p.Name == "" && p.Identifier == "" && p.BIC == ""
}

// IsValid reports whether the party has at least one of name/identifier/BIC.
func (p Party) IsValid() bool {
	return !p.IsEmpty()
}

// IsPerson reports whether the party carries birth-related fields,
// the discriminator between a natural person and an organisation.
func (p Party) IsPerson() bool {
	return p.BirthDate != "" || p.BirthPlace != "" || p.BirthCountry != ""
}

// IsOrganisation reports whether the party looks like an organisation:
// it carries a BIC or an identifier and is not flagged as a person.
func (p Party) IsOrganisation() bool {
	return !p.IsPerson() && (p.BIC != "" || p.Identifier != "")
}

func (p Party) HasName() bool { return strings.TrimSpace(p.Name) != "" }
func (p Party) HasBIC() bool  { return strings.TrimSpace(p.BIC) != "" }

func (p Party) String() string {
	switch {
	case p.Name != "" && p.BIC != "":
		return fmt.Sprintf("%s (%s)", p.Name, p.BIC)
	case p.Name != "":
		return p.Name
	case p.BIC != "":
		return p.BIC
	case p.Identifier != "":
		return p.Identifier
	default:
		return ""
	}
}

func (p Party) Equal(other Party) bool {
	return strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(other.Name)) &&
		strings.EqualFold(p.BIC, other.BIC) &&
		p.Identifier == other.Identifier
}

// FinancialInstitutionIdentification identifies a bank or other financial
// institution, either by BIC or by a clearing-system reference. At most
// one of ClearingSystemCode and ClearingSystemProprietary may be set.
type FinancialInstitutionIdentification struct {
	BIC                       string
	ClearingSystemCode        string
	ClearingSystemProprietary string
	ClearingMemberID          string
	Name                      string
	Other                     string
}

// FromBIC builds a FinancialInstitutionIdentification from a BIC alone,
// the most common shorthand construction (option A party forms in MT).
func FromBIC(bic string) FinancialInstitutionIdentification {
	return FinancialInstitutionIdentification{BIC: strings.ToUpper(strings.TrimSpace(bic))}
}

// IsValid reports the at-most-one clearing-system invariant.
func (f FinancialInstitutionIdentification) IsValid() bool {
	return f.ClearingSystemCode == "" || f.ClearingSystemProprietary == ""
}

func (f FinancialInstitutionIdentification) IsEmpty() bool {
	return f.BIC == "" && f.ClearingSystemCode == "" && f.ClearingSystemProprietary == "" && f.Name == "" && f.Other == ""
}
