package mtgen

import (
	"time"

	"finfmt/internal/currencyutils"
	"finfmt/internal/dateutils"
	"finfmt/internal/entities"
	"finfmt/internal/money"
)

// MT103Params is the field set needed to render a single customer credit
// transfer (spec §8 scenario S6), extended per spec §4.4.2's normative
// party-tag list to also carry the optional institution legs — ordering
// institution (:52A/D:), sender's correspondent (:53A/B:), intermediary
// institution (:56A/D:), and account-with institution (:57A/D:) — rather
// than just the two customer-facing parties (:50K:/:59:). Party option
// selection follows spec §4.5.1: BIC-only parties emit option A; anything
// else emits option K with name/address lines (option D is never
// emitted, institution legs included). An institution field
// left at its zero Party is omitted entirely, since every one of these is
// optional on the wire.
type MT103Params struct {
	SenderReference    string
	ValueDate          time.Time
	Amount             money.Money
	OrderingCustomer   entities.Party
	OrderingAccount    entities.AccountIdentification
	Beneficiary        entities.Party
	BeneficiaryAccount entities.AccountIdentification

	OrderingInstitution        entities.Party
	OrderingInstitutionAccount entities.AccountIdentification

	SendersCorrespondent        entities.Party
	SendersCorrespondentAccount entities.AccountIdentification

	IntermediaryInstitution        entities.Party
	IntermediaryInstitutionAccount entities.AccountIdentification

	AccountWithInstitution        entities.Party
	AccountWithInstitutionAccount entities.AccountIdentification

	OperationCode string // CRED, SPAY, SSTD, SPRI
	Charges       string // OUR, SHA, BEN
	Remittance    string
}

// GenerateMT103 renders a single customer credit transfer, in the
// canonical field order 20/23B/32A/50/52/53/56/57/59/70/71A; any
// institution leg whose Party is empty is omitted.
func GenerateMT103(p MT103Params) (string, error) {
	w := &Writer{}

	w.Tag("20", p.SenderReference)
	w.Tag("23B", firstNonEmpty(p.OperationCode, "CRED"))
	w.Tag("32A", dateutils.FormatMT6(p.ValueDate)+p.Amount.Currency+currencyutils.FormatMT(p.Amount.Amount))
	writePartyTag(w, "50"+partyOption(p.OrderingCustomer), p.OrderingAccount, p.OrderingCustomer)
	writeOptionalInstitutionTag(w, "52", p.OrderingInstitutionAccount, p.OrderingInstitution)
	writeOptionalInstitutionTag(w, "53", p.SendersCorrespondentAccount, p.SendersCorrespondent)
	writeOptionalInstitutionTag(w, "56", p.IntermediaryInstitutionAccount, p.IntermediaryInstitution)
	writeOptionalInstitutionTag(w, "57", p.AccountWithInstitutionAccount, p.AccountWithInstitution)
	writePartyTag(w, "59", p.BeneficiaryAccount, p.Beneficiary)
	if p.Remittance != "" {
		if err := w.TagWrapped("70", p.Remittance); err != nil {
			return "", err
		}
	}
	w.Tag("71A", firstNonEmpty(p.Charges, "OUR"))

	return w.String(), nil
}

// writeOptionalInstitutionTag emits an institution party tag (52/53/56/57)
// only when the party carries a BIC or a name, since every one of these
// legs is optional on the wire (spec §4.4.2).
func writeOptionalInstitutionTag(w *Writer, base string, acct entities.AccountIdentification, p entities.Party) {
	if p.IsEmpty() {
		return
	}
	writePartyTag(w, base+partyOption(p), acct, p)
}

// partyOption picks the MT option letter: A when the party carries only a
// BIC and no name, K otherwise.
func partyOption(p entities.Party) string {
	if p.HasBIC() && !p.HasName() {
		return "A"
	}
	return "K"
}

// writePartyTag emits a party field as one or more physical lines: the
// first carries ":<tag>:", each subsequent line (account, name, address)
// is a bare continuation line, per the wire's party-field convention.
func writePartyTag(w *Writer, tag string, acct entities.AccountIdentification, p entities.Party) {
	lines := partyLines(acct, p)
	if len(lines) == 0 {
		w.Tag(tag, "")
		return
	}
	w.Tag(tag, lines[0])
	for _, l := range lines[1:] {
		w.Raw(l)
	}
}

func partyLines(acct entities.AccountIdentification, p entities.Party) []string {
	var lines []string
	if !acct.IsEmpty() {
		lines = append(lines, "/"+acct.Identifier())
	}
	if p.HasBIC() && !p.HasName() {
		lines = append(lines, p.BIC)
	} else {
		if p.HasName() {
			lines = append(lines, p.Name)
		}
		if p.Address != nil {
			lines = append(lines, p.Address.Lines...)
		}
	}
	return lines
}
