package mtparser

import (
	"strings"

	"finfmt/internal/entities"
)

// PartyTag is a decoded MT103 party field: the leading "/account" line,
// when present, plus either a BIC-form (option A/B) or name-and-address
// form (option K/D) Party.
type PartyTag struct {
	Account string
	Party   entities.Party
}

// ParsePartyTag decodes a :50K:/:52A:/:53B:/:56D:/:57A:/:59: value given
// its option letter. Options A and B carry a BIC (B additionally allows a
// location line, folded into Party.Address); options K and D carry up to
// four 35-character name-and-address lines, the first of which may be a
// leading "/account" line.
func ParsePartyTag(option byte, value string) PartyTag {
	lines := splitFieldLines(value)
	pt := PartyTag{}
	rest := stripAccountLine(lines, &pt.Account)
	switch option {
	case 'A':
		if len(rest) > 0 {
			pt.Party = entities.Party{BIC: strings.TrimSpace(rest[0])}
		}
	case 'B':
		if len(rest) > 0 {
			pt.Party = entities.Party{BIC: strings.TrimSpace(rest[0])}
		}
		if len(rest) > 1 {
			pt.Party.Address = &entities.PostalAddress{Lines: []string{strings.TrimSpace(rest[1])}}
		}
	case 'K', 'D':
		pt.Party = partyFromAddressLines(rest)
	default:
		pt.Party = entities.NewParty(strings.TrimSpace(strings.Join(rest, " ")))
	}
	return pt
}

func splitFieldLines(value string) []string {
	return strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")
}

// stripAccountLine removes a leading "/account" line from lines, storing
// it in acct, and returns the remaining lines.
func stripAccountLine(lines []string, acct *string) []string {
	if len(lines) > 0 && strings.HasPrefix(lines[0], "/") {
		*acct = strings.TrimPrefix(lines[0], "/")
		return lines[1:]
	}
	return lines
}

// partyFromAddressLines builds a Party from up to four name-and-address
// lines: the first is the name, the rest feed Address.Lines.
func partyFromAddressLines(lines []string) entities.Party {
	if len(lines) == 0 {
		return entities.Party{}
	}
	p := entities.NewParty(strings.TrimSpace(lines[0]))
	if len(lines) > 1 {
		addr := &entities.PostalAddress{}
		for _, l := range lines[1:] {
			addr.Lines = append(addr.Lines, strings.TrimSpace(l))
		}
		p.Address = addr
	}
	return p
}
