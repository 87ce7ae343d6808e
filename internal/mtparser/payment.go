package mtparser

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finfmt/internal/currencyutils"
	"finfmt/internal/dateutils"
	"finfmt/internal/entities"
	"finfmt/internal/finerr"
	"finfmt/internal/logging"
	"finfmt/internal/mtgen"
	"finfmt/internal/swiftmsg"
)

// ParseMT103 parses a complete MT103 FIN message into an mtgen.MT103Params,
// the decode side of mtgen.GenerateMT103 symmetric with how
// ParsePartyTag/ParseTransactionLine already pair with their mtgen
// counterparts.
func ParseMT103(raw string) (mtgen.MT103Params, error) {
	logging.GetLogger().Debug("parsing FIN payment message",
		logging.Field{Key: logging.FieldParser, Value: "mtparser.ParseMT103"})

	msg, err := swiftmsg.Parse(raw)
	if err != nil {
		return mtgen.MT103Params{}, err
	}
	lines := SplitTagLines(msg.Block4)

	var p mtgen.MT103Params
	for _, line := range lines {
		switch {
		case line.Tag == "20":
			p.SenderReference = line.Value
		case line.Tag == "23B":
			p.OperationCode = line.Value
		case line.Tag == "32A":
			date, amount, ccy, err := parse32A(line.Value)
			if err != nil {
				return mtgen.MT103Params{}, err
			}
			p.ValueDate = date
			p.Amount.Amount = amount
			p.Amount.Currency = ccy
		case isPartyTag(line.Tag, "50"):
			pt := ParsePartyTag(partyOptionByte(line.Tag), line.Value)
			p.OrderingCustomer = pt.Party
			p.OrderingAccount = accountFromIdentifier(pt.Account)
		case isPartyTag(line.Tag, "52"):
			pt := ParsePartyTag(partyOptionByte(line.Tag), line.Value)
			p.OrderingInstitution = pt.Party
			p.OrderingInstitutionAccount = accountFromIdentifier(pt.Account)
		case isPartyTag(line.Tag, "53"):
			pt := ParsePartyTag(partyOptionByte(line.Tag), line.Value)
			p.SendersCorrespondent = pt.Party
			p.SendersCorrespondentAccount = accountFromIdentifier(pt.Account)
		case isPartyTag(line.Tag, "56"):
			pt := ParsePartyTag(partyOptionByte(line.Tag), line.Value)
			p.IntermediaryInstitution = pt.Party
			p.IntermediaryInstitutionAccount = accountFromIdentifier(pt.Account)
		case isPartyTag(line.Tag, "57"):
			pt := ParsePartyTag(partyOptionByte(line.Tag), line.Value)
			p.AccountWithInstitution = pt.Party
			p.AccountWithInstitutionAccount = accountFromIdentifier(pt.Account)
		case isPartyTag(line.Tag, "59"):
			pt := ParsePartyTag(partyOptionByte(line.Tag), line.Value)
			p.Beneficiary = pt.Party
			p.BeneficiaryAccount = accountFromIdentifier(pt.Account)
		case line.Tag == "70":
			p.Remittance = line.Value
		case line.Tag == "71A":
			p.Charges = line.Value
		}
	}
	return p, nil
}

// parse32A decodes a :32A: settlement field: <date:6><currency:3><amount>.
func parse32A(value string) (time.Time, decimal.Decimal, string, error) {
	if len(value) < 10 {
		return time.Time{}, decimal.Zero, "", finerr.New(finerr.InvalidValue, "32A", fmt.Sprintf("field too short: %q", value))
	}
	date, err := dateutils.ParseMT6(value[0:6])
	if err != nil {
		return time.Time{}, decimal.Zero, "", err
	}
	ccy := value[6:9]
	amount, err := currencyutils.ParseMT(value[9:])
	if err != nil {
		return time.Time{}, decimal.Zero, "", finerr.New(finerr.InvalidValue, "32A", err.Error())
	}
	return date, amount, ccy, nil
}

// isPartyTag reports whether tag is base (e.g. "50", "59") with an
// optional single-letter option suffix (e.g. "50K", "59A").
func isPartyTag(tag, base string) bool {
	if tag == base {
		return true
	}
	return len(tag) == len(base)+1 && tag[:len(base)] == base
}

// partyOptionByte extracts the option letter from a party tag, defaulting
// to 'K' (name-and-address form) for a bare tag like ":59:" that carries
// no explicit option letter.
func partyOptionByte(tag string) byte {
	if len(tag) == 0 {
		return 'K'
	}
	last := tag[len(tag)-1]
	if last < '0' || last > '9' {
		return last
	}
	return 'K'
}

// accountFromIdentifier wraps a decoded "/account" line into an
// AccountIdentification, leaving it empty when the party tag carried none.
func accountFromIdentifier(account string) entities.AccountIdentification {
	if account == "" {
		return entities.AccountIdentification{}
	}
	return entities.FromIdentifier(account)
}
