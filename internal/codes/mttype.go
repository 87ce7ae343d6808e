package codes

import (
	"regexp"
	"strings"
)

// MtType enumerates the supported SWIFT FIN message types. MT202 and
// MT202COV share numeric code 202 but are distinct cases: the COV variant
// carries an underlying-customer-credit-transfer sequence B in block 4,
// detected from the text block rather than the numeric header alone.
type MtType int

const (
	MtUnknown MtType = iota
	Mt101
	Mt103
	Mt104
	Mt200
	Mt202
	Mt202Cov
	Mt900
	Mt910
	Mt920
	Mt940
	Mt941
	Mt942
	Mt950
)

var mtNumeric = map[MtType]uint16{
	Mt101: 101, Mt103: 103, Mt104: 104,
	Mt200: 200, Mt202: 202, Mt202Cov: 202,
	Mt900: 900, Mt910: 910, Mt920: 920,
	Mt940: 940, Mt941: 941, Mt942: 942, Mt950: 950,
}

var mtDescriptions = map[MtType]string{
	Mt101:    "Request for Transfer",
	Mt103:    "Single Customer Credit Transfer",
	Mt104:    "Direct Debit and Request for Debit Transfer",
	Mt200:    "Financial Institution Transfer for its Own Account",
	Mt202:    "General Financial Institution Transfer",
	Mt202Cov: "General Financial Institution Transfer (Cover)",
	Mt900:    "Confirmation of Debit",
	Mt910:    "Confirmation of Credit",
	Mt920:    "Request Message",
	Mt940:    "Customer Statement Message",
	Mt941:    "Balance Report",
	Mt942:    "Interim Transaction Report",
	Mt950:    "Statement Message",
}

func (t MtType) String() string {
	switch t {
	case Mt101:
		return "MT101"
	case Mt103:
		return "MT103"
	case Mt104:
		return "MT104"
	case Mt200:
		return "MT200"
	case Mt202:
		return "MT202"
	case Mt202Cov:
		return "MT202COV"
	case Mt900:
		return "MT900"
	case Mt910:
		return "MT910"
	case Mt920:
		return "MT920"
	case Mt940:
		return "MT940"
	case Mt941:
		return "MT941"
	case Mt942:
		return "MT942"
	case Mt950:
		return "MT950"
	default:
		return "UNKNOWN"
	}
}

// Description returns the human-readable name of the message type.
func (t MtType) Description() string { return mtDescriptions[t] }

// Numeric returns the 3-digit SWIFT numeric code for the type.
func (t MtType) Numeric() (uint16, bool) {
	n, ok := mtNumeric[t]
	return n, ok
}

// IsStatementFamily reports whether the type is a balance/statement report
// (MT940/941/942/950/920), as opposed to a payment instruction.
func (t MtType) IsStatementFamily() bool {
	switch t {
	case Mt920, Mt940, Mt941, Mt942, Mt950:
		return true
	default:
		return false
	}
}

// IsPaymentFamily reports whether the type is a payment/transfer
// instruction (MT101/103/104/200/202/202COV).
func (t MtType) IsPaymentFamily() bool {
	switch t {
	case Mt101, Mt103, Mt104, Mt200, Mt202, Mt202Cov:
		return true
	default:
		return false
	}
}

// IsAdviceFamily reports whether the type is a debit/credit advice
// (MT900/910).
func (t MtType) IsAdviceFamily() bool {
	switch t {
	case Mt900, Mt910:
		return true
	default:
		return false
	}
}

// FromNumeric maps a 3-digit SWIFT numeric code to its default MtType.
// It is total over the supported set: unsupported codes return
// (MtUnknown, false) rather than panicking. MT202/MT202COV share numeric
// 202; FromNumeric alone cannot disambiguate them (see FromSwiftMessage).
func FromNumeric(n uint16) (MtType, bool) {
	switch n {
	case 101:
		return Mt101, true
	case 103:
		return Mt103, true
	case 104:
		return Mt104, true
	case 200:
		return Mt200, true
	case 202:
		return Mt202, true
	case 900:
		return Mt900, true
	case 910:
		return Mt910, true
	case 920:
		return Mt920, true
	case 940:
		return Mt940, true
	case 941:
		return Mt941, true
	case 942:
		return Mt942, true
	case 950:
		return Mt950, true
	default:
		return MtUnknown, false
	}
}

var appHeaderRe = regexp.MustCompile(`\{2:[IO](\d{3})`)

// FromSwiftMessage detects the message type from a full or partial FIN
// message. It first scans for the application-header block ({2:I... or
// {2:O...}) and reads the numeric type from there, disambiguating
// MT202/MT202COV with a text heuristic (see isLikelyCover): the message
// is taken as a cover payment when it mentions tags :50, :59 and :58
// anywhere. No sequence-aware check is made.
// When no application header is present, it falls back to a best-effort
// content-shape heuristic over naked block-4 text.
func FromSwiftMessage(text string) (MtType, bool) {
	if m := appHeaderRe.FindStringSubmatch(text); m != nil {
		var n uint16
		for _, c := range m[1] {
			n = n*10 + uint16(c-'0')
		}
		t, ok := FromNumeric(n)
		if !ok {
			return MtUnknown, false
		}
		if t == Mt202 && isLikelyCover(text) {
			return Mt202Cov, true
		}
		return t, true
	}
	return shapeHeuristic(text)
}

func isLikelyCover(text string) bool {
	// A cover payment carries an underlying customer credit transfer
	// (sequence B) identified by tags :50:/:59: appearing after the
	// financial-institution sequence's own :58A:/:57A: pair.
	return strings.Contains(text, ":50") && strings.Contains(text, ":59") && strings.Contains(text, ":58")
}

func shapeHeuristic(text string) (MtType, bool) {
	has := func(tag string) bool { return strings.Contains(text, tag) }
	switch {
	case has(":60M:"):
		return Mt942, true
	case has(":60F:") && has(":61:"):
		return Mt940, true
	case has(":12:") && has(":25:"):
		return Mt920, true
	case has(":62F:") && !has(":61:"):
		return Mt950, true
	default:
		return MtUnknown, false
	}
}
