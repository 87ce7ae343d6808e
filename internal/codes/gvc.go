package codes

import (
	"regexp"
	"strings"
)

// gvcDescriptions maps the 3-digit Geschäftsvorfallcode prefix that opens
// a GVC-coded :86: payload to its German banking description. Not
// exhaustive; unknown codes are carried verbatim by the caller.
var gvcDescriptions = map[string]string{
	"051": "Überweisungsgutschrift",
	"052": "Dauerauftragsgutschrift",
	"053": "Überweisungsauftrag",
	"166": "SEPA-Überweisungsgutschrift",
	"167": "SEPA-Lastschrift",
	"171": "SEPA-Dauerauftragsgutschrift",
	"191": "Zinsen/Spesen",
	"808": "Dauerauftragsbelastung",
	"809": "Lastschrift",
}

// GVCDescription returns the human-readable description of a GVC code.
func GVCDescription(code string) (string, bool) {
	d, ok := gvcDescriptions[code]
	return d, ok
}

var gvcCodeRe = regexp.MustCompile(`^(\d{3})`)

// ParseGVCCode extracts the leading 3-digit GVC code from a :86: payload,
// if present.
func ParseGVCCode(payload string) (string, bool) {
	m := gvcCodeRe.FindStringSubmatch(payload)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// sepaKeywords lists the structured SEPA remittance keywords decoded from
// a GVC-coded :86: payload, in the fixed priority order the wire profile
// defines them. Each segment runs from its keyword to the start of the
// next recognised keyword, or to the end of the field.
var sepaKeywords = []string{
	"EREF+", "MREF+", "CRED+", "DEBT+", "SVWZ+", "ABWA+", "ABWE+",
	"IBAN+", "BIC+", "AMD+", "OAMT+", "COAM+", "BOOK+", "PURP+",
	"RRSN+", "KREF+",
}

// SepaField returns the entity field name a SEPA keyword decodes into,
// trimming the trailing "+".
func SepaField(keyword string) string {
	return strings.TrimSuffix(keyword, "+")
}

// DecodeSepaSegments splits a GVC payload's free-text remainder (after the
// leading 3-digit code and any ?-numbered sub-tag markers have been
// stripped by the caller) into the structured keyword segments it
// contains, keyed by keyword without its "+"; the returned map carries no
// order. Segments for keywords absent from the text are omitted from the
// result, and only the first occurrence of each keyword is decoded.
func DecodeSepaSegments(text string) map[string]string {
	type hit struct {
		keyword string
		start   int
	}
	var hits []hit
	for _, kw := range sepaKeywords {
		if idx := strings.Index(text, kw); idx >= 0 {
			hits = append(hits, hit{kw, idx})
		}
	}
	if len(hits) == 0 {
		return nil
	}
	// Sort hits by position so each segment's end is the next hit's start.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].start < hits[j-1].start; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}
	result := make(map[string]string, len(hits))
	for i, h := range hits {
		segStart := h.start + len(h.keyword)
		segEnd := len(text)
		if i+1 < len(hits) {
			segEnd = hits[i+1].start
		}
		result[SepaField(h.keyword)] = strings.TrimSpace(text[segStart:segEnd])
	}
	return result
}

// BankTransactionCode classifies a CAMT entry's BkTxCd/Domn triple
// (domain, family, sub-family), the ISO 20022 external bank transaction
// code lists.
type BankTransactionCode struct {
	Domain    string
	Family    string
	SubFamily string
}

// IsReturn reports whether the code's sub-family marks a returned/rejected
// transaction (the RR family member of most ISO 20022 domains).
func (b BankTransactionCode) IsReturn() bool {
	return strings.HasPrefix(b.SubFamily, "RR") || strings.HasPrefix(b.SubFamily, "RJCT")
}

// IsReversal reports whether the code's sub-family marks a reversal.
func (b BankTransactionCode) IsReversal() bool {
	return strings.Contains(b.SubFamily, "RVSL")
}
