package mtparser

import (
	"strings"

	"finfmt/internal/codes"
	"finfmt/internal/entities"
)

// ParseTransactionRemittance decodes a :86: payload following a :61: line.
// A GVC-coded payload opens with a 3-digit transaction code followed by
// "?nn"-numbered sub-fields; its free text (with the "?nn" markers
// stripped) is then scanned for SEPA keyword segments. A payload without
// a recognised leading GVC code is carried as unstructured remittance text.
func ParseTransactionRemittance(payload string) entities.RemittanceInformation {
	gvcCode, hasGVC := codes.ParseGVCCode(payload)
	if !hasGVC {
		return entities.RemittanceFromText(strings.TrimSpace(payload))
	}
	text := stripSubFieldMarkers(payload[len(gvcCode):])
	segments := codes.DecodeSepaSegments(text)
	if len(segments) == 0 {
		return entities.RemittanceFromText(strings.TrimSpace(text))
	}
	return entities.RemittanceInformation{Structured: segments, GVCCode: gvcCode}
}

// stripSubFieldMarkers removes the "?nn" sub-field position markers a
// GVC-coded payload uses to delimit its fixed sub-fields, leaving the
// free text behind them concatenated.
func stripSubFieldMarkers(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '?' && i+2 < len(s) && isDigit(s[i+1]) && isDigit(s[i+2]) {
			i += 3
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
