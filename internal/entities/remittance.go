package entities

// remittanceLineMax is the wire cap (in code units) each unstructured
// remittance segment is split into: 140 for ISO 20022 Ustrd lines.
const remittanceLineMax = 140

// RemittanceInformation carries either unstructured free-text segments or
// a set of structured SEPA-keyword fields decoded from a GVC :86: payload
// (EREF, MREF, SVWZ, CRED, DEBT, KREF, COAM, OAMT, BOOK, PURP, RRSN, ABWA,
// ABWE, IBAN, BIC), never both populated by the same parse.
type RemittanceInformation struct {
	Unstructured []string
	Structured   map[string]string
	// GVCCode is the 3-digit Geschäftsvorfallcode that opened the
	// GVC-coded payload this was decoded from, empty when Structured
	// was populated some other way or not at all.
	GVCCode string
}

// RemittanceFromText splits text into segments of at most 140 code units each,
// preserving byte order and insertion order. Splitting counts UTF-8 code
// units, not grapheme clusters, matching the ISO 20022 Ustrd wire profile.
func RemittanceFromText(text string) RemittanceInformation {
	if text == "" {
		return RemittanceInformation{}
	}
	b := []byte(text)
	var segments []string
	for len(b) > 0 {
		n := remittanceLineMax
		if n > len(b) {
			n = len(b)
		}
		segments = append(segments, string(b[:n]))
		b = b[n:]
	}
	return RemittanceInformation{Unstructured: segments}
}

// IsStructured reports whether this remittance carries decoded SEPA fields.
func (r RemittanceInformation) IsStructured() bool { return len(r.Structured) > 0 }

// Field returns a structured SEPA field by name (without trailing "+"),
// e.g. Field("EREF") for the end-to-end reference segment.
func (r RemittanceInformation) Field(name string) (string, bool) {
	v, ok := r.Structured[name]
	return v, ok
}

// FullText concatenates the unstructured segments back into one string,
// the inverse of RemittanceFromText.
func (r RemittanceInformation) FullText() string {
	var out string
	for _, s := range r.Unstructured {
		out += s
	}
	return out
}
