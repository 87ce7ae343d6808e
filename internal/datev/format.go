// Package datev implements the DATEV V700 CSV export/import used by C4.4
// (reader) and C5.3 (generator): a two-row header discipline (a
// positionally-decoded meta-header row, then a field-header row that names
// the data columns by ordinal position) followed by data rows, framed as
// CSV with a configurable delimiter and enclosure and encoded Windows-1252
// by default (spec §4.4.4/§4.5.3).
package datev

import "strings"

// Format carries the CSV framing and encoding parameters every reader and
// generator in this package takes as an explicit value rather than reading
// from environment or file (spec §1 "no I/O", SPEC_FULL §A.3). The zero
// value is the DATEV default: ';' delimiter, '"' enclosure, Windows-1252.
type Format struct {
	Delimiter rune
	Enclosure rune
	// PlainEncoding, when true, skips the Windows-1252 transliteration
	// and reads/writes UTF-8 instead. DATEV exports are Windows-1252 by
	// default; this is the "configurable override" spec §4.5.3 allows.
	PlainEncoding bool
}

func (f Format) delimiter() rune {
	if f.Delimiter == 0 {
		return ';'
	}
	return f.Delimiter
}

func (f Format) enclosure() rune {
	if f.Enclosure == 0 {
		return '"'
	}
	return f.Enclosure
}

// encodeRow CSV-encodes fields per spec §4.4.4: a field containing the
// delimiter, the enclosure, or a newline is quoted, and an embedded
// enclosure is doubled.
func (f Format) encodeRow(fields []string) string {
	delim := f.delimiter()
	enc := f.enclosure()
	encStr := string(enc)
	parts := make([]string, len(fields))
	for i, field := range fields {
		if strings.ContainsRune(field, delim) || strings.ContainsRune(field, enc) ||
			strings.ContainsAny(field, "\r\n") {
			field = encStr + strings.ReplaceAll(field, encStr, encStr+encStr) + encStr
		}
		parts[i] = field
	}
	return strings.Join(parts, string(delim))
}

// decodeRow splits one CSV line into fields, honoring the configured
// delimiter and enclosure (including a doubled embedded enclosure).
func (f Format) decodeRow(line string) []string {
	delim := f.delimiter()
	enc := f.enclosure()

	var fields []string
	var cur strings.Builder
	inQuotes := false
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes:
			if r == enc {
				if i+1 < len(runes) && runes[i+1] == enc {
					cur.WriteRune(enc)
					i++
				} else {
					inQuotes = false
				}
			} else {
				cur.WriteRune(r)
			}
		case r == enc:
			inQuotes = true
		case r == delim:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
