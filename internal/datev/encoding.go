package datev

import (
	"golang.org/x/text/encoding/charmap"

	"finfmt/internal/logging"
)

// encodeWindows1252 transliterates s into its Windows-1252 byte form,
// replacing any rune the code page cannot represent with '?' (spec
// §4.5.3: "characters not representable in the target encoding are
// replaced by ?").
func encodeWindows1252(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
		} else {
			logging.GetLogger().Warn("character not representable in Windows-1252, replaced with '?'",
				logging.Field{Key: "rune", Value: r})
			out = append(out, '?')
		}
	}
	return out
}

// decodeWindows1252 renders a Windows-1252 byte sequence as a Go string.
func decodeWindows1252(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = charmap.Windows1252.DecodeByte(c)
	}
	return string(runes)
}
