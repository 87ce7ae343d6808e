// Package dateutils centralizes the date layouts and parsing rules the
// wire formats disagree on: SWIFT MT's six-digit YYMMDD, ISO 20022's
// YYYY-MM-DD, and DATEV's dd.mm.yyyy.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"finfmt/internal/finerr"
)

// Layouts used across the supported wire formats.
const (
	LayoutISO      = "2006-01-02"
	LayoutEuropean = "02.01.2006"
	LayoutMT6      = "060102" // SWIFT MT YYMMDD
	LayoutMT4      = "0102"   // SWIFT MT MMDD (same-year follow-on in :61:)
)

// ParseMT6 parses a SWIFT six-digit YYMMDD date (used by :60F:, :61:,
// :62F:, :28C: and similar MT tags).
func ParseMT6(s string) (time.Time, error) {
	if len(s) != 6 {
		return time.Time{}, finerr.New(finerr.InvalidValue, "", fmt.Sprintf("MT date must be 6 digits, got %q", s))
	}
	t, err := time.Parse(LayoutMT6, s)
	if err != nil {
		return time.Time{}, finerr.New(finerr.InvalidValue, "", fmt.Sprintf("invalid MT date %q: %v", s, err))
	}
	return t, nil
}

// FormatMT6 renders t as a SWIFT six-digit YYMMDD date.
func FormatMT6(t time.Time) string { return t.Format(LayoutMT6) }

// ParseMT4 parses a SWIFT four-digit MMDD date, resolving the year by
// pairing it with the given reference year (the :61: entry date, which
// may roll over into the following year relative to the statement's
// opening balance date).
func ParseMT4(s string, referenceYear int) (time.Time, error) {
	if len(s) != 4 {
		return time.Time{}, finerr.New(finerr.InvalidValue, "", fmt.Sprintf("MT short date must be 4 digits, got %q", s))
	}
	t, err := time.Parse(LayoutMT4, s)
	if err != nil {
		return time.Time{}, finerr.New(finerr.InvalidValue, "", fmt.Sprintf("invalid MT short date %q: %v", s, err))
	}
	return time.Date(referenceYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseISO parses an ISO 20022 YYYY-MM-DD date, tolerating a trailing
// time/offset component (camt.053 Dt/DtTm variance) by truncating at "T".
func ParseISO(s string) (time.Time, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	t, err := time.Parse(LayoutISO, s)
	if err != nil {
		return time.Time{}, finerr.New(finerr.InvalidValue, "", fmt.Sprintf("invalid ISO date %q: %v", s, err))
	}
	return t, nil
}

// FormatISO renders t as an ISO 20022 YYYY-MM-DD date.
func FormatISO(t time.Time) string { return t.Format(LayoutISO) }

// ParseEuropean parses a DATEV dd.mm.yyyy date.
func ParseEuropean(s string) (time.Time, error) {
	t, err := time.Parse(LayoutEuropean, s)
	if err != nil {
		return time.Time{}, finerr.New(finerr.InvalidValue, "", fmt.Sprintf("invalid European date %q: %v", s, err))
	}
	return t, nil
}

// FormatEuropean renders t as a DATEV dd.mm.yyyy date.
func FormatEuropean(t time.Time) string { return t.Format(LayoutEuropean) }
