package datev

import (
	"fmt"
	"time"

	"finfmt/internal/finerr"
)

// Category is the DATEV Formatkategorie code identifying what kind of
// export a file carries.
type Category int

const (
	CategoryBookingBatch   Category = 21 // Buchungsstapel
	CategoryDebtorCreditor Category = 16 // Debitoren/Kreditoren
)

// MetaHeader is the first row of a DATEV V700 export: a fixed,
// positionally-decoded set of fields describing the export itself (spec
// §4.4.4 "the meta-header row is decoded positionally against a
// definition table"). Only the fields a booking-batch/debtor-creditor
// export actually needs are modelled; DATEV's full meta-header carries
// further reserved columns this engine never populates (documented in
// DESIGN.md as a deliberate scope reduction).
type MetaHeader struct {
	FormatName       string // "EXTF"
	VersionNumber    int    // 700
	Category         Category
	FormatLabel      string // "Buchungsstapel", "Debitoren/Kreditoren"
	FormatVersion    int
	GeneratedAt      time.Time
	AdvisorNumber    string
	ClientNumber     string
	FiscalYearStart  time.Time
	AccountLength    int
	PeriodFrom       time.Time
	PeriodTo         time.Time
	Description      string
	DictationCode    string
	CurrencyCode     string
}

const metaHeaderLayout = "20060102150405000"
const metaHeaderDateLayout = "20060102"

// metaHeaderFieldCount is the number of positional columns this engine
// reads and writes; real DATEV exports carry more reserved trailing
// columns, left absent here.
const metaHeaderFieldCount = 15

func (h MetaHeader) toRow() []string {
	return []string{
		firstNonEmpty(h.FormatName, "EXTF"),
		fmt.Sprintf("%d", firstNonZeroInt(h.VersionNumber, 700)),
		fmt.Sprintf("%d", int(h.Category)),
		h.FormatLabel,
		fmt.Sprintf("%d", h.FormatVersion),
		formatMetaTimestamp(h.GeneratedAt),
		h.AdvisorNumber,
		h.ClientNumber,
		formatMetaDate(h.FiscalYearStart),
		fmt.Sprintf("%d", h.AccountLength),
		formatMetaDate(h.PeriodFrom),
		formatMetaDate(h.PeriodTo),
		h.Description,
		h.DictationCode,
		firstNonEmpty(h.CurrencyCode, "EUR"),
	}
}

func metaHeaderFromRow(row []string) (MetaHeader, error) {
	if len(row) < metaHeaderFieldCount {
		return MetaHeader{}, finerr.New(finerr.MissingField, "MetaHeader",
			fmt.Sprintf("expected %d columns, got %d", metaHeaderFieldCount, len(row)))
	}
	var h MetaHeader
	h.FormatName = row[0]
	if _, err := fmt.Sscanf(row[1], "%d", &h.VersionNumber); err != nil {
		return MetaHeader{}, finerr.New(finerr.InvalidValue, "MetaHeader/VersionNumber", err.Error())
	}
	var cat int
	if _, err := fmt.Sscanf(row[2], "%d", &cat); err != nil {
		return MetaHeader{}, finerr.New(finerr.InvalidValue, "MetaHeader/Category", err.Error())
	}
	h.Category = Category(cat)
	h.FormatLabel = row[3]
	fmt.Sscanf(row[4], "%d", &h.FormatVersion)
	h.GeneratedAt = parseMetaTimestamp(row[5])
	h.AdvisorNumber = row[6]
	h.ClientNumber = row[7]
	h.FiscalYearStart = parseMetaDate(row[8])
	fmt.Sscanf(row[9], "%d", &h.AccountLength)
	h.PeriodFrom = parseMetaDate(row[10])
	h.PeriodTo = parseMetaDate(row[11])
	h.Description = row[12]
	h.DictationCode = row[13]
	h.CurrencyCode = row[14]
	return h, nil
}

func formatMetaTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(metaHeaderLayout)
}

func parseMetaTimestamp(s string) time.Time {
	t, err := time.Parse(metaHeaderLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func formatMetaDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(metaHeaderDateLayout)
}

func parseMetaDate(s string) time.Time {
	t, err := time.Parse(metaHeaderDateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func firstNonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func firstNonZeroInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}
