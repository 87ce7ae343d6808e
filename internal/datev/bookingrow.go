package datev

import (
	"github.com/shopspring/decimal"

	"finfmt/internal/currencyutils"
	"finfmt/internal/logging"
)

// FieldKey names a DATEV booking-batch data column. The field-header row
// carries these names in file order, matching the csv struct tags below;
// FieldIndex resolves a key's ordinal position against that row (spec
// §4.4.4: "the key used to resolve getFieldIndex(FieldKey) is the ordinal
// from that table").
type FieldKey string

const (
	FieldUmsatz       FieldKey = "Umsatz (ohne Soll/Haben-Kz)"
	FieldSollHaben    FieldKey = "Soll/Haben-Kennzeichen"
	FieldWKZUmsatz    FieldKey = "WKZ Umsatz"
	FieldKonto        FieldKey = "Konto"
	FieldGegenkonto   FieldKey = "Gegenkonto (ohne BU-Schlüssel)"
	FieldBUSchluessel FieldKey = "BU-Schlüssel"
	FieldBelegdatum   FieldKey = "Belegdatum"
	FieldBelegfeld1   FieldKey = "Belegfeld 1"
	FieldBelegfeld2   FieldKey = "Belegfeld 2"
	FieldBuchungstext FieldKey = "Buchungstext"
	FieldKost1        FieldKey = "KOST1 - Kostenstelle"
	FieldKost2        FieldKey = "KOST2 - Kostenstelle"
)

// bookingFieldOrder is the file order of the field-header row this engine
// reads and writes, the index FieldIndex resolves against. It must list
// every csv-tagged field of bookingCSVRow in declaration order.
var bookingFieldOrder = []FieldKey{
	FieldUmsatz, FieldSollHaben, FieldWKZUmsatz, FieldKonto, FieldGegenkonto,
	FieldBUSchluessel, FieldBelegdatum, FieldBelegfeld1, FieldBelegfeld2,
	FieldBuchungstext, FieldKost1, FieldKost2,
}

// FieldIndex returns key's ordinal position in the field-header row, or
// false if the header does not carry that column.
func FieldIndex(header []FieldKey, key FieldKey) (int, bool) {
	for i, k := range header {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

// bookingCSVRow is the gocsv-tagged shape of one Buchungsstapel data row;
// its csv tags are the German DATEV column names gocsv matches against the
// field-header row. BookingRow (below) is the typed value the rest of the
// package works with; toCSVRow/bookingRowFromCSV convert between the two.
type bookingCSVRow struct {
	Umsatz        string `csv:"Umsatz (ohne Soll/Haben-Kz)"`
	SollHaben     string `csv:"Soll/Haben-Kennzeichen"`
	WKZUmsatz     string `csv:"WKZ Umsatz"`
	Konto         string `csv:"Konto"`
	Gegenkonto    string `csv:"Gegenkonto (ohne BU-Schlüssel)"`
	BUSchluessel  string `csv:"BU-Schlüssel"`
	Belegdatum    string `csv:"Belegdatum"`
	Belegfeld1    string `csv:"Belegfeld 1"`
	Belegfeld2    string `csv:"Belegfeld 2"`
	Buchungstext  string `csv:"Buchungstext"`
	Kost1         string `csv:"KOST1 - Kostenstelle"`
	Kost2         string `csv:"KOST2 - Kostenstelle"`
}

// BookingRow is one data row of a Buchungsstapel (booking batch) export: a
// single posting between Konto and Gegenkonto.
type BookingRow struct {
	Amount         decimal.Decimal // always positive; sign carried by Direction
	Direction      string          // "S" (Soll/debit) or "H" (Haben/credit), DATEV wire form
	Currency       string
	Account        string
	ContraAccount  string
	PostingKey     string // BU-Schlüssel
	DocumentDate   string // ddMM, DATEV's short booking-date form
	DocumentField1 string // invoice/reference number
	DocumentField2 string
	Text           string
	CostCentre1    string
	CostCentre2    string
}

func (r BookingRow) toCSVRow() bookingCSVRow {
	return bookingCSVRow{
		Umsatz:       r.Amount.StringFixed(2),
		SollHaben:    r.Direction,
		WKZUmsatz:    r.Currency,
		Konto:        r.Account,
		Gegenkonto:   r.ContraAccount,
		BUSchluessel: r.PostingKey,
		Belegdatum:   r.DocumentDate,
		Belegfeld1:   r.DocumentField1,
		Belegfeld2:   r.DocumentField2,
		Buchungstext: r.Text,
		Kost1:        r.CostCentre1,
		Kost2:        r.CostCentre2,
	}
}

// bookingRowFromCSV decodes a data row's Umsatz column via
// currencyutils.ParseAmount rather than decimal.NewFromString directly,
// since DATEV exports from different locales mix comma- and dot-decimal
// conventions that ParseAmount's StandardizeAmount already normalizes.
func bookingRowFromCSV(c bookingCSVRow) BookingRow {
	amount, err := currencyutils.ParseAmount(c.Umsatz)
	if err != nil {
		logging.GetLogger().Warn("DATEV Umsatz column did not parse as an amount, defaulting to zero",
			logging.Field{Key: logging.FieldError, Value: err.Error()})
	}
	if currencyutils.IsNegative(amount) {
		logging.GetLogger().Warn("DATEV Umsatz column carried a negative amount; BookingRow.Amount is documented always-positive with sign carried by Soll/Haben-Kennzeichen")
	}
	return BookingRow{
		Amount:         amount,
		Direction:      c.SollHaben,
		Currency:       c.WKZUmsatz,
		Account:        c.Konto,
		ContraAccount:  c.Gegenkonto,
		PostingKey:     c.BUSchluessel,
		DocumentDate:   c.Belegdatum,
		DocumentField1: c.Belegfeld1,
		DocumentField2: c.Belegfeld2,
		Text:           c.Buchungstext,
		CostCentre1:    c.Kost1,
		CostCentre2:    c.Kost2,
	}
}
