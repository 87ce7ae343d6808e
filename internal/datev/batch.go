package datev

import (
	"strconv"

	"finfmt/internal/finerr"
	"finfmt/internal/logging"
)

// BookingBatch is a decoded Buchungsstapel export: the meta-header plus
// its ordered data rows.
type BookingBatch struct {
	Meta MetaHeader
	Rows []BookingRow
}

// Validate checks the field-count-alignment invariant (spec §3.4): every
// row already shares the reader's fixed column set by construction, so
// this validates the values the invariant actually guards against —
// direction codes and non-empty account numbers.
func (b BookingBatch) Validate() finerr.List {
	var errs finerr.List
	for i, row := range b.Rows {
		path := rowPath(i)
		if row.Account == "" {
			errs.Add(finerr.New(finerr.MissingField, path+"/Konto", ""))
		}
		if row.Direction != "S" && row.Direction != "H" {
			errs.Add(finerr.New(finerr.InvalidValue, path+"/Soll-Haben-Kennzeichen", "must be S or H"))
		}
	}
	if errs.HasErrors() {
		logging.GetLogger().Warn("DATEV booking batch failed validation",
			logging.Field{Key: logging.FieldCount, Value: len(errs.Errors)},
			logging.Field{Key: logging.FieldError, Value: errs.Error()})
	}
	return errs
}

func rowPath(i int) string {
	return "Umsaetze[" + strconv.Itoa(i) + "]"
}
