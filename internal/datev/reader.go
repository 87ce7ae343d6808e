package datev

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"finfmt/internal/finerr"
	"finfmt/internal/logging"
)

// Read decodes a DATEV V700 Buchungsstapel export from r: a meta-header
// row decoded positionally, a field-header row naming the data columns,
// and the data rows themselves (spec §4.4.4). cfg selects the delimiter
// and encoding; the zero value is the DATEV default (';', Windows-1252).
func Read(r io.Reader, cfg Format) (BookingBatch, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return BookingBatch{}, fmt.Errorf("reading DATEV export: %w", err)
	}

	text := string(raw)
	if !cfg.PlainEncoding {
		text = decodeWindows1252(raw)
	}

	lines := splitLines(text)
	if len(lines) < 2 {
		return BookingBatch{}, finerr.New(finerr.Lex, "", "DATEV export must carry a meta-header and a field-header row")
	}

	meta, err := metaHeaderFromRow(cfg.decodeRow(lines[0]))
	if err != nil {
		return BookingBatch{}, err
	}

	header := decodeFieldHeader(cfg, lines[1])
	if err := validateFieldHeader(header); err != nil {
		return BookingBatch{}, err
	}

	for i, line := range lines[2:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := cfg.decodeRow(line)
		if len(fields) != len(header) {
			return BookingBatch{}, finerr.New(finerr.Inconsistency, rowPath(i),
				fmt.Sprintf("row has %d fields, field-header declares %d", len(fields), len(header)))
		}
	}

	dataText := strings.Join(lines[1:], "\n")
	csvReader := csv.NewReader(strings.NewReader(dataText))
	csvReader.Comma = cfg.delimiter()

	var csvRows []bookingCSVRow
	if err := gocsv.UnmarshalCSV(csvReader, &csvRows); err != nil {
		return BookingBatch{}, fmt.Errorf("parsing DATEV booking rows: %w", err)
	}

	rows := make([]BookingRow, len(csvRows))
	for i, c := range csvRows {
		rows[i] = bookingRowFromCSV(c)
	}

	logging.GetLogger().Debug("decoded DATEV booking batch",
		logging.Field{Key: logging.FieldDelimiter, Value: string(cfg.delimiter())},
		logging.Field{Key: logging.FieldCount, Value: len(rows)})

	return BookingBatch{Meta: meta, Rows: rows}, nil
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func decodeFieldHeader(cfg Format, line string) []FieldKey {
	raw := cfg.decodeRow(line)
	header := make([]FieldKey, len(raw))
	for i, f := range raw {
		header[i] = FieldKey(f)
	}
	return header
}

func validateFieldHeader(header []FieldKey) error {
	if len(header) != len(bookingFieldOrder) {
		return finerr.New(finerr.UnsupportedCombination, "field-header",
			fmt.Sprintf("expected %d columns, got %d", len(bookingFieldOrder), len(header)))
	}
	for i, key := range header {
		if key != bookingFieldOrder[i] {
			return finerr.New(finerr.InvalidValue, "field-header",
				fmt.Sprintf("column %d: expected %q, got %q", i, bookingFieldOrder[i], key))
		}
	}
	return nil
}
