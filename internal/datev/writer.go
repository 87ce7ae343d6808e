package datev

import (
	"bytes"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"finfmt/internal/logging"
)

// Write encodes batch as a DATEV V700 export: the meta-header row, the
// field-header row, then one CSV row per BookingRow, CRLF-delimited and
// Windows-1252 encoded by default (spec §4.5.3). cfg's Enclosure is honored
// here; Read only understands the standard '"' enclosure on input, since
// gocsv's underlying encoding/csv reader hard-codes it.
func Write(w io.Writer, batch BookingBatch, cfg Format) error {
	if err := batch.Validate().ErrorOrNil(); err != nil {
		return fmt.Errorf("validating DATEV batch: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(cfg.encodeRow(batch.Meta.toRow()))
	buf.WriteString("\r\n")
	buf.WriteString(cfg.encodeRow(fieldHeaderRow()))
	buf.WriteString("\r\n")

	csvRows := make([]bookingCSVRow, len(batch.Rows))
	for i, row := range batch.Rows {
		csvRows[i] = row.toCSVRow()
	}

	lines, err := marshalBookingCSVRows(csvRows)
	if err != nil {
		return err
	}
	for _, line := range lines {
		buf.WriteString(cfg.encodeRow(line))
		buf.WriteString("\r\n")
	}

	logging.GetLogger().Debug("encoding DATEV booking batch",
		logging.Field{Key: logging.FieldDelimiter, Value: string(cfg.delimiter())},
		logging.Field{Key: logging.FieldCount, Value: len(batch.Rows)})

	out := buf.String()
	if cfg.PlainEncoding {
		_, err := w.Write([]byte(out))
		return err
	}
	_, err := w.Write(encodeWindows1252(out))
	return err
}

func fieldHeaderRow() []string {
	row := make([]string, len(bookingFieldOrder))
	for i, k := range bookingFieldOrder {
		row[i] = string(k)
	}
	return row
}

// marshalBookingCSVRows renders rows through gocsv's struct-tag encoding
// (the same tag set Read decodes against) and splits its output back into
// per-row field slices, so Write can re-frame them with cfg's own
// delimiter/enclosure instead of gocsv's fixed comma/standard-quote
// output.
func marshalBookingCSVRows(rows []bookingCSVRow) ([][]string, error) {
	var buf bytes.Buffer
	if err := gocsv.MarshalWithoutHeaders(rows, &buf); err != nil {
		return nil, fmt.Errorf("encoding DATEV booking rows: %w", err)
	}
	gocsvFraming := Format{Delimiter: ',', Enclosure: '"'}
	var lines [][]string
	for _, line := range splitLines(buf.String()) {
		lines = append(lines, gocsvFraming.decodeRow(line))
	}
	return lines, nil
}
