package builders

import (
	"github.com/shopspring/decimal"

	"finfmt/internal/datev"
)

// BookingBatchBuilder accumulates a datev.BookingBatch. Unlike
// StatementBuilder/PaymentInitiationBuilder, it mutates itself in place
// and returns the same pointer from every method — the discipline spec §9
// allows for DATEV CSV "where incremental row accumulation dominates":
// a batch commonly grows one row per source transaction in a tight loop,
// where persistent-copy-per-append would be wasted allocation for no
// branching benefit, since nobody keeps the intermediate partial batches.
func NewBookingBatchBuilder() *BookingBatchBuilder {
	return &BookingBatchBuilder{}
}

// BookingBatchBuilder is the mutating builder for a datev.BookingBatch.
type BookingBatchBuilder struct {
	batch datev.BookingBatch
	sink  DiagnosticSink
}

// WithDiagnosticSink sets the callback Build uses to report non-fatal
// diagnostics, e.g. building a batch with no rows. Nil (the default)
// disables these diagnostics entirely.
func (b *BookingBatchBuilder) WithDiagnosticSink(sink DiagnosticSink) *BookingBatchBuilder {
	b.sink = sink
	return b
}

// WithMeta sets the batch's meta-header.
func (b *BookingBatchBuilder) WithMeta(meta datev.MetaHeader) *BookingBatchBuilder {
	b.batch.Meta = meta
	return b
}

// AddRow appends a booking row built from the given fields.
func (b *BookingBatchBuilder) AddRow(amount decimal.Decimal, direction, currency, account, contraAccount string) *BookingBatchBuilder {
	b.batch.Rows = append(b.batch.Rows, datev.BookingRow{
		Amount:        amount,
		Direction:     direction,
		Currency:      currency,
		Account:       account,
		ContraAccount: contraAccount,
	})
	return b
}

// AddBookingRow appends a fully-populated booking row, for callers that
// need the posting-key/cost-centre/document-reference fields AddRow
// leaves at their zero value.
func (b *BookingBatchBuilder) AddBookingRow(row datev.BookingRow) *BookingBatchBuilder {
	b.batch.Rows = append(b.batch.Rows, row)
	return b
}

// SetDocumentFields sets the document date/reference fields on the most
// recently added row. It is a no-op on an empty builder.
func (b *BookingBatchBuilder) SetDocumentFields(date, field1, field2 string) *BookingBatchBuilder {
	if len(b.batch.Rows) == 0 {
		return b
	}
	last := &b.batch.Rows[len(b.batch.Rows)-1]
	last.DocumentDate = date
	last.DocumentField1 = field1
	last.DocumentField2 = field2
	return b
}

// SetText sets the posting text on the most recently added row. It is a
// no-op on an empty builder.
func (b *BookingBatchBuilder) SetText(text string) *BookingBatchBuilder {
	if len(b.batch.Rows) == 0 {
		return b
	}
	b.batch.Rows[len(b.batch.Rows)-1].Text = text
	return b
}

// SetCostCentres sets the cost-centre fields on the most recently added
// row. It is a no-op on an empty builder.
func (b *BookingBatchBuilder) SetCostCentres(centre1, centre2 string) *BookingBatchBuilder {
	if len(b.batch.Rows) == 0 {
		return b
	}
	last := &b.batch.Rows[len(b.batch.Rows)-1]
	last.CostCentre1 = centre1
	last.CostCentre2 = centre2
	return b
}

// Build runs the batch's single validation pass and returns the finished
// batch, or the accumulated validation failures as an error.
func (b *BookingBatchBuilder) Build() (datev.BookingBatch, error) {
	if len(b.batch.Rows) == 0 {
		b.sink.emit("built a DATEV booking batch with no rows")
	}
	if errs := b.batch.Validate(); errs.HasErrors() {
		return datev.BookingBatch{}, errs.ErrorOrNil()
	}
	return b.batch, nil
}
