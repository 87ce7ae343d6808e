package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldParser        = "parser"
	FieldTransactionID = "transaction_id"
	FieldReason        = "reason"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
)
