package builders

// DiagnosticSink receives a human-readable diagnostic line from a
// builder, e.g. "built a statement document with no entries or
// transactions" from Build() on a document with no line items. It is the
// optional callback spec §9 calls out ("some builders emit a log line on
// empty document... expose this as an optional diagnostic sink callback
// and let the caller decide"): the core never hard-depends on logging to
// behave correctly, so a builder's zero value leaves this nil and simply
// skips the call rather than defaulting to any particular logger.
// Callers that do want these lines logged typically pass
// logging.GetLogger().Debug as the sink.
type DiagnosticSink func(string)

func (s DiagnosticSink) emit(msg string) {
	if s != nil {
		s(msg)
	}
}
