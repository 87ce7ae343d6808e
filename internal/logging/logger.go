// Package logging provides the centralized, injectable logging facility used
// across parsers, generators, and builders. The module performs no I/O of
// its own and never reads configuration from the environment: components
// log through the shared Logger returned by GetLogger, and callers that
// want diagnostics routed elsewhere construct a Logger (usually via
// NewLogrusAdapter) and install it with SetLogger.
package logging

import "sync"

var (
	defaultLogger Logger
	once          sync.Once
)

// GetLogger returns the shared default logger, lazily creating a quiet
// logrus-backed one at info level the first time it is needed.
func GetLogger() Logger {
	once.Do(func() {
		if defaultLogger == nil {
			defaultLogger = NewLogrusAdapter("info", "text")
		}
	})
	return defaultLogger
}

// SetLogger overrides the shared default logger so every component that
// falls back to GetLogger reports to the same sink.
func SetLogger(logger Logger) {
	if logger == nil {
		return
	}
	defaultLogger = logger
}
