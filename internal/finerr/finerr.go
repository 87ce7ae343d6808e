// Package finerr implements the closed error taxonomy every parser,
// builder, and generator in this module reports through. Validation
// failures are never raw strings: each carries a Kind, a structural Path
// (e.g. "GrpHdr/MsgId"), and enough context to render a useful diagnostic
// without re-throwing untouched input as a message.
package finerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which branch of the taxonomy an Error belongs to.
type Kind int

const (
	// Lex marks an ill-formed envelope: unbalanced braces, a missing
	// block-4 end marker, or any other framing defect. Lex errors are
	// fatal to the whole parse; they are never accumulated with others.
	Lex Kind = iota
	// MissingField marks a mandatory element absent at Path.
	MissingField
	// InvalidValue marks a value present but not matching its wire
	// profile (bad date, non-decimal amount, out-of-range enum).
	InvalidValue
	// LengthViolation marks an identifier exceeding its length cap.
	LengthViolation
	// Inconsistency marks a cross-field invariant violation (balance
	// reconciliation, control sum mismatch).
	Inconsistency
	// UnknownType marks a failed type-detection step.
	UnknownType
	// UnknownVersion marks a failed version-detection step.
	UnknownVersion
	// UnsupportedCombination marks a (type, version) pair absent from
	// the supported matrix.
	UnsupportedCombination
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "Lex"
	case MissingField:
		return "MissingField"
	case InvalidValue:
		return "InvalidValue"
	case LengthViolation:
		return "LengthViolation"
	case Inconsistency:
		return "Inconsistency"
	case UnknownType:
		return "UnknownType"
	case UnknownVersion:
		return "UnknownVersion"
	case UnsupportedCombination:
		return "UnsupportedCombination"
	default:
		return "Unknown"
	}
}

// Error is the single structured error type returned by this module.
// Path is a '/'-separated structural location, empty when not applicable.
// Reason carries the human-readable explanation; Max/Actual are populated
// only for LengthViolation.
type Error struct {
	Kind   Kind
	Path   string
	Reason string
	Max    int
	Actual int
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Path != "" {
		fmt.Fprintf(&b, "(%s)", e.Path)
	}
	if e.Kind == LengthViolation {
		fmt.Fprintf(&b, ": max %d, got %d", e.Max, e.Actual)
		return b.String()
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	return b.String()
}

// Is supports errors.Is comparisons against a sentinel built with the same
// Kind (Path/Reason are ignored, matching the taxonomy-only contract).
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

func New(kind Kind, path, reason string) *Error {
	return &Error{Kind: kind, Path: path, Reason: reason}
}

func NewLength(path string, max, actual int) *Error {
	return &Error{Kind: LengthViolation, Path: path, Max: max, Actual: actual}
}

// List aggregates multiple violations, the shape parsers and builders
// return from a single pass. It implements error directly (no need for
// go.uber.org/multierr: errors.Join already gives the same joined-message
// and errors.Is/As-friendly behavior the taxonomy needs).
type List struct {
	Errors []error
}

func (l *List) Add(err error) {
	if err == nil {
		return
	}
	l.Errors = append(l.Errors, err)
}

func (l *List) HasErrors() bool { return len(l.Errors) > 0 }

func (l *List) ErrorOrNil() error {
	if !l.HasErrors() {
		return nil
	}
	return l
}

func (l *List) Error() string {
	msgs := make([]string, len(l.Errors))
	for i, e := range l.Errors {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

func (l *List) Unwrap() []error { return l.Errors }
