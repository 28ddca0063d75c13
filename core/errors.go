package core

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes translation errors.
type ErrorKind string

const (
	KindMalformedLine    ErrorKind = "MalformedLine"
	KindInvalidLabelName ErrorKind = "InvalidLabelName"
	KindUnknownMnemonic  ErrorKind = "UnknownMnemonic"
	KindUnresolvedSymbol ErrorKind = "UnresolvedSymbol"
	KindDuplicateLabel   ErrorKind = "DuplicateLabel"
)

// Sentinels for errors.Is checks against a *Error.
var (
	ErrMalformedLine    = errors.New("malformed line")
	ErrInvalidLabelName = errors.New("invalid label name")
	ErrUnknownMnemonic  = errors.New("unknown mnemonic")
	ErrUnresolvedSymbol = errors.New("unresolved symbol")
	ErrDuplicateLabel   = errors.New("duplicate label")
)

var sentinels = map[ErrorKind]error{
	KindMalformedLine:    ErrMalformedLine,
	KindInvalidLabelName: ErrInvalidLabelName,
	KindUnknownMnemonic:  ErrUnknownMnemonic,
	KindUnresolvedSymbol: ErrUnresolvedSymbol,
	KindDuplicateLabel:   ErrDuplicateLabel,
}

// Error is a fatal translation error. Line is the 1-based number of the source
// line the offending instruction came from, or 0 if unknown.
type Error struct {
	Kind   ErrorKind
	Line   int
	Text   string
	Detail string
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Line > 0 {
		msg += fmt.Sprintf(" on line %d", e.Line)
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" %q", e.Text)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the sentinel matching the error kind.
func (e *Error) Unwrap() error {
	return sentinels[e.Kind]
}

func newError(kind ErrorKind, line SourceLine, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Line:   line.Number,
		Text:   line.Text,
		Detail: fmt.Sprintf(format, args...),
	}
}
