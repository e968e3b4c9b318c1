package calc

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Kind classifies an [Error] by the pipeline stage that raised it.
type Kind int

const (
	// KindSyntax errors are raised while tokenizing or converting.
	KindSyntax Kind = iota + 1
	// KindEvaluation errors are raised while evaluating postfix tokens.
	KindEvaluation
)

// String returns a string representation of the error kind.
func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindEvaluation:
		return "evaluation error"
	default:
		return "error"
	}
}

// Kind sentinels. These match any [Error] of the same kind via [errors.Is].
var (
	ErrSyntax     = &Error{kind: KindSyntax}
	ErrEvaluation = &Error{kind: KindEvaluation}
)

// Syntax errors.
var (
	ErrEmptyExpression   = newError(KindSyntax, "empty expression")
	ErrUnknownIdentifier = newError(KindSyntax, "unknown identifier")
	ErrUnexpectedToken   = newError(KindSyntax, "unrecognized token")
	ErrInvalidNumber     = newError(KindSyntax, "invalid number")
	ErrExpectedParen     = newError(KindSyntax, "expected '(' after function")
	ErrMismatchedParens  = newError(KindSyntax, "mismatched parentheses")
	ErrMisplacedOperator = newError(KindSyntax, "misplaced operator")
	ErrMissingOperator   = newError(KindSyntax, "missing operator")
	ErrMissingOperand    = newError(KindSyntax, "missing operand")
	ErrUnaryMinus        = newError(KindSyntax, "invalid unary minus")
	ErrInvalidName       = newError(KindSyntax, "invalid constant name")
	ErrExportForm        = newError(KindSyntax, "expected export NAME = EXPRESSION")
	ErrNoTable           = newError(KindSyntax, "no constant table")
)

// Evaluation errors.
var (
	ErrInsufficientOperands = newError(KindEvaluation, "insufficient operands")
	ErrDivisionByZero       = newError(KindEvaluation, "division by zero")
	ErrUndefinedTangent     = newError(KindEvaluation, "undefined tangent")
	ErrMalformedExpression  = newError(KindEvaluation, "malformed expression")
)

// Error is a pipeline failure with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	kind     Kind
	msg      string
	fragment string      // offending input, quoted in the message
	err      error       // wrapped error (for errors.Unwrap)
	attrs    []slog.Attr // attributes for structured logging
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Kind returns the error kind.
func (e *Error) Kind() Kind { return e.kind }

// Fragment returns the offending input fragment, if any.
func (e *Error) Fragment() string { return e.fragment }

// Error implements the error interface.
//
// The message has the form "<kind>: <msg> "<fragment>": <cause>", omitting
// any part that is not set.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.kind.String())

	if e.msg != "" {
		b.WriteString(": ")
		b.WriteString(e.msg)
	}

	if e.fragment != "" {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.fragment))
	}

	if e.err != nil {
		b.WriteString(": ")
		b.WriteString(e.err.Error())
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a sentinel matching e. A kind sentinel
// ([ErrSyntax], [ErrEvaluation]) matches every error of its kind; any other
// sentinel matches errors derived from it with [Error.At], [Error.Wrap] or
// [Error.With].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.kind != e.kind {
		return false
	}

	if t.msg == "" {
		return true
	}

	return t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	attrs = append(attrs, slog.String("kind", e.kind.String()))

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.fragment != "" {
		attrs = append(attrs, slog.String("fragment", e.fragment))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// At returns a copy of e naming the offending input fragment.
func (e *Error) At(fragment string) *Error {
	c := *e
	c.fragment = fragment

	return &c
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	c := *e
	c.attrs = newAttrs

	return &c
}

// KindOf returns the kind of the first [*Error] in err's chain, or zero if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return 0
}
