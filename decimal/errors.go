package decimal

import "fmt"

// Kind classifies the ways a conversion into or out of a Bitstring can
// fail.
type Kind uint8

const (
	// ParseError means the input text did not match the decimal grammar.
	ParseError Kind = iota
	// WidthOverflow means no bitstring of the requested (or any standard)
	// width can represent the value.
	WidthOverflow
	// DigitOverflow means the coefficient has more significant digits
	// than the target width's trailing significand field can hold.
	DigitOverflow
	// ExponentOverflow means the unbiased exponent falls outside the
	// target width's representable range.
	ExponentOverflow
	// ByteCountMismatch means a byte slice passed to TryFromLEBytes is
	// not a valid width (a positive multiple of 4 bytes).
	ByteCountMismatch
	// Inexact means the requested conversion would need rounding, which
	// this package refuses to perform.
	Inexact
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case WidthOverflow:
		return "WidthOverflow"
	case DigitOverflow:
		return "DigitOverflow"
	case ExponentOverflow:
		return "ExponentOverflow"
	case ByteCountMismatch:
		return "ByteCountMismatch"
	case Inexact:
		return "Inexact"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is returned by every fallible operation in this package. Input
// holds the offending text when TryParseStr's lexer rejected it; other
// errors (width selection, byte counts, constructors) leave it empty.
type Error struct {
	Kind    Kind
	Message string
	Input   string
}

func (e *Error) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("decimal: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("decimal: %s: %s (input %q)", e.Kind, e.Message, e.Input)
}

// internalError marks a condition that indicates a bug in this package
// itself (an encoder/decoder branch that should be unreachable), never a
// problem with caller-supplied input.
type internalError struct {
	data any
	msg  string
}

func (e *internalError) Error() string {
	return fmt.Sprintf("decimal: internal error: %s: %v", e.msg, e.data)
}

func newInternalError(data any, msg string) error {
	return &internalError{data: data, msg: msg}
}
