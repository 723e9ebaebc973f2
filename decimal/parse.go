package decimal

import (
	"github.com/trippwill/go-decimal/internal/dectext"
)

// TryParseStr lexes s against the grammar described in this package's
// documentation and selects the narrowest width that can represent it
// exactly (§4.7). It is the text half of the Conversion Bridges: the
// lexing itself is delegated to internal/dectext, which never commits to a
// width or trims a leading zero, so "1", "1.0", and "1.00" still select
// and encode distinctly here.
func TryParseStr(s string) (Bitstring, error) {
	parsed, err := dectext.Parse(s)
	if err != nil {
		return Bitstring{}, convertLexErr(err, s)
	}

	sign := SignPositive
	if parsed.Negative {
		sign = SignNegative
	}

	switch parsed.Tag {
	case dectext.Infinity:
		return Infinity(Width32, sign)

	case dectext.QuietNaN, dectext.SignalingNaN:
		payload := digitsFromString(parsed.Payload)
		width, err := SelectWidthForPayload(len(payload))
		if err != nil {
			return Bitstring{}, err
		}
		return NaN(width, sign, parsed.Tag == dectext.SignalingNaN, payload)

	default: // dectext.Finite
		expPart, err := parsed.Exponent()
		if err != nil {
			return Bitstring{}, convertLexErr(err, s)
		}
		digits := digitsFromString(parsed.IntPart + parsed.FracPart)
		exponent := int64(expPart) - int64(len(parsed.FracPart))

		width, err := SelectWidth(len(digits), exponent)
		if err != nil {
			return Bitstring{}, err
		}
		return NewFinite(width, sign, digits, exponent)
	}
}

func digitsFromString(s string) []uint8 {
	out := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = s[i] - '0'
	}
	return out
}

func convertLexErr(err error, input string) error {
	if le, ok := err.(*dectext.Error); ok {
		kind := ParseError
		if le.Kind == dectext.ErrExponentOverflow {
			kind = ExponentOverflow
		}
		return &Error{Kind: kind, Message: le.Msg, Input: input}
	}
	return &Error{Kind: ParseError, Message: err.Error(), Input: input}
}
