// Package decimal encodes and decodes arbitrary-width IEEE 754 decimal
// floating-point numbers: text such as "-123.456e7" or "snan(123)", a
// densely-packed-decimal binary bitstring in little-endian byte order, and
// host primitive numeric types. It performs no arithmetic and no rounding;
// a conversion that cannot be represented exactly fails with an *Error
// instead of producing an approximation.
package decimal

import (
	"strconv"

	"github.com/trippwill/go-decimal/internal/bitbuf"
	"github.com/trippwill/go-decimal/internal/dpd"
)

// Bitstring is an immutable decimal floating-point value of a given Width.
// The zero value is not meaningful; construct one with NewFinite, Infinity,
// NaN, TryParseStr, or TryFromLEBytes.
type Bitstring struct {
	width    Width
	sign     Sign
	class    Class
	exponent int64   // unbiased; valid when class == ClassFinite
	digits   []uint8 // MSD-first coefficient or NaN payload digits
}

// Width reports the bitstring's total bit width.
func (b Bitstring) Width() Width { return b.width }

// Exponent reports the value's unbiased decimal exponent. It is only
// meaningful when IsFinite is true.
func (b Bitstring) Exponent() int64 { return b.exponent }

// Digits returns a copy of the coefficient digits (most significant
// first), or the NaN payload digits when the value is a NaN. The slice is
// left-padded with zeros to the width's full digit count and never
// normalized: at Width32, "1.00" carries 0000100 and "1" carries 0000001.
func (b Bitstring) Digits() []uint8 {
	out := make([]uint8, len(b.digits))
	copy(out, b.digits)
	return out
}

// NewFinite constructs a finite value of the given width from a sign, an
// MSD-first coefficient digit slice (each 0-9), and an unbiased exponent.
// It fails with DigitOverflow if the coefficient has more digits than the
// width's trailing significand field can hold, or with ExponentOverflow if
// the exponent is out of the width's representable range.
func NewFinite(width Width, sign Sign, digits []uint8, exponent int64) (Bitstring, error) {
	p, err := widthParams(width)
	if err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	if len(digits) > p.digits {
		return Bitstring{}, &Error{Kind: DigitOverflow, Message: "too many coefficient digits for this width"}
	}
	if exponent > p.eMax || exponent < p.eMin {
		return Bitstring{}, &Error{Kind: ExponentOverflow, Message: "exponent out of range for this width"}
	}
	padded := leftPad(digits, p.digits)
	return Bitstring{width: width, sign: sign, class: ClassFinite, exponent: exponent, digits: padded}, nil
}

// Infinity constructs positive or negative infinity of the given width.
func Infinity(width Width, sign Sign) (Bitstring, error) {
	if _, err := widthParams(width); err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	return Bitstring{width: width, sign: sign, class: ClassInfinite}, nil
}

// NaN constructs a quiet or signaling NaN of the given width with the given
// MSD-first payload digits.
func NaN(width Width, sign Sign, signaling bool, payload []uint8) (Bitstring, error) {
	p, err := widthParams(width)
	if err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	maxPayload := p.declets * 3
	if len(payload) > maxPayload {
		return Bitstring{}, &Error{Kind: DigitOverflow, Message: "NaN payload has too many digits for this width"}
	}
	class := ClassQuietNaN
	if signaling {
		class = ClassSignalingNaN
	}
	return Bitstring{width: width, sign: sign, class: class, digits: leftPad(payload, maxPayload)}, nil
}

func leftPad(digits []uint8, n int) []uint8 {
	out := make([]uint8, n)
	copy(out[n-len(digits):], digits)
	return out
}

// encode renders the value into a fresh bit buffer.
func (b Bitstring) encode() (*bitbuf.Buf, error) {
	p, err := widthParams(b.width)
	if err != nil {
		return nil, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	buf, err := bitbuf.New(int(b.width))
	if err != nil {
		return nil, newInternalError(b.width, "bitbuf.New rejected a validated width")
	}
	buf.SetBit(0, b.sign.bit())

	switch b.class {
	case ClassInfinite:
		buf.SetField(1, 5, uint64(encodeHead(ClassInfinite, 0, 0)))
		return buf, nil

	case ClassQuietNaN, ClassSignalingNaN:
		buf.SetField(1, 5, uint64(encodeHead(b.class, 0, 0)))
		buf.SetBit(6, b.class == ClassSignalingNaN)
		declets, err := dpd.EncodeDigits(b.digits)
		if err != nil {
			return nil, &Error{Kind: DigitOverflow, Message: err.Error()}
		}
		writeDeclets(buf, 1+p.combBits, declets)
		return buf, nil

	case ClassFinite:
		if len(b.digits) != p.digits {
			return nil, newInternalError(b.digits, "coefficient digit count does not match width")
		}
		biased := b.exponent + p.bias
		if biased < 0 || biased > p.eLimit {
			return nil, &Error{Kind: ExponentOverflow, Message: "biased exponent out of range"}
		}
		expMSBs := uint64(biased) >> uint(p.expContBits)
		expCont := uint64(biased) & ((uint64(1) << uint(p.expContBits)) - 1)

		msd := b.digits[0]
		buf.SetField(1, 5, uint64(encodeHead(ClassFinite, expMSBs, msd)))
		buf.SetField(6, p.expContBits, expCont)

		declets, err := dpd.EncodeDigits(b.digits[1:])
		if err != nil {
			return nil, &Error{Kind: DigitOverflow, Message: err.Error()}
		}
		writeDeclets(buf, 1+p.combBits, declets)
		return buf, nil

	default:
		return nil, newInternalError(b.class, "unknown class")
	}
}

func writeDeclets(buf *bitbuf.Buf, startOffset int, declets []uint16) {
	for i, d := range declets {
		buf.SetField(startOffset+10*i, 10, uint64(d))
	}
}

func readDeclets(buf *bitbuf.Buf, startOffset, count int) []uint16 {
	out := make([]uint16, count)
	for i := range out {
		out[i] = uint16(buf.Field(startOffset+10*i, 10))
	}
	return out
}

// decode parses a bit buffer of the given width into a Bitstring.
func decode(width Width, buf *bitbuf.Buf) (Bitstring, error) {
	p, err := widthParams(width)
	if err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	sign := signFromBit(buf.Bit(0))
	g := uint8(buf.Field(1, 5))
	h := decodeHead(g)

	switch h.class {
	case ClassInfinite:
		return Bitstring{width: width, sign: sign, class: ClassInfinite}, nil

	case ClassQuietNaN:
		signaling := buf.Bit(6)
		class := ClassQuietNaN
		if signaling {
			class = ClassSignalingNaN
		}
		declets := readDeclets(buf, 1+p.combBits, p.declets)
		digits, err := dpd.DecodeDigits(declets)
		if err != nil {
			return Bitstring{}, newInternalError(declets, "invalid NaN payload declet")
		}
		return Bitstring{width: width, sign: sign, class: class, digits: digits}, nil

	default: // ClassFinite
		expCont := buf.Field(6, p.expContBits)
		biased := int64(h.expMSBs)<<uint(p.expContBits) | int64(expCont)
		exponent := biased - p.bias

		declets := readDeclets(buf, 1+p.combBits, p.declets)
		rest, err := dpd.DecodeDigits(declets)
		if err != nil {
			return Bitstring{}, newInternalError(declets, "invalid coefficient declet")
		}
		digits := append([]uint8{h.msd}, rest...)
		return Bitstring{width: width, sign: sign, class: ClassFinite, exponent: exponent, digits: digits}, nil
	}
}

// LEBytes renders the value as little-endian bytes.
func (b Bitstring) LEBytes() []byte {
	buf, err := b.encode()
	if err != nil {
		// encode only fails for conditions NewFinite/NaN/Infinity already
		// reject at construction time, or for an internal bug; a Bitstring
		// obtained through this package's own constructors never hits it.
		panic(err)
	}
	return buf.LEBytes()
}

// TryFromLEBytes decodes a little-endian byte slice into a Bitstring. The
// slice length determines the width and must be a positive multiple of 4
// bytes.
func TryFromLEBytes(b []byte) (Bitstring, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		needed := ((len(b) + 3) / 4) * 4
		if needed == 0 {
			needed = 4
		}
		return Bitstring{}, &Error{Kind: ByteCountMismatch, Message: fmt_byteCountMismatch(len(b), needed)}
	}
	buf, err := bitbuf.FromLEBytes(b)
	if err != nil {
		return Bitstring{}, &Error{Kind: ByteCountMismatch, Message: err.Error()}
	}
	return decode(Width(len(b)*8), buf)
}

func fmt_byteCountMismatch(got, needed int) string {
	return "the value cannot fit into a decimal of '" + strconv.Itoa(got) + "' bytes; the width needed is '" +
		strconv.Itoa(needed) + "' bytes; decimals must be a multiple of 32 bits (4 bytes)"
}
