package decimal

import (
	"math"
	"math/big"
)

// FromFloat32 converts a binary32 into the narrowest Bitstring that holds
// it exactly. §4.8 notes finite binary floats always have an exact,
// terminating decimal expansion via their significand*2^e decomposition;
// this walks that decomposition directly (via math.Float32bits) rather
// than going through a string formatter, so it is infallible for every
// finite input, +/-Inf, and every NaN payload.
func FromFloat32(f float32) Bitstring {
	bits := math.Float32bits(f)
	mantissa := uint64(bits & 0x7fffff)
	rawExp := int((bits >> 23) & 0xff)
	return fromBinaryFloat(bits>>31 != 0, rawExp == 0xff && mantissa == 0, rawExp == 0xff && mantissa != 0,
		mantissa, rawExp, 23, -127)
}

// FromFloat64 is FromFloat32's binary64 counterpart.
func FromFloat64(f float64) Bitstring {
	bits := math.Float64bits(f)
	mantissa := bits & ((1 << 52) - 1)
	rawExp := int((bits >> 52) & 0x7ff)
	return fromBinaryFloat(bits>>63 != 0, rawExp == 0x7ff && mantissa == 0, rawExp == 0x7ff && mantissa != 0,
		mantissa, rawExp, 52, -1023)
}

// fromBinaryFloat implements the shared decomposition for both binary
// widths: mantissaBits describes the IEEE 754 binary layout, and
// subnormalExp is the negated exponent bias (-bias); a subnormal's
// implicit exponent is one above it (1-bias).
func fromBinaryFloat(negative, inf, nan bool, mantissa uint64, rawExp, mantissaBits, subnormalExp int) Bitstring {
	sign := SignPositive
	if negative {
		sign = SignNegative
	}

	switch {
	case inf:
		b, _ := Infinity(Width32, sign)
		return b
	case nan:
		quiet := mantissa>>(mantissaBits-1) != 0
		payload := mantissa &^ (uint64(1) << (mantissaBits - 1))
		digits := digitsFromUint64NonZero(payload)
		width, _ := SelectWidthForPayload(len(digits))
		b, _ := NaN(width, sign, !quiet, digits)
		return b
	}

	var e2 int
	if rawExp == 0 {
		if mantissa == 0 {
			z, _ := Width32.Zero()
			z.sign = sign
			return z
		}
		e2 = subnormalExp + 1 - mantissaBits
	} else {
		mantissa |= uint64(1) << mantissaBits
		e2 = (rawExp + subnormalExp) - mantissaBits
	}

	var coeff *big.Int
	var decExp int64
	if e2 >= 0 {
		coeff = new(big.Int).Lsh(big.NewInt(int64(mantissa)), uint(e2))
		decExp = 0
	} else {
		five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-e2)), nil)
		coeff = new(big.Int).Mul(big.NewInt(int64(mantissa)), five)
		decExp = int64(e2)
	}

	digits := digitsFromBigInt(coeff)
	width, err := SelectWidth(len(digits), decExp)
	if err != nil {
		// Every finite binary32/64 value's exact decimal expansion fits
		// comfortably within the width ladder's cap; reaching here would
		// be a bug in this package, not a caller error.
		panic(err)
	}
	b, _ := NewFinite(width, sign, digits, decExp)
	return b
}

// digitsFromUint64NonZero is digitsFromUint64 except it reports no digits
// (rather than a single zero digit) for a zero payload, matching this
// package's NaN-payload convention that "no digits" and "(0)" are distinct
// only insofar as the text form omits the parenthesized suffix entirely.
func digitsFromUint64NonZero(v uint64) []uint8 {
	if v == 0 {
		return nil
	}
	return digitsFromUint64(v)
}

// ToFloat32 converts b into a binary32. Infinities map to the matching
// infinity and NaNs to a NaN carrying the same sign, quiet/signaling bit
// and payload. It returns false if b is a NaN whose payload does not fit
// the 22 bits below the quiet bit, or if b's exact value is not exactly
// representable as a binary32 (this package never rounds, per §7).
func ToFloat32(b Bitstring) (float32, bool) {
	if b.IsInf() {
		if b.IsNegative() {
			return float32(math.Inf(-1)), true
		}
		return float32(math.Inf(1)), true
	}
	if b.IsNaN() {
		bits, ok := nanBits(b, 23)
		if !ok {
			return 0, false
		}
		raw := uint32(0x7f800000) | uint32(bits)
		if b.IsNegative() {
			raw |= 1 << 31
		}
		return math.Float32frombits(raw), true
	}
	if !b.IsFinite() {
		return 0, false
	}
	rat, ok := exactRat(b)
	if !ok {
		return 0, false
	}
	f, acc := ratToFloat(rat).Float32()
	if acc != big.Exact {
		return 0, false
	}
	if b.IsNegative() {
		f = float32(math.Copysign(float64(f), -1))
	}
	return f, true
}

// ToFloat64 is ToFloat32's binary64 counterpart.
func ToFloat64(b Bitstring) (float64, bool) {
	if b.IsInf() {
		if b.IsNegative() {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}
	if b.IsNaN() {
		bits, ok := nanBits(b, 52)
		if !ok {
			return 0, false
		}
		raw := uint64(0x7ff0000000000000) | bits
		if b.IsNegative() {
			raw |= 1 << 63
		}
		return math.Float64frombits(raw), true
	}
	if !b.IsFinite() {
		return 0, false
	}
	rat, ok := exactRat(b)
	if !ok {
		return 0, false
	}
	f, acc := ratToFloat(rat).Float64()
	if acc != big.Exact {
		return 0, false
	}
	if b.IsNegative() {
		f = math.Copysign(f, -1)
	}
	return f, true
}

// ratToFloat renders rat as a big.Float with enough precision that the
// conversion's reported Accuracy reflects whether rat itself is exact, not
// an artifact of rounding during this intermediate step.
func ratToFloat(rat *big.Rat) *big.Float {
	prec := uint(rat.Num().BitLen())
	if d := uint(rat.Denom().BitLen()); d > prec {
		prec = d
	}
	prec += 64
	return new(big.Float).SetPrec(prec).SetRat(rat)
}

// nanBits reconstructs the mantissaBits-wide payload field (quiet bit plus
// trailing payload digits) for a decoded NaN, failing if the payload
// doesn't fit.
func nanBits(b Bitstring, mantissaBits int) (uint64, bool) {
	payload := b.Digits()
	v, ok := bigIntFromDigits(payload)
	if !ok || v.BitLen() > mantissaBits-1 {
		return 0, false
	}
	bits := v.Uint64()
	if !b.IsSignalingNaN() {
		bits |= uint64(1) << (mantissaBits - 1)
	}
	return bits, true
}

// exactRat reconstructs b's value as an exact big.Rat magnitude (unsigned;
// sign is applied by the caller), failing only if b isn't finite.
func exactRat(b Bitstring) (*big.Rat, bool) {
	if !b.IsFinite() {
		return nil, false
	}
	coeff := new(big.Int)
	coeff.SetString(digitsToString(b.digits), 10)
	rat := new(big.Rat)
	if b.exponent >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(b.exponent), nil)
		rat.SetInt(new(big.Int).Mul(coeff, scale))
	} else {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(-b.exponent), nil)
		rat.SetFrac(coeff, scale)
	}
	return rat, true
}

func bigIntFromDigits(d []uint8) (*big.Int, bool) {
	if len(d) == 0 {
		return big.NewInt(0), true
	}
	v := new(big.Int)
	_, ok := v.SetString(digitsToString(d), 10)
	return v, ok
}
