package decimal

import (
	"math/big"

	"github.com/trippwill/go-decimal/imath"
)

// signedInt and unsignedInt are the type constraints FromInt/ToInt and
// FromUint/ToUint are generic over: every primitive Go integer width this
// package has a native home for. 128-bit integers have no primitive type in
// Go, so that width is bridged through FromBigInt/ToBigInt instead, the way
// the teacher's FixedPoint128 carries its coefficient as a *big.Int rather
// than a two-word struct (see fixedpoint128.go's Parse128/coefficient).
type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// FromInt converts a signed primitive integer into the narrowest Bitstring
// that represents it exactly: §4.8's "Integer → Bitstring" bridge decimal-
// ifies the absolute value, fixes the exponent at zero, and selects width.
// It is infallible for every width this package supports today, but
// returns an error for signature symmetry with ToInt and in case a future
// caller's I is wide enough to need the width ladder's cap.
func FromInt[I signedInt](v I) (Bitstring, error) {
	mag := imath.Abs(int64(v))
	sign := SignPositive
	if int64(v) < 0 {
		sign = SignNegative
	}
	return NewFinite(integerWidth(uint64(mag)), sign, digitsFromUint64(uint64(mag)), 0)
}

// FromUint is FromInt's unsigned counterpart.
func FromUint[U unsignedInt](v U) (Bitstring, error) {
	return NewFinite(integerWidth(uint64(v)), SignPositive, digitsFromUint64(uint64(v)), 0)
}

func integerWidth(mag uint64) Width {
	w, err := SelectWidth(imath.DigitCount(mag), 0)
	if err != nil {
		// every primitive integer width fits comfortably within
		// SelectWidth's ladder; reaching here would be a bug in this
		// package, not a caller error.
		panic(err)
	}
	return w
}

// ToInt converts b into I, applying its exponent to reconstruct a scaled
// integer (§4.8's "Bitstring → Integer" bridge). It reports false when b is
// not finite, is non-integral after scaling (a negative effective exponent
// the coefficient isn't evenly divisible by), or the scaled magnitude
// overflows I's range.
func ToInt[I signedInt](b Bitstring) (I, bool) {
	mag, ok := scaledMagnitude(b)
	if !ok {
		return 0, false
	}
	if b.IsNegative() {
		mag.Neg(mag)
	}
	if !mag.IsInt64() {
		return 0, false
	}
	v := mag.Int64()
	result := I(v)
	if int64(result) != v {
		return 0, false
	}
	return result, true
}

// ToUint is ToInt's unsigned counterpart; it additionally rejects negative
// values (other than -0, which is finite-zero and has no distinguished
// magnitude to reject).
func ToUint[U unsignedInt](b Bitstring) (U, bool) {
	if b.IsNegative() && !b.IsZero() {
		return 0, false
	}
	mag, ok := scaledMagnitude(b)
	if !ok {
		return 0, false
	}
	if !mag.IsUint64() {
		return 0, false
	}
	v := mag.Uint64()
	result := U(v)
	if uint64(result) != v {
		return 0, false
	}
	return result, true
}

// FromBigInt is FromInt/FromUint's arbitrary-precision counterpart, for
// widths (128 bits and up) Go has no primitive integer type for.
func FromBigInt(v *big.Int) (Bitstring, error) {
	mag := new(big.Int).Abs(v)
	sign := SignPositive
	if v.Sign() < 0 {
		sign = SignNegative
	}
	digits := digitsFromBigInt(mag)
	width, err := SelectWidth(len(digits), 0)
	if err != nil {
		return Bitstring{}, err
	}
	return NewFinite(width, sign, digits, 0)
}

// ToBigInt is ToInt/ToUint's arbitrary-precision counterpart.
func ToBigInt(b Bitstring) (*big.Int, bool) {
	mag, ok := scaledMagnitude(b)
	if !ok {
		return nil, false
	}
	if b.IsNegative() {
		mag.Neg(mag)
	}
	return mag, true
}

// scaledMagnitude reconstructs the unsigned magnitude coefficient*10^exponent
// as a big.Int, reporting false if b isn't finite or the exponent would
// need to discard non-zero digits (this package never rounds, per §7).
func scaledMagnitude(b Bitstring) (*big.Int, bool) {
	if !b.IsFinite() {
		return nil, false
	}
	coeff := new(big.Int)
	coeff.SetString(digitsToString(b.digits), 10)

	if b.exponent >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(b.exponent), nil)
		return coeff.Mul(coeff, scale), true
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(-b.exponent), nil)
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(coeff, scale, r)
	if r.Sign() != 0 {
		return nil, false
	}
	return q, true
}

func digitsFromUint64(v uint64) []uint8 {
	n := imath.DigitCount(v)
	out := make([]uint8, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = uint8(v % 10)
		v /= 10
	}
	return out
}

func digitsFromBigInt(mag *big.Int) []uint8 {
	if mag.Sign() == 0 {
		return []uint8{0}
	}
	text := mag.Text(10)
	return digitsFromString(text)
}
