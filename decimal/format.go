package decimal

import (
	"log"
	"math/big"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format renders the value for display in the given locale: digit
// grouping, decimal separator, and sign placement follow tag, the way the
// teacher's FixedPoint.Format does for currency amounts (currency/fixed-
// point.go). This is a presentation helper only; it is never used by
// TryParseStr or String and never participates in the round-trip
// properties of §8 — the wire text form is always the strict,
// locale-independent grammar described in this package's documentation.
func (b Bitstring) Format(tag language.Tag) string {
	switch b.class {
	case ClassInfinite, ClassQuietNaN, ClassSignalingNaN:
		return b.String()
	}

	p := message.NewPrinter(tag)
	fracDigits := 0
	if b.exponent < 0 {
		fracDigits = int(-b.exponent)
	}

	scaled, exact := displayFloat(b)
	if !exact {
		// A coefficient too wide for a float64 mantissa is not rendered
		// through the locale printer; it falls back to the canonical,
		// ungrouped String() form rather than losing digits to a lossy
		// float64 approximation.
		log.Printf("decimal: Format: coefficient too wide for locale display, falling back to String(): %s", b.String())
		return b.String()
	}

	return p.Sprintf("%v", number.Decimal(scaled, number.Scale(fracDigits)))
}

// displayFloat computes a float64 approximation of b suitable for display
// formatting; unlike ToFloat64, it never fails for overflow (callers only
// need a value a human can eyeball at reasonable magnitudes). It reports
// false when the coefficient is wider than 52 bits, so Format can choose a
// different rendering for coefficients wide enough that a float64 would
// silently drop significant digits; rounding in the final big.Rat to
// float64 step (for example of a fractional value such as 0.1) is not
// reported.
func displayFloat(b Bitstring) (float64, bool) {
	coeff := new(big.Int)
	coeff.SetString(digitsToString(b.digits), 10)
	if coeff.BitLen() > 52 {
		return 0, false
	}
	rat := new(big.Rat)
	if b.exponent >= 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(b.exponent), nil)
		rat.SetInt(new(big.Int).Mul(coeff, scale))
	} else {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(-b.exponent), nil)
		rat.SetFrac(coeff, scale)
	}
	f, _ := rat.Float64()
	if b.IsNegative() {
		f = -f
	}
	return f, true
}
