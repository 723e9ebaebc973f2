package decimal

import "fmt"

// Width is a decimal interchange format's total size in bits. Valid widths
// are multiples of 32, starting at 32 (decimal32).
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
	Width192 Width = 192
	Width256 Width = 256
)

// params holds the bit-layout constants for one Width, derived from the
// generalization of the three standardized decimal interchange formats
// (decimal32, decimal64, decimal128) described in DESIGN.md. Writing w =
// width/32:
//
//	exponent continuation bits: ec(w) = 2w+4
//	combination field bits:     comb(w) = ec(w)+5 = 2w+9
//	declets:                    decl(w) = 3w-1
//	trailing significand bits:  10*decl(w) = 30w-10
//	total coefficient digits:   3*decl(w)+1 = 9w-2
//	exponent limit:             eLimit(w) = 3*2^ec(w) - 1
//	adjusted max exponent:      adjEMax(w) = (eLimit(w)+1)/2
//	adjusted min exponent:      adjEMin(w) = 1 - adjEMax(w)
//	exponent bias:              bias(w) = adjEMax(w) + digits(w) - 2
//	raw (unadjusted) exponent range, i.e. the range of e such that
//	value = coefficient * 10^e: [-bias(w), eLimit(w)-bias(w)]
//
// adjEMax/adjEMin are the commonly quoted "Emax"/"Emin" for decimal32/64/128
// (96/-95, 384/-383, 6144/-6143): the exponent a value would carry if its
// coefficient were normalized to a single leading digit. The bitstring's own
// exponent field (what NewFinite/Exponent deal in) is the raw, unnormalized
// e — biased = e + bias must land in [0, eLimit]. This package never
// normalizes a coefficient, so raw e is what its API speaks.
//
// This is verified to reproduce the well-known decimal32/64/128 constants
// exactly at w=1,2,4 (see x32.go/x64.go/fixedpoint128.go in the teacher
// repository this package is descended from) and extends them to any wider
// multiple of 32 bits.
type params struct {
	width       Width
	w           int
	combBits    int
	expContBits int
	declets     int
	trailBits   int
	digits      int
	eLimit      int64
	adjEMax     int64
	adjEMin     int64
	bias        int64
	eMax        int64 // raw exponent upper bound: eLimit - bias
	eMin        int64 // raw exponent lower bound: -bias
}

func widthParams(width Width) (params, error) {
	if width <= 0 || width%32 != 0 {
		return params{}, fmt.Errorf("decimal: width %d is not a positive multiple of 32 bits", width)
	}
	w := int(width) / 32

	ec := 2*w + 4
	comb := ec + 5
	decl := 3*w - 1
	trail := 10 * decl
	digits := 3*decl + 1

	eLimit := int64(3)*(int64(1)<<uint(ec)) - 1
	adjEMax := (eLimit + 1) / 2
	adjEMin := 1 - adjEMax
	bias := adjEMax + int64(digits) - 2

	return params{
		width:       width,
		w:           w,
		combBits:    comb,
		expContBits: ec,
		declets:     decl,
		trailBits:   trail,
		digits:      digits,
		eLimit:      eLimit,
		adjEMax:     adjEMax,
		adjEMin:     adjEMin,
		bias:        bias,
		eMax:        eLimit - bias,
		eMin:        -bias,
	}, nil
}

// MaxDigits reports the number of coefficient digits a value of this width
// can hold.
func (w Width) MaxDigits() int {
	p, err := widthParams(w)
	if err != nil {
		return 0
	}
	return p.digits
}

// maxWidthFactor bounds the width ladder SelectWidth will climb: the
// "arbitrary precision" escalation mode of §9 is implemented as simply not
// stopping at Width256, rather than a second buffer type, but the ladder
// still has to stop somewhere so a pathological input fails fast instead of
// looping. 4096*32 bits holds over 36,000 coefficient digits, comfortably
// past any width this package's callers have been observed to need.
const maxWidthFactor = 4096

// SelectWidth returns the narrowest width (32, 64, 96, ... up to the
// arbitrary-precision ladder's cap) whose coefficient-digit and
// exponent-range budgets can hold a value with the given digit count and
// unbiased decimal exponent. Widths 32/64/128/256 are the standard
// interchange formats; anything in between or beyond is the arbitrary-
// precision escalation path.
//
// When no width fits, the error Kind distinguishes why: DigitOverflow if
// the digit count alone exceeds the widest width's capacity (no exponent
// could rescue it), ExponentOverflow if some width would have had room for
// the digits but none had room for the exponent.
func SelectWidth(digitCount int, exponent int64) (Width, error) {
	sawDigitFit := false
	for k := 1; k <= maxWidthFactor; k++ {
		w := Width(32 * k)
		p, err := widthParams(w)
		if err != nil {
			continue
		}
		if digitCount > p.digits {
			continue
		}
		sawDigitFit = true
		if exponent <= p.eMax && exponent >= p.eMin {
			return w, nil
		}
	}
	if !sawDigitFit {
		return 0, &Error{Kind: DigitOverflow, Message: fmt.Sprintf(
			"%d significand digits exceeds the widest supported precision", digitCount)}
	}
	return 0, &Error{Kind: ExponentOverflow, Message: fmt.Sprintf(
		"exponent %d is out of range for every width that fits %d digits", exponent, digitCount)}
}

// SelectWidthForPayload returns the narrowest width whose trailing
// significand can hold a NaN payload of the given digit count. Per §4.7
// there is no exponent constraint for NaN payloads.
func SelectWidthForPayload(digitCount int) (Width, error) {
	for k := 1; k <= maxWidthFactor; k++ {
		w := Width(32 * k)
		p, err := widthParams(w)
		if err != nil {
			continue
		}
		if digitCount <= p.declets*3 {
			return w, nil
		}
	}
	return 0, &Error{Kind: DigitOverflow, Message: fmt.Sprintf(
		"NaN payload of %d digits exceeds the widest supported precision", digitCount)}
}
