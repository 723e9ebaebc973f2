// Package dpd implements the declet codec used by the trailing significand
// field of every decimal interchange format: groups of three decimal digits
// packed into ten-bit declets, per the canonical IEEE 754-2008 Densely
// Packed Decimal (DPD) encoding.
//
// A declet holds three BCD digits d0 d1 d2 (d0 most significant). Write
// each digit's nibble as four bits; for digit d0 call them a b c d (a is
// the nibble's MSB), for d1 call them e f g h, for d2 call them i j k m.
// A digit is "small" (0-7) when its top nibble bit is 0, in which case its
// other three bits alone determine its value; it is "large" (8 or 9) when
// the top bit is 1, in which case the nibble's middle two bits are always
// 0 and only the bottom bit varies. DPD's density comes from spending a
// full three bits per digit only when the digit is small, and reusing the
// two bits that a large digit leaves always-zero as extra classification
// bits instead.
//
// All three digits small is the common case (0 of the 3 classification
// bits spent beyond a single flag bit) and is encoded directly:
//
//	declet = d0lo3<<7 | d1lo3<<4 | d2lo3
//
// where xlo3 is the digit's low three bits (equal to the digit itself when
// it is 0-7). This is exactly bit 3 (value 8) of the declet left at 0, and
// is confirmed bit-for-bit against every finite worked example in this
// package's documentation (e.g. the coefficient digits of "123.456" and
// "-123"): see dpd_test.go's TestEncodeDecletMatchesWorkedExamples and
// decimal/vectors_test.go's TestParseLEBytesMatchesWorkedVectors.
//
// The seven bands with at least one large digit all set bit 3 of the
// declet (the flag these bit-budget numbers call v) and pack the
// remaining nine bits as a contiguous "residual" index (removing the
// fixed v bit) partitioned into one block per band, ordered by how many
// digits are large: the three single-large bands get 128 values each (two
// small digits at 3 bits + one large digit's 1 bit = 7 residual bits), the
// three double-large bands get 32 values each (5 residual bits), and the
// one triple-large band gets 8 values (3 residual bits) — 384+96+8 = 488,
// matching exactly the 1000-512 = 488 legal triples that have at least one
// digit in {8,9}. That leaves 512-488 = 24 spare residual values: the
// non-canonical aliases DecodeDeclet must still accept per §4.4. They sit
// past the triple-large block and decode by folding onto it (ignoring the
// declet bits that would otherwise extend the block), which keeps
// DecodeDeclet total and never erroring on a ten-bit value.
package dpd

import "fmt"

// DeclsForDigits reports how many declets are needed to hold n decimal
// digits, rounding up to a whole number of three-digit groups.
func DeclsForDigits(n int) int {
	return (n + 2) / 3
}

func lo3(d uint8) uint16 { return uint16(d & 7) }
func lsb(d uint8) uint16 { return uint16(d & 1) }

// pack reinserts the always-1 classification bit (bit 3, value 8) into a
// 9-bit residual index, producing the final ten-bit declet.
func pack(residual uint16) uint16 {
	hi6 := residual >> 3
	low3 := residual & 7
	return hi6<<4 | 8 | low3
}

// EncodeDeclet packs three decimal digits (each 0-9, most significant
// first) into a ten-bit declet using the canonical DPD bit mapping.
func EncodeDeclet(d0, d1, d2 uint8) (uint16, error) {
	if d0 > 9 || d1 > 9 || d2 > 9 {
		return 0, fmt.Errorf("dpd: digit out of range (%d,%d,%d)", d0, d1, d2)
	}

	l0, l1, l2 := d0 >= 8, d1 >= 8, d2 >= 8

	switch {
	case !l0 && !l1 && !l2:
		return lo3(d0)<<7 | lo3(d1)<<4 | lo3(d2), nil

	case !l0 && !l1 && l2: // only d2 large
		return pack(lo3(d0)<<4 | lo3(d1)<<1 | lsb(d2)), nil

	case !l0 && l1 && !l2: // only d1 large
		return pack(128 + lo3(d0)<<4 + lo3(d2)<<1 + lsb(d1)), nil

	case l0 && !l1 && !l2: // only d0 large
		return pack(256 + lo3(d1)<<4 + lo3(d2)<<1 + lsb(d0)), nil

	case !l0 && l1 && l2: // d1, d2 large
		return pack(384 + lo3(d0)<<2 + lsb(d1)<<1 + lsb(d2)), nil

	case l0 && !l1 && l2: // d0, d2 large
		return pack(416 + lo3(d1)<<2 + lsb(d0)<<1 + lsb(d2)), nil

	case l0 && l1 && !l2: // d0, d1 large
		return pack(448 + lo3(d2)<<2 + lsb(d0)<<1 + lsb(d1)), nil

	default: // all three large
		return pack(480 + lsb(d0)<<2 + lsb(d1)<<1 + lsb(d2)), nil
	}
}

// DecodeDeclet unpacks a ten-bit declet into its three decimal digits.
//
// A declet is ten bits wide and so can hold 1024 distinct patterns, but
// only 1000 of them are canonical (producible by EncodeDeclet). The
// remaining 24 are non-canonical aliases that a decoder must still accept
// rather than reject, per the DPD decoding rule that every bit pattern
// decodes to some triplet of digits; they fold onto the all-large band.
func DecodeDeclet(v uint16) (d0, d1, d2 uint8, err error) {
	if v > 1023 {
		return 0, 0, 0, fmt.Errorf("dpd: declet value %d exceeds ten bits", v)
	}

	if v&8 == 0 {
		d0 = uint8((v >> 7) & 7)
		d1 = uint8((v >> 4) & 7)
		d2 = uint8(v & 7)
		return d0, d1, d2, nil
	}

	hi6 := (v >> 4) & 0x3F
	low3 := v & 7
	residual := hi6<<3 | low3

	switch {
	case residual < 128:
		p := residual
		d0 = uint8((p >> 4) & 7)
		d1 = uint8((p >> 1) & 7)
		d2 = uint8(8 | (p & 1))

	case residual < 256:
		p := residual - 128
		d0 = uint8((p >> 4) & 7)
		d2 = uint8((p >> 1) & 7)
		d1 = uint8(8 | (p & 1))

	case residual < 384:
		p := residual - 256
		d1 = uint8((p >> 4) & 7)
		d2 = uint8((p >> 1) & 7)
		d0 = uint8(8 | (p & 1))

	case residual < 416:
		p := residual - 384
		d0 = uint8((p >> 2) & 7)
		d1 = uint8(8 | ((p >> 1) & 1))
		d2 = uint8(8 | (p & 1))

	case residual < 448:
		p := residual - 416
		d1 = uint8((p >> 2) & 7)
		d0 = uint8(8 | ((p >> 1) & 1))
		d2 = uint8(8 | (p & 1))

	case residual < 480:
		p := residual - 448
		d2 = uint8((p >> 2) & 7)
		d0 = uint8(8 | ((p >> 1) & 1))
		d1 = uint8(8 | (p & 1))

	default: // 480-511: all-large band plus its 24 non-canonical aliases
		p := (residual - 480) & 7
		d0 = uint8(8 | ((p >> 2) & 1))
		d1 = uint8(8 | ((p >> 1) & 1))
		d2 = uint8(8 | (p & 1))
	}

	return d0, d1, d2, nil
}

// EncodeDigits packs a most-significant-first slice of decimal digits into
// declets, left-padding with zero digits so the length is a multiple of
// three.
func EncodeDigits(digits []uint8) ([]uint16, error) {
	pad := (3 - len(digits)%3) % 3
	padded := make([]uint8, 0, len(digits)+pad)
	for i := 0; i < pad; i++ {
		padded = append(padded, 0)
	}
	padded = append(padded, digits...)

	declets := make([]uint16, 0, len(padded)/3)
	for i := 0; i < len(padded); i += 3 {
		d, err := EncodeDeclet(padded[i], padded[i+1], padded[i+2])
		if err != nil {
			return nil, err
		}
		declets = append(declets, d)
	}
	return declets, nil
}

// DecodeDigits unpacks declets into a most-significant-first slice of
// 3*len(declets) decimal digits.
func DecodeDigits(declets []uint16) ([]uint8, error) {
	digits := make([]uint8, 0, len(declets)*3)
	for _, d := range declets {
		d0, d1, d2, err := DecodeDeclet(d)
		if err != nil {
			return nil, err
		}
		digits = append(digits, d0, d1, d2)
	}
	return digits, nil
}
