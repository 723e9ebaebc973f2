package decimal

// The combination field's first five bits (conventionally named G0-G4)
// carry the value's class, and — for finite values — the two most
// significant bits of the biased exponent and the most significant
// coefficient digit. This is a direct generalization of decode_spec in the
// teacher package this module descends from: that function matched the
// same five bits (plus one more, to tell quiet from signaling NaN) against
// a fixed set of 8-bit patterns; here the same three-way split (special /
// large finite / small finite) is computed arithmetically so it works for
// every combination-field width, not just decimal32's.
type head struct {
	class   Class
	expMSBs uint64 // valid when class == ClassFinite
	msd     uint8  // valid when class == ClassFinite, 0-9
}

// decodeHead interprets the five-bit G0-G4 group. The caller is
// responsible for then reading one further bit (the first bit of the
// exponent-continuation field) to distinguish quiet from signaling NaN when
// class comes back ClassQuietNaN; see decode.
func decodeHead(g uint8) head {
	g0g1g2g3 := (g >> 1) & 0b1111
	if g0g1g2g3 == 0b1111 {
		g4 := g & 1
		if g4 == 0 {
			return head{class: ClassInfinite}
		}
		// NaN; quiet vs signaling is resolved by the caller from the next
		// bit of the stream.
		return head{class: ClassQuietNaN}
	}

	g0g1 := (g >> 3) & 0b11
	if g0g1 == 0b11 {
		// Large form: exponent MSBs are G2G3, MSD is 8+G4.
		g2g3 := (g >> 1) & 0b11
		g4 := g & 1
		return head{class: ClassFinite, expMSBs: uint64(g2g3), msd: 8 + g4}
	}

	// Small form: exponent MSBs are G0G1, MSD is G2G3G4 (0-7).
	g2g3g4 := g & 0b111
	return head{class: ClassFinite, expMSBs: uint64(g0g1), msd: g2g3g4}
}

// encodeHead is decodeHead's inverse: it produces the five-bit G0-G4 group
// for a finite value's exponent MSBs and most significant digit, or for a
// non-finite class. For NaN it does not encode quiet vs signaling; the
// caller sets that in the following bit.
func encodeHead(class Class, expMSBs uint64, msd uint8) uint8 {
	switch class {
	case ClassInfinite:
		return 0b11110
	case ClassQuietNaN, ClassSignalingNaN:
		return 0b11111
	}

	if msd >= 8 {
		g4 := uint8(msd - 8)
		return 0b11000 | uint8(expMSBs<<1) | g4
	}
	return uint8(expMSBs<<3) | msd
}
