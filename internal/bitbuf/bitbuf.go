// Package bitbuf implements a fixed-width, big-endian bit-addressable
// buffer: bit offsets passed to Field/SetField count from the sign bit
// (byte 0, bit 0 of the wire form), matching the way the decimal package's
// interchange formats are documented (sign, then combination field, then
// trailing significand, MSB first). A single arbitrary-precision integer
// is the simplest faithful model of this.
package bitbuf

import (
	"fmt"
	"math/big"
)

// Buf holds width bits of state, width a multiple of 8. Bit offsets passed to
// Field/SetField/Bit/SetBit count from the most significant bit (offset 0),
// matching the way the decimal formats are documented.
type Buf struct {
	width int
	v     big.Int
}

// New returns a zeroed buffer of the given bit width.
func New(widthBits int) (*Buf, error) {
	if widthBits <= 0 || widthBits%8 != 0 {
		return nil, fmt.Errorf("bitbuf: width %d is not a positive multiple of 8", widthBits)
	}
	return &Buf{width: widthBits}, nil
}

// FromLEBytes builds a buffer from its wire byte representation. Despite
// the name (matched to the decimal package's public LEBytes/TryFromLEBytes,
// which in turn matches the originating crate's as_le_bytes), byte 0 holds
// the sign and combination field: the interchange formats this package
// backs lay out bit 0 as the sign bit of byte 0, not of the highest-address
// byte, so no reversal happens here. See DESIGN.md's byte-order decision.
func FromLEBytes(b []byte) (*Buf, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		return nil, fmt.Errorf("bitbuf: %d bytes is not a positive multiple of 4", len(b))
	}
	buf := &Buf{width: len(b) * 8}
	buf.v.SetBytes(b)
	return buf, nil
}

// WidthBits reports the buffer's fixed bit width.
func (b *Buf) WidthBits() int { return b.width }

// LEBytes renders the buffer's current value as wire bytes, byte 0 first
// (sign and combination field); see FromLEBytes.
func (b *Buf) LEBytes() []byte {
	n := b.width / 8
	out := make([]byte, n)
	b.v.FillBytes(out)
	return out
}

func (b *Buf) checkRange(msbOffset, nbits int) {
	if nbits < 0 || msbOffset < 0 || msbOffset+nbits > b.width {
		panic(fmt.Sprintf("bitbuf: field [%d,+%d) out of range for width %d", msbOffset, nbits, b.width))
	}
}

// Field reads nbits starting at msbOffset (counted from the MSB) as an
// unsigned integer. nbits must be <= 64.
func (b *Buf) Field(msbOffset, nbits int) uint64 {
	return b.BigField(msbOffset, nbits).Uint64()
}

// SetField writes the low nbits of value into the field at msbOffset.
func (b *Buf) SetField(msbOffset, nbits int, value uint64) {
	var t big.Int
	t.SetUint64(value)
	b.SetBigField(msbOffset, nbits, &t)
}

// BigField reads nbits starting at msbOffset as an arbitrary-precision
// unsigned integer.
func (b *Buf) BigField(msbOffset, nbits int) *big.Int {
	b.checkRange(msbOffset, nbits)
	lsbShift := b.width - msbOffset - nbits

	var out big.Int
	out.Rsh(&b.v, uint(lsbShift))
	mask := new(big.Int).Lsh(big.NewInt(1), uint(nbits))
	mask.Sub(mask, big.NewInt(1))
	out.And(&out, mask)
	return &out
}

// SetBigField writes the low nbits of value into the field at msbOffset.
func (b *Buf) SetBigField(msbOffset, nbits int, value *big.Int) {
	b.checkRange(msbOffset, nbits)
	lsbShift := b.width - msbOffset - nbits

	mask := new(big.Int).Lsh(big.NewInt(1), uint(nbits))
	mask.Sub(mask, big.NewInt(1))

	masked := new(big.Int).And(value, mask)
	masked.Lsh(masked, uint(lsbShift))

	clear := new(big.Int).Lsh(mask, uint(lsbShift))
	clear.Not(clear)

	b.v.And(&b.v, clear)
	b.v.Or(&b.v, masked)
}

// Bit reports the bit at msbOffset (0 is the sign bit in every decimal
// layout this package backs).
func (b *Buf) Bit(msbOffset int) bool {
	return b.Field(msbOffset, 1) != 0
}

// SetBit sets or clears the bit at msbOffset.
func (b *Buf) SetBit(msbOffset int, v bool) {
	if v {
		b.SetField(msbOffset, 1, 1)
	} else {
		b.SetField(msbOffset, 1, 0)
	}
}
