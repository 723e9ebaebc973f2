package decimal

// Zero returns the positive zero value of this width: a finite value whose
// coefficient digits are all zero and whose exponent is zero.
func (width Width) Zero() (Bitstring, error) {
	p, err := widthParams(width)
	if err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	return NewFinite(width, SignPositive, make([]uint8, p.digits), 0)
}

// Max returns the largest finite positive value representable at this
// width: every coefficient digit at 9, at the widest representable raw
// exponent.
func (width Width) Max() (Bitstring, error) {
	p, err := widthParams(width)
	if err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	digits := make([]uint8, p.digits)
	for i := range digits {
		digits[i] = 9
	}
	return NewFinite(width, SignPositive, digits, p.eMax)
}

// Min returns the negation of Max.
func (width Width) Min() (Bitstring, error) {
	b, err := width.Max()
	if err != nil {
		return Bitstring{}, err
	}
	b.sign = SignNegative
	return b, nil
}

// MinPositive returns the smallest positive non-zero value representable at
// this width: a single significant digit (1) at the narrowest raw exponent.
func (width Width) MinPositive() (Bitstring, error) {
	p, err := widthParams(width)
	if err != nil {
		return Bitstring{}, &Error{Kind: WidthOverflow, Message: err.Error()}
	}
	digits := make([]uint8, p.digits)
	digits[p.digits-1] = 1
	return NewFinite(width, SignPositive, digits, p.eMin)
}

// ToBEBytes renders the value in big-endian byte order (the reverse of its
// native little-endian wire form).
func (b Bitstring) ToBEBytes() []byte {
	le := b.LEBytes()
	be := make([]byte, len(le))
	for i, by := range le {
		be[len(le)-1-i] = by
	}
	return be
}

// TryFromBEBytes is the big-endian counterpart of TryFromLEBytes.
func TryFromBEBytes(b []byte) (Bitstring, error) {
	le := make([]byte, len(b))
	for i, by := range b {
		le[len(b)-1-i] = by
	}
	return TryFromLEBytes(le)
}
