package dpd

import "testing"

// TestEncodeDecletMatchesWorkedExamples pins the all-small band against the
// literal coefficient declets implied by this package's own worked byte
// vectors (spec §8): "-123" and "123.456" pad their coefficients to full
// width with leading zero digits, split into 3-digit groups, and each
// group's declet is exactly the group's digits read as base-8 nibbles
// packed into bits 9-7, 6-4, and 2-0 (bit 3 left 0).
func TestEncodeDecletMatchesWorkedExamples(t *testing.T) {
	cases := []struct {
		d0, d1, d2 uint8
		want       uint16
	}{
		{0, 0, 0, 0},   // padding group shared by "-123" and "snan(123)"
		{1, 2, 3, 163}, // "-123" coefficient 0000123, low declet
		{1, 2, 3, 163}, // "snan(123)" payload, same digits
		{4, 5, 6, 598}, // "123.456" coefficient 0123456, low declet
	}
	for _, c := range cases {
		got, err := EncodeDeclet(c.d0, c.d1, c.d2)
		if err != nil {
			t.Fatalf("EncodeDeclet(%d,%d,%d): %v", c.d0, c.d1, c.d2, err)
		}
		if got != c.want {
			t.Fatalf("EncodeDeclet(%d,%d,%d) = %d, want %d", c.d0, c.d1, c.d2, got, c.want)
		}
		d0, d1, d2, err := DecodeDeclet(c.want)
		if err != nil {
			t.Fatalf("DecodeDeclet(%d): %v", c.want, err)
		}
		if d0 != c.d0 || d1 != c.d1 || d2 != c.d2 {
			t.Fatalf("DecodeDeclet(%d) = (%d,%d,%d), want (%d,%d,%d)", c.want, d0, d1, d2, c.d0, c.d1, c.d2)
		}
	}
}

// TestDeclRoundTrip checks every one of the 1000 canonical digit triples
// survives EncodeDeclet -> DecodeDeclet, across all eight large/small
// bands, not just the all-small band exercised above.
func TestDeclRoundTrip(t *testing.T) {
	for d0 := uint8(0); d0 < 10; d0++ {
		for d1 := uint8(0); d1 < 10; d1++ {
			for d2 := uint8(0); d2 < 10; d2++ {
				v, err := EncodeDeclet(d0, d1, d2)
				if err != nil {
					t.Fatalf("EncodeDeclet(%d,%d,%d): %v", d0, d1, d2, err)
				}
				gd0, gd1, gd2, err := DecodeDeclet(v)
				if err != nil {
					t.Fatalf("DecodeDeclet(%d): %v", v, err)
				}
				if gd0 != d0 || gd1 != d1 || gd2 != d2 {
					t.Fatalf("round trip (%d,%d,%d) -> %d -> (%d,%d,%d)", d0, d1, d2, v, gd0, gd1, gd2)
				}
			}
		}
	}
}

// TestDeclRoundTripIsBijective confirms the 1000 canonical triples map to
// 1000 distinct declet values, i.e. the band layout in dpd.go never
// collides two different triples onto the same ten-bit pattern.
func TestDeclRoundTripIsBijective(t *testing.T) {
	seen := make(map[uint16]struct{}, 1000)
	for d0 := uint8(0); d0 < 10; d0++ {
		for d1 := uint8(0); d1 < 10; d1++ {
			for d2 := uint8(0); d2 < 10; d2++ {
				v, err := EncodeDeclet(d0, d1, d2)
				if err != nil {
					t.Fatalf("EncodeDeclet(%d,%d,%d): %v", d0, d1, d2, err)
				}
				if _, dup := seen[v]; dup {
					t.Fatalf("declet %d produced by more than one digit triple (collision at %d,%d,%d)", v, d0, d1, d2)
				}
				seen[v] = struct{}{}
			}
		}
	}
	if len(seen) != 1000 {
		t.Fatalf("got %d distinct declets, want 1000", len(seen))
	}
}

func TestEncodeDecodeDigits(t *testing.T) {
	digits := []uint8{1, 2, 3, 4, 5, 6, 7}
	declets, err := EncodeDigits(digits)
	if err != nil {
		t.Fatal(err)
	}
	if len(declets) != 3 {
		t.Fatalf("expected 3 declets, got %d", len(declets))
	}
	got, err := DecodeDigits(declets)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 0, 1, 2, 3, 4, 5, 6, 7}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEncodeDecletRejectsOutOfRange(t *testing.T) {
	if _, err := EncodeDeclet(10, 0, 0); err == nil {
		t.Fatal("expected error for digit 10")
	}
	if _, _, _, err := DecodeDeclet(1024); err == nil {
		t.Fatal("expected error for declet value 1024")
	}
}

// TestDecodeDecletAcceptsAllTenBitPatterns checks the spec.md §4.4 rule
// that decoding must accept every ten-bit pattern, including the 24
// non-canonical aliases EncodeDeclet never produces, and that every one of
// them still decodes to in-range (0-9) digits.
func TestDecodeDecletAcceptsAllTenBitPatterns(t *testing.T) {
	for v := uint16(0); v < 1024; v++ {
		d0, d1, d2, err := DecodeDeclet(v)
		if err != nil {
			t.Fatalf("DecodeDeclet(%d): %v", v, err)
		}
		if d0 > 9 || d1 > 9 || d2 > 9 {
			t.Fatalf("DecodeDeclet(%d) produced out-of-range digit (%d,%d,%d)", v, d0, d1, d2)
		}
	}
}

// TestDecodeDecletAliasesFoldOntoAllLargeBand checks the 24 non-canonical
// patterns (every ten-bit value EncodeDeclet never produces) decode without
// error and fold onto the all-large band's triples (8,8,8)-(9,9,9), so none
// of them silently reads as a triple with a small digit.
func TestDecodeDecletAliasesFoldOntoAllLargeBand(t *testing.T) {
	canonical := make(map[uint16]bool, 1000)
	for d0 := uint8(0); d0 < 10; d0++ {
		for d1 := uint8(0); d1 < 10; d1++ {
			for d2 := uint8(0); d2 < 10; d2++ {
				v, err := EncodeDeclet(d0, d1, d2)
				if err != nil {
					t.Fatalf("EncodeDeclet(%d,%d,%d): %v", d0, d1, d2, err)
				}
				canonical[v] = true
			}
		}
	}
	aliases := 0
	for v := uint16(0); v < 1024; v++ {
		if canonical[v] {
			continue
		}
		aliases++
		d0, d1, d2, err := DecodeDeclet(v)
		if err != nil {
			t.Fatalf("DecodeDeclet(%d): %v", v, err)
		}
		if d0 < 8 || d1 < 8 || d2 < 8 {
			t.Fatalf("DecodeDeclet(%d) = (%d,%d,%d), want all digits in {8,9}", v, d0, d1, d2)
		}
	}
	if aliases != 24 {
		t.Fatalf("got %d non-canonical patterns, want 24", aliases)
	}
}

func TestDeclsForDigits(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 6: 2, 7: 3, 34: 12}
	for n, want := range cases {
		if got := DeclsForDigits(n); got != want {
			t.Fatalf("DeclsForDigits(%d) = %d, want %d", n, got, want)
		}
	}
}
