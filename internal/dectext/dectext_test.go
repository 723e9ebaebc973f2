package dectext

import "testing"

func TestParseFinite(t *testing.T) {
	cases := []struct {
		in       string
		neg      bool
		intPart  string
		fracPart string
		hasExp   bool
		expNeg   bool
		expPart  string
	}{
		{"0", false, "0", "", false, false, ""},
		{"-123", true, "123", "", false, false, ""},
		{"123.456", false, "123", "456", false, false, ""},
		{".5", false, "", "5", false, false, ""},
		{"5.", false, "5", "", false, false, ""},
		{"+17e1", false, "17", "", true, false, "1"},
		{"1e-1", false, "1", "", true, true, "1"},
		{"007.0", false, "007", "0", false, false, ""},
	}
	for _, c := range cases {
		p, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if p.Tag != Finite {
			t.Fatalf("Parse(%q).Tag = %v, want Finite", c.in, p.Tag)
		}
		if p.Negative != c.neg || p.IntPart != c.intPart || p.FracPart != c.fracPart ||
			p.HasExponent != c.hasExp || p.ExpNegative != c.expNeg || p.ExpPart != c.expPart {
			t.Fatalf("Parse(%q) = %+v, want {neg:%v int:%q frac:%q hasExp:%v expNeg:%v exp:%q}",
				c.in, p, c.neg, c.intPart, c.fracPart, c.hasExp, c.expNeg, c.expPart)
		}
	}
}

func TestParseSpecial(t *testing.T) {
	cases := []struct {
		in      string
		neg     bool
		tag     Tag
		payload string
	}{
		{"inf", false, Infinity, ""},
		{"-Infinity", true, Infinity, ""},
		{"NaN", false, QuietNaN, ""},
		{"-nan", true, QuietNaN, ""},
		{"snan(123)", false, SignalingNaN, "123"},
		{"-SNAN(007)", true, SignalingNaN, "007"},
	}
	for _, c := range cases {
		p, err := Parse(c.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.in, err)
		}
		if p.Tag != c.tag || p.Negative != c.neg || p.Payload != c.payload {
			t.Fatalf("Parse(%q) = %+v, want tag=%v neg=%v payload=%q", c.in, p, c.tag, c.neg, c.payload)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"+",
		"-",
		".",
		"abc",
		"1.2.3",
		"1e",
		"1e+",
		"snan(",
		"snan(12",
		"snan()",
		"snan(1a2)",
		"nan(1)x",
		"1x",
	}
	for _, in := range bad {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q): expected error, got none", in)
		}
	}
}

func TestExponentOverflow(t *testing.T) {
	p, err := Parse("1e2147483648")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := p.Exponent(); err == nil {
		t.Fatal("expected exponent overflow")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrExponentOverflow {
		t.Fatalf("got %v, want ErrExponentOverflow", err)
	}
}

func TestExponentInRange(t *testing.T) {
	p, err := Parse("1e-2147483648")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, err := p.Exponent()
	if err != nil {
		t.Fatalf("Exponent: %v", err)
	}
	if v != -2147483648 {
		t.Fatalf("Exponent() = %d, want -2147483648", v)
	}
}
