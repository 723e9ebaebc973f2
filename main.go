package main

import (
	"fmt"
	"unsafe"

	"github.com/trippwill/go-decimal/decimal"
	"golang.org/x/text/language"
)

func main() {
	println("Bitstring:", unsafe.Sizeof(decimal.Bitstring{}))
	println("--------------------")

	format := "%-5s\t%12s\t%s\n"
	sep := "-------------------------------------"

	a, _ := decimal.TryParseStr("1")
	b, _ := decimal.TryParseStr("1.0")
	c, _ := decimal.TryParseStr("1.00")

	fmt.Printf(format, "1", a.String(), a.Class())
	fmt.Printf(format, "1.0", b.String(), b.Class())
	fmt.Printf(format, "1.00", c.String(), c.Class())
	println(sep)

	// Same value, three distinct bit patterns: non-normalized significands
	// round-trip exactly rather than collapsing to a canonical form.
	for _, v := range []decimal.Bitstring{a, b, c} {
		fmt.Printf("%-6s -> % x\n", v.String(), v.LEBytes())
	}
	println(sep)

	neg, _ := decimal.TryParseStr("-123.45")
	fmt.Printf(format, "-123.45", neg.String(), neg.Class())
	fmt.Println("is finite:", neg.IsFinite(), "is negative:", neg.IsNegative())
	println(sep)

	inf, _ := decimal.TryParseStr("Infinity")
	ninf, _ := decimal.TryParseStr("-Infinity")
	nan, _ := decimal.TryParseStr("NaN")
	snan, _ := decimal.TryParseStr("sNaN(123)")

	fmt.Println("Infinity:", inf.String(), "-Infinity:", ninf.String())
	fmt.Println("NaN:", nan.String(), "sNaN123:", snan.String())
	fmt.Println("Infinity is infinite:", inf.IsInf())
	fmt.Println("sNaN123 is signaling:", snan.IsSignalingNaN())
	println(sep)

	// Integer and float bridges fail rather than round when the exact
	// value can't be represented — never silently lossy.
	hundred, _ := decimal.FromInt(100)
	fmt.Printf(format, "100", hundred.String(), hundred.Class())

	if back, ok := decimal.ToInt[int](hundred); ok {
		fmt.Println("round-tripped back to int:", back)
	}

	third, _ := decimal.TryParseStr("0.1")
	if _, ok := decimal.ToInt[int](third); !ok {
		fmt.Println("0.1 has no exact integer representation: rejected, not rounded")
	}

	pi32 := decimal.FromFloat32(3.14159265)
	fmt.Printf(format, "float32", pi32.String(), pi32.Class())
	if f, ok := decimal.ToFloat32(pi32); ok {
		fmt.Println("round-tripped back to float32:", f)
	}
	println(sep)

	// Format renders for display only; it never participates in parsing
	// or the strict wire-form round trip that String preserves.
	amount, _ := decimal.TryParseStr("1234567.89")
	fmt.Println("en-US:", amount.Format(language.AmericanEnglish))
	fmt.Println("de:", amount.Format(language.German))
	fmt.Println("wire form (unchanged by locale):", amount.String())
}
