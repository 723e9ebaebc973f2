package decimal

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 100, -100, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, v := range cases {
		b, err := FromInt(v)
		require.NoErrorf(t, err, "FromInt(%d)", v)
		got, ok := ToInt[int64](b)
		require.Truef(t, ok, "ToInt(FromInt(%d))", v)
		assert.Equal(t, v, got)
	}
}

func TestUintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 100, math.MaxUint32, math.MaxUint64}
	for _, v := range cases {
		b, err := FromUint(v)
		require.NoErrorf(t, err, "FromUint(%d)", v)
		got, ok := ToUint[uint64](b)
		require.Truef(t, ok, "ToUint(FromUint(%d))", v)
		assert.Equal(t, v, got)
	}
}

func TestToIntRejectsNonIntegral(t *testing.T) {
	b, err := TryParseStr("0.1")
	require.NoError(t, err)
	_, ok := ToInt[int64](b)
	assert.False(t, ok, "0.1 has no exact integer representation")
}

func TestToIntRejectsOverflow(t *testing.T) {
	b, err := FromInt(int64(math.MaxInt64))
	require.NoError(t, err)
	_, ok := ToInt[int8](b)
	assert.False(t, ok, "MaxInt64 does not fit in int8")
}

func TestToUintRejectsNegative(t *testing.T) {
	b, err := FromInt(int64(-5))
	require.NoError(t, err)
	_, ok := ToUint[uint64](b)
	assert.False(t, ok, "negative value has no unsigned representation")
}

func TestBigIntRoundTrip(t *testing.T) {
	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	neg := new(big.Int).Neg(huge)

	for _, v := range []*big.Int{huge, neg, big.NewInt(0)} {
		b, err := FromBigInt(v)
		require.NoErrorf(t, err, "FromBigInt(%s)", v)
		got, ok := ToBigInt(b)
		require.Truef(t, ok, "ToBigInt(FromBigInt(%s))", v)
		assert.Equalf(t, 0, v.Cmp(got), "round trip for %s, got %s", v, got)
	}
}

func TestScaledIntRejectsFractionalRemainder(t *testing.T) {
	b, err := TryParseStr("10.5")
	require.NoError(t, err)
	_, ok := ToBigInt(b)
	assert.False(t, ok, "10.5 has a non-zero fractional remainder")

	c, err := TryParseStr("10.50")
	require.NoError(t, err)
	v, ok := ToBigInt(c)
	assert.False(t, ok, "10.50 still has a fractional remainder at this scale")
	_ = v
}
