package varint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xcodian/headpack/int128"
)

func TestUintZeroIsEmpty(t *testing.T) {
	require.Empty(t, EncodeUint(int128.FromUint64(0)))
}

func TestSintZeroIsEmpty(t *testing.T) {
	require.Empty(t, EncodeSint(int128.FromInt64(0)))
}

func TestUintRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 127, 128, 255, 256, 1 << 32, ^uint64(0)} {
		encoded := EncodeUint(int128.FromUint64(v))
		decoded := DecodeUint(encoded)
		require.Equal(t, int128.FromUint64(v), decoded)
	}
}

func TestSintRoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 127, -128, 1000000, -1000000} {
		n := int128.FromInt64(v)
		encoded := EncodeSint(n)
		decoded := DecodeSint(encoded)
		require.Equal(t, n, decoded)
	}
}

func TestSintPayloadByteCounts(t *testing.T) {
	// m = (|n| << 1) | sign gives 2, 3, 0, 254 and 257 for these values, so
	// the payload byte counts are {1,1,0,1,2}: -128 maps to 0x0101.
	values := []int64{1, -1, 0, 127, -128}
	expected := []int{1, 1, 0, 1, 2}

	for i, v := range values {
		got := len(EncodeSint(int128.FromInt64(v)))
		require.Equal(t, expected[i], got, "value %d", v)
	}
}

func TestSintMinInt128RoundTrip(t *testing.T) {
	encoded := EncodeSint(int128.MinInt128)
	require.Equal(t, []byte{0x01}, encoded)

	decoded := DecodeSint(encoded)
	require.Equal(t, int128.MinInt128, decoded)
}

func TestSintMaxInt128RoundTrip(t *testing.T) {
	maxInt128 := int128.Int128{Hi: 0x7FFFFFFFFFFFFFFF, Lo: 0xFFFFFFFFFFFFFFFF}
	encoded := EncodeSint(maxInt128)
	decoded := DecodeSint(encoded)
	require.Equal(t, maxInt128, decoded)
}
