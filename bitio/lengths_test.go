package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLengthRoundTrip(t *testing.T) {
	lengths := []uint64{0, 1, 5, 7, 8, 63, 64, 511, 512, 1000000, 16, 33, 38}

	encoded := EncodeLengths(lengths)
	r := NewLengthReader(encoded)

	for _, want := range lengths {
		got, err := r.Next()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestAtomsForLengthZeroUsesOneAtom(t *testing.T) {
	require.Equal(t, []uint8{0}, atomsForLength(0))
}

func TestLengthReaderTruncated(t *testing.T) {
	r := NewLengthReader(nil)
	_, err := r.Next()
	require.Error(t, err)
}

func TestLengthEncodingOddAtomCountPadsZeroNibble(t *testing.T) {
	// A single length needing one atom: one nibble, one byte, low nibble zero.
	encoded := EncodeLengths([]uint64{5})
	require.Len(t, encoded, 1)
	require.Equal(t, uint8(0), encoded[0]&0x0F)
}
