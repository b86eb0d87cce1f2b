package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeClassesEmpty(t *testing.T) {
	for _, isRootMap := range []bool{false, true} {
		encoded := EncodeClasses(nil, isRootMap)
		require.Len(t, encoded, 1)

		classes, gotRootMap, consumed, err := DecodeClasses(encoded)
		require.NoError(t, err)
		require.Empty(t, classes)
		require.Equal(t, isRootMap, gotRootMap)
		require.Equal(t, 1, consumed)
	}
}

func TestEmptyMarkerBytes(t *testing.T) {
	require.Equal(t, []byte{0x0c}, EncodeClasses(nil, false))
	require.Equal(t, []byte{0x4c}, EncodeClasses(nil, true))
}

func TestEncodeDecodeClassesRoundTrip(t *testing.T) {
	cases := [][]uint8{
		{0},
		{0, 1},
		{3, 2, 1},
		{0, 1, 2, 3},
		{0, 1, 2, 3, 0},
		{0, 1, 2, 3, 0, 1, 2, 3, 0, 1},
	}

	for _, classes := range cases {
		for _, isRootMap := range []bool{false, true} {
			encoded := EncodeClasses(classes, isRootMap)
			got, gotRootMap, consumed, err := DecodeClasses(encoded)
			require.NoError(t, err)
			require.Equal(t, classes, got)
			require.Equal(t, isRootMap, gotRootMap)
			require.Equal(t, len(encoded), consumed)
		}
	}
}

func TestDecodeClassesTruncated(t *testing.T) {
	_, _, _, err := DecodeClasses(nil)
	require.Error(t, err)

	// A header byte promising more classes than are actually present.
	encoded := EncodeClasses([]uint8{0, 1, 2, 3, 0}, false)
	_, _, _, err = DecodeClasses(encoded[:len(encoded)-1])
	require.Error(t, err)
}
