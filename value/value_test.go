package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindClass(t *testing.T) {
	require.Equal(t, ClassString, KindString.Class())
	require.Equal(t, ClassBytes, KindBytes.Class())
	require.Equal(t, ClassCollection, KindMap.Class())
	require.Equal(t, ClassCollection, KindList.Class())
	require.Equal(t, ClassFixed, KindSInt.Class())
	require.Equal(t, ClassFixed, KindUserDefined.Class())
}

func TestEqual(t *testing.T) {
	a := Map([]Entry{
		{Key: "a", Value: SInt(1)},
		{Key: "b", Value: List([]Value{String("x"), Null(), Bool(true)})},
	})
	b := Map([]Entry{
		{Key: "a", Value: SInt(1)},
		{Key: "b", Value: List([]Value{String("x"), Null(), Bool(true)})},
	})
	require.True(t, Equal(a, b))

	c := Map([]Entry{
		{Key: "a", Value: SInt(2)},
	})
	require.False(t, Equal(a, c))
}

func TestEqualKeyOrderMatters(t *testing.T) {
	a := Map([]Entry{{Key: "a", Value: Null()}, {Key: "b", Value: Null()}})
	b := Map([]Entry{{Key: "b", Value: Null()}, {Key: "a", Value: Null()}})
	require.False(t, Equal(a, b))
}
