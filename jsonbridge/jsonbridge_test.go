package jsonbridge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xcodian/headpack/value"
)

func TestToValueScalars(t *testing.T) {
	v, err := ToValue([]byte(`{"a":1,"b":-1,"c":null,"d":true,"e":"hi","f":3.5}`))
	require.NoError(t, err)
	require.Equal(t, value.KindMap, v.Kind)

	byKey := map[string]value.Value{}
	for _, e := range v.Entries {
		byKey[e.Key] = e.Value
	}

	require.Equal(t, value.KindSInt, byKey["a"].Kind)
	require.Equal(t, value.KindSInt, byKey["b"].Kind)
	require.Equal(t, value.KindNull, byKey["c"].Kind)
	require.Equal(t, value.KindBool, byKey["d"].Kind)
	require.True(t, byKey["d"].BoolVal)
	require.Equal(t, value.KindString, byKey["e"].Kind)
	require.Equal(t, value.KindFloat32, byKey["f"].Kind)
}

func TestToValueLargeUnsignedUsesUInt(t *testing.T) {
	v, err := ToValue([]byte(`{"n":18446744073709551615}`))
	require.NoError(t, err)
	require.Equal(t, value.KindUInt, v.Entries[0].Value.Kind)
}

func TestToValueIntegerBeyondUint64FallsBackToString(t *testing.T) {
	v, err := ToValue([]byte(`{"n":123456789012345678901234567890}`))
	require.NoError(t, err)
	require.Equal(t, value.KindString, v.Entries[0].Value.Kind)
	require.Equal(t, "123456789012345678901234567890", v.Entries[0].Value.Str)
}

func TestToValueNegativeIntegerBeyondInt64FallsBackToString(t *testing.T) {
	v, err := ToValue([]byte(`{"n":-123456789012345678901234567890}`))
	require.NoError(t, err)
	require.Equal(t, value.KindString, v.Entries[0].Value.Kind)
	require.Equal(t, "-123456789012345678901234567890", v.Entries[0].Value.Str)
}

func TestToValueFloatPrefersFloat32WhenExact(t *testing.T) {
	v, err := ToValue([]byte(`3.1415927410125732`))
	require.NoError(t, err)
	require.Equal(t, value.KindFloat32, v.Kind)
}

func TestToValueFloatFallsBackToFloat64(t *testing.T) {
	v, err := ToValue([]byte(`0.1`))
	require.NoError(t, err)
	require.Equal(t, value.KindFloat64, v.Kind)
}

func TestToValueArraysAndNesting(t *testing.T) {
	v, err := ToValue([]byte(`{"items":[1,2,{"nested":true}]}`))
	require.NoError(t, err)
	require.Equal(t, value.KindList, v.Entries[0].Value.Kind)
	require.Len(t, v.Entries[0].Value.Items, 3)
	require.Equal(t, value.KindMap, v.Entries[0].Value.Items[2].Kind)
}

func TestFromValueRoundTripsThroughJSON(t *testing.T) {
	v := value.Map([]value.Entry{
		{Key: "id", Value: value.SInt(1186275104)},
		{Key: "id_str", Value: value.String("1186275104")},
	})

	out, err := FromValue(v)
	require.NoError(t, err)

	back, err := ToValue(out)
	require.NoError(t, err)

	require.True(t, value.Equal(v, back))
}

func TestFromValueBytesIsBase64(t *testing.T) {
	v := value.Bytes([]byte{0xde, 0xad, 0xbe, 0xef})
	out, err := FromValue(v)
	require.NoError(t, err)
	require.JSONEq(t, `"3q2+7w=="`, string(out))
}
