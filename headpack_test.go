package headpack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xcodian/headpack/jsonbridge"
	"github.com/xcodian/headpack/value"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	root := value.Map([]value.Entry{
		{Key: "id", Value: value.SInt(1186275104)},
		{Key: "name", Value: value.String("AYUMI")},
		{Key: "verified", Value: value.Bool(false)},
		{Key: "tags", Value: value.List([]value.Value{value.String("a"), value.String("b")})},
	})

	encoded, err := Encode(root)
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.True(t, value.Equal(root, decoded))
}

func TestEncodeRejectsBareScalar(t *testing.T) {
	_, err := Encode(value.SInt(1))
	require.Error(t, err)
}

func TestEncodeDecodeThroughJSONBridge(t *testing.T) {
	v, err := jsonbridge.ToValue([]byte(`{"a":1,"b":[true,null,"x"]}`))
	require.NoError(t, err)

	encoded, err := Encode(v)
	require.NoError(t, err)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	require.True(t, value.Equal(v, decoded))
}
