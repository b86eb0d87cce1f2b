package userdefined

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(200, "geo_point", 16))

	size, ok := r.Size(200)
	require.True(t, ok)
	require.Equal(t, 16, size)

	name, ok := r.Name(200)
	require.True(t, ok)
	require.Equal(t, "geo_point", name)

	_, ok = r.Size(201)
	require.False(t, ok)
}

func TestRegisterRejectsOutOfRange(t *testing.T) {
	r := NewRegistry()
	require.Error(t, r.Register(38, "too_low", 4))
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(40, "a", 1))
	require.Error(t, r.Register(40, "b", 2))
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var r *Registry
	_, ok := r.Size(100)
	require.False(t, ok)
	_, ok = r.NameHash(100)
	require.False(t, ok)
}

func TestNameHashDistinguishesNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(50, "alpha", 1))
	require.NoError(t, r.Register(51, "beta", 1))

	h1, _ := r.NameHash(50)
	h2, _ := r.NameHash(51)
	require.NotEqual(t, h1, h2)
}
