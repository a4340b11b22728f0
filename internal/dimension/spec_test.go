package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsLowDimensions(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 2} {
		_, err := New(n)
		require.ErrorIs(t, err, ErrInvalidDimension, "n=%d", n)
	}

	s, err := New(3)
	require.NoError(t, err)
	assert.Equal(t, 3, s.N())
}

func TestRange(t *testing.T) {
	specs, err := Range(7, 253)
	require.NoError(t, err)
	require.Len(t, specs, 247)
	assert.Equal(t, 7, specs[0].N())
	assert.Equal(t, 253, specs[len(specs)-1].N())

	_, err = Range(5, 4)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = Range(2, 5)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestSpec_ParameterLists(t *testing.T) {
	s, err := New(3)
	require.NoError(t, err)

	assert.Equal(t, "Map3D", s.TypeName())
	assert.Equal(t, "map3d.go", s.Filename())
	assert.Equal(t, "K1, K2, K3, V", s.TypeParams())
	assert.Equal(t, "K1, K2, K3 comparable, V comparable", s.TypeParamDecls())
	assert.Equal(t, "k1 K1, k2 K2, k3 K3", s.Params())
	assert.Equal(t, "k1, k2, k3", s.Args())
}

func TestSpec_MapType(t *testing.T) {
	s, err := New(4)
	require.NoError(t, err)

	assert.Equal(t, "map[K1]map[K2]map[K3]map[K4]V", s.MapType(1))
	assert.Equal(t, "map[K3]map[K4]V", s.MapType(3))
	assert.Equal(t, "map[K4]V", s.MapType(4))

	assert.Panics(t, func() { s.MapType(0) })
	assert.Panics(t, func() { s.MapType(5) })
}

func TestSpec_InteriorCount(t *testing.T) {
	for n := MinDimension; n <= 253; n++ {
		s, err := New(n)
		require.NoError(t, err)

		levels := s.Interior()
		require.Len(t, levels, n-2, "n=%d", n)
		assert.Equal(t, 2, levels[0])
		assert.Equal(t, n-1, levels[len(levels)-1])
	}
}
