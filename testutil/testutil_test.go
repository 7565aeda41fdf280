package testutil

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedInt64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SortedInt64s(500, -10, 3)

	assert.Len(t, v, 500)
	assert.Equal(t, int64(-10), v[0])
	assert.True(t, slices.IsSorted(v))
}

func TestSortedFloat64s(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.SortedFloat64s(100, -1, 1)

	assert.Len(t, v, 100)
	assert.True(t, slices.IsSorted(v))
	assert.GreaterOrEqual(t, v[0], -1.0)
	assert.Less(t, v[99], 1.0)
}

func TestInt64Range(t *testing.T) {
	rng := NewRNG(4711)

	for _, x := range rng.Int64Range(200, 5, 10) {
		assert.GreaterOrEqual(t, x, int64(5))
		assert.Less(t, x, int64(10))
	}
}

func TestZipfPicks(t *testing.T) {
	rng := NewRNG(4711)

	picks := rng.ZipfPicks(1000, 5, 1.5)

	counts := make([]int, 5)
	for _, p := range picks {
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, 5)
		counts[p]++
	}
	assert.Greater(t, counts[0], counts[4])
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Int64Range(10, 0, 1000)
	rng.Reset()
	v2 := rng.Int64Range(10, 0, 1000)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestRandomSlices(t *testing.T) {
	rng := NewRNG(1)

	s := RandomSlices(rng, 300)

	require.Equal(t, uint32(300), s.Len())
	assert.True(t, s.Ts.IsSorted())
	assert.Equal(t, s.Len(), s.Names.Len())
	assert.LessOrEqual(t, s.Pool.Len(), 7)

	cols := s.Columns()
	require.Len(t, cols, 9)
	assert.Equal(t, "ts", cols[ColTs].Name())
	assert.True(t, cols[ColTs].IsNaturallyOrdered())
	assert.True(t, cols[ColID].Hidden())
	assert.Equal(t, "name", cols[ColName].Name())
}
