package pmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmapbench/pmap"
)

// forEachRepresentation runs fn once per family member sized for n keys.
func forEachRepresentation(t *testing.T, n int, fn func(t *testing.T, m pmap.Map)) {
	t.Helper()
	for _, r := range pmap.Representations() {
		t.Run(fmt.Sprintf("%s/n=%d", r, n), func(t *testing.T) {
			fn(t, pmap.New(r, n))
		})
	}
}

func TestMap_GetOnEmpty(t *testing.T) {
	forEachRepresentation(t, 100, func(t *testing.T, m pmap.Map) {
		for _, k := range []int{0, 1, 50, 99} {
			assert.Equal(t, pmap.Sentinel, m.Get(k))
		}
		assert.Equal(t, 0, pmap.Size(m))
	})
}

func TestMap_SetThenGet(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 17, 100, 257, 1025} {
		forEachRepresentation(t, n, func(t *testing.T, m pmap.Map) {
			for k := 0; k < n; k++ {
				m = m.Set(k, int64(k*3+1))
			}
			for k := 0; k < n; k++ {
				require.Equal(t, int64(k*3+1), m.Get(k), "key %d", k)
			}
			assert.Equal(t, n, pmap.Size(m))
		})
	}
}

func TestMap_SetIsPersistent(t *testing.T) {
	forEachRepresentation(t, 64, func(t *testing.T, m pmap.Map) {
		v1 := m.Set(7, 70)
		v2 := v1.Set(7, 71)
		v3 := v2.Set(9, 90)

		assert.Equal(t, pmap.Sentinel, m.Get(7))
		assert.Equal(t, int64(70), v1.Get(7))
		assert.Equal(t, int64(71), v2.Get(7))
		assert.Equal(t, pmap.Sentinel, v2.Get(9))
		assert.Equal(t, int64(90), v3.Get(9))
		assert.Equal(t, int64(71), v3.Get(7))
	})
}

func TestMap_MinUpdateIdentityOnNoImprovement(t *testing.T) {
	forEachRepresentation(t, 300, func(t *testing.T, m pmap.Map) {
		m = m.Set(0, 0).Set(150, 40).Set(299, 12)

		for _, cand := range []int64{40, 41, 1000} {
			same := m.MinUpdate(150, cand)
			assert.Same(t, m, same, "candidate %d must not rebuild", cand)

			flagged, changed := m.MinUpdateFlagged(150, cand)
			assert.False(t, changed)
			assert.Same(t, m, flagged)
		}

		// Absent key with a non-improving candidate (>= Sentinel).
		assert.Same(t, m, m.MinUpdate(5, pmap.Sentinel))
	})
}

func TestMap_MinUpdateImproves(t *testing.T) {
	forEachRepresentation(t, 300, func(t *testing.T, m pmap.Map) {
		m = m.Set(150, 40)

		better, changed := m.MinUpdateFlagged(150, 39)
		assert.True(t, changed)
		assert.NotSame(t, m, better)
		assert.Equal(t, int64(39), better.Get(150))
		assert.Equal(t, int64(40), m.Get(150))

		// Absent key: any value below Sentinel is an improvement.
		inserted, changed := m.MinUpdateFlagged(3, 7)
		assert.True(t, changed)
		assert.Equal(t, int64(7), inserted.Get(3))
		assert.Equal(t, int64(40), inserted.Get(150))
	})
}

func TestMap_SetAlwaysRebuilds(t *testing.T) {
	forEachRepresentation(t, 40, func(t *testing.T, m pmap.Map) {
		m = m.Set(3, 9)
		again := m.Set(3, 9)
		assert.NotSame(t, m, again)
		assert.Equal(t, int64(9), again.Get(3))
	})
}

// TestMap_FlagSumDetectsQuiescence: over a batch of updates the flag sum is
// zero exactly when the batch leaves the map untouched.
func TestMap_FlagSumDetectsQuiescence(t *testing.T) {
	type upd struct {
		k int
		v int64
	}
	batch := []upd{{1, 10}, {2, 20}, {1, 5}, {3, 30}, {2, 25}}

	forEachRepresentation(t, 8, func(t *testing.T, m pmap.Map) {
		run := func(m pmap.Map) (pmap.Map, int) {
			sum := 0
			for _, u := range batch {
				var c bool
				m, c = m.MinUpdateFlagged(u.k, u.v)
				if c {
					sum++
				}
			}
			return m, sum
		}
		first, s1 := run(m)
		assert.Equal(t, 4, s1) // (2,25) loses to 20
		second, s2 := run(first)
		assert.Equal(t, 0, s2)
		assert.Same(t, first, second)
	})
}

func TestMap_Vector(t *testing.T) {
	forEachRepresentation(t, 4, func(t *testing.T, m pmap.Map) {
		m = m.Set(0, 0).Set(2, 8)
		assert.Equal(t, []int64{0, pmap.Sentinel, 8, pmap.Sentinel}, pmap.Vector(m, 4))
	})
}

func TestNew_DepthAndRepresentation(t *testing.T) {
	for _, r := range pmap.Representations() {
		m := pmap.New(r, 1000)
		assert.Equal(t, r, m.Representation())
		if r.IsTrie() {
			assert.Equal(t, pmap.Depth(1000, r.Base()), m.Depth())
		} else {
			assert.Equal(t, 0, m.Depth())
		}
	}
}

func TestParseRepresentation(t *testing.T) {
	for _, r := range pmap.Representations() {
		got, err := pmap.ParseRepresentation(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
	got, err := pmap.ParseRepresentation(" Trie32 ")
	require.NoError(t, err)
	assert.Equal(t, pmap.Radix32, got)

	_, err = pmap.ParseRepresentation("btree")
	assert.ErrorIs(t, err, pmap.ErrUnknownRepresentation)

	var r pmap.Representation
	require.NoError(t, r.UnmarshalText([]byte("q4")))
	assert.Equal(t, pmap.Radix4, r)
	assert.Equal(t, "Representation(9)", pmap.Representation(9).String())
}
