package pmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pmapbench/pmap"
)

type kv struct {
	k int
	v int64
}

func entries(m pmap.Map) []kv {
	var out []kv
	m.Each(func(k int, v int64) bool {
		out = append(out, kv{k, v})
		return true
	})
	return out
}

// New keys go to the front; existing keys keep their position.
func TestAssoc_OrderFrontFirst(t *testing.T) {
	var m pmap.Map = pmap.NewAssoc()
	m = m.Set(0, 0)
	m = m.Set(5, 50)
	m = m.Set(2, 20)
	assert.Equal(t, []kv{{2, 20}, {5, 50}, {0, 0}}, entries(m))

	m = m.Set(5, 49)
	assert.Equal(t, []kv{{2, 20}, {5, 49}, {0, 0}}, entries(m))

	m = m.MinUpdate(0, -1)
	assert.Equal(t, []kv{{2, 20}, {5, 49}, {0, -1}}, entries(m))

	m = m.MinUpdate(9, 90)
	assert.Equal(t, []kv{{9, 90}, {2, 20}, {5, 49}, {0, -1}}, entries(m))
	assert.Equal(t, 4, m.(*pmap.Assoc).Len())
}

func TestAssoc_ReplaceSharesTail(t *testing.T) {
	a := pmap.NewAssoc().Set(1, 1).Set(2, 2).Set(3, 3) // list: 3, 2, 1
	b := a.Set(3, 30)                                  // rebuilds only the head cell

	assert.Equal(t, []kv{{3, 3}, {2, 2}, {1, 1}}, entries(a))
	assert.Equal(t, []kv{{3, 30}, {2, 2}, {1, 1}}, entries(b))
	assert.Equal(t, 0, a.Depth())
	assert.Equal(t, pmap.AssocList, b.Representation())
}
