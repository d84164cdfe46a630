// Package emit_test covers the chunk/concatenate rule and both renderers.
package emit_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmapbench/emit"
	"github.com/katalvlaran/pmapbench/graphgen"
)

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func TestItems_SingleLiteral(t *testing.T) {
	em, err := emit.Items("xs", []string{"1", "2", "3"}, emit.WithPerLine(2))
	require.NoError(t, err)

	require.Len(t, em.Literals, 1)
	assert.Equal(t, "xs", em.Literals[0].Name)
	assert.Equal(t, "@xs = [\n  1, 2,\n  3]", em.Text())
	assert.False(t, em.NeedsAppend())
	assert.Equal(t, []string{"xs"}, em.Concat)
}

func TestItems_AtThresholdIsNotSplit(t *testing.T) {
	em, err := emit.Items("xs", numbered(10), emit.WithThreshold(10), emit.WithChunkSize(4))
	require.NoError(t, err)
	assert.Len(t, em.Literals, 1)
	assert.Empty(t, em.Binding)
}

func TestItems_Empty(t *testing.T) {
	em, err := emit.Items("none", nil)
	require.NoError(t, err)
	assert.Equal(t, "@none = []", em.Text())
	assert.Empty(t, em.Flatten())
}

// 10,000 items, threshold 3500, chunk 2000: five chunk literals plus one
// concatenation binding, flattening back to the input order.
func TestItems_TenThousand(t *testing.T) {
	items := numbered(10000)
	em, err := emit.Items("edges", items, emit.WithThreshold(3500), emit.WithChunkSize(2000))
	require.NoError(t, err)

	require.Len(t, em.Literals, 5)
	for i, l := range em.Literals {
		assert.Equal(t, "edges_"+strconv.Itoa(i), l.Name)
		assert.Len(t, l.Items, 2000)
	}
	assert.True(t, em.NeedsAppend())
	assert.Equal(t,
		"@edges = @append(@edges_0, @append(@edges_1, @append(@edges_2, @append(@edges_3, @edges_4))))",
		em.Binding)
	assert.Len(t, em.Bindings(), 6)

	if diff := cmp.Diff(items, em.Flatten()); diff != "" {
		t.Fatalf("flatten mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2000, em.MaxLiteral())
	assert.NoError(t, em.Check())
}

func TestItems_TwoChunks(t *testing.T) {
	em, err := emit.Items("e", numbered(7), emit.WithThreshold(5), emit.WithChunkSize(4))
	require.NoError(t, err)
	require.Len(t, em.Literals, 2)
	assert.Len(t, em.Literals[1].Items, 3)
	assert.Equal(t, "@e = @append(@e_0, @e_1)", em.Binding)
	assert.True(t, strings.HasSuffix(em.Text(), em.Binding))
}

func TestItems_NoLiteralExceedsThreshold(t *testing.T) {
	for _, n := range []int{1, 99, 100, 101, 250, 1001} {
		em, err := emit.Items("x", numbered(n), emit.WithThreshold(100), emit.WithChunkSize(33))
		require.NoError(t, err)
		assert.LessOrEqual(t, em.MaxLiteral(), 100, "n=%d", n)
		assert.NoError(t, em.Check())
		assert.Equal(t, numbered(n), em.Flatten(), "n=%d", n)
	}
}

func TestItems_Errors(t *testing.T) {
	_, err := emit.Items("x", nil, emit.WithThreshold(10), emit.WithChunkSize(10))
	assert.True(t, errors.Is(err, emit.ErrBadChunkSize))

	_, err = emit.Items("", nil)
	assert.True(t, errors.Is(err, emit.ErrEmptyName))

	em := &emit.Emission{Name: "x", Threshold: 4, Literals: []emit.Literal{{Name: "x", Items: numbered(5)}}}
	assert.True(t, errors.Is(em.Check(), emit.ErrLiteralTooLarge))

	assert.Panics(t, func() { emit.WithThreshold(0) })
	assert.Panics(t, func() { emit.WithChunkSize(-1) })
	assert.Panics(t, func() { emit.WithPerLine(0) })
}

func TestEdges_Render(t *testing.T) {
	edges := []graphgen.Edge{{From: 0, To: 1, Weight: 9}, {From: 1, To: 2, Weight: 6}, {From: 2, To: 3, Weight: 9}}
	em, err := emit.Edges("edges", edges)
	require.NoError(t, err)
	assert.Equal(t, "@edges = [\n  #E3{0,1,9}, #E3{1,2,6}, #E3{2,3,9}]", em.Text())
}

func TestEdges_PerLineWrap(t *testing.T) {
	g, err := graphgen.Generate(5, 4, 47)
	require.NoError(t, err)
	em, err := emit.Edges("edges", g.Edges)
	require.NoError(t, err)
	// 15 edges at 8 per line: header plus two lines.
	assert.Equal(t, 3, strings.Count(em.Text(), "\n")+1)
}

func TestAdjacency_Render(t *testing.T) {
	g := &graphgen.Graph{N: 3, Edges: []graphgen.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}, {From: 0, To: 2, Weight: 7}}}
	em, err := emit.Adjacency("adj", g.Adjacency())
	require.NoError(t, err)
	want := "@adj = [\n" +
		"  #N{0, [\n    #E2{1,2}, #E2{2,7}]},\n" +
		"  #N{1, [\n    #E2{2,3}]}]"
	assert.Equal(t, want, em.Text())
}

func TestAdjacencyItem_WrapsArcs(t *testing.T) {
	a := graphgen.Adjacency{Source: 4}
	for v := 0; v < 12; v++ {
		a.Out = append(a.Out, graphgen.Arc{To: v, Weight: 1})
	}
	item := emit.AdjacencyItem(a)
	assert.Equal(t, 2, strings.Count(item, "\n"))
	assert.True(t, strings.HasPrefix(item, "#N{4, [\n    #E2{0,1}"))
	assert.True(t, strings.HasSuffix(item, "#E2{10,1}, #E2{11,1}]}"))
}

func TestAdjacency_Split(t *testing.T) {
	groups := make([]graphgen.Adjacency, 7)
	for i := range groups {
		groups[i] = graphgen.Adjacency{Source: i, Out: []graphgen.Arc{{To: (i + 1) % 7, Weight: 1}}}
	}
	em, err := emit.Adjacency("adj", groups, emit.WithThreshold(5), emit.WithChunkSize(3))
	require.NoError(t, err)
	require.Len(t, em.Literals, 3)
	assert.Equal(t, "@adj = @append(@adj_0, @append(@adj_1, @adj_2))", em.Binding)
	assert.Len(t, em.Flatten(), 7)
}
