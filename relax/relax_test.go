// Package relax_test checks every schedule over every representation against
// the reference solvers.
package relax_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/oracle"
	"github.com/katalvlaran/pmapbench/pmap"
	"github.com/katalvlaran/pmapbench/relax"
)

var schedules = []relax.Schedule{
	{Algorithm: relax.BellmanFord},
	{Algorithm: relax.BellmanFord, Early: true},
	{Algorithm: relax.BellmanFord, Adjacency: true},
	{Algorithm: relax.BellmanFord, Early: true, Adjacency: true},
	{Algorithm: relax.DeltaStepping, Delta: 5},
	{Algorithm: relax.DeltaStepping, Early: true, Delta: 5},
	{Algorithm: relax.BellmanFord, GetSet: true},
	{Algorithm: relax.BellmanFord, Early: true, GetSet: true},
}

func TestRun_Validation(t *testing.T) {
	m := relax.Start(pmap.Binary, 3)

	_, err := relax.Run(nil, m, relax.Schedule{})
	assert.True(t, errors.Is(err, relax.ErrNilGraph))

	g := &graphgen.Graph{N: 3}
	_, err = relax.Run(g, nil, relax.Schedule{})
	assert.True(t, errors.Is(err, relax.ErrNilMap))

	_, err = relax.Run(g, pmap.New(pmap.Binary, 3), relax.Schedule{})
	assert.True(t, errors.Is(err, relax.ErrSourceNotSet))

	_, err = relax.Run(g, m, relax.Schedule{Algorithm: relax.DeltaStepping, Adjacency: true, Delta: 5})
	assert.True(t, errors.Is(err, relax.ErrUnsupportedSchedule))

	_, err = relax.Run(g, m, relax.Schedule{Algorithm: relax.DeltaStepping})
	assert.True(t, errors.Is(err, relax.ErrUnsupportedSchedule))

	_, err = relax.Run(g, m, relax.Schedule{Algorithm: relax.Algorithm(9)})
	assert.True(t, errors.Is(err, relax.ErrUnsupportedSchedule))
}

func TestParseAlgorithm(t *testing.T) {
	a, err := relax.ParseAlgorithm("delta-stepping")
	require.NoError(t, err)
	assert.Equal(t, relax.DeltaStepping, a)
	assert.Equal(t, "ds", a.String())
	assert.Equal(t, "Delta-Stepping", a.Title())
	assert.Equal(t, "Bellman-Ford", relax.BellmanFord.Title())

	_, err = relax.ParseAlgorithm("dijkstra")
	assert.Error(t, err)

	var b relax.Algorithm
	require.NoError(t, b.UnmarshalText([]byte("bf")))
	assert.Equal(t, relax.BellmanFord, b)
}

// Chain only: every representation and schedule reaches the sum of the four
// chain weights.
func TestRun_ChainScenario(t *testing.T) {
	g, err := graphgen.Generate(5, 1, 47)
	require.NoError(t, err)

	for _, r := range pmap.Representations() {
		for _, s := range schedules {
			out, err := relax.Run(g, relax.Start(r, g.N), s)
			require.NoError(t, err)
			assert.Equal(t, int64(26), out.Map.Get(4), "%v %+v", r, s)
		}
	}
}

func TestRun_FixedDriverRunsAllRounds(t *testing.T) {
	g, err := graphgen.Generate(5, 4, 47)
	require.NoError(t, err)

	out, err := relax.Run(g, relax.Start(pmap.Radix4, g.N), relax.Schedule{})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Rounds)
	require.Len(t, out.Changes, 4)
	assert.Equal(t, 0, out.Changes[3])
	assert.Equal(t, []int64{0, 9, 9, 8, 10}, pmap.Vector(out.Map, g.N))
}

func TestRun_EarlyDriverMatchesOracleRounds(t *testing.T) {
	g, err := graphgen.Generate(5, 4, 47)
	require.NoError(t, err)

	out, err := relax.Run(g, relax.Start(pmap.Binary, g.N), relax.Schedule{Early: true})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Rounds)
	assert.Equal(t, 0, out.Changes[len(out.Changes)-1])
	for _, c := range out.Changes[:len(out.Changes)-1] {
		assert.Positive(t, c)
	}
}

func TestRun_SingleNode(t *testing.T) {
	g, err := graphgen.Generate(1, 4, 43)
	require.NoError(t, err)
	out, err := relax.Run(g, relax.Start(pmap.Radix16, 1), relax.Schedule{Early: true})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Rounds)
	assert.Equal(t, int64(0), out.Map.Get(0))
}

// Every representation under every schedule converges to the oracle vector,
// and the early driver ends on the same vector as the fixed one.
func TestRun_AgreesWithOracle(t *testing.T) {
	for _, n := range []int{50, 100, 257} {
		g, err := graphgen.Generate(n, 4, graphgen.SeedFor(42, n))
		require.NoError(t, err)
		want, err := oracle.Verify(g)
		require.NoError(t, err)

		for _, r := range pmap.Representations() {
			for _, s := range schedules {
				out, err := relax.Run(g, relax.Start(r, n), s)
				require.NoError(t, err)
				assert.Equal(t, want.Dist, pmap.Vector(out.Map, n), "n=%d %v %+v", n, r, s)
				if s.Early {
					assert.LessOrEqual(t, out.Rounds, n-1)
				} else {
					assert.Equal(t, n-1, out.Rounds)
				}
			}
		}
	}
}

// Edge-order relaxation with early stop follows the oracle round for round.
func TestRun_EarlyRoundsMatchOracle(t *testing.T) {
	g, err := graphgen.Generate(200, 4, graphgen.SeedFor(42, 200))
	require.NoError(t, err)

	bf, err := oracle.BellmanFord(g)
	require.NoError(t, err)
	out, err := relax.Run(g, relax.Start(pmap.Radix16, g.N), relax.Schedule{Early: true})
	require.NoError(t, err)
	assert.Equal(t, bf.Rounds, out.Rounds)

	ds, err := oracle.DeltaStepping(g)
	require.NoError(t, err)
	out, err = relax.Run(g, relax.Start(pmap.Binary, g.N),
		relax.Schedule{Algorithm: relax.DeltaStepping, Early: true, Delta: oracle.DefaultDelta})
	require.NoError(t, err)
	assert.Equal(t, ds.Rounds, out.Rounds)
}

func TestRun_InputMapUnchanged(t *testing.T) {
	g, err := graphgen.Generate(20, 4, 9)
	require.NoError(t, err)
	start := relax.Start(pmap.Radix4, g.N)

	_, err = relax.Run(g, start, relax.Schedule{Early: true})
	require.NoError(t, err)
	assert.Equal(t, 1, pmap.Size(start))
	assert.Equal(t, int64(0), start.Get(0))
}

// The get/set step makes the same updates as MinUpdate, so both report the
// same per-round change counts.
func TestRun_GetSetMatchesMinUpdate(t *testing.T) {
	g, err := graphgen.Generate(257, 4, graphgen.SeedFor(42, 257))
	require.NoError(t, err)

	for _, r := range []pmap.Representation{pmap.Radix16, pmap.Radix32, pmap.AssocList} {
		mu, err := relax.Run(g, relax.Start(r, g.N), relax.Schedule{Early: true})
		require.NoError(t, err)
		gs, err := relax.Run(g, relax.Start(r, g.N), relax.Schedule{Early: true, GetSet: true})
		require.NoError(t, err)

		assert.Equal(t, mu.Changes, gs.Changes, "%v", r)
		assert.Equal(t, pmap.Vector(mu.Map, g.N), pmap.Vector(gs.Map, g.N), "%v", r)
	}
}

// An unreached source still runs the step, and the step leaves dist[v] alone.
func TestRun_GetSetUnreachedSource(t *testing.T) {
	g := &graphgen.Graph{N: 3, Edges: []graphgen.Edge{{From: 2, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 5}}}
	out, err := relax.Run(g, relax.Start(pmap.Radix16, g.N), relax.Schedule{GetSet: true})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, out.Changes)
	assert.Equal(t, []int64{0, 6, 5}, pmap.Vector(out.Map, g.N))
}
