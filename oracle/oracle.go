package oracle

import (
	"fmt"

	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/pmap"
)

const sentinel = pmap.Sentinel

// BellmanFord runs the reference edge-order relaxation from the source.
//
// Preconditions (in order):
//  1. g non-nil (ErrNilGraph).
//  2. Source in [0, n) (ErrSourceOutOfRange).
//
// For n = 1 there are no rounds and Dist = [0].
func BellmanFord(g *graphgen.Graph, opts ...Option) (*Result, error) {
	cfg, err := resolve("BellmanFord", g, opts)
	if err != nil {
		return nil, err
	}
	dist := initial(g.N, cfg.Source)
	rounds := run(g.N, func() bool {
		return relax(dist, g.Edges)
	})
	return &Result{Dist: dist, Rounds: rounds}, nil
}

// DeltaStepping runs the light-light-heavy schedule from the source.
func DeltaStepping(g *graphgen.Graph, opts ...Option) (*Result, error) {
	cfg, err := resolve("DeltaStepping", g, opts)
	if err != nil {
		return nil, err
	}
	light, heavy := g.Split(cfg.Delta)
	dist := initial(g.N, cfg.Source)
	rounds := run(g.N, func() bool {
		// No short-circuit: all three passes run every round.
		c1 := relax(dist, light)
		c2 := relax(dist, light)
		c3 := relax(dist, heavy)
		return c1 || c2 || c3
	})
	return &Result{Dist: dist, Rounds: rounds}, nil
}

// Verify runs all three solvers and returns the Bellman-Ford result when
// their vectors agree, ErrDivergence (naming the solver and the first
// differing node) otherwise.
func Verify(g *graphgen.Graph, opts ...Option) (*Result, error) {
	bf, err := BellmanFord(g, opts...)
	if err != nil {
		return nil, err
	}
	ds, err := DeltaStepping(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = agree("delta-stepping", bf.Dist, ds.Dist); err != nil {
		return nil, err
	}
	dj, err := Dijkstra(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = agree("dijkstra", bf.Dist, dj.Dist); err != nil {
		return nil, err
	}
	return bf, nil
}

func resolve(method string, g *graphgen.Graph, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return cfg, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if cfg.Source < 0 || cfg.Source >= g.N {
		return cfg, fmt.Errorf("%s: source=%d n=%d: %w", method, cfg.Source, g.N, ErrSourceOutOfRange)
	}
	return cfg, nil
}

func initial(n, source int) []int64 {
	dist := make([]int64, n)
	for i := range dist {
		dist[i] = sentinel
	}
	dist[source] = 0
	return dist
}

// run executes round() up to n−1 times, stopping after the first round that
// reports no update. It returns the number of rounds executed.
func run(n int, round func() bool) int {
	rounds := 0
	for i := 0; i < n-1; i++ {
		rounds++
		if !round() {
			break
		}
	}
	return rounds
}

// relax performs one in-place pass over edges and reports whether any
// distance improved.
func relax(dist []int64, edges []graphgen.Edge) bool {
	updated := false
	for _, e := range edges {
		du := dist[e.From]
		if du == sentinel {
			continue
		}
		if nd := du + e.Weight; nd < dist[e.To] {
			dist[e.To] = nd
			updated = true
		}
	}
	return updated
}
