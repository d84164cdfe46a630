package oracle

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/pmapbench/dijkstra"
	"github.com/katalvlaran/pmapbench/graphgen"
)

// Dijkstra solves the same problem with a binary heap over g.Core(). It has
// no rounds, so Result.Rounds is 0. g must hold no self-loops or duplicate
// pairs, which every generated graph satisfies.
func Dijkstra(g *graphgen.Graph, opts ...Option) (*Result, error) {
	cfg, err := resolve("Dijkstra", g, opts)
	if err != nil {
		return nil, err
	}
	cg, err := g.Core()
	if err != nil {
		return nil, fmt.Errorf("Dijkstra: %w", err)
	}
	byID, _, err := dijkstra.Dijkstra(cg, dijkstra.Source(strconv.Itoa(cfg.Source)))
	if err != nil {
		return nil, fmt.Errorf("Dijkstra: %w", err)
	}

	dist := make([]int64, g.N)
	for i := range dist {
		d := byID[strconv.Itoa(i)]
		if d == math.MaxInt64 {
			d = sentinel
		}
		dist[i] = d
	}
	return &Result{Dist: dist}, nil
}

// agree returns ErrDivergence naming the first node where got differs from
// the Bellman-Ford vector want.
func agree(name string, want, got []int64) error {
	if len(want) != len(got) {
		return fmt.Errorf("Verify: %s returned %d nodes, want %d: %w", name, len(got), len(want), ErrDivergence)
	}
	for i := range want {
		if want[i] != got[i] {
			return fmt.Errorf("Verify: node %d: bellman-ford=%d %s=%d: %w", i, want[i], name, got[i], ErrDivergence)
		}
	}
	return nil
}
