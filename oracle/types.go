// Package oracle computes ground-truth single-source shortest distances for
// the generated graphs. Two independent relaxation schedules are provided:
//
//   - BellmanFord:   up to n−1 rounds, each scanning all edges in generation
//     order; a round without an update stops the loop.
//   - DeltaStepping: edges are split at Delta into light (w ≤ δ) and heavy
//     (w > δ); one round = two passes over light edges then one over heavy
//     edges; up to n−1 rounds with the same early stop.
//
// Both solve the same problem, so their final vectors must match. Dijkstra
// is a third, heap-based solver over the core.Graph view of the same edges.
// Verify runs all three and fails with ErrDivergence when any two differ.
//
// Unreachable nodes hold pmap.Sentinel. Source defaults to node 0.
//
// Complexity:
//
//	– Time:  O(n · E) worst case for either schedule.
//	– Space: O(n) for the distance vector; DeltaStepping adds O(E) for the split.
package oracle

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph indicates a nil *graphgen.Graph was passed.
	ErrNilGraph = errors.New("oracle: graph is nil")

	// ErrSourceOutOfRange indicates a source outside [0, n).
	ErrSourceOutOfRange = errors.New("oracle: source vertex out of range")

	// ErrDivergence indicates the solvers disagree.
	ErrDivergence = errors.New("oracle: solvers diverge")

	// ErrBadDelta indicates a delta below 1.
	ErrBadDelta = errors.New("oracle: delta must be positive")
)

// DefaultDelta is the light/heavy threshold used by the fixtures.
const DefaultDelta int64 = 5

// Options configures the solvers.
//
// Source – node whose distance is 0 (default 0).
// Delta  – light/heavy threshold for DeltaStepping (default DefaultDelta).
type Options struct {
	Source int
	Delta  int64
}

// Option represents a functional option for configuring the solvers.
type Option func(*Options)

// DefaultOptions returns source 0 and DefaultDelta.
func DefaultOptions() Options {
	return Options{Source: 0, Delta: DefaultDelta}
}

// WithSource sets the source node.
func WithSource(s int) Option {
	return func(o *Options) {
		o.Source = s
	}
}

// WithDelta sets the delta-stepping threshold. Panics if d < 1.
func WithDelta(d int64) Option {
	if d < 1 {
		panic(fmt.Sprintf("%s (got %d)", ErrBadDelta.Error(), d))
	}
	return func(o *Options) {
		o.Delta = d
	}
}

// Result is a distance vector plus the number of rounds that ran.
type Result struct {
	// Dist[i] is the distance from the source, or pmap.Sentinel.
	Dist []int64

	// Rounds counts executed rounds, including a final round with no update.
	Rounds int
}

// At returns Dist[node], or the sentinel for out-of-range nodes.
func (r *Result) At(node int) int64 {
	if r == nil || node < 0 || node >= len(r.Dist) {
		return sentinel
	}
	return r.Dist[node]
}

// Target is the distance of the last node (n−1), the value every fixture
// embeds as its expected output.
func (r *Result) Target() int64 {
	if r == nil {
		return sentinel
	}
	return r.At(len(r.Dist) - 1)
}
