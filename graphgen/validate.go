// SPDX-License-Identifier: MIT
// Package: pmapbench/graphgen
//
// validate.go - invariant assertion over any edge sequence.
//
// Checks, in priority order (first failure wins):
//   1. endpoints in [0, n)          → ErrEdgeOutOfRange
//   2. weight > 0                   → ErrBadWeight
//   3. From != To                   → ErrSelfLoop
//   4. unique (From, To)            → ErrDuplicateEdge
//   5. i+1 reachable from i, all i  → ErrChainBroken
//
// Step 5 takes the O(1) path when the direct chain edge exists and falls
// back to a depth-first search from i over g.Core() otherwise.

package graphgen

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/pmapbench/core"
	"github.com/katalvlaran/pmapbench/dfs"
)

const methodValidate = "Validate"

// errReached stops the chain search once the target vertex is visited.
var errReached = errors.New("graphgen: target reached")

// Validate reports the first invariant violation found in g, or nil.
func Validate(g *Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", methodValidate, ErrNilGraph)
	}
	if g.N < 1 {
		return fmt.Errorf("%s: n=%d: %w", methodValidate, g.N, ErrTooFewVertices)
	}

	seen := make(map[pair]struct{}, len(g.Edges))
	for i, e := range g.Edges {
		if e.From < 0 || e.From >= g.N || e.To < 0 || e.To >= g.N {
			return fmt.Errorf("%s: edge #%d %d→%d (n=%d): %w", methodValidate, i, e.From, e.To, g.N, ErrEdgeOutOfRange)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("%s: edge #%d %d→%d w=%d: %w", methodValidate, i, e.From, e.To, e.Weight, ErrBadWeight)
		}
		if e.From == e.To {
			return fmt.Errorf("%s: edge #%d on node %d: %w", methodValidate, i, e.From, ErrSelfLoop)
		}
		p := pair{e.From, e.To}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("%s: edge #%d %d→%d: %w", methodValidate, i, e.From, e.To, ErrDuplicateEdge)
		}
		seen[p] = struct{}{}
	}

	var cg *core.Graph // built lazily, only when a chain edge is missing
	for i := 0; i+1 < g.N; i++ {
		if _, ok := seen[pair{i, i + 1}]; ok {
			continue
		}
		if cg == nil {
			var err error
			if cg, err = g.Core(); err != nil {
				return fmt.Errorf("%s: %w", methodValidate, err)
			}
		}
		ok, err := reachable(cg, i, i+1)
		if err != nil {
			return fmt.Errorf("%s: %w", methodValidate, err)
		}
		if !ok {
			return fmt.Errorf("%s: node %d unreachable from %d: %w", methodValidate, i+1, i, ErrChainBroken)
		}
	}
	return nil
}

// reachable reports whether target is visited by a DFS from start. The walk
// aborts on the first visit of target.
func reachable(cg *core.Graph, start, target int) (bool, error) {
	want := strconv.Itoa(target)
	_, err := dfs.DFS(cg, strconv.Itoa(start), dfs.WithOnVisit(func(id string) error {
		if id == want {
			return errReached
		}
		return nil
	}))
	switch {
	case errors.Is(err, errReached):
		return true, nil
	case err != nil:
		return false, err
	}
	return false, nil
}
