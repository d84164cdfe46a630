// SPDX-License-Identifier: MIT
// Package: pmapbench/graphgen
//
// generate.go - Generate(n, edgesPerNode, seed).
//
// Determinism:
//   - One LCG stream, consumed in a fixed order: one draw per chain edge,
//     then two draws (u, v) per extra attempt plus one weight draw only when
//     the attempt is accepted.
//   - The edge count target is best-effort; exhausting the attempts first is
//     not an error.
//
// Complexity: O(n·edgesPerNode) time, O(n·edgesPerNode) space.

package graphgen

import "fmt"

const methodGenerate = "Generate"

// Generate builds a deterministic directed graph over n nodes. See the
// package documentation for the two construction phases.
func Generate(n, edgesPerNode int, seed uint32, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodGenerate, n, ErrTooFewVertices)
	}
	if edgesPerNode < 1 {
		return nil, fmt.Errorf("%s: edgesPerNode=%d: %w", methodGenerate, edgesPerNode, ErrBadEdgesPerNode)
	}
	cfg := newConfig(opts...)

	rng := newLCG(seed)
	target := n * edgesPerNode
	edges := make([]Edge, 0, target)
	seen := make(map[pair]struct{}, target)

	// 1) Chain for connectivity.
	for i := 0; i+1 < n; i++ {
		w := rng.weight(cfg.chainMin, cfg.chainMax)
		edges = append(edges, Edge{From: i, To: i + 1, Weight: w})
		seen[pair{i, i + 1}] = struct{}{}
	}

	// 2) Random extras, deduplicated by rejection.
	attempts := n * (edgesPerNode - 1) * 2
	for a := 0; a < attempts; a++ {
		if len(edges) >= target {
			break
		}
		u := rng.intn(n)
		v := rng.intn(n)
		if u == v {
			continue
		}
		if _, dup := seen[pair{u, v}]; dup {
			continue
		}
		w := rng.weight(cfg.extraMin, cfg.extraMax)
		edges = append(edges, Edge{From: u, To: v, Weight: w})
		seen[pair{u, v}] = struct{}{}
	}

	return &Graph{N: n, Edges: edges}, nil
}
