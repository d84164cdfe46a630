// SPDX-License-Identifier: MIT

// Package graphgen builds the deterministic weighted directed graphs that
// every fixture in this module is generated from.
//
// A graph is produced in two phases, both driven by one linear-congruential
// stream seeded from the caller's seed:
//
//  1. Chain: edges (i, i+1) for every i in [0, n-2] with weights in [1,10].
//     This alone makes every node reachable from node 0.
//  2. Extras: up to n·(edgesPerNode−1)·2 random attempts (u, v), rejecting
//     self-loops and already used (u, v) pairs, until the graph holds
//     n·edgesPerNode edges or the attempts run out. Weights in [1,20].
//
// Edge order is append order (chain first, then accepted extras). It is part
// of the contract: the reference solvers and the emitted programs both relax
// edges in exactly this order.
//
// Guarantees:
//
//   - Determinism: identical (n, edgesPerNode, seed, options) ⇒ bit-identical
//     edge sequence on every platform.
//   - No self-loops, no duplicate (u, v) pairs, node i+1 reachable from i.
//   - Validate re-checks all of the above on any Graph, generated or not.
//
// Example:
//
//	g, err := graphgen.Generate(1000, 4, graphgen.SeedFor(42, 1000))
//	if err != nil {
//		return err
//	}
//	light, heavy := g.Split(5)
package graphgen
