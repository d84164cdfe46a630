// SPDX-License-Identifier: MIT

// Package suite drives one complete generation pass: for every configured
// size it generates the graph (seed SeedBase+n), checks it, cross-checks the
// two reference solvers, and assembles every configured program shape.
//
// The pass is configured by a Config, either DefaultConfig() or a YAML
// document read by LoadConfig:
//
//	sizes: [50, 257, 1000]
//	edges_per_node: 4
//	seed_base: 42
//	delta: 5
//	assoc_max: 100
//	variants:
//	  - {representation: trie16, algorithm: bf}
//	  - {representation: q4, algorithm: bf, early: true, adjacency: true}
//	  - {representation: btrie, algorithm: ds, early: true}
//
// Programs are returned in size-then-variant order. Writing them anywhere is
// the caller's business.
package suite
