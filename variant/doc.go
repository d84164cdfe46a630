// SPDX-License-Identifier: MIT

// Package variant assembles one self-contained evaluator program per
// (graph, representation, schedule) tuple.
//
// A program binds, in this order:
//
//	@INF                 the unreachable sentinel (999999)
//	@DEPTH               trie level count (tries only)
//	@append              list concatenation (only when a literal was split)
//	representation ops   get and set, plus get_lin and min_update or
//	                     min_update_f unless the step is plain
//	literals             @edges | @light_edges + @heavy_edges | @adj
//	relaxation           @relax_edge, @relax_edge/@relax_cond or
//	                     @relax_node/@relax_out
//	@foldl, @relax_round
//	driver               @repeat (n-1 rounds) or @repeat_until (early stop)
//	@init_dist, @result, @main
//
// The header comment names the schedule, sizes and depth, and both the
// header and the final line carry the oracle's dist[n-1]:
//
//	// Expected: dist[999] = 37
//	...
//	//37
//
// Before a program is rendered, Assemble replays the same schedule over the
// same representation in Go (package relax) and compares the full distance
// vector with the oracle. Any difference is ErrOracleMismatch; a program is
// never emitted with an expected value its own schedule does not reach.
//
// The plain step (fixed edge-list Bellman-Ford over radix-16, radix-32 and
// the assoc list) reads dist[u] and dist[v] with get and writes with set when
// du + w < dv. Every other program reads dist[u] with get_lin and writes with
// min_update, flagged under the early driver.
//
// Trie operations are generated from one template over the base; radix-32
// branches are #H32{lo, hi} pairs of 16-way #H halves.
package variant
