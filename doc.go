// Package pmapbench generates a benchmark suite of single-source
// shortest-path programs for an interaction-net runtime. Each program is a
// self-contained text file that builds a fixed random graph, relaxes it with
// one persistent-map representation and one schedule, and returns the
// distance to the last node.
//
// What a program varies:
//
//	representation  assoc-list, binary, radix-4, radix-16 or radix-32 trie
//	algorithm       Bellman-Ford or delta-stepping (light, light, heavy)
//	driver          fixed N-1 rounds, or early exit on a quiet round
//	edge layout     flat edge list or per-source adjacency groups
//
// Subpackages, bottom-up:
//
//	core/      string-keyed graph container
//	dfs/       depth-first search over core.Graph
//	dijkstra/  heap-based shortest paths over core.Graph
//	graphgen/  deterministic LCG graph generator and validator
//	oracle/    reference Bellman-Ford, delta-stepping and Dijkstra solvers
//	pmap/      persistent assoc list and radix tries, in Go
//	relax/     the round schedules, executed over pmap
//	emit/      list literals with chunking under a size threshold
//	variant/   program assembly, oracle replay and rendering
//	suite/     YAML-configured generation over sizes × variants
//
// Every program carries its expected answer, agreed on by the oracles and
// replayed through the same representation in Go before the text is built.
package pmapbench
