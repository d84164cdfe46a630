// SPDX-License-Identifier: MIT

// Package core provides the thread-safe in-memory Graph that the traversal
// and shortest-path packages (dfs, dijkstra) operate on.
//
// A Graph is append-only: vertices and edges are added, never removed. It
// supports
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Vertex IDs are arbitrary non-empty strings; graphgen maps node i to
// strconv.Itoa(i). Edge IDs are generated as "e1", "e2", ... in insertion
// order.
//
// Determinism:
//
//	Vertices()     sorted lexicographically
//	Edges()        insertion order
//	Neighbors(id)  insertion order of the incident edges
//
// Errors:
//
//	ErrEmptyVertexID        vertex ID is the empty string
//	ErrVertexNotFound       query on an unknown vertex
//	ErrBadWeight            non-zero weight on an unweighted graph
//	ErrLoopNotAllowed       self-loop without WithLoops
//	ErrMultiEdgeNotAllowed  parallel edge without WithMultiEdges
package core
