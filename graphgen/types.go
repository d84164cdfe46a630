// SPDX-License-Identifier: MIT
// Package: pmapbench/graphgen
//
// types.go - Edge, Graph, adjacency views and sentinel errors.

package graphgen

import "errors"

// Sentinel errors. Callers branch with errors.Is; context is attached by
// wrapping with the method name.
var (
	// ErrTooFewVertices indicates n < 1.
	ErrTooFewVertices = errors.New("graphgen: graph needs at least one vertex")

	// ErrBadEdgesPerNode indicates edgesPerNode < 1.
	ErrBadEdgesPerNode = errors.New("graphgen: edges per node must be positive")

	// ErrNilGraph indicates a nil *Graph was passed.
	ErrNilGraph = errors.New("graphgen: graph is nil")

	// ErrEdgeOutOfRange indicates an endpoint outside [0, n).
	ErrEdgeOutOfRange = errors.New("graphgen: edge endpoint out of range")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("graphgen: edge weight must be positive")

	// ErrSelfLoop indicates an edge with From == To.
	ErrSelfLoop = errors.New("graphgen: self-loop")

	// ErrDuplicateEdge indicates two edges sharing the same (From, To) pair.
	ErrDuplicateEdge = errors.New("graphgen: duplicate edge")

	// ErrChainBroken indicates node i+1 is not reachable from node i.
	ErrChainBroken = errors.New("graphgen: chain connectivity broken")
)

// Edge is a directed weighted edge From→To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Graph is a node count plus an ordered edge sequence. The order of Edges is
// significant and must not be rearranged by consumers.
type Graph struct {
	// N is the number of nodes; node IDs are 0..N-1.
	N int

	// Edges in generation order.
	Edges []Edge
}

// Arc is the target half of an edge inside an adjacency group.
type Arc struct {
	To     int
	Weight int64
}

// Adjacency holds all outgoing arcs of one source node, in edge order.
type Adjacency struct {
	Source int
	Out    []Arc
}

// pair identifies an edge by its endpoints (used for duplicate detection).
type pair struct{ u, v int }
