// SPDX-License-Identifier: MIT
// Package: pmapbench/core
//
// methods_edges.go - edge catalog: AddEdge, HasEdge, Edges, EdgeCount, Neighbors.
// Determinism:
//   - Edges() and Neighbors() return edges in insertion order.
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import "strconv"

const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to and returns its ID. Missing endpoints
// are added as vertices.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock, reject a parallel edge unless WithMultiEdges.
//  3. Ensure endpoints, generate the ID, store, link adjacency
//     (both endpoints for an undirected edge).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	key := g.pairKey(from, to)
	if _, dup := g.pairs[key]; dup && !g.allowMulti {
		return "", ErrMultiEdgeNotAllowed
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	e := &Edge{ID: g.nextEdgeIDLocked(), From: from, To: to, Weight: weight, Directed: g.directed}
	g.edges = append(g.edges, e)
	g.pairs[key] = struct{}{}
	g.adjacency[from] = append(g.adjacency[from], e)
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

func (g *Graph) pairKey(from, to string) endpoints {
	if !g.directed && to < from {
		from, to = to, from
	}
	return endpoints{from, to}
}

// HasEdge reports whether at least one edge from→to exists
// (either orientation on an undirected graph).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pairs[g.pairKey(from, to)]

	return ok
}

// Edges returns every edge in insertion order. Treat the edges as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Neighbors returns the edges leaving id: outgoing edges on a directed
// graph, every incident edge on an undirected one. Use Edge.Other(id) for
// the adjacent vertex.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]*Edge, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out, nil
}

// nextEdgeIDLocked returns "e" + the next sequence number. Write lock held.
func (g *Graph) nextEdgeIDLocked() string {
	g.nextEdgeID++
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, g.nextEdgeID, 10)

	return string(buf)
}
