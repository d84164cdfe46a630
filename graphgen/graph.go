// SPDX-License-Identifier: MIT
// Package: pmapbench/graphgen
//
// graph.go - derived views over a Graph (adjacency grouping, light/heavy
// split, core.Graph conversion).

package graphgen

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/pmapbench/core"
)

// Adjacency groups the edges by source node in ascending source order. Arcs
// inside a group keep their relative edge order. Sources without outgoing
// edges are omitted.
// Complexity: O(E + S log S) where S is the number of distinct sources.
func (g *Graph) Adjacency() []Adjacency {
	if g == nil {
		return nil
	}
	groups := make(map[int][]Arc)
	for _, e := range g.Edges {
		groups[e.From] = append(groups[e.From], Arc{To: e.To, Weight: e.Weight})
	}
	sources := make([]int, 0, len(groups))
	for u := range groups {
		sources = append(sources, u)
	}
	sort.Ints(sources)

	adj := make([]Adjacency, 0, len(sources))
	for _, u := range sources {
		adj = append(adj, Adjacency{Source: u, Out: groups[u]})
	}
	return adj
}

// Split partitions the edges against delta: Weight <= delta is light, the
// rest is heavy. Both halves keep edge order.
func (g *Graph) Split(delta int64) (light, heavy []Edge) {
	if g == nil {
		return nil, nil
	}
	for _, e := range g.Edges {
		if e.Weight <= delta {
			light = append(light, e)
		} else {
			heavy = append(heavy, e)
		}
	}
	return light, heavy
}

// EdgeCount is len(g.Edges); nil-safe.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}
	return len(g.Edges)
}

// Core converts g into a directed, weighted core.Graph. Node i becomes vertex
// strconv.Itoa(i); every node is added, including isolated ones, and edges
// keep their order. Fails on what core.Graph rejects (self-loops, duplicate
// pairs), so call it on a graph whose edge checks already passed.
func (g *Graph) Core() (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cg := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < g.N; i++ {
		if err := cg.AddVertex(strconv.Itoa(i)); err != nil {
			return nil, fmt.Errorf("Core: node %d: %w", i, err)
		}
	}
	for i, e := range g.Edges {
		if _, err := cg.AddEdge(strconv.Itoa(e.From), strconv.Itoa(e.To), e.Weight); err != nil {
			return nil, fmt.Errorf("Core: edge #%d %d→%d: %w", i, e.From, e.To, err)
		}
	}
	return cg, nil
}
