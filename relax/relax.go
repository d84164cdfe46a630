// SPDX-License-Identifier: MIT
// Package: pmapbench/relax
//
// relax.go - Run(g, m, schedule).

package relax

import (
	"fmt"

	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/pmap"
)

// Outcome is the final map plus per-round change counts.
type Outcome struct {
	// Map is the distance map after the last executed round.
	Map pmap.Map

	// Rounds is the number of executed rounds.
	Rounds int

	// Changes[i] is the summed changed-flag count of round i.
	Changes []int
}

// state threads the map and the round's changed count through a fold,
// mirroring the #S{dist, changed} pair of the emitted programs.
type state struct {
	dist    pmap.Map
	changed int
	getSet  bool
}

func (s *state) relax(v int, cand int64) {
	if s.getSet {
		// dist[u] = INF gives cand >= INF, which never beats dist[v].
		if cand < s.dist.Get(v) {
			s.dist = s.dist.Set(v, cand)
			s.changed++
		}
		return
	}
	var c bool
	s.dist, c = s.dist.MinUpdateFlagged(v, cand)
	if c {
		s.changed++
	}
}

func (s *state) edges(edges []graphgen.Edge) {
	for _, e := range edges {
		du := s.dist.Get(e.From)
		if du >= pmap.Sentinel && !s.getSet {
			continue
		}
		s.relax(e.To, du+e.Weight)
	}
}

func (s *state) groups(adj []graphgen.Adjacency) {
	for _, a := range adj {
		du := s.dist.Get(a.Source)
		if du >= pmap.Sentinel {
			continue
		}
		for _, arc := range a.Out {
			s.relax(arc.To, du+arc.Weight)
		}
	}
}

// Run relaxes m over g with schedule s from source node 0. m must already
// hold distance 0 at key 0 (see Start).
func Run(g *graphgen.Graph, m pmap.Map, s Schedule) (*Outcome, error) {
	if g == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilGraph)
	}
	if m == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilMap)
	}
	if m.Get(0) != 0 {
		return nil, fmt.Errorf("Run: dist[0]=%d: %w", m.Get(0), ErrSourceNotSet)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	round := roundBody(g, s)
	out := &Outcome{Map: m}
	for i := 0; i < g.N-1; i++ {
		st := &state{dist: out.Map, getSet: s.GetSet}
		round(st)
		out.Map = st.dist
		out.Rounds++
		out.Changes = append(out.Changes, st.changed)
		if s.Early && st.changed == 0 {
			break
		}
	}
	return out, nil
}

// roundBody resolves the per-round fold once; derived edge views are
// computed here, not per round.
func roundBody(g *graphgen.Graph, s Schedule) func(*state) {
	switch {
	case s.Algorithm == DeltaStepping:
		light, heavy := g.Split(s.Delta)
		return func(st *state) {
			st.edges(light)
			st.edges(light)
			st.edges(heavy)
		}
	case s.Adjacency:
		adj := g.Adjacency()
		return func(st *state) { st.groups(adj) }
	default:
		return func(st *state) { st.edges(g.Edges) }
	}
}

// Start returns a map of representation r sized for n keys holding only
// dist[0] = 0, i.e. the program's @init_dist.
func Start(r pmap.Representation, n int) pmap.Map {
	return pmap.New(r, n).Set(0, 0)
}
