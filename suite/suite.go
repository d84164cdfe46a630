// SPDX-License-Identifier: MIT
// Package: pmapbench/suite
//
// suite.go - one generation pass over every (size, variant) pair.

package suite

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/pmapbench/emit"
	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/oracle"
	"github.com/katalvlaran/pmapbench/pmap"
	"github.com/katalvlaran/pmapbench/variant"
)

// Suite generates programs for a validated Config. It holds no state
// between calls; every size is a pure function of the config.
type Suite struct {
	cfg Config
	log logr.Logger
}

// Option configures a Suite.
type Option func(*Suite)

// WithLogger sets the logger; default logr.Discard().
func WithLogger(l logr.Logger) Option {
	return func(s *Suite) { s.log = l }
}

// New validates cfg and returns a Suite.
func New(cfg Config, opts ...Option) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Suite{cfg: cfg, log: logr.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the suite's configuration.
func (s *Suite) Config() Config { return s.cfg }

// Graph generates the graph of size n.
func (s *Suite) Graph(n int) (*graphgen.Graph, error) {
	return graphgen.Generate(n, s.cfg.EdgesPerNode, graphgen.SeedFor(s.cfg.SeedBase, n))
}

// GenerateSize builds every configured program for size n, in variant
// order. Assoc-list variants are skipped above AssocMax. Bellman-Ford and
// delta-stepping must agree on the graph before any program is built.
func (s *Suite) GenerateSize(n int) ([]*variant.Program, error) {
	g, err := s.Graph(n)
	if err != nil {
		return nil, fmt.Errorf("suite: n=%d: %w", n, err)
	}
	if err := graphgen.Validate(g); err != nil {
		return nil, fmt.Errorf("suite: n=%d: %w", n, err)
	}
	ref, err := oracle.Verify(g, oracle.WithDelta(s.cfg.Delta))
	if err != nil {
		return nil, fmt.Errorf("suite: n=%d: %w", n, err)
	}

	log := s.log.WithValues("n", n)
	log.Info("graph",
		"edges", len(g.Edges),
		"trie16Depth", pmap.Depth(n, 16), "trie32Depth", pmap.Depth(n, 32),
		"btrieDepth", pmap.Depth(n, 2), "q4Depth", pmap.Depth(n, 4),
		"target", ref.Target())

	opts := []variant.Option{variant.WithLogger(log), variant.WithEmitOptions(s.emitOptions()...)}
	programs := make([]*variant.Program, 0, len(s.cfg.Variants))
	for _, vc := range s.cfg.Variants {
		v := s.cfg.Variant(vc)
		if v.Representation == pmap.AssocList && n > s.cfg.AssocMax {
			log.V(1).Info("skipped", "program", v.Name(n), "assocMax", s.cfg.AssocMax)
			continue
		}
		p, err := variant.Assemble(g, v, opts...)
		if err != nil {
			return nil, fmt.Errorf("suite: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, nil
}

// Generate runs GenerateSize for every configured size, in order.
func (s *Suite) Generate() ([]*variant.Program, error) {
	var all []*variant.Program
	for _, n := range s.cfg.Sizes {
		ps, err := s.GenerateSize(n)
		if err != nil {
			return nil, err
		}
		all = append(all, ps...)
	}
	s.log.Info("generated", "programs", len(all), "sizes", len(s.cfg.Sizes))
	return all, nil
}

func (s *Suite) emitOptions() []emit.Option {
	var opts []emit.Option
	if s.cfg.Threshold > 0 {
		opts = append(opts, emit.WithThreshold(s.cfg.Threshold))
	}
	if s.cfg.ChunkSize > 0 {
		opts = append(opts, emit.WithChunkSize(s.cfg.ChunkSize))
	}
	return opts
}
