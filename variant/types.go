// SPDX-License-Identifier: MIT
// Package: pmapbench/variant
//
// types.go - Variant, Program, options and sentinel errors.

package variant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/pmapbench/emit"
	"github.com/katalvlaran/pmapbench/pmap"
	"github.com/katalvlaran/pmapbench/relax"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("variant: graph is nil")

	// ErrBadVariant indicates an unknown representation or an unsupported
	// schedule combination.
	ErrBadVariant = errors.New("variant: invalid variant")

	// ErrOracleMismatch indicates the Go replay of a program disagrees with
	// the reference solver.
	ErrOracleMismatch = errors.New("variant: program diverges from oracle")

	// ErrDuplicateBinding indicates two definitions under one name.
	ErrDuplicateBinding = errors.New("variant: duplicate binding")

	// ErrUnboundReference indicates a reference to an undefined binding.
	ErrUnboundReference = errors.New("variant: unbound reference")
)

// Variant selects a representation and a relaxation schedule.
type Variant struct {
	Representation pmap.Representation
	Algorithm      relax.Algorithm
	// Early selects the early-terminating driver.
	Early bool
	// Adjacency folds per-source groups instead of the flat edge list.
	Adjacency bool
	// Delta is the light/heavy threshold; DeltaStepping only.
	Delta int64
}

// Schedule is the relax schedule the program runs.
func (v Variant) Schedule() relax.Schedule {
	return relax.Schedule{
		Algorithm: v.Algorithm,
		Early:     v.Early,
		Adjacency: v.Adjacency,
		Delta:     v.Delta,
		GetSet:    v.plainStep(),
	}
}

// plainStep reports whether the program relaxes with get, compare and set.
// Fixed edge-list Bellman-Ford over radix-16, radix-32 and the assoc list
// does; the binary and radix-4 tries and every early, adjacency or
// delta-stepping program use get_lin and min_update.
func (v Variant) plainStep() bool {
	if v.Early || v.Adjacency || v.Algorithm != relax.BellmanFord {
		return false
	}
	switch v.Representation {
	case pmap.Radix16, pmap.Radix32, pmap.AssocList:
		return true
	}
	return false
}

// Validate rejects unknown representations and schedules without a round
// body.
func (v Variant) Validate() error {
	if v.Representation < pmap.AssocList || v.Representation > pmap.Radix32 {
		return fmt.Errorf("%v: %w", v.Representation, ErrBadVariant)
	}
	if err := v.Schedule().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrBadVariant, err)
	}
	return nil
}

// Name is the fixture name for size n, e.g. "bf_q4_adj_et_257".
func (v Variant) Name(n int) string {
	parts := []string{v.Algorithm.String(), v.Representation.String()}
	if v.Adjacency {
		parts = append(parts, "adj")
	}
	if v.Early {
		parts = append(parts, "et")
	}
	parts = append(parts, strconv.Itoa(n))
	return strings.Join(parts, "_")
}

// Program is one assembled, immutable fixture.
type Program struct {
	// Name is Variant.Name(N).
	Name    string
	Variant Variant

	N int
	E int

	// Depth is the trie level count; 0 for the assoc list.
	Depth int

	// Expected is the oracle distance of node N-1.
	Expected int64

	// Literals counts the emitted list literals; MaxLiteral is the item
	// count of the largest one.
	Literals   int
	MaxLiteral int

	// Text is the complete program.
	Text string

	bindings *orderedmap.OrderedMap[string, string]
}

// Binding returns the definition bound to name (without '@').
func (p *Program) Binding(name string) (string, bool) {
	return p.bindings.Get(name)
}

// Bindings lists binding names in declaration order.
func (p *Program) Bindings() []string {
	out := make([]string, 0, p.bindings.Len())
	for pair := p.bindings.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Option configures Assemble.
type Option func(*config)

type config struct {
	log      logr.Logger
	verify   bool
	emitOpts []emit.Option
}

func newConfig(opts []Option) config {
	cfg := config{log: logr.Discard(), verify: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger; default logr.Discard().
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithVerify toggles the Go replay against the oracle (default on).
func WithVerify(on bool) Option {
	return func(c *config) { c.verify = on }
}

// WithEmitOptions forwards options to every literal emission.
func WithEmitOptions(opts ...emit.Option) Option {
	return func(c *config) { c.emitOpts = append(c.emitOpts, opts...) }
}
