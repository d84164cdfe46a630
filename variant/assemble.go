// SPDX-License-Identifier: MIT
// Package: pmapbench/variant
//
// assemble.go - Assemble(g, v): oracle, replay, literals, bindings, text.

package variant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/pmapbench/emit"
	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/oracle"
	"github.com/katalvlaran/pmapbench/pmap"
	"github.com/katalvlaran/pmapbench/relax"
)

// Assemble composes the program of variant v over g.
//
// Steps:
//  1. Validate g and v.
//  2. Solve g with the oracle matching v.Algorithm; dist[n-1] is Expected.
//  3. Unless WithVerify(false): replay v in Go through relax.Run over the
//     same representation and compare the whole vector with the oracle
//     (ErrOracleMismatch on the first difference).
//  4. Emit the edge, light/heavy or adjacency literals.
//  5. Bind operations, literals, relaxation, fold, round, driver and entry
//     point in declaration order; reject duplicate or unbound names.
func Assemble(g *graphgen.Graph, v Variant, opts ...Option) (*Program, error) {
	cfg := newConfig(opts)
	if g == nil {
		return nil, fmt.Errorf("Assemble: %w", ErrNilGraph)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}

	name := v.Name(g.N)
	log := cfg.log.WithValues("program", name)

	want, err := solve(g, v)
	if err != nil {
		return nil, fmt.Errorf("Assemble %s: %w", name, err)
	}
	if cfg.verify {
		if err := replay(g, v, want); err != nil {
			log.Error(err, "replay diverges from oracle")
			return nil, fmt.Errorf("Assemble %s: %w", name, err)
		}
	}

	lists, err := emitLists(g, v, cfg.emitOpts)
	if err != nil {
		return nil, fmt.Errorf("Assemble %s: %w", name, err)
	}

	p := &Program{
		Name:     name,
		Variant:  v,
		N:        g.N,
		E:        len(g.Edges),
		Expected: want.Target(),
		bindings: newBindings(),
	}
	if base := v.Representation.Base(); base > 0 {
		p.Depth = pmap.Depth(g.N, base)
	}
	for _, em := range lists {
		p.Literals += len(em.Literals)
		if m := em.MaxLiteral(); m > p.MaxLiteral {
			p.MaxLiteral = m
		}
	}

	if err := p.bind(v, lists); err != nil {
		return nil, fmt.Errorf("Assemble %s: %w", name, err)
	}
	if err := p.checkReferences(); err != nil {
		return nil, fmt.Errorf("Assemble %s: %w", name, err)
	}
	p.Text = p.render(g, v, lists)

	log.V(1).Info("assembled",
		"n", p.N, "edges", p.E, "depth", p.Depth,
		"literals", p.Literals, "bytes", len(p.Text), "expected", p.Expected)
	return p, nil
}

func solve(g *graphgen.Graph, v Variant) (*oracle.Result, error) {
	if v.Algorithm == relax.DeltaStepping {
		return oracle.DeltaStepping(g, oracle.WithDelta(v.Delta))
	}
	return oracle.BellmanFord(g)
}

// replay runs v's round body under the early driver; the fixed driver only
// adds rounds that change nothing, so both end on the same vector.
func replay(g *graphgen.Graph, v Variant, want *oracle.Result) error {
	s := v.Schedule()
	s.Early = true
	out, err := relax.Run(g, relax.Start(v.Representation, g.N), s)
	if err != nil {
		return err
	}
	got := pmap.Vector(out.Map, g.N)
	for i := range got {
		if got[i] != want.Dist[i] {
			return fmt.Errorf("node %d: program=%d oracle=%d: %w", i, got[i], want.Dist[i], ErrOracleMismatch)
		}
	}
	return nil
}

func emitLists(g *graphgen.Graph, v Variant, opts []emit.Option) ([]*emit.Emission, error) {
	var (
		lists []*emit.Emission
		em    *emit.Emission
		err   error
	)
	switch {
	case v.Adjacency:
		em, err = emit.Adjacency("adj", g.Adjacency(), opts...)
		lists = append(lists, em)
	case v.Algorithm == relax.DeltaStepping:
		light, heavy := g.Split(v.Delta)
		if em, err = emit.Edges("light_edges", light, opts...); err != nil {
			return nil, err
		}
		lists = append(lists, em)
		em, err = emit.Edges("heavy_edges", heavy, opts...)
		lists = append(lists, em)
	default:
		em, err = emit.Edges("edges", g.Edges, opts...)
		lists = append(lists, em)
	}
	if err != nil {
		return nil, err
	}
	for _, em := range lists {
		if err := em.Check(); err != nil {
			return nil, err
		}
	}
	return lists, nil
}

func newBindings() *orderedmap.OrderedMap[string, string] {
	return orderedmap.New[string, string]()
}

// add binds def under name; an existing binding is never replaced.
func (p *Program) add(name, def string) error {
	if _, dup := p.bindings.Get(name); dup {
		return fmt.Errorf("@%s: %w", name, ErrDuplicateBinding)
	}
	p.bindings.Set(name, def)
	return nil
}

func (p *Program) bind(v Variant, lists []*emit.Emission) error {
	ops := opsFor(v.Representation, v.kinds()...)
	last := strconv.Itoa(p.N - 1)

	defs := [][2]string{{"INF", "@INF = " + strconv.FormatInt(pmap.Sentinel, 10)}}
	if p.Depth > 0 {
		defs = append(defs, [2]string{"DEPTH", "@DEPTH = " + strconv.Itoa(p.Depth)})
	}
	for _, em := range lists {
		if em.NeedsAppend() {
			defs = append(defs, [2]string{"append", emit.AppendDefinition})
			break
		}
	}
	defs = append(defs, ops.defs...)
	for _, em := range lists {
		defs = append(defs, em.Bindings()...)
	}
	defs = append(defs, relaxDefs(v, ops)...)
	defs = append(defs, foldDefs...)
	defs = append(defs, [2]string{"relax_round", roundDef(v)})

	initDist := "@init_dist = " + ops.set("0", "0", ops.empty)
	if v.Early {
		defs = append(defs, untilDefs...)
		defs = append(defs,
			[2]string{"init_dist", initDist},
			[2]string{"init_state", "@init_state = #S{@init_dist, 1}"},
			[2]string{"result", "@result = @repeat_until(@relax_round, @init_state, " + last + ")"},
			[2]string{"extract", "@extract = λ{#S: λdist. λc.\n  " + ops.get(last, "dist") + "\n}"},
			[2]string{"main", "@main = @extract(@result)"},
		)
	} else {
		defs = append(defs, repeatDefs...)
		defs = append(defs,
			[2]string{"init_dist", initDist},
			[2]string{"result", "@result = @repeat(@relax_round, @init_dist, " + last + ")"},
			[2]string{"main", "@main = " + ops.get(last, "@result")},
		)
	}

	for _, d := range defs {
		if err := p.add(d[0], d[1]); err != nil {
			return err
		}
	}
	return nil
}

var referencePattern = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)`)

func (p *Program) checkReferences() error {
	for pair := p.bindings.Oldest(); pair != nil; pair = pair.Next() {
		for _, m := range referencePattern.FindAllStringSubmatch(pair.Value, -1) {
			if _, ok := p.bindings.Get(m[1]); !ok {
				return fmt.Errorf("@%s referenced by @%s: %w", m[1], pair.Key, ErrUnboundReference)
			}
		}
	}
	return nil
}

func (p *Program) render(g *graphgen.Graph, v Variant, lists []*emit.Emission) string {
	var b strings.Builder

	title := v.Representation.Title()
	if v.Adjacency {
		title += " + adjacency list"
	}
	if v.Early {
		title += " + early termination"
	}
	fmt.Fprintf(&b, "// %s SSSP, %s, V=%d, E=%d", v.Algorithm.Title(), title, p.N, p.E)
	if v.Algorithm == relax.DeltaStepping {
		fmt.Fprintf(&b, ", delta=%d", v.Delta)
	}
	if p.Depth > 0 {
		fmt.Fprintf(&b, ", depth=%d", p.Depth)
	}
	b.WriteString("\n")
	switch {
	case v.Algorithm == relax.DeltaStepping:
		fmt.Fprintf(&b, "// Light edges: %d, Heavy edges: %d\n",
			len(lists[0].Flatten()), len(lists[1].Flatten()))
	case v.Adjacency:
		groups := len(g.Adjacency())
		fmt.Fprintf(&b, "// Adjacency list: %d source nodes (%d get_lin calls per round instead of E=%d)\n",
			groups, groups, p.E)
	}
	fmt.Fprintf(&b, "// Expected: dist[%d] = %d\n", p.N-1, p.Expected)

	for pair := p.bindings.Oldest(); pair != nil; pair = pair.Next() {
		b.WriteString("\n")
		b.WriteString(pair.Value)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "//%d\n", p.Expected)
	return b.String()
}
