// SPDX-License-Identifier: MIT
// Package: pmapbench/emit
//
// emit.go - the chunk/concatenate rule and the edge renderers.

package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pmapbench/graphgen"
)

// Items emits pre-rendered items under name using the chunk/concatenate
// rule. Defaults: DefaultThreshold, DefaultChunkSize, DefaultPerLine.
func Items(name string, items []string, opts ...Option) (*Emission, error) {
	cfg := newConfig(DefaultThreshold, DefaultChunkSize, DefaultPerLine, opts)
	return emitItems(name, items, cfg)
}

// Edges emits edges as "#E3{u,v,w}" items in their given order.
func Edges(name string, edges []graphgen.Edge, opts ...Option) (*Emission, error) {
	items := make([]string, len(edges))
	for i, e := range edges {
		items[i] = EdgeItem(e)
	}
	return Items(name, items, opts...)
}

// Adjacency emits one "#N{u, [...]}" item per group, one group per line.
// Defaults: DefaultAdjacencyThreshold, DefaultAdjacencyChunkSize.
func Adjacency(name string, groups []graphgen.Adjacency, opts ...Option) (*Emission, error) {
	cfg := newConfig(DefaultAdjacencyThreshold, DefaultAdjacencyChunkSize, 1, opts)
	items := make([]string, len(groups))
	for i, a := range groups {
		items[i] = AdjacencyItem(a)
	}
	return emitItems(name, items, cfg)
}

// EdgeItem renders e as "#E3{u,v,w}".
func EdgeItem(e graphgen.Edge) string {
	return "#E3{" + strconv.Itoa(e.From) + "," + strconv.Itoa(e.To) + "," +
		strconv.FormatInt(e.Weight, 10) + "}"
}

// AdjacencyItem renders a as "#N{u, [\n    #E2{v,w}, ...]}" with
// ArcsPerLine arcs per inner line.
func AdjacencyItem(a graphgen.Adjacency) string {
	arcs := make([]string, len(a.Out))
	for i, arc := range a.Out {
		arcs[i] = "#E2{" + strconv.Itoa(arc.To) + "," + strconv.FormatInt(arc.Weight, 10) + "}"
	}
	var b strings.Builder
	b.WriteString("#N{")
	b.WriteString(strconv.Itoa(a.Source))
	b.WriteString(", [\n")
	b.WriteString(lines(arcs, ArcsPerLine, "    "))
	b.WriteString("]}")
	return b.String()
}

func emitItems(name string, items []string, cfg config) (*Emission, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if cfg.chunkSize >= cfg.threshold {
		return nil, fmt.Errorf("emit: %s: chunk=%d threshold=%d: %w",
			name, cfg.chunkSize, cfg.threshold, ErrBadChunkSize)
	}

	em := &Emission{Name: name, Threshold: cfg.threshold}
	if len(items) <= cfg.threshold {
		em.Literals = []Literal{literal(name, items, cfg.perLine)}
		em.Concat = []string{name}
		return em, nil
	}

	for start, i := 0, 0; start < len(items); start, i = start+cfg.chunkSize, i+1 {
		end := start + cfg.chunkSize
		if end > len(items) {
			end = len(items)
		}
		chunk := name + "_" + strconv.Itoa(i)
		em.Literals = append(em.Literals, literal(chunk, items[start:end], cfg.perLine))
		em.Concat = append(em.Concat, chunk)
	}
	em.Binding = "@" + name + " = " + concat(em.Concat)
	return em, nil
}

func literal(name string, items []string, perLine int) Literal {
	text := "@" + name + " = []"
	if len(items) > 0 {
		text = "@" + name + " = [\n" + lines(items, perLine, "  ") + "]"
	}
	return Literal{Name: name, Items: items, Text: text}
}

// lines groups items perLine at a time, indents each line and joins them
// with ",\n".
func lines(items []string, perLine int, indent string) string {
	var b strings.Builder
	for i := 0; i < len(items); i += perLine {
		if i > 0 {
			b.WriteString(",\n")
		}
		end := i + perLine
		if end > len(items) {
			end = len(items)
		}
		b.WriteString(indent)
		b.WriteString(strings.Join(items[i:end], ", "))
	}
	return b.String()
}

// concat builds @append(@n0, @append(@n1, ... @nk)).
func concat(names []string) string {
	expr := "@" + names[len(names)-1]
	for i := len(names) - 2; i >= 0; i-- {
		expr = "@append(@" + names[i] + ", " + expr + ")"
	}
	return expr
}
