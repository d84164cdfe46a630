// SPDX-License-Identifier: MIT
// Package: pmapbench/variant
//
// ops.go - evaluator text of the persistent-map operations.
//
// Every trie base is rendered from one template. A branch is described as a
// list of node layers whose arities multiply to the base: [2], [4], [16] for
// the plain tries and [2, 16] for radix-32, whose branch is a #H32{lo, hi}
// pair of 16-way #H halves. Per operation the template produces:
//
//	@P_op          entry: Empty / Leaf / first-layer match, digit split
//	@P_op_h        entry of every further layer (radix-32 halves)
//	@P_short_TAG   per-slot dispatch that recurses into one child
//	@P_short_TAGE  per-slot dispatch that materializes an Empty node (writes)

package variant

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/pmapbench/pmap"
)

type opKind int

const (
	opGet opKind = iota
	opGetLin
	opSet
	opMinUpdate
	opMinUpdateFlagged
)

func (o opKind) entry() string {
	return [...]string{"get", "get_lin", "set", "min_update", "min_update_f"}[o]
}

func (o opKind) short() string {
	return [...]string{"get", "get_lin", "set", "mu", "muf"}[o]
}

func (o opKind) writes() bool { return o >= opSet }

// layer is one node level inside a branch.
type layer struct {
	tag   string
	arity int
}

// trieSyntax is the constructor vocabulary of one trie base.
type trieSyntax struct {
	prefix string
	leaf   string
	empty  string
	base   int
	layers []layer
}

func syntaxFor(r pmap.Representation) (trieSyntax, bool) {
	switch r {
	case pmap.Binary:
		return trieSyntax{prefix: "btrie", leaf: "BL", empty: "BE", base: 2, layers: []layer{{"B", 2}}}, true
	case pmap.Radix4:
		return trieSyntax{prefix: "q4", leaf: "QL", empty: "QE", base: 4, layers: []layer{{"Q", 4}}}, true
	case pmap.Radix16:
		return trieSyntax{prefix: "trie", leaf: "HL", empty: "HE", base: 16, layers: []layer{{"H", 16}}}, true
	case pmap.Radix32:
		return trieSyntax{prefix: "trie32", leaf: "HL", empty: "HE", base: 32, layers: []layer{{"H32", 2}, {"H", 16}}}, true
	}
	return trieSyntax{}, false
}

func (s trieSyntax) emptyNode() string { return "#" + s.empty + "{}" }

func (s trieSyntax) entryName(o opKind) string { return s.prefix + "_" + o.entry() }

func (s trieSyntax) halfName(o opKind, j int) string {
	name := s.prefix + "_" + o.short() + "_h"
	if j > 1 {
		name += strconv.Itoa(j)
	}
	return name
}

func (s trieSyntax) dispatchName(o opKind, j int) string {
	return s.prefix + "_" + o.short() + "_" + s.layers[j].tag
}

func (s trieSyntax) emptyDispatchName(o opKind, j int) string {
	return s.dispatchName(o, j) + "E"
}

// digits are the per-layer sub-slot expressions of "slot".
func (s trieSyntax) digits() []string {
	out := make([]string, len(s.layers))
	for j, l := range s.layers {
		div := 1
		for _, rest := range s.layers[j+1:] {
			div *= rest.arity
		}
		e := "slot"
		if div > 1 {
			e += " / " + strconv.Itoa(div)
		}
		if j > 0 {
			e += " % " + strconv.Itoa(l.arity)
		}
		out[j] = e
	}
	return out
}

// rest names the digit variables of layers after j.
func (s trieSyntax) rest(j int) []string {
	var out []string
	for k := j + 1; k < len(s.layers); k++ {
		out = append(out, "s"+strconv.Itoa(k))
	}
	return out
}

func vals(o opKind) []string {
	if o.writes() {
		return []string{"val"}
	}
	return nil
}

func children(k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = "c" + strconv.Itoa(i)
	}
	return out
}

func lambdas(names []string, dup bool) string {
	mark := ""
	if dup {
		mark = "&"
	}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = "λ" + mark + n + "."
	}
	return strings.Join(parts, " ")
}

func call(name string, args ...string) string {
	return "@" + name + "(" + strings.Join(args, ", ") + ")"
}

func concatArgs(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// definitions renders every binding of operation o, entry first.
func (s trieSyntax) definitions(o opKind) [][2]string {
	out := [][2]string{{s.entryName(o), s.entryDef(o)}}
	for j := range s.layers {
		if j > 0 {
			out = append(out, [2]string{s.halfName(o, j), s.halfDef(o, j)})
		}
		out = append(out, [2]string{s.dispatchName(o, j), s.dispatchDef(o, j, false)})
		if o.writes() {
			out = append(out, [2]string{s.emptyDispatchName(o, j), s.dispatchDef(o, j, true)})
		}
	}
	return out
}

func (s trieSyntax) leafCase(o opKind) string {
	l := "#" + s.leaf
	switch o {
	case opGet:
		return "λval. val"
	case opGetLin:
		return "λ&val. #P{val, " + l + "{val}}"
	case opSet:
		return "λold. " + l + "{val}"
	case opMinUpdate:
		return "λ&old. λ{0: " + l + "{old}; λn. " + l + "{val}}(val < old)"
	default:
		return "λ&old. λ{0: #P{" + l + "{old}, 0}; λn. #P{" + l + "{val}, 1}}(val < old)"
	}
}

func (s trieSyntax) newLeaf(o opKind) string {
	if o == opMinUpdateFlagged {
		return "#P{#" + s.leaf + "{val}, 1}"
	}
	return "#" + s.leaf + "{val}"
}

func (s trieSyntax) missing(o opKind) string {
	if o == opGetLin {
		return "#P{@INF, " + s.emptyNode() + "}"
	}
	return "@INF"
}

func (s trieSyntax) split(indent string) string {
	dup := ""
	if len(s.layers) > 1 {
		dup = "&"
	}
	b := strconv.Itoa(s.base)
	return indent + "! " + dup + "slot = key % " + b + ";\n" +
		indent + "! next = key / " + b + ";\n" +
		indent + "! nd = depth - 1;\n"
}

func (s trieSyntax) entryDef(o opKind) string {
	first := s.layers[0]
	kids := children(first.arity)
	digits := s.digits()
	params := concatArgs([]string{"key"}, vals(o), []string{"depth"})
	carried := concatArgs(digits[1:], []string{"next"}, vals(o), []string{"nd"})

	var b strings.Builder
	b.WriteString("@" + s.entryName(o) + " = " + lambdas(params, true) + " λ{\n")
	if o.writes() {
		b.WriteString("  #" + s.empty + ": λ{\n")
		b.WriteString("    0: " + s.newLeaf(o) + ";\n")
		b.WriteString("    λn.\n")
		b.WriteString(s.split("      "))
		b.WriteString("      " + call(s.emptyDispatchName(o, 0), concatArgs(digits[:1], carried)...) + "\n")
		b.WriteString("  }(depth);\n")
	} else {
		b.WriteString("  #" + s.empty + ": " + s.missing(o) + ";\n")
	}
	b.WriteString("  #" + s.leaf + ": " + s.leafCase(o) + ";\n")
	b.WriteString("  #" + first.tag + ": " + lambdas(kids, false) + "\n")
	b.WriteString(s.split("    "))
	b.WriteString("    " + call(s.dispatchName(o, 0), concatArgs(digits[:1], carried, kids)...) + "\n")
	b.WriteString("}")
	return b.String()
}

func (s trieSyntax) halfDef(o opKind, j int) string {
	l := s.layers[j]
	kids := children(l.arity)
	own := "s" + strconv.Itoa(j)
	params := concatArgs([]string{own}, s.rest(j), []string{"next"}, vals(o), []string{"nd"})

	var b strings.Builder
	b.WriteString("@" + s.halfName(o, j) + " = " + lambdas(params, true) + " λ{\n")
	if o.writes() {
		b.WriteString("  #" + s.empty + ": " + call(s.emptyDispatchName(o, j), params...) + ";\n")
	} else {
		b.WriteString("  #" + s.empty + ": " + s.missing(o) + ";\n")
	}
	b.WriteString("  #" + l.tag + ": " + lambdas(kids, false) + "\n")
	b.WriteString("    " + call(s.dispatchName(o, j), concatArgs(params, kids)...) + "\n")
	b.WriteString("}")
	return b.String()
}

// descend is the recursive call into child expression x from layer j.
func (s trieSyntax) descend(o opKind, j int, x string) string {
	tail := concatArgs([]string{"next"}, vals(o), []string{"nd", x})
	if j == len(s.layers)-1 {
		return call(s.entryName(o), tail...)
	}
	return call(s.halfName(o, j+1), concatArgs(s.rest(j), tail)...)
}

// dispatchDef renders the per-slot match of layer j. fresh selects the
// Empty variant: siblings are Empty and the recursion starts from Empty.
func (s trieSyntax) dispatchDef(o opKind, j int, fresh bool) string {
	l := s.layers[j]
	kids := children(l.arity)
	params := concatArgs(s.rest(j), []string{"next"}, vals(o), []string{"nd"})
	if !fresh {
		params = append(params, kids...)
	}

	node := func(slot int, x string) string {
		parts := make([]string, l.arity)
		for i := range parts {
			switch {
			case i == slot:
				parts[i] = x
			case fresh:
				parts[i] = s.emptyNode()
			default:
				parts[i] = kids[i]
			}
		}
		return "#" + l.tag + "{" + strings.Join(parts, ", ") + "}"
	}

	var b strings.Builder
	b.WriteString("@" + s.dispatchName(o, j))
	if fresh {
		b.WriteString("E")
	}
	b.WriteString(" = λ{\n")
	for i := 0; i < l.arity; i++ {
		child := kids[i]
		if fresh {
			child = s.emptyNode()
		}
		rec := s.descend(o, j, child)

		var body string
		switch o {
		case opGet:
			body = rec
		case opGetLin:
			body = "λ{#P: λv. λnew. #P{v, " + node(i, "new") + "}}(" + rec + ")"
		case opSet, opMinUpdate:
			body = node(i, rec)
		default:
			body = "λ{#P: λnew. λc. #P{" + node(i, "new") + ", c}}(" + rec + ")"
		}

		label := strconv.Itoa(i) + ":"
		sep := ";"
		if i == l.arity-1 {
			label, sep = "λn.", ""
		}
		b.WriteString("  " + label + " " + lambdas(params, false) + "\n    " + body + sep + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// Assoc-list operations. Set prepends unseen keys and rewrites seen keys in
// place; min-update inserts or rewrites only on strict improvement.
const (
	assocGet = `@assoc_get = λ&key. λ&def. λ{
  []: def;
  <>: λ&h. λt. λ{
    #KV: λ&k. λv. λ{0: @assoc_get(key, def, t); λn. v}(k == key)
  }(h)
}`

	assocGetLin = `@assoc_get_lin = λ&key. λ&list. #P{@assoc_get(key, @INF, list), list}`

	assocHas = `@assoc_has = λ&key. λ{
  []: 0;
  <>: λ&h. λt. λ{
    #KV: λ&k. λv. λ{0: @assoc_has(key, t); λn. 1}(k == key)
  }(h)
}`

	assocPut = `@assoc_put = λ&key. λ&val. λ{
  []: [];
  <>: λ&h. λ&t. λ{
    #KV: λ&k. λ&v. λ{0: #KV{k, v} <> @assoc_put(key, val, t); λn. #KV{k, val} <> t}(k == key)
  }(h)
}`

	assocSet = `@assoc_set = λ&key. λ&val. λ&list. λ{
  0: #KV{key, val} <> list;
  λn. @assoc_put(key, val, list)
}(@assoc_has(key, list))`

	assocMinUpdate = `@assoc_min_update = λ&key. λ&val. λ&list. λ{
  0: list;
  λn. @assoc_set(key, val, list)
}(val < @assoc_get(key, @INF, list))`

	assocMinUpdateFlagged = `@assoc_min_update_f = λ&key. λ&val. λ&list. λ{
  0: #P{list, 0};
  λn. #P{@assoc_set(key, val, list), 1}
}(val < @assoc_get(key, @INF, list))`
)

// mapOps is what the relaxation and driver text needs from a representation.
type mapOps struct {
	defs  [][2]string
	empty string

	get    func(key, m string) string
	getLin func(key, m string) string
	set    func(key, val, m string) string
	update func(key, val, m string) string // min_update or min_update_f
}

var assocDefs = [][2]string{
	{"assoc_get", assocGet},
	{"assoc_get_lin", assocGetLin},
	{"assoc_has", assocHas},
	{"assoc_put", assocPut},
	{"assoc_set", assocSet},
	{"assoc_min_update", assocMinUpdate},
	{"assoc_min_update_f", assocMinUpdateFlagged},
}

// assocNeeds lists the assoc bindings operation o calls, itself included.
func assocNeeds(o opKind) []string {
	switch o {
	case opGet:
		return []string{"assoc_get"}
	case opGetLin:
		return []string{"assoc_get", "assoc_get_lin"}
	case opSet:
		return []string{"assoc_has", "assoc_put", "assoc_set"}
	case opMinUpdate:
		return []string{"assoc_get", "assoc_has", "assoc_put", "assoc_set", "assoc_min_update"}
	default:
		return []string{"assoc_get", "assoc_has", "assoc_put", "assoc_set", "assoc_min_update_f"}
	}
}

// opsFor renders the operations kinds of a program over r. Trie operations
// are emitted per kind in the given order; assoc bindings keep one canonical
// order and include the helpers they call.
func opsFor(r pmap.Representation, kinds ...opKind) mapOps {
	upd := opMinUpdate
	for _, o := range kinds {
		if o == opMinUpdateFlagged {
			upd = o
		}
	}

	s, ok := syntaxFor(r)
	if !ok {
		need := make(map[string]bool)
		for _, o := range kinds {
			for _, name := range assocNeeds(o) {
				need[name] = true
			}
		}
		var defs [][2]string
		for _, d := range assocDefs {
			if need[d[0]] {
				defs = append(defs, d)
			}
		}
		updName := "assoc_" + upd.entry()
		return mapOps{
			defs:   defs,
			empty:  "[]",
			get:    func(k, m string) string { return call("assoc_get", k, "@INF", m) },
			getLin: func(k, m string) string { return call("assoc_get_lin", k, m) },
			set:    func(k, v, m string) string { return call("assoc_set", k, v, m) },
			update: func(k, v, m string) string { return call(updName, k, v, m) },
		}
	}

	var defs [][2]string
	for _, o := range kinds {
		defs = append(defs, s.definitions(o)...)
	}
	return mapOps{
		defs:   defs,
		empty:  s.emptyNode(),
		get:    func(k, m string) string { return call(s.entryName(opGet), k, "@DEPTH", m) },
		getLin: func(k, m string) string { return call(s.entryName(opGetLin), k, "@DEPTH", m) },
		set:    func(k, v, m string) string { return call(s.entryName(opSet), k, v, "@DEPTH", m) },
		update: func(k, v, m string) string { return call(s.entryName(upd), k, v, "@DEPTH", m) },
	}
}
