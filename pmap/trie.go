// SPDX-License-Identifier: MIT
// Package: pmapbench/pmap
//
// trie.go - generic persistent radix trie (radix 2, 4, 16, 32).
//
// Node shape (tagged variant):
//   • Empty  - the nil *Node.
//   • Leaf   - holds one value; only found at level 0.
//   • Branch - exactly base children, each Empty/Leaf/Branch.
//
// Ownership: a Branch owns its children array, but an older and a newer
// Trie version may both point at the same unmodified child. Nodes are never
// mutated after construction, so sharing is safe.
//
// Complexity: Get O(depth); Set/MinUpdate O(depth·base) allocation (one
// children array per rebuilt level).

package pmap

import "math"

// Kind tags a trie node.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindLeaf
	KindBranch
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "Leaf"
	case KindBranch:
		return "Branch"
	default:
		return "Empty"
	}
}

// Node is one immutable trie node. The nil *Node is Empty.
type Node struct {
	kind Kind
	val  int64
	kids []*Node
}

// Kind reports the node tag; nil reports KindEmpty.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindEmpty
	}
	return n.kind
}

// Value is the leaf value, or Sentinel for non-leaves.
func (n *Node) Value() int64 {
	if n.Kind() != KindLeaf {
		return Sentinel
	}
	return n.val
}

// Child returns child i of a Branch; nil (Empty) otherwise or out of range.
func (n *Node) Child(i int) *Node {
	if n.Kind() != KindBranch || i < 0 || i >= len(n.kids) {
		return nil
	}
	return n.kids[i]
}

func leaf(val int64) *Node { return &Node{kind: KindLeaf, val: val} }

// withChild copies n's children (all Empty when n is Empty), replaces slot
// and returns the new Branch. The other children are shared, not copied.
func withChild(n *Node, base, slot int, child *Node) *Node {
	kids := make([]*Node, base)
	if n.Kind() == KindBranch {
		copy(kids, n.kids)
	}
	kids[slot] = child
	return &Node{kind: KindBranch, kids: kids}
}

// Trie is a persistent radix-base trie of fixed depth.
type Trie struct {
	base     int
	depth    int
	capacity int // base^depth; keys >= capacity are not addressable
	root     *Node
}

var _ Map = (*Trie)(nil)

// NewTrie returns an empty trie. base must be >= 2 and depth >= 1; smaller
// values are raised to those minimums. The addressable key range base^depth
// saturates at math.MaxInt.
func NewTrie(base, depth int) *Trie {
	if base < 2 {
		base = 2
	}
	if depth < 1 {
		depth = 1
	}
	capacity := 1
	for i := 0; i < depth; i++ {
		if capacity > math.MaxInt/base {
			capacity = math.MaxInt
			break
		}
		capacity *= base
	}
	return &Trie{base: base, depth: depth, capacity: capacity}
}

// Base is the branching factor.
func (t *Trie) Base() int { return t.base }

// Depth is the number of digit levels.
func (t *Trie) Depth() int { return t.depth }

// Root exposes the root node for structural inspection.
func (t *Trie) Root() *Node { return t.root }

// Representation maps the base onto the family enum. Bases outside the
// family report Representation(-1).
func (t *Trie) Representation() Representation {
	for _, r := range Representations() {
		if r.Base() == t.base {
			return r
		}
	}
	return Representation(-1)
}

func (t *Trie) addressable(key int) bool {
	return key >= 0 && key < t.capacity
}

func (t *Trie) with(root *Node) *Trie {
	return &Trie{base: t.base, depth: t.depth, capacity: t.capacity, root: root}
}

// Get walks depth levels; any Empty on the way yields Sentinel.
func (t *Trie) Get(key int) int64 {
	if !t.addressable(key) {
		return Sentinel
	}
	n := t.root
	for d := t.depth; d > 0; d-- {
		if n.Kind() != KindBranch {
			return Sentinel
		}
		n = n.kids[key%t.base]
		key /= t.base
	}
	return n.Value()
}

// Set always rebuilds the path to key, even when val equals the stored value.
func (t *Trie) Set(key int, val int64) Map {
	if !t.addressable(key) {
		return t
	}
	return t.with(t.set(t.root, key, t.depth, val))
}

func (t *Trie) set(n *Node, key, depth int, val int64) *Node {
	if depth == 0 {
		return leaf(val)
	}
	slot := key % t.base
	return withChild(n, t.base, slot, t.set(n.Child(slot), key/t.base, depth-1, val))
}

// MinUpdate returns t itself when val does not improve the stored value.
func (t *Trie) MinUpdate(key int, val int64) Map {
	m, _ := t.MinUpdateFlagged(key, val)
	return m
}

// MinUpdateFlagged threads the changed flag upward: the leaf decides, every
// Branch on the path forwards its single recursive call's flag.
func (t *Trie) MinUpdateFlagged(key int, val int64) (Map, bool) {
	if !t.addressable(key) {
		return t, false
	}
	root, changed := t.minUpdate(t.root, key, t.depth, val)
	if !changed {
		return t, false
	}
	return t.with(root), true
}

func (t *Trie) minUpdate(n *Node, key, depth int, val int64) (*Node, bool) {
	if depth == 0 {
		// Absent reads as Sentinel, so only val < Sentinel inserts. The
		// emitted min_update inserts on Empty unconditionally.
		if val >= n.Value() {
			return n, false
		}
		return leaf(val), true
	}
	slot := key % t.base
	child, changed := t.minUpdate(n.Child(slot), key/t.base, depth-1, val)
	if !changed {
		return n, false
	}
	return withChild(n, t.base, slot, child), true
}

// Each visits leaves in digit order: children of the root by slot, and so
// on down. Keys sharing a low digit come out together.
func (t *Trie) Each(fn func(key int, val int64) bool) {
	t.each(t.root, 0, 1, t.depth, fn)
}

// each returns false once fn asked to stop. scale is base^(levels above n).
func (t *Trie) each(n *Node, prefix, scale, depth int, fn func(int, int64) bool) bool {
	switch n.Kind() {
	case KindLeaf:
		if depth != 0 {
			return true
		}
		return fn(prefix, n.val)
	case KindBranch:
		if depth == 0 {
			return true
		}
		for slot, c := range n.kids {
			if !t.each(c, prefix+slot*scale, scale*t.base, depth-1, fn) {
				return false
			}
		}
	}
	return true
}

// Nodes counts the allocated (non-Empty) nodes reachable from the root.
// This is the per-version live-node figure the evaluator's allocator sees.
func (t *Trie) Nodes() int {
	var count func(*Node) int
	count = func(n *Node) int {
		switch n.Kind() {
		case KindLeaf:
			return 1
		case KindBranch:
			c := 1
			for _, k := range n.kids {
				c += count(k)
			}
			return c
		}
		return 0
	}
	return count(t.root)
}
