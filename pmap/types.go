// SPDX-License-Identifier: MIT
// Package: pmapbench/pmap
//
// types.go - Sentinel, Representation, Map contract and depth formula.

package pmap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel is the finite "unreachable" distance. It must stay far above any
// real shortest distance (n · max weight) of the generated graphs.
const Sentinel int64 = 999999

// ErrUnknownRepresentation is returned by ParseRepresentation.
var ErrUnknownRepresentation = errors.New("pmap: unknown representation")

// Representation selects one member of the map family.
type Representation int

const (
	// AssocList is an ordered sequence of (key, value) cells.
	AssocList Representation = iota
	// Binary is the radix-2 trie.
	Binary
	// Radix4 is the radix-4 trie.
	Radix4
	// Radix16 is the radix-16 trie.
	Radix16
	// Radix32 is the radix-32 trie.
	Radix32
)

var representationNames = [...]string{
	AssocList: "assoc",
	Binary:    "btrie",
	Radix4:    "q4",
	Radix16:   "trie16",
	Radix32:   "trie32",
}

// Representations lists every member in declaration order.
func Representations() []Representation {
	return []Representation{AssocList, Binary, Radix4, Radix16, Radix32}
}

// String returns the short fixture name ("assoc", "btrie", "q4", "trie16", "trie32").
func (r Representation) String() string {
	if r < AssocList || r > Radix32 {
		return fmt.Sprintf("Representation(%d)", int(r))
	}
	return representationNames[r]
}

// Title is the human-readable name used in fixture headers.
func (r Representation) Title() string {
	switch r {
	case AssocList:
		return "assoc-list"
	case Binary:
		return "binary trie"
	case Radix4:
		return "radix-4 trie"
	case Radix16:
		return "radix-16 trie"
	case Radix32:
		return "radix-32 trie"
	default:
		return r.String()
	}
}

// Base is the branching factor; 0 for the assoc list.
func (r Representation) Base() int {
	switch r {
	case Binary:
		return 2
	case Radix4:
		return 4
	case Radix16:
		return 16
	case Radix32:
		return 32
	default:
		return 0
	}
}

// IsTrie reports whether r is one of the radix tries.
func (r Representation) IsTrie() bool { return r.Base() > 0 }

// ParseRepresentation accepts the String() names (case-insensitive).
func ParseRepresentation(s string) (Representation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range representationNames {
		if name == s {
			return Representation(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
}

// MarshalText implements encoding.TextMarshaler.
func (r Representation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Representation) UnmarshalText(b []byte) error {
	v, err := ParseRepresentation(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Depth returns the number of digit levels a radix-base trie needs to
// address keys 0..n-1: 1 when n <= base, else the smallest d with
// base^d >= n. Crossing a power of base (e.g. 256 → 257 at base 16) adds
// one level.
func Depth(n, base int) int {
	if base < 2 || n <= base {
		return 1
	}
	d, capacity := 1, base
	for capacity < n {
		d++
		capacity *= base
	}
	return d
}

// Map is the shared contract of the family. Implementations are immutable:
// every update returns a map and leaves the receiver valid and unchanged.
type Map interface {
	// Get returns the value stored at key, or Sentinel.
	Get(key int) int64

	// Set stores val at key, always rebuilding the key's path.
	Set(key int, val int64) Map

	// MinUpdate stores val only if it is strictly below the current value.
	// When it is not, the receiver itself is returned.
	MinUpdate(key int, val int64) Map

	// MinUpdateFlagged is MinUpdate plus whether a value changed.
	MinUpdateFlagged(key int, val int64) (Map, bool)

	// Representation identifies the family member.
	Representation() Representation

	// Depth is the trie level count; 0 for the assoc list.
	Depth() int

	// Each visits stored entries until fn returns false. Tries visit in
	// digit order (least significant digit first, so not ascending keys);
	// the assoc list visits front to back.
	Each(fn func(key int, val int64) bool)
}

// New returns an empty map of representation r able to address keys 0..n-1.
func New(r Representation, n int) Map {
	if !r.IsTrie() {
		return NewAssoc()
	}
	return NewTrie(r.Base(), Depth(n, r.Base()))
}

// Size counts the entries stored in m.
func Size(m Map) int {
	n := 0
	m.Each(func(int, int64) bool {
		n++
		return true
	})
	return n
}

// Vector reads keys 0..n-1 into a dense slice (Sentinel where absent).
func Vector(m Map, n int) []int64 {
	out := make([]int64, n)
	for k := range out {
		out[k] = m.Get(k)
	}
	return out
}
