// SPDX-License-Identifier: MIT

// Package pmap implements the persistent integer-keyed map family used as
// the distance vector of the shortest-path fixtures.
//
// Five representations share one contract (Map):
//
//	Representation  Branching  Depth            Lookup
//	assoc           n/a        n/a              O(n)
//	btrie           2          ⌈log₂ n⌉ (≥1)    O(depth)
//	q4              4          ⌈log₄ n⌉ (≥1)    O(depth)
//	trie16          16         ⌈log₁₆ n⌉ (≥1)   O(depth)
//	trie32          32         ⌈log₃₂ n⌉ (≥1)   O(depth)
//
// The four tries are one generic structure (Trie) parameterized by its
// branching factor. A key is addressed by its base-B digits, least
// significant first: slot = key % B, then key /= B, once per level.
//
// Persistence is path copy. Set and MinUpdate rebuild only the Branch nodes
// on the path to the key; every sibling subtree is the very same *Node in
// the old and new versions. MinUpdate performs no reconstruction at all when
// the candidate does not improve the stored value and returns the receiver
// itself, so "did anything change" is a pointer comparison or the flag from
// MinUpdateFlagged.
//
// Absent keys read as Sentinel. Nothing in this package returns an error.
package pmap
