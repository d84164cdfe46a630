// SPDX-License-Identifier: MIT
// Package: pmapbench/pmap
//
// assoc.go - persistent association list.
//
// Ordering rule: Set replaces an existing key in place (same position) and
// prepends a new key at the front. The list is therefore front-first in
// insertion order of new keys, not sorted. Consumers comparing structure
// (Each order) rely on this.

package pmap

// cell is one immutable (key, value) link.
type cell struct {
	key  int
	val  int64
	next *cell
}

// Assoc is a persistent association list. The zero value is empty.
type Assoc struct {
	head *cell
	size int
}

var _ Map = (*Assoc)(nil)

// NewAssoc returns an empty association list.
func NewAssoc() *Assoc { return &Assoc{} }

func (a *Assoc) Representation() Representation { return AssocList }

func (a *Assoc) Depth() int { return 0 }

// Len is the number of stored keys.
func (a *Assoc) Len() int { return a.size }

func (a *Assoc) find(key int) *cell {
	for c := a.head; c != nil; c = c.next {
		if c.key == key {
			return c
		}
	}
	return nil
}

// Get is a linear scan.
func (a *Assoc) Get(key int) int64 {
	if c := a.find(key); c != nil {
		return c.val
	}
	return Sentinel
}

// Set rebuilds the prefix up to an existing key and shares the tail after
// it, or prepends a new cell.
func (a *Assoc) Set(key int, val int64) Map {
	if a.find(key) == nil {
		return &Assoc{head: &cell{key: key, val: val, next: a.head}, size: a.size + 1}
	}
	return &Assoc{head: replace(a.head, key, val), size: a.size}
}

// replace copies cells up to and including key; key must be present.
func replace(c *cell, key int, val int64) *cell {
	if c.key == key {
		return &cell{key: key, val: val, next: c.next}
	}
	return &cell{key: c.key, val: c.val, next: replace(c.next, key, val)}
}

func (a *Assoc) MinUpdate(key int, val int64) Map {
	m, _ := a.MinUpdateFlagged(key, val)
	return m
}

// MinUpdateFlagged returns the receiver untouched unless val < Get(key).
func (a *Assoc) MinUpdateFlagged(key int, val int64) (Map, bool) {
	if val >= a.Get(key) {
		return a, false
	}
	return a.Set(key, val), true
}

// Each walks the list front to back.
func (a *Assoc) Each(fn func(key int, val int64) bool) {
	for c := a.head; c != nil; c = c.next {
		if !fn(c.key, c.val) {
			return
		}
	}
}
