// SPDX-License-Identifier: MIT
// Package: pmapbench/graphgen
//
// lcg.go - the linear-congruential stream behind every generated graph.
//
// The constants are the classic ANSI C rand() pair truncated to 31 bits.
// They are fixed: changing them changes every fixture and every embedded
// expected value.

package graphgen

const (
	lcgMultiplier uint64 = 1103515245
	lcgIncrement  uint64 = 12345
	lcgMask       uint64 = 0x7fffffff
)

// lcg is a deterministic 31-bit pseudo-random stream. Not goroutine-safe.
type lcg struct {
	s uint64
}

func newLCG(seed uint32) *lcg {
	return &lcg{s: uint64(seed)}
}

// next advances the state and returns it.
func (r *lcg) next() uint64 {
	r.s = (r.s*lcgMultiplier + lcgIncrement) & lcgMask
	return r.s
}

// intn returns next() mod n as int. n must be positive.
func (r *lcg) intn(n int) int {
	return int(r.next() % uint64(n))
}

// weight returns a value in [min, max].
func (r *lcg) weight(min, max int64) int64 {
	span := uint64(max - min + 1)
	return int64(r.next()%span) + min
}

// SeedFor derives the per-size seed used by the fixture suite: base + n.
func SeedFor(base uint32, n int) uint32 {
	return base + uint32(n)
}
