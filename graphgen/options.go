// SPDX-License-Identifier: MIT
// Package: pmapbench/graphgen
//
// options.go - functional options and the resolved generator config.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless ranges
//     (min < 1 or max < min). Generate itself never panics.
//   • Defaults reproduce the benchmark fixtures: chain [1,10], extras [1,20].

package graphgen

import "fmt"

// Default weight ranges (inclusive).
const (
	DefaultChainMin int64 = 1
	DefaultChainMax int64 = 10
	DefaultExtraMin int64 = 1
	DefaultExtraMax int64 = 20
)

// Option customizes Generate by mutating a config before generation.
type Option func(*config)

// config is passed by value into the generation phases.
type config struct {
	chainMin, chainMax int64
	extraMin, extraMax int64
}

func newConfig(opts ...Option) config {
	cfg := config{
		chainMin: DefaultChainMin,
		chainMax: DefaultChainMax,
		extraMin: DefaultExtraMin,
		extraMax: DefaultExtraMax,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithChainWeights sets the inclusive weight range of chain edges.
// Panics if min < 1 or max < min.
func WithChainWeights(min, max int64) Option {
	mustRange("WithChainWeights", min, max)
	return func(c *config) {
		c.chainMin, c.chainMax = min, max
	}
}

// WithExtraWeights sets the inclusive weight range of random extra edges.
// Panics if min < 1 or max < min.
func WithExtraWeights(min, max int64) Option {
	mustRange("WithExtraWeights", min, max)
	return func(c *config) {
		c.extraMin, c.extraMax = min, max
	}
}

func mustRange(method string, min, max int64) {
	if min < 1 || max < min {
		panic(fmt.Sprintf("graphgen: %s(%d, %d): need 1 <= min <= max", method, min, max))
	}
}
