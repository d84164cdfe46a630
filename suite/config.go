// SPDX-License-Identifier: MIT
// Package: pmapbench/suite
//
// config.go - Config, defaults, YAML loading and validation.

package suite

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pmapbench/emit"
	"github.com/katalvlaran/pmapbench/pmap"
	"github.com/katalvlaran/pmapbench/relax"
	"github.com/katalvlaran/pmapbench/variant"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("suite: invalid config")

// VariantConfig names one program shape; Delta comes from Config.
type VariantConfig struct {
	Representation pmap.Representation `yaml:"representation"`
	Algorithm      relax.Algorithm      `yaml:"algorithm"`
	Early          bool                 `yaml:"early,omitempty"`
	Adjacency      bool                 `yaml:"adjacency,omitempty"`
}

// Config describes one generation pass.
type Config struct {
	// Sizes are node counts, generated in this order.
	Sizes []int `yaml:"sizes"`

	EdgesPerNode int `yaml:"edges_per_node"`

	// SeedBase: size n uses seed SeedBase+n.
	SeedBase uint32 `yaml:"seed_base"`

	// Delta is the light/heavy threshold of delta-stepping programs.
	Delta int64 `yaml:"delta"`

	// AssocMax is the largest size that still gets assoc-list programs.
	AssocMax int `yaml:"assoc_max"`

	// Threshold and ChunkSize override the literal emitter; 0 keeps its
	// per-list defaults.
	Threshold int `yaml:"threshold,omitempty"`
	ChunkSize int `yaml:"chunk_size,omitempty"`

	Variants []VariantConfig `yaml:"variants"`
}

// DefaultConfig is the benchmark pass: eleven sizes from 50 to 10000, four
// edges per node, seed base 42, delta 5, assoc-list up to 100 nodes, and the
// eight standard program shapes.
func DefaultConfig() Config {
	return Config{
		Sizes:        []int{50, 100, 200, 256, 257, 500, 1000, 1500, 2000, 5000, 10000},
		EdgesPerNode: 4,
		SeedBase:     42,
		Delta:        5,
		AssocMax:     100,
		Variants: []VariantConfig{
			{Representation: pmap.Radix16, Algorithm: relax.BellmanFord},
			{Representation: pmap.Radix32, Algorithm: relax.BellmanFord},
			{Representation: pmap.Binary, Algorithm: relax.BellmanFord},
			{Representation: pmap.Binary, Algorithm: relax.BellmanFord, Early: true},
			{Representation: pmap.Radix4, Algorithm: relax.BellmanFord, Early: true},
			{Representation: pmap.Radix4, Algorithm: relax.BellmanFord, Early: true, Adjacency: true},
			{Representation: pmap.Binary, Algorithm: relax.DeltaStepping, Early: true},
			{Representation: pmap.AssocList, Algorithm: relax.BellmanFord},
		},
	}
}

// LoadConfig decodes YAML from r over DefaultConfig and validates the
// result. Unknown keys are rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("suite: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Variant resolves vc against the config's delta.
func (c Config) Variant(vc VariantConfig) variant.Variant {
	return variant.Variant{
		Representation: vc.Representation,
		Algorithm:      vc.Algorithm,
		Early:          vc.Early,
		Adjacency:      vc.Adjacency,
		Delta:          c.Delta,
	}
}

// Validate checks ranges and every variant. Threshold and ChunkSize are
// checked as the emitter will see them: an unset field takes the list's
// default, and the adjacency defaults only count when a variant uses them.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: no sizes", ErrInvalidConfig)
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d", ErrInvalidConfig, n)
		}
	}
	if c.EdgesPerNode < 1 {
		return fmt.Errorf("%w: edges_per_node=%d", ErrInvalidConfig, c.EdgesPerNode)
	}
	if c.Delta < 1 {
		return fmt.Errorf("%w: delta=%d", ErrInvalidConfig, c.Delta)
	}
	if c.AssocMax < 0 {
		return fmt.Errorf("%w: assoc_max=%d", ErrInvalidConfig, c.AssocMax)
	}
	if c.Threshold < 0 || c.ChunkSize < 0 {
		return fmt.Errorf("%w: threshold=%d chunk_size=%d", ErrInvalidConfig, c.Threshold, c.ChunkSize)
	}
	if err := checkChunking("edges", c.Threshold, c.ChunkSize, emit.DefaultThreshold, emit.DefaultChunkSize); err != nil {
		return err
	}
	for _, vc := range c.Variants {
		if !vc.Adjacency {
			continue
		}
		if err := checkChunking("adjacency", c.Threshold, c.ChunkSize,
			emit.DefaultAdjacencyThreshold, emit.DefaultAdjacencyChunkSize); err != nil {
			return err
		}
		break
	}
	if len(c.Variants) == 0 {
		return fmt.Errorf("%w: no variants", ErrInvalidConfig)
	}
	for i, vc := range c.Variants {
		if err := c.Variant(vc).Validate(); err != nil {
			return fmt.Errorf("%w: variants[%d]: %v", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

// checkChunking rejects an effective chunk size at or above the effective
// threshold for one kind of list literal.
func checkChunking(list string, threshold, chunkSize, defThreshold, defChunkSize int) error {
	if threshold == 0 {
		threshold = defThreshold
	}
	if chunkSize == 0 {
		chunkSize = defChunkSize
	}
	if chunkSize >= threshold {
		return fmt.Errorf("%w: %s chunk_size=%d must be below threshold=%d", ErrInvalidConfig, list, chunkSize, threshold)
	}
	return nil
}
