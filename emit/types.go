// SPDX-License-Identifier: MIT
// Package: pmapbench/emit
//
// types.go - options, emission results and sentinel errors.

package emit

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadChunkSize indicates chunkSize >= threshold.
	ErrBadChunkSize = errors.New("emit: chunk size must be below threshold")

	// ErrLiteralTooLarge indicates a literal holding more than threshold items.
	ErrLiteralTooLarge = errors.New("emit: literal exceeds threshold")

	// ErrEmptyName indicates an empty binding name.
	ErrEmptyName = errors.New("emit: empty literal name")
)

// Defaults for flat edge lists.
const (
	DefaultThreshold = 3500
	DefaultChunkSize = 2000
	DefaultPerLine   = 8
)

// Defaults for adjacency lists, whose items are whole per-node groups.
const (
	DefaultAdjacencyThreshold = 3000
	DefaultAdjacencyChunkSize = 2000
	ArcsPerLine               = 10
)

// AppendDefinition is the list concatenation helper every split emission
// depends on.
const AppendDefinition = `@append = λ{
  []: λb. b;
  <>: λh. λt. λb. h <> @append(t, b)
}`

// Option configures one emission.
type Option func(*config)

type config struct {
	threshold int
	chunkSize int
	perLine   int
}

func newConfig(threshold, chunkSize, perLine int, opts []Option) config {
	cfg := config{threshold: threshold, chunkSize: chunkSize, perLine: perLine}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithThreshold sets the largest item count emitted as a single literal.
// Panics if t < 1.
func WithThreshold(t int) Option {
	mustPositive("WithThreshold", t)
	return func(c *config) { c.threshold = t }
}

// WithChunkSize sets the item count of each split chunk. Panics if s < 1.
func WithChunkSize(s int) Option {
	mustPositive("WithChunkSize", s)
	return func(c *config) { c.chunkSize = s }
}

// WithPerLine sets how many items share one output line. Panics if k < 1.
func WithPerLine(k int) Option {
	mustPositive("WithPerLine", k)
	return func(c *config) { c.perLine = k }
}

func mustPositive(method string, v int) {
	if v < 1 {
		panic(fmt.Sprintf("emit: %s(%d): must be positive", method, v))
	}
}

// Literal is one named list literal.
type Literal struct {
	// Name without the leading '@'.
	Name string

	// Items in list order, already rendered.
	Items []string

	// Text is the full "@name = [...]" definition.
	Text string
}

// Emission is the result of one Items/Edges/Adjacency call.
type Emission struct {
	// Name is the binding consumers refer to ("edges", "adj", ...).
	Name string

	// Literals in emission order. One literal named Name when no split
	// happened.
	Literals []Literal

	// Concat lists the literal names whose concatenation, in order, is the
	// full list.
	Concat []string

	// Binding is the "@name = @append(...)" definition; empty when no split
	// happened.
	Binding string

	// Threshold the emission was produced under.
	Threshold int
}

// NeedsAppend reports whether Binding refers to the @append helper.
func (e *Emission) NeedsAppend() bool { return e.Binding != "" }

// Text joins every literal and the binding with blank lines.
func (e *Emission) Text() string {
	parts := make([]string, 0, len(e.Literals)+1)
	for _, l := range e.Literals {
		parts = append(parts, l.Text)
	}
	if e.Binding != "" {
		parts = append(parts, e.Binding)
	}
	return strings.Join(parts, "\n\n")
}

// Bindings returns every (name, definition) pair in emission order, the
// concatenation binding last.
func (e *Emission) Bindings() [][2]string {
	out := make([][2]string, 0, len(e.Literals)+1)
	for _, l := range e.Literals {
		out = append(out, [2]string{l.Name, l.Text})
	}
	if e.Binding != "" {
		out = append(out, [2]string{e.Name, e.Binding})
	}
	return out
}

// Flatten reassembles the full item sequence by following Concat.
func (e *Emission) Flatten() []string {
	byName := make(map[string][]string, len(e.Literals))
	total := 0
	for _, l := range e.Literals {
		byName[l.Name] = l.Items
		total += len(l.Items)
	}
	out := make([]string, 0, total)
	for _, name := range e.Concat {
		out = append(out, byName[name]...)
	}
	return out
}

// MaxLiteral is the item count of the largest literal.
func (e *Emission) MaxLiteral() int {
	m := 0
	for _, l := range e.Literals {
		if len(l.Items) > m {
			m = len(l.Items)
		}
	}
	return m
}

// Check fails with ErrLiteralTooLarge when any literal holds more than
// Threshold items.
func (e *Emission) Check() error {
	for _, l := range e.Literals {
		if len(l.Items) > e.Threshold {
			return fmt.Errorf("emit: @%s holds %d items, threshold %d: %w",
				l.Name, len(l.Items), e.Threshold, ErrLiteralTooLarge)
		}
	}
	return nil
}
