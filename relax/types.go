// SPDX-License-Identifier: MIT
// Package: pmapbench/relax
//
// types.go - schedules, outcomes and sentinel errors.

// Package relax replays, in Go and over any pmap.Map, the relaxation
// schedules the emitted programs run inside the external evaluator. It is the
// executable model of a fixture: same edge order, same round structure, same
// drivers, same persistent-map operations.
//
// Round bodies:
//   - Edges:         fold the edge list; per edge read dist[u] and, if it is
//     not the sentinel, MinUpdate v with dist[u]+w. With GetSet the step is
//     instead get dist[u], get dist[v], Set v when dist[u]+w is smaller.
//   - Adjacency:     fold the per-source groups; dist[u] is read once per
//     group, then every outgoing arc is folded.
//   - DeltaStepping: edge fold over light, light again, then heavy.
//
// Drivers:
//   - Fixed: exactly n−1 rounds (the Bellman-Ford worst-case bound).
//   - Early: at most n−1 rounds; stops after the first round whose summed
//     MinUpdateFlagged flags are zero.
package relax

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("relax: graph is nil")

	// ErrNilMap indicates a nil starting map.
	ErrNilMap = errors.New("relax: map is nil")

	// ErrSourceNotSet indicates a starting map without distance 0 at node 0.
	ErrSourceNotSet = errors.New("relax: source distance not set")

	// ErrUnsupportedSchedule indicates a schedule combination without a
	// round body (delta-stepping over adjacency groups).
	ErrUnsupportedSchedule = errors.New("relax: unsupported schedule")
)

// Algorithm selects the round body.
type Algorithm int

const (
	// BellmanFord relaxes every edge once per round.
	BellmanFord Algorithm = iota
	// DeltaStepping relaxes light edges twice then heavy edges once per round.
	DeltaStepping
)

// String returns "bf" or "ds", the fixture name prefixes.
func (a Algorithm) String() string {
	switch a {
	case BellmanFord:
		return "bf"
	case DeltaStepping:
		return "ds"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Title is the human-readable algorithm name used in fixture headers.
func (a Algorithm) Title() string {
	if a == DeltaStepping {
		return "Delta-Stepping"
	}
	return "Bellman-Ford"
}

// ParseAlgorithm accepts "bf"/"bellman-ford" and "ds"/"delta-stepping".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "bf", "bellman-ford":
		return BellmanFord, nil
	case "ds", "delta-stepping":
		return DeltaStepping, nil
	}
	return 0, fmt.Errorf("relax: unknown algorithm %q: %w", s, ErrUnsupportedSchedule)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Schedule fully describes how a fixture relaxes its distance map.
type Schedule struct {
	Algorithm Algorithm
	// Early selects the early-terminating driver.
	Early bool
	// Adjacency folds per-source groups instead of the flat edge list.
	Adjacency bool
	// Delta is the light/heavy threshold; DeltaStepping only.
	Delta int64
	// GetSet relaxes with two Gets and a Set instead of MinUpdate.
	GetSet bool
}

// Validate rejects combinations without a round body.
func (s Schedule) Validate() error {
	if s.Algorithm != BellmanFord && s.Algorithm != DeltaStepping {
		return fmt.Errorf("relax: %v: %w", s.Algorithm, ErrUnsupportedSchedule)
	}
	if s.Algorithm == DeltaStepping && s.Adjacency {
		return fmt.Errorf("relax: delta-stepping over adjacency groups: %w", ErrUnsupportedSchedule)
	}
	if s.Algorithm == DeltaStepping && s.Delta < 1 {
		return fmt.Errorf("relax: delta=%d: %w", s.Delta, ErrUnsupportedSchedule)
	}
	return nil
}
