// Copyright ©2026 The ARS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniform provides ars.Source adapters over golang.org/x/exp/rand,
// the pseudo-random generator used throughout this module and its tests
// (ground: gonum.org/v1/gonum/stat/distuv's own test suite, which seeds
// every distribution under test with rand.New(rand.NewSource(seed))).
package uniform

import "golang.org/x/exp/rand"

// Source adapts a *rand.Rand to ars.Source. It satisfies ars.Source
// structurally through its Uniform method; this package does not import
// ars, so the two packages compose without a dependency edge.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded deterministically from seed. Each call
// returns an independent generator; Sources are never safe to share
// between concurrently sampling goroutines, matching Hull's own
// single-threaded contract.
func New(seed uint64) Source {
	return Source{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing *rand.Rand, letting callers control its seed
// source or share one generator's state across several uses that are
// known not to run concurrently.
func FromRand(rng *rand.Rand) Source {
	return Source{rng: rng}
}

// Uniform returns an independent variate in [0, 1) (golang.org/x/exp/rand's
// Float64 is closed-left, which ars.Source's contract explicitly tolerates).
func (s Source) Uniform() float64 {
	return s.rng.Float64()
}
