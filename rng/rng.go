// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rng provides seeded random number generation for nda.
//
// Generators carry explicit, self-contained state. There is no package-level
// generator and no global seed: construct a Generator and pass it to every
// site that draws from it. Two generators built from the same seed produce
// the same sequence, and generators never share state, so concurrent code
// can give each goroutine its own.
//
// Example:
//
//	g := rng.New(42)
//	u := g.Float64()  // uniform draw from [0, 1)
//	n := g.Norm()     // standard normal draw
//
//	x := array.Rand[float64](g, array.Shape{2, 3}, backend)
package rng

import (
	"github.com/nda-dev/nda/internal/rng"
)

// Generator produces pseudo-random numbers from its own state.
//
// A Generator is not safe for concurrent use; give each goroutine its own.
//
// Methods:
//   - Float64: uniform draw from [0, 1)
//   - Norm: standard normal draw via Box-Muller
//   - Intn, Int63n: uniform integer draws from [0, n)
//   - Perm: random permutation of [0, n)
//   - Seed: reset to the state produced by a seed
type Generator = rng.Generator

// New returns a Generator seeded with the given value.
// The same seed reproduces the same sequence.
//
// Example:
//
//	g := rng.New(42)
//	x := array.Rand[float64](g, array.Shape{2, 3}, backend)
func New(seed int64) *Generator {
	return rng.New(seed)
}
