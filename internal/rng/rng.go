// Package rng provides pseudo-random number generation with explicit,
// self-contained state. There is no package-level generator and no global
// seed: callers construct a Generator and pass it to every site that
// draws from it, so sequences are reproducible and isolated.
package rng

import (
	"math"
	"math/rand"
)

// Generator produces pseudo-random numbers from its own state.
// A Generator is not safe for concurrent use; give each goroutine its own.
type Generator struct {
	src      *rand.Rand
	spare    float64 // cached second normal deviate from Box-Muller
	hasSpare bool
}

// New returns a Generator seeded with the given value.
// The same seed reproduces the same sequence.
func New(seed int64) *Generator {
	return &Generator{
		src: rand.New(rand.NewSource(seed)), //nolint:gosec // G404: statistical sampling, seeded reproducibility is the point
	}
}

// Seed resets the generator to the state produced by the given seed.
func (g *Generator) Seed(seed int64) {
	g.src.Seed(seed)
	g.hasSpare = false
}

// Float64 returns a uniform draw from [0, 1).
func (g *Generator) Float64() float64 {
	return g.src.Float64()
}

// Intn returns a uniform draw from [0, n). Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.src.Intn(n)
}

// Int63n returns a uniform int64 draw from [0, n). Panics if n <= 0.
func (g *Generator) Int63n(n int64) int64 {
	return g.src.Int63n(n)
}

// Norm returns a draw from the standard normal distribution N(0, 1),
// using the Box-Muller transform. The transform yields deviates in
// pairs; the second is cached for the next call.
func (g *Generator) Norm() float64 {
	if g.hasSpare {
		g.hasSpare = false
		return g.spare
	}

	u1 := g.src.Float64()
	for u1 == 0 {
		u1 = g.src.Float64()
	}
	u2 := g.src.Float64()

	r := math.Sqrt(-2.0 * math.Log(u1))
	g.spare = r * math.Sin(2.0*math.Pi*u2)
	g.hasSpare = true
	return r * math.Cos(2.0*math.Pi*u2)
}

// Perm returns a random permutation of the integers [0, n).
func (g *Generator) Perm(n int) []int {
	return g.src.Perm(n)
}
