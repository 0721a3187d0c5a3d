// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package stats provides descriptive statistics over float64 arrays.
//
// The functions compose the array package's reductions, so they work with
// any backend. Shapes follow array conventions: 2-D inputs are treated as
// rows of observations over columns of variables, and malformed inputs
// panic the way array operations do.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := array.FromSlice([]float64{1, 10, 3, 10}, array.Shape{2, 2}, backend)
//
//	z := stats.Standardize(x)       // columns centered and scaled
//	sum := stats.Describe(x)        // min/max/mean/std summary
package stats

import (
	"fmt"
	"math"

	"github.com/nda-dev/nda/array"
)

// Summary holds descriptive statistics of an array.
type Summary struct {
	Count int     // Number of elements
	Min   float64 // Smallest element
	Max   float64 // Largest element
	Mean  float64 // Arithmetic mean
	Std   float64 // Population standard deviation
}

// EuclideanDistance returns the Euclidean distance between two arrays:
// the square root of the summed squared differences. The shapes must be
// compatible for broadcasting.
func EuclideanDistance[B array.Backend](a, b *array.Array[float64, B]) float64 {
	d := a.Sub(b)
	return math.Sqrt(d.Mul(d).Sum())
}

// Standardize centers and scales each column of a 2-D array: every column
// of the result has mean 0, and columns with nonzero spread have standard
// deviation 1. Columns with zero spread are only centered, so the result
// stays finite.
func Standardize[B array.Backend](x *array.Array[float64, B]) *array.Array[float64, B] {
	if x.NumDims() != 2 {
		panic(fmt.Sprintf("stats: Standardize: expected 2-D array, got %d dims", x.NumDims()))
	}
	if x.Shape()[0] <= 1 {
		// With at most one row every column has zero spread, and each
		// value is its own column mean.
		return array.Zeros[float64, B](x.Shape().Clone(), x.Backend())
	}

	mean := x.MeanAxis(0, true)
	std := x.StdAxis(0, true)
	std.MaskedFill(std.EqualScalar(0), 1)

	return x.Sub(mean).Div(std)
}

// ColumnArgMin returns, for each column of a 2-D array, the row index of
// its minimum value. Ties resolve to the smallest row index.
func ColumnArgMin[B array.Backend](x *array.Array[float64, B]) *array.Array[int64, B] {
	if x.NumDims() != 2 {
		panic(fmt.Sprintf("stats: ColumnArgMin: expected 2-D array, got %d dims", x.NumDims()))
	}
	return x.ArgMinAxis(0, false)
}

// Describe computes a min/max/mean/std summary over all elements. For an
// empty array every statistic is NaN and Count is 0.
func Describe[B array.Backend](x *array.Array[float64, B]) Summary {
	n := x.NumElements()
	if n == 0 {
		nan := math.NaN()
		return Summary{Count: 0, Min: nan, Max: nan, Mean: nan, Std: nan}
	}

	return Summary{
		Count: n,
		Min:   x.Min(),
		Max:   x.Max(),
		Mean:  x.Mean(),
		Std:   x.Std(),
	}
}

// String renders the summary on one line, NumPy style.
func (s Summary) String() string {
	return fmt.Sprintf("count=%d min=%g max=%g mean=%g std=%g",
		s.Count, s.Min, s.Max, s.Mean, s.Std)
}
