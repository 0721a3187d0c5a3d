package array

import (
	"fmt"
	"math"
)

// Reductions collapse an array, either fully to a scalar or along a
// single axis. Axis arguments accept negative values counting from the
// last axis (-1 is the last axis).

// Sum returns the sum of all elements. The sum of an empty array is 0.
// Panics for Bool elements; use CountNonzero to count true values.
func (a *Array[T, B]) Sum() T {
	result := a.backend.Sum(a.raw)
	return New[T, B](result, a.backend).Item()
}

// Min returns the smallest element. Panics if the array is empty.
func (a *Array[T, B]) Min() T {
	result := a.backend.Min(a.raw)
	return New[T, B](result, a.backend).Item()
}

// Max returns the largest element. Panics if the array is empty.
func (a *Array[T, B]) Max() T {
	result := a.backend.Max(a.raw)
	return New[T, B](result, a.backend).Item()
}

// ArgMin returns the flat index of the smallest element, scanning in
// row-major order. Ties resolve to the first occurrence. Panics if the
// array is empty.
func (a *Array[T, B]) ArgMin() int64 {
	result := a.backend.ArgMin(a.raw)
	return New[int64, B](result, a.backend).Item()
}

// ArgMax returns the flat index of the largest element, scanning in
// row-major order. Ties resolve to the first occurrence. Panics if the
// array is empty.
func (a *Array[T, B]) ArgMax() int64 {
	result := a.backend.ArgMax(a.raw)
	return New[int64, B](result, a.backend).Item()
}

// CountNonzero returns the number of elements that are non-zero, or
// true for Bool arrays.
//
// Example:
//
//	mask := a.GreaterScalar(5)
//	n := mask.CountNonzero() // how many elements exceed 5
func (a *Array[T, B]) CountNonzero() int {
	result := a.backend.CountNonzero(a.raw)
	return int(New[int64, B](result, a.backend).Item())
}

// Any reports whether any element is non-zero (true for Bool arrays).
// Returns false for empty arrays.
func (a *Array[T, B]) Any() bool {
	return a.CountNonzero() > 0
}

// All reports whether every element is non-zero (true for Bool arrays).
// Returns true for empty arrays.
func (a *Array[T, B]) All() bool {
	return a.CountNonzero() == a.NumElements()
}

// Mean returns the arithmetic mean of all elements as float64. Integer
// and Bool elements are widened first, so a Bool mean is the fraction
// of true values. Returns NaN for empty arrays.
func (a *Array[T, B]) Mean() float64 {
	f := AsType[float64](a)
	return f.Sum() / float64(a.NumElements())
}

// Var returns the population variance (dividing by N) of all elements
// as float64. Returns NaN for empty arrays.
func (a *Array[T, B]) Var() float64 {
	f := AsType[float64](a)
	mean := f.Sum() / float64(a.NumElements())
	d := f.SubScalar(mean)
	return d.Mul(d).Sum() / float64(a.NumElements())
}

// Std returns the population standard deviation of all elements as
// float64. Returns NaN for empty arrays.
func (a *Array[T, B]) Std() float64 {
	return math.Sqrt(a.Var())
}

// SumAxis sums along the given axis. With keepDims the reduced axis is
// kept with extent 1, which makes the result broadcast against the
// input.
//
// Example:
//
//	x := array.Arange[float32](0, 6, backend).Reshape(2, 3)
//	s := x.SumAxis(0, false) // Shape: [3], column sums
func (a *Array[T, B]) SumAxis(axis int, keepDims bool) *Array[T, B] {
	result := a.backend.SumAxis(a.raw, axis, keepDims)
	return New[T, B](result, a.backend)
}

// MinAxis computes the minimum along the given axis.
func (a *Array[T, B]) MinAxis(axis int, keepDims bool) *Array[T, B] {
	result := a.backend.MinAxis(a.raw, axis, keepDims)
	return New[T, B](result, a.backend)
}

// MaxAxis computes the maximum along the given axis.
func (a *Array[T, B]) MaxAxis(axis int, keepDims bool) *Array[T, B] {
	result := a.backend.MaxAxis(a.raw, axis, keepDims)
	return New[T, B](result, a.backend)
}

// ArgMinAxis returns the indices of the smallest elements along the
// given axis. Ties resolve to the first occurrence.
//
// Example:
//
//	x, _ := array.FromSlice([]float32{3, 1, 2, 0, 5, 4}, Shape{2, 3}, backend)
//	idx := x.ArgMinAxis(1, false) // [1, 0]
func (a *Array[T, B]) ArgMinAxis(axis int, keepDims bool) *Array[int64, B] {
	result := a.backend.ArgMinAxis(a.raw, axis, keepDims)
	return New[int64, B](result, a.backend)
}

// ArgMaxAxis returns the indices of the largest elements along the
// given axis. Ties resolve to the first occurrence.
func (a *Array[T, B]) ArgMaxAxis(axis int, keepDims bool) *Array[int64, B] {
	result := a.backend.ArgMaxAxis(a.raw, axis, keepDims)
	return New[int64, B](result, a.backend)
}

// MeanAxis computes the mean along the given axis as float64.
func (a *Array[T, B]) MeanAxis(axis int, keepDims bool) *Array[float64, B] {
	f := AsType[float64](a)
	count := a.Shape()[normalizeAxis(axis, a.NumDims())]
	return f.SumAxis(axis, keepDims).DivScalar(float64(count))
}

// StdAxis computes the population standard deviation along the given
// axis as float64.
//
// Example:
//
//	x, _ := array.FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}, backend)
//	s := x.StdAxis(0, false) // per-column deviation: [1, 1]
func (a *Array[T, B]) StdAxis(axis int, keepDims bool) *Array[float64, B] {
	f := AsType[float64](a)
	mean := f.MeanAxis(axis, true)
	d := f.Sub(mean)
	count := a.Shape()[normalizeAxis(axis, a.NumDims())]
	variance := d.Mul(d).SumAxis(axis, keepDims).DivScalar(float64(count))
	return variance.Sqrt()
}

// AnyAxis reports, per position of the reduced shape, whether any
// element along the axis is non-zero (true for Bool arrays). An empty
// axis yields false.
func (a *Array[T, B]) AnyAxis(axis int, keepDims bool) *Array[bool, B] {
	return a.nonzeroCountAxis(axis, keepDims).GreaterScalar(0)
}

// AllAxis reports, per position of the reduced shape, whether every
// element along the axis is non-zero (true for Bool arrays). An empty
// axis yields true.
func (a *Array[T, B]) AllAxis(axis int, keepDims bool) *Array[bool, B] {
	extent := a.Shape()[normalizeAxis(axis, a.NumDims())]
	return a.nonzeroCountAxis(axis, keepDims).EqualScalar(int64(extent))
}

// nonzeroCountAxis counts non-zero elements along the axis.
func (a *Array[T, B]) nonzeroCountAxis(axis int, keepDims bool) *Array[int64, B] {
	var zero T
	return AsType[int64](a.NotEqualScalar(zero)).SumAxis(axis, keepDims)
}

// normalizeAxis resolves a possibly negative axis against ndims and
// panics when it is out of range.
func normalizeAxis(axis, ndims int) int {
	resolved := axis
	if resolved < 0 {
		resolved += ndims
	}
	if resolved < 0 || resolved >= ndims {
		panic(fmt.Sprintf("axis %d out of range for %d dimensions", axis, ndims))
	}
	return resolved
}
