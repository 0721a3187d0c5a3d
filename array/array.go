// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides the public API for n-dimensional array operations in nda.
//
// The package defines core interfaces and types for type-safe array operations:
//   - Array[T, B]: High-level generic array with type safety
//   - RawArray: Low-level array representation for advanced use cases
//   - Backend: Interface for device-specific compute implementations
//   - Shape, DataType, Device: Core type definitions
//
// Example:
//
//	backend := cpu.New()
//	x := array.Zeros[float32](array.Shape{2, 3}, backend)
//	y := array.Ones[float32](array.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
package array

import (
	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/rng"
)

// Type aliases for public API

// DType is a constraint for array data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = array.DType

// DataType represents the underlying data type of an array.
type DataType = array.DataType

// Data type constants.
const (
	Float32 DataType = array.Float32
	Float64 DataType = array.Float64
	Int32   DataType = array.Int32
	Int64   DataType = array.Int64
	Uint8   DataType = array.Uint8
	Bool    DataType = array.Bool
)

// Device represents the device where array data resides.
type Device = array.Device

// Device constants.
const (
	CPU    Device = array.CPU
	WebGPU Device = array.WebGPU
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = array.Shape

// IncompatibleShapesError reports two shapes that cannot broadcast together.
// Axis is the first offending position, counted in the aligned result shape;
// DimA and DimB are the extents that clashed there.
type IncompatibleShapesError = array.IncompatibleShapesError

// Backend is defined in backend.go as a proper interface.

// Array is a generic type-safe n-dimensional array.
//
// T is the data type (float32, float64, int32, int64, uint8, bool).
// B is the backend implementation (CPU, WebGPU, etc.).
//
// Array provides a high-level API for array operations with:
//   - Type safety via Go generics
//   - NumPy-style broadcasting on binary operations
//   - Multiple backend support (CPU, GPU)
//   - Efficient memory management with reference counting
//
// Example:
//
//	backend := cpu.New()
//	x := array.Zeros[float32](array.Shape{2, 3}, backend)
//	y := array.Ones[float32](array.Shape{2, 3}, backend)
//	z := x.Add(y)  // Element-wise addition
type Array[T DType, B Backend] = array.Array[T, B]

// View is a mutable window into an Array that shares its buffer.
// Writes through a view are visible in the parent array. Views are
// produced by Slice, Index, and Row.
type View[T DType, B Backend] = array.View[T, B]

// Creation functions

// Zeros creates an array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Zeros[float32](array.Shape{2, 3}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Zeros[T, B](shape, b)
}

// Ones creates an array filled with ones.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Ones[float32](array.Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return array.Ones[T, B](shape, b)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Full[float32](array.Shape{2, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Array[T, B] {
	return array.Full[T, B](shape, value, b)
}

// Scalar creates a 0-dimensional array holding a single value.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Scalar[float64](2.5, backend)
//	v := x.Item()  // 2.5
func Scalar[T DType, B Backend](value T, b B) *Array[T, B] {
	return array.Scalar[T, B](value, b)
}

// Arange creates a 1D array with values from start to end (exclusive),
// stepping by one.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Arange[float32](0, 10, backend)  // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Array[T, B] {
	return array.Arange[T, B](start, end, b)
}

// ArangeStep creates a 1D array with values from start to end (exclusive),
// stepping by step. A negative step counts down.
//
// Example:
//
//	backend := cpu.New()
//	x := array.ArangeStep[float64](0, 1, 0.25, backend)  // [0, 0.25, 0.5, 0.75]
func ArangeStep[T DType, B Backend](start, end, step T, b B) *Array[T, B] {
	return array.ArangeStep[T, B](start, end, step, b)
}

// Linspace creates a 1D array of num evenly spaced values from start to
// stop, inclusive on both ends.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Linspace[float64](0, 1, 5, backend)  // [0, 0.25, 0.5, 0.75, 1]
func Linspace[T DType, B Backend](start, stop T, num int, b B) *Array[T, B] {
	return array.Linspace[T, B](start, stop, num, b)
}

// Logspace creates a 1D array of num values spaced evenly on a log scale,
// from base**start to base**stop inclusive.
//
// Example:
//
//	backend := cpu.New()
//	x := array.Logspace[float64](0, 3, 4, 10, backend)  // [1, 10, 100, 1000]
func Logspace[T DType, B Backend](start, stop T, num int, base float64, b B) *Array[T, B] {
	return array.Logspace[T, B](start, stop, num, base, b)
}

// Eye creates a 2D identity matrix.
//
// Example:
//
//	backend := cpu.New()
//	identity := array.Eye[float32](3, backend)  // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Array[T, B] {
	return array.Eye[T, B](n, b)
}

// FromSlice creates an array from a Go slice.
//
// Example:
//
//	backend := cpu.New()
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := array.FromSlice(data, array.Shape{2, 3}, backend)
func FromSlice[T DType, B Backend](data []T, shape Shape, b B) (*Array[T, B], error) {
	return array.FromSlice[T, B](data, shape, b)
}

// New creates an array from a raw array.
//
// This is a low-level function. Most users should use creation functions like
// Zeros, Ones, or FromSlice instead.
func New[T DType, B Backend](raw *RawArray, b B) *Array[T, B] {
	return array.New[T, B](raw, b)
}

// NewRaw creates a new raw array with the given shape, dtype, and device.
//
// This is a low-level function. Most users should use high-level creation functions instead.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawArray, error) {
	return array.NewRaw(shape, dtype, device)
}

// Random creation functions

// Rand creates an array filled with random values drawn uniformly from [0, 1).
//
// The generator is explicit, so runs are reproducible by seeding:
//
//	g := rng.New(42)
//	x := array.Rand[float64](g, array.Shape{2, 3}, backend)
func Rand[T DType, B Backend](g *rng.Generator, shape Shape, b B) *Array[T, B] {
	return array.Rand[T, B](g, shape, b)
}

// Randn creates an array filled with random values from the standard normal
// distribution N(0, 1).
//
// Example:
//
//	g := rng.New(42)
//	x := array.Randn[float64](g, array.Shape{2, 3}, backend)
func Randn[T DType, B Backend](g *rng.Generator, shape Shape, b B) *Array[T, B] {
	return array.Randn[T, B](g, shape, b)
}

// RandInt creates an array filled with random integers from the half-open
// range [low, high).
//
// Example:
//
//	g := rng.New(42)
//	x := array.RandInt[int64](g, 0, 10, array.Shape{2, 3}, backend)
func RandInt[T DType, B Backend](g *rng.Generator, low, high int64, shape Shape, b B) *Array[T, B] {
	return array.RandInt[T, B](g, low, high, shape, b)
}

// Manipulation functions

// Concat concatenates arrays along an existing axis. All inputs must share
// dtype and every extent except the one being joined.
//
// Example:
//
//	backend := cpu.New()
//	a := array.Ones[float32](array.Shape{2, 3}, backend)
//	b := array.Zeros[float32](array.Shape{2, 3}, backend)
//	c := array.Concat([]*array.Array[float32, B]{a, b}, 0)  // Shape: [4, 3]
func Concat[T DType, B Backend](arrays []*Array[T, B], axis int) *Array[T, B] {
	return array.Concat(arrays, axis)
}

// Stack joins arrays of identical shape along a new axis.
//
// Example:
//
//	a := array.Ones[float32](array.Shape{2, 3}, backend)
//	b := array.Zeros[float32](array.Shape{2, 3}, backend)
//	c := array.Stack([]*array.Array[float32, B]{a, b}, 0)  // Shape: [2, 2, 3]
func Stack[T DType, B Backend](arrays []*Array[T, B], axis int) *Array[T, B] {
	return array.Stack(arrays, axis)
}

// VStack stacks arrays vertically (along axis 0). 1-D inputs are treated
// as rows.
func VStack[T DType, B Backend](arrays []*Array[T, B]) *Array[T, B] {
	return array.VStack(arrays)
}

// HStack stacks arrays horizontally. 1-D inputs are joined end to end,
// higher-rank inputs along axis 1.
func HStack[T DType, B Backend](arrays []*Array[T, B]) *Array[T, B] {
	return array.HStack(arrays)
}

// Selection functions

// Where selects elements from x or y based on condition. All three inputs
// broadcast together.
//
// Example:
//
//	backend := cpu.New()
//	cond := array.Full[bool](array.Shape{3}, true, backend)
//	x := array.Full[float32](array.Shape{3}, 1.0, backend)
//	y := array.Full[float32](array.Shape{3}, 0.0, backend)
//	result := array.Where(cond, x, y)  // [1.0, 1.0, 1.0]
func Where[T DType, B Backend](cond *Array[bool, B], x, y *Array[T, B]) *Array[T, B] {
	return array.Where(cond, x, y)
}

// CountTrue returns the number of true elements in a boolean mask.
func CountTrue[B Backend](mask *Array[bool, B]) int {
	return array.CountTrue(mask)
}

// Utility functions

// AsType converts an array to a different element type. Conversions to bool
// map nonzero to true; conversions from bool map true to one.
//
// Example:
//
//	i := array.AsType[int32](x)  // float32 -> int32, truncating
func AsType[U DType, T DType, B Backend](a *Array[T, B]) *Array[U, B] {
	return array.AsType[U](a)
}

// Broadcast computes the result shape of broadcasting two shapes together
// following NumPy rules. Shapes are aligned at their trailing axes, missing
// leading axes count as size 1, and two extents are compatible when they
// are equal or one of them is 1.
//
// On failure the returned error is an *IncompatibleShapesError naming both
// input shapes and the first offending axis in result coordinates.
//
// Example:
//
//	shape, err := array.Broadcast(array.Shape{3, 1}, array.Shape{3, 4})
//	// shape = [3 4]
func Broadcast(a, b Shape) (Shape, error) {
	return array.Broadcast(a, b)
}
