// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "github.com/nda-dev/nda/internal/array"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for array operations.
//
// Implementations:
//   - backend/cpu: Pure Go kernels with a parallel worker pool
//   - backend/webgpu: float32 element-wise ops on the GPU (Windows)
//
// Example:
//
//	import (
//	    "github.com/nda-dev/nda/array"
//	    "github.com/nda-dev/nda/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := array.Zeros[float32](array.Shape{2, 3}, backend)
//	y := array.Ones[float32](array.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations (with broadcasting).
	Add(a, b *RawArray) *RawArray     // Element-wise addition.
	Sub(a, b *RawArray) *RawArray     // Element-wise subtraction.
	Mul(a, b *RawArray) *RawArray     // Element-wise multiplication.
	Div(a, b *RawArray) *RawArray     // Element-wise division.
	Maximum(a, b *RawArray) *RawArray // Element-wise maximum.
	Minimum(a, b *RawArray) *RawArray // Element-wise minimum.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawArray, scalar any) *RawArray // Add scalar.
	SubScalar(x *RawArray, scalar any) *RawArray // Subtract scalar.
	MulScalar(x *RawArray, scalar any) *RawArray // Multiply by scalar.
	DivScalar(x *RawArray, scalar any) *RawArray // Divide by scalar.
	Pow(x *RawArray, exponent float64) *RawArray // Raise to a power.

	// Math operations (element-wise).
	Neg(x *RawArray) *RawArray    // Negation.
	Abs(x *RawArray) *RawArray    // Absolute value.
	Sqrt(x *RawArray) *RawArray   // Square root.
	Square(x *RawArray) *RawArray // x * x.
	Exp(x *RawArray) *RawArray    // Exponential.
	Log(x *RawArray) *RawArray    // Natural logarithm.
	Ceil(x *RawArray) *RawArray   // Round up.
	Floor(x *RawArray) *RawArray  // Round down.
	Rint(x *RawArray) *RawArray   // Round half to even.
	IsNaN(x *RawArray) *RawArray  // NaN test, returns bool array.

	// Comparison operations (element-wise with broadcasting, return bool arrays).
	Greater(a, b *RawArray) *RawArray      // a > b.
	GreaterEqual(a, b *RawArray) *RawArray // a >= b.
	Less(a, b *RawArray) *RawArray         // a < b.
	LessEqual(a, b *RawArray) *RawArray    // a <= b.
	Equal(a, b *RawArray) *RawArray        // a == b.
	NotEqual(a, b *RawArray) *RawArray     // a != b.

	// Boolean operations (element-wise on bool arrays).
	And(a, b *RawArray) *RawArray // Logical AND.
	Or(a, b *RawArray) *RawArray  // Logical OR.
	Xor(a, b *RawArray) *RawArray // Logical XOR.
	Not(x *RawArray) *RawArray    // Logical NOT.

	// Full reductions (scalar results).
	Sum(x *RawArray) *RawArray          // Total sum.
	Min(x *RawArray) *RawArray          // Smallest element.
	Max(x *RawArray) *RawArray          // Largest element.
	ArgMin(x *RawArray) *RawArray       // Flat index of the minimum (int64).
	ArgMax(x *RawArray) *RawArray       // Flat index of the maximum (int64).
	CountNonzero(x *RawArray) *RawArray // Number of nonzero elements (int64).

	// Axis reductions (negative axes allowed).
	SumAxis(x *RawArray, axis int, keepDims bool) *RawArray    // Sum along axis.
	MinAxis(x *RawArray, axis int, keepDims bool) *RawArray    // Minimum along axis.
	MaxAxis(x *RawArray, axis int, keepDims bool) *RawArray    // Maximum along axis.
	ArgMinAxis(x *RawArray, axis int, keepDims bool) *RawArray // Indices of minima (int64).
	ArgMaxAxis(x *RawArray, axis int, keepDims bool) *RawArray // Indices of maxima (int64).

	// Shape operations.
	Reshape(x *RawArray, newShape Shape) *RawArray         // Reshape array.
	Transpose(x *RawArray, axes ...int) *RawArray          // Permute dimensions.
	Concat(xs []*RawArray, axis int) *RawArray             // Concatenate along axis.
	Narrow(x *RawArray, axis, start, length int) *RawArray // Copy of a sub-range along axis.
	Expand(x *RawArray, shape Shape) *RawArray             // Materialized broadcast to shape.

	// Selection operations.
	Where(cond, x, y *RawArray) *RawArray     // Conditional element selection.
	MaskedSelect(x, mask *RawArray) *RawArray // 1-D copy of elements where mask is true.
	MaskedFill(x, mask *RawArray, value any)  // In-place assignment where mask is true.
	Unique(x *RawArray) *RawArray             // Sorted distinct values, 1-D.

	// Type conversion.
	Cast(x *RawArray, dtype DataType) *RawArray // Cast to different data type.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU", "WebGPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = array.Backend(nil)
