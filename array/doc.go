// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array provides type-safe n-dimensional arrays for the nda library.
//
// # Overview
//
// Arrays are the fundamental data structure in nda. This package provides:
//   - Generic type-safe arrays (Array[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy views and slicing
//   - Device abstraction (CPU, WebGPU)
//
// # Basic Usage
//
//	import (
//	    "github.com/nda-dev/nda/array"
//	    "github.com/nda-dev/nda/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create arrays
//	    x := array.Zeros[float32](array.Shape{2, 3}, backend)
//	    y := array.Ones[float32](array.Shape{2, 3}, backend)
//
//	    // Array operations
//	    z := x.Add(y)
//	    total := z.Sum()
//	}
//
// # Supported Data Types
//
// The array package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, useful for images)
//   - bool (boolean masks)
//
// # Device Support
//
// Arrays can reside on different devices:
//   - CPU: Pure Go implementation with a parallel worker pool
//   - WebGPU: Zero-CGO GPU acceleration for float32 element-wise ops (Windows)
//
// # Broadcasting
//
// Binary operations follow NumPy broadcasting rules. Shapes are aligned at
// their trailing axes and missing leading axes count as size 1. Two axes are
// compatible when their extents are equal or one of them is 1:
//
//	a := array.Zeros[float32](array.Shape{3, 1}, backend)   // (3, 1)
//	b := array.Ones[float32](array.Shape{3, 4}, backend)    // (3, 4)
//	c := a.Add(b)                                           // (3, 4)
//
// Incompatible shapes panic with an *IncompatibleShapesError naming both
// shapes and the offending axis. Use Broadcast to check compatibility
// without allocating a result.
//
// # Random Numbers
//
// Random creation functions take an explicit generator, so runs are
// reproducible and concurrent generators never share state:
//
//	g := rng.New(42)
//	x := array.Rand[float64](g, array.Shape{2, 3}, backend)
//	n := array.Randn[float64](g, array.Shape{2, 3}, backend)
//
// # Views
//
// Slice, Index, and Row return views that share the underlying buffer.
// Writing through a view mutates the parent array:
//
//	row := x.Row(0)    // view of the first row
//	row.Fill(0)        // zeroes the first row of x
//	c := row.Copy()    // detached copy, safe to mutate
//
// # Memory Management
//
// Arrays use zero-copy operations where possible. The underlying data is
// reference-counted: Clone shares storage, Copy detaches it, and operations
// may write into a uniquely held input buffer instead of allocating a result.
//
// # Available Operations
//
// Array[T, B] provides more than 70 type-safe operations.
//
// Scalar operations:
//
//	y := x.MulScalar(2.0)    // Multiply by scalar
//	y := x.AddScalar(1.0)    // Add scalar
//	y := x.SubScalar(0.5)    // Subtract scalar
//	y := x.DivScalar(2.0)    // Divide by scalar
//
// Math operations:
//
//	y := x.Exp()             // Exponential
//	y := x.Log()             // Natural logarithm
//	y := x.Sqrt()            // Square root
//	y := x.Abs()             // Absolute value
//
// Comparison operations (return Array[bool, B]):
//
//	mask := x.Greater(y)     // or x.Gt(y)
//	mask := x.Less(y)        // or x.Lt(y)
//	mask := x.Equal(y)       // or x.Eq(y)
//
// Reductions:
//
//	s := x.Sum()                  // Total sum
//	m := x.Mean()                 // Arithmetic mean (float64)
//	c := x.SumAxis(0, false)      // Sum along axis 0
//
// Masking:
//
//	sel := x.MaskedSelect(mask)   // 1-D copy of selected elements
//	x.MaskedFill(mask, 0)         // In-place fill where mask is true
//
// Type conversion:
//
//	i := array.AsType[int32](x)   // Convert to int32
//
// See method documentation for the full list of operations.
package array
