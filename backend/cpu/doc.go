// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for array operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - All six element types (float32, float64, int32, int64, uint8, bool)
//   - NumPy-compatible broadcasting
//   - Worker-pool parallelism for large kernels
//
// # Basic Usage
//
//	import (
//	    "github.com/nda-dev/nda/array"
//	    "github.com/nda-dev/nda/backend/cpu"
//	)
//
//	func main() {
//	    // Create CPU backend
//	    backend := cpu.New()
//
//	    // Use with arrays
//	    x := array.Zeros[float32](array.Shape{2, 3}, backend)
//	    y := array.Ones[float32](array.Shape{2, 3}, backend)
//	    z := x.Add(y)
//	}
//
// # Performance
//
// Element-wise kernels pick one of three paths: an in-place path when the
// left operand uniquely owns its buffer, a vectorized path when shapes
// match exactly, and a broadcast path that walks the output through
// precomputed strides. Kernels above a size threshold split their index
// range across the worker pool; NewSequential and NewWithWorkers control
// this behavior.
//
// For GPU acceleration of float32 element-wise ops, see the webgpu package.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each array operation is
// isolated and does not share mutable state.
package cpu
