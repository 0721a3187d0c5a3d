// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides GPU acceleration for float32 array math via WebGPU.
//
// # Overview
//
// The WebGPU backend runs element-wise float32 operations (Add, Sub, Mul,
// Div, MulScalar, DivScalar) on the GPU through WGSL compute shaders, with
// zero CGO. It is a narrow accelerator, not a full array.Backend: inputs
// must share a shape and be float32, and everything else (broadcasting,
// other dtypes, reductions) belongs to the CPU backend.
//
// The native wgpu runtime currently ships for Windows only. On other
// platforms the package compiles to a stub whose New returns an error and
// whose IsAvailable returns false, so callers can probe at runtime:
//
//	if webgpu.IsAvailable() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    sum, err := gpu.Add(a.Raw(), b.Raw())
//	    ...
//	}
//
// # Resource Management
//
// A Backend owns GPU resources (device, queue, cached pipelines). Call
// Release when done. Compiled shaders are cached per backend, so repeated
// operations reuse their pipelines.
package webgpu

import (
	internalwebgpu "github.com/nda-dev/nda/internal/backend/webgpu"
)

// Backend executes float32 element-wise operations on the GPU.
//
// Operands are RawArrays on any device; results are newly allocated
// RawArrays on the WebGPU device. All operations return an error instead
// of panicking, so callers can fall back to the CPU backend.
type Backend = internalwebgpu.Backend

// New creates a WebGPU backend, requesting a high-performance adapter.
// It returns an error when no adapter is present or the native wgpu
// library cannot be loaded.
func New() (*Backend, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU adapter can be acquired on this
// machine. It never panics, so it is safe to call unconditionally.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
