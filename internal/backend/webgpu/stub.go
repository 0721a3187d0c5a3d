//go:build !windows

// Package webgpu implements a GPU accelerator for float32 array math
// using WebGPU compute shaders.
//
// This build lacks the wgpu_native runtime, so the package compiles to
// a stub: IsAvailable reports false and New returns an error. Callers
// that gate on IsAvailable fall back to the CPU backend without any
// platform checks of their own.
package webgpu

import (
	"errors"
	"runtime"

	"github.com/nda-dev/nda/internal/array"
)

// errUnsupported is returned by every operation on platforms without
// WebGPU support.
var errUnsupported = errors.New("webgpu: not supported on " + runtime.GOOS)

// Backend is a placeholder for the GPU backend on platforms without
// WebGPU support. It cannot be constructed; New always fails.
type Backend struct{}

// New always returns an error on this platform.
func New() (*Backend, error) {
	return nil, errUnsupported
}

// IsAvailable reports whether a WebGPU adapter can be acquired on this
// system. Always false on this platform.
func IsAvailable() bool {
	return false
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Device returns the compute device.
func (b *Backend) Device() array.Device {
	return array.WebGPU
}

// Release is a no-op on this platform.
func (b *Backend) Release() {}

// Add performs element-wise addition on GPU.
func (b *Backend) Add(_, _ *array.RawArray) (*array.RawArray, error) {
	return nil, errUnsupported
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(_, _ *array.RawArray) (*array.RawArray, error) {
	return nil, errUnsupported
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(_, _ *array.RawArray) (*array.RawArray, error) {
	return nil, errUnsupported
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(_, _ *array.RawArray) (*array.RawArray, error) {
	return nil, errUnsupported
}

// MulScalar multiplies array elements by a scalar on GPU.
func (b *Backend) MulScalar(_ *array.RawArray, _ float32) (*array.RawArray, error) {
	return nil, errUnsupported
}

// DivScalar divides array elements by a scalar on GPU.
func (b *Backend) DivScalar(_ *array.RawArray, _ float32) (*array.RawArray, error) {
	return nil, errUnsupported
}
