// Package cpu implements the CPU backend for array operations.
//
// The backend executes kernels directly on Go slices. Element-wise
// operations pick one of three paths: an in-place path when the left
// operand uniquely owns its buffer, a vectorized path when shapes
// match exactly, and a broadcast path that walks the output through
// precomputed strides. Large kernels split their flat index range
// across a worker pool.
package cpu

import (
	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// Compile-time check that CPUBackend implements the Backend interface.
var _ array.Backend = (*CPUBackend)(nil)

// CPUBackend executes array operations on the host CPU.
type CPUBackend struct {
	device array.Device
	par    parallel.Config
}

// New creates a CPU backend with default parallelism (one worker per
// logical CPU, sequential below the chunk threshold).
func New() *CPUBackend {
	return NewWithParallelism(parallel.DefaultConfig())
}

// NewWithParallelism creates a CPU backend with an explicit worker
// configuration. Use parallel.Sequential() for deterministic
// single-goroutine execution.
func NewWithParallelism(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device: array.CPU,
		par:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the device this backend operates on.
func (cpu *CPUBackend) Device() array.Device {
	return cpu.device
}
