// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	"github.com/nda-dev/nda/array"
	internalcpu "github.com/nda-dev/nda/internal/backend/cpu"
	"github.com/nda-dev/nda/internal/parallel"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides pure Go implementations of all array operations,
// splitting large kernels across a worker pool.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements array.Backend.
var _ array.Backend = (*Backend)(nil)

// New creates a CPU backend with default parallelism: one worker per
// logical CPU, falling back to sequential execution for small kernels.
//
// Example:
//
//	import (
//	    "github.com/nda-dev/nda/array"
//	    "github.com/nda-dev/nda/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := array.Zeros[float32](array.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewSequential creates a CPU backend that runs every kernel on the
// calling goroutine. Useful for deterministic profiling and debugging.
func NewSequential() *Backend {
	return internalcpu.NewWithParallelism(parallel.Sequential())
}

// NewWithWorkers creates a CPU backend that splits large kernels across
// n worker goroutines. n <= 1 behaves like NewSequential.
func NewWithWorkers(n int) *Backend {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = n > 1
	cfg.NumWorkers = n
	return internalcpu.NewWithParallelism(cfg)
}
