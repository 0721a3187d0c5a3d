package cpu

import (
	"github.com/nda-dev/nda/internal/array"
)

// Add performs element-wise addition with broadcasting.
//
// When a uniquely owns its buffer and no broadcasting is needed, the
// kernel writes into a's buffer and the returned array shares it.
func (cpu *CPUBackend) Add(a, b *array.RawArray) *array.RawArray {
	return cpu.binary("add", opAdd, a, b)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *array.RawArray) *array.RawArray {
	return cpu.binary("sub", opSub, a, b)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *array.RawArray) *array.RawArray {
	return cpu.binary("mul", opMul, a, b)
}

// Div performs element-wise division with broadcasting. Integer
// division truncates toward zero.
func (cpu *CPUBackend) Div(a, b *array.RawArray) *array.RawArray {
	return cpu.binary("div", opDiv, a, b)
}

// Maximum returns the element-wise maximum of a and b with
// broadcasting.
func (cpu *CPUBackend) Maximum(a, b *array.RawArray) *array.RawArray {
	return cpu.binary("maximum", opMaximum, a, b)
}

// Minimum returns the element-wise minimum of a and b with
// broadcasting.
func (cpu *CPUBackend) Minimum(a, b *array.RawArray) *array.RawArray {
	return cpu.binary("minimum", opMinimum, a, b)
}
