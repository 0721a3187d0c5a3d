package cpu

import (
	"github.com/nda-dev/nda/internal/array"
)

// Greater compares element-wise a > b with broadcasting, producing a
// bool array.
func (cpu *CPUBackend) Greater(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("greater", opGreater, a, b)
}

// GreaterEqual compares element-wise a >= b with broadcasting.
func (cpu *CPUBackend) GreaterEqual(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("greaterequal", opGreaterEqual, a, b)
}

// Less compares element-wise a < b with broadcasting.
func (cpu *CPUBackend) Less(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("less", opLess, a, b)
}

// LessEqual compares element-wise a <= b with broadcasting.
func (cpu *CPUBackend) LessEqual(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("lessequal", opLessEqual, a, b)
}

// Equal compares element-wise a == b with broadcasting.
func (cpu *CPUBackend) Equal(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("equal", opEqual, a, b)
}

// NotEqual compares element-wise a != b with broadcasting.
func (cpu *CPUBackend) NotEqual(a, b *array.RawArray) *array.RawArray {
	return cpu.compare("notequal", opNotEqual, a, b)
}
