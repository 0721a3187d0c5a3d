package cpu

import (
	"fmt"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// And computes element-wise logical AND with broadcasting. Both
// operands must be bool arrays.
func (cpu *CPUBackend) And(a, b *array.RawArray) *array.RawArray {
	return cpu.boolBinary("and", a, b, func(x, y bool) bool { return x && y })
}

// Or computes element-wise logical OR with broadcasting.
func (cpu *CPUBackend) Or(a, b *array.RawArray) *array.RawArray {
	return cpu.boolBinary("or", a, b, func(x, y bool) bool { return x || y })
}

// Xor computes element-wise logical XOR with broadcasting.
func (cpu *CPUBackend) Xor(a, b *array.RawArray) *array.RawArray {
	return cpu.boolBinary("xor", a, b, func(x, y bool) bool { return x != y })
}

// Not computes element-wise logical negation of a bool array.
func (cpu *CPUBackend) Not(x *array.RawArray) *array.RawArray {
	if x.DType() != array.Bool {
		panic(fmt.Sprintf("not: unsupported dtype %v (bool only)", x.DType()))
	}

	result := cpu.alloc("not", x.Shape(), array.Bool)
	xd, rd := x.AsBool(), result.AsBool()

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			rd[i] = !xd[i]
		}
	}, cpu.par)

	return result
}

func (cpu *CPUBackend) boolBinary(name string, a, b *array.RawArray, f func(bool, bool) bool) *array.RawArray {
	if a.DType() != array.Bool || b.DType() != array.Bool {
		panic(fmt.Sprintf("%s: unsupported dtypes %v and %v (bool only)", name, a.DType(), b.DType()))
	}

	outShape, err := array.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result := cpu.alloc(name, outShape, array.Bool)
	rd := result.AsBool()
	ad, bd := a.AsBool(), b.AsBool()

	if a.Shape().Equal(b.Shape()) {
		parallel.ForRange(len(rd), func(start, end int) {
			for i := start; i < end; i++ {
				rd[i] = f(ad[i], bd[i])
			}
		}, cpu.par)
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			rd[i] = f(ad[flatIndex(i, outStrides, aStrides)], bd[flatIndex(i, outStrides, bStrides)])
		}
	}, cpu.par)

	return result
}
