package cpu

import (
	"fmt"
	"math"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// unOp identifies a unary operation defined for every numeric dtype.
type unOp int

const (
	opNeg unOp = iota
	opAbs
	opSquare
)

func unFn[T numeric](op unOp) func(T) T {
	switch op {
	case opNeg:
		return func(v T) T { return -v }
	case opAbs:
		return func(v T) T {
			if v < 0 {
				return -v
			}
			return v
		}
	case opSquare:
		return func(v T) T { return v * v }
	default:
		panic(fmt.Sprintf("unknown unary op %d", op))
	}
}

// Neg negates every element. Unsigned values wrap.
func (cpu *CPUBackend) Neg(x *array.RawArray) *array.RawArray {
	return cpu.numericUnary("neg", opNeg, x)
}

// Abs computes the element-wise absolute value.
func (cpu *CPUBackend) Abs(x *array.RawArray) *array.RawArray {
	return cpu.numericUnary("abs", opAbs, x)
}

// Square computes the element-wise square.
func (cpu *CPUBackend) Square(x *array.RawArray) *array.RawArray {
	return cpu.numericUnary("square", opSquare, x)
}

func (cpu *CPUBackend) numericUnary(name string, op unOp, x *array.RawArray) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runUnary(cpu, name, x, (*array.RawArray).AsFloat32, unFn[float32](op))
	case array.Float64:
		return runUnary(cpu, name, x, (*array.RawArray).AsFloat64, unFn[float64](op))
	case array.Int32:
		return runUnary(cpu, name, x, (*array.RawArray).AsInt32, unFn[int32](op))
	case array.Int64:
		return runUnary(cpu, name, x, (*array.RawArray).AsInt64, unFn[int64](op))
	case array.Uint8:
		return runUnary(cpu, name, x, (*array.RawArray).AsUint8, unFn[uint8](op))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
}

// Sqrt computes the element-wise square root. Negative inputs produce
// NaN.
func (cpu *CPUBackend) Sqrt(x *array.RawArray) *array.RawArray {
	return cpu.floatUnary("sqrt", x, math.Sqrt)
}

// Exp computes the element-wise natural exponential.
func (cpu *CPUBackend) Exp(x *array.RawArray) *array.RawArray {
	return cpu.floatUnary("exp", x, math.Exp)
}

// Log computes the element-wise natural logarithm. Log(0) is -Inf and
// negative inputs produce NaN.
func (cpu *CPUBackend) Log(x *array.RawArray) *array.RawArray {
	return cpu.floatUnary("log", x, math.Log)
}

// Ceil rounds every element up to the nearest integer.
func (cpu *CPUBackend) Ceil(x *array.RawArray) *array.RawArray {
	return cpu.floatUnary("ceil", x, math.Ceil)
}

// Floor rounds every element down to the nearest integer.
func (cpu *CPUBackend) Floor(x *array.RawArray) *array.RawArray {
	return cpu.floatUnary("floor", x, math.Floor)
}

// Rint rounds every element to the nearest integer, with ties going
// to the nearest even value.
func (cpu *CPUBackend) Rint(x *array.RawArray) *array.RawArray {
	return cpu.floatUnary("rint", x, math.RoundToEven)
}

// floatUnary dispatches a unary kernel defined only for float dtypes.
func (cpu *CPUBackend) floatUnary(name string, x *array.RawArray, f func(float64) float64) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runUnary(cpu, name, x, (*array.RawArray).AsFloat32, func(v float32) float32 {
			return float32(f(float64(v)))
		})
	case array.Float64:
		return runUnary(cpu, name, x, (*array.RawArray).AsFloat64, f)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v (only float32/float64 supported)", name, x.DType()))
	}
}

// IsNaN reports element-wise whether values are NaN. Non-float arrays
// yield all false.
func (cpu *CPUBackend) IsNaN(x *array.RawArray) *array.RawArray {
	result := cpu.alloc("isnan", x.Shape(), array.Bool)
	rd := result.AsBool()

	switch x.DType() {
	case array.Float32:
		xd := x.AsFloat32()
		parallel.ForRange(len(rd), func(start, end int) {
			for i := start; i < end; i++ {
				rd[i] = math.IsNaN(float64(xd[i]))
			}
		}, cpu.par)
	case array.Float64:
		xd := x.AsFloat64()
		parallel.ForRange(len(rd), func(start, end int) {
			for i := start; i < end; i++ {
				rd[i] = math.IsNaN(xd[i])
			}
		}, cpu.par)
	default:
		// Integer and bool values are never NaN; the fresh buffer is
		// already all false.
	}

	return result
}
