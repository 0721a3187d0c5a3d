package cpu

import (
	"fmt"
	"math"

	"github.com/nda-dev/nda/internal/array"
)

// AddScalar adds a scalar to every element. The scalar's Go type must
// match the array's dtype.
func (cpu *CPUBackend) AddScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("addscalar", opAdd, x, scalar)
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("subscalar", opSub, x, scalar)
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("mulscalar", opMul, x, scalar)
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *array.RawArray, scalar any) *array.RawArray {
	return cpu.scalarArith("divscalar", opDiv, x, scalar)
}

func (cpu *CPUBackend) scalarArith(name string, op binOp, x *array.RawArray, scalar any) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runScalar(cpu, name, x, scalar.(float32), (*array.RawArray).AsFloat32, binFn[float32](op))
	case array.Float64:
		return runScalar(cpu, name, x, scalar.(float64), (*array.RawArray).AsFloat64, binFn[float64](op))
	case array.Int32:
		return runScalar(cpu, name, x, scalar.(int32), (*array.RawArray).AsInt32, binFn[int32](op))
	case array.Int64:
		return runScalar(cpu, name, x, scalar.(int64), (*array.RawArray).AsInt64, binFn[int64](op))
	case array.Uint8:
		return runScalar(cpu, name, x, scalar.(uint8), (*array.RawArray).AsUint8, binFn[uint8](op))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
}

// Pow raises every element to the given power.
func (cpu *CPUBackend) Pow(x *array.RawArray, exponent float64) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runUnary(cpu, "pow", x, (*array.RawArray).AsFloat32, func(v float32) float32 {
			return float32(math.Pow(float64(v), exponent))
		})
	case array.Float64:
		return runUnary(cpu, "pow", x, (*array.RawArray).AsFloat64, func(v float64) float64 {
			return math.Pow(v, exponent)
		})
	default:
		panic(fmt.Sprintf("pow: unsupported dtype %v (only float32/float64 supported)", x.DType()))
	}
}
