package cpu

import (
	"fmt"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// numeric covers the element types the arithmetic kernels operate on.
// Bool arrays go through the boolean kernels instead.
type numeric interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// alloc creates a result buffer, panicking with the op name on failure.
func (cpu *CPUBackend) alloc(name string, shape array.Shape, dtype array.DataType) *array.RawArray {
	result, err := array.NewRaw(shape, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	return result
}

// resolveAxis normalizes a possibly negative axis and validates it.
func resolveAxis(name string, axis, ndim int) int {
	resolved := axis
	if resolved < 0 {
		resolved += ndim
	}
	if resolved < 0 || resolved >= ndim {
		panic(fmt.Sprintf("%s: axis %d out of range for %d dimensions", name, axis, ndim))
	}
	return resolved
}

// binOp identifies an element-wise arithmetic operation.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
	opMaximum
	opMinimum
)

func binFn[T numeric](op binOp) func(T, T) T {
	switch op {
	case opAdd:
		return func(x, y T) T { return x + y }
	case opSub:
		return func(x, y T) T { return x - y }
	case opMul:
		return func(x, y T) T { return x * y }
	case opDiv:
		return func(x, y T) T { return x / y }
	case opMaximum:
		return func(x, y T) T {
			if x > y {
				return x
			}
			return y
		}
	case opMinimum:
		return func(x, y T) T {
			if x < y {
				return x
			}
			return y
		}
	default:
		panic(fmt.Sprintf("unknown binary op %d", op))
	}
}

// binary dispatches an arithmetic kernel on the element type.
func (cpu *CPUBackend) binary(name string, op binOp, a, b *array.RawArray) *array.RawArray {
	switch a.DType() {
	case array.Float32:
		return runBinary(cpu, name, op, a, b, (*array.RawArray).AsFloat32)
	case array.Float64:
		return runBinary(cpu, name, op, a, b, (*array.RawArray).AsFloat64)
	case array.Int32:
		return runBinary(cpu, name, op, a, b, (*array.RawArray).AsInt32)
	case array.Int64:
		return runBinary(cpu, name, op, a, b, (*array.RawArray).AsInt64)
	case array.Uint8:
		return runBinary(cpu, name, op, a, b, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, a.DType()))
	}
}

// runBinary executes an arithmetic kernel over one of three paths:
// in-place when a uniquely owns its buffer and shapes match, a plain
// vectorized loop when shapes match, and a strided gather otherwise.
func runBinary[T numeric](cpu *CPUBackend, name string, op binOp, a, b *array.RawArray, as func(*array.RawArray) []T) *array.RawArray {
	outShape, err := array.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	f := binFn[T](op)

	if a.Shape().Equal(b.Shape()) {
		ad, bd := as(a), as(b)

		if a.IsUnique() {
			parallel.ForRange(len(ad), func(start, end int) {
				for i := start; i < end; i++ {
					ad[i] = f(ad[i], bd[i])
				}
			}, cpu.par)
			return a.Clone()
		}

		result := cpu.alloc(name, outShape, a.DType())
		rd := as(result)
		parallel.ForRange(len(rd), func(start, end int) {
			for i := start; i < end; i++ {
				rd[i] = f(ad[i], bd[i])
			}
		}, cpu.par)
		return result
	}

	result := cpu.alloc(name, outShape, a.DType())
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)
	ad, bd, rd := as(a), as(b), as(result)

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			rd[i] = f(ad[flatIndex(i, outStrides, aStrides)], bd[flatIndex(i, outStrides, bStrides)])
		}
	}, cpu.par)

	return result
}

// runScalar applies f(x[i], s) element-wise into a fresh result.
func runScalar[T numeric](cpu *CPUBackend, name string, x *array.RawArray, s T, as func(*array.RawArray) []T, f func(T, T) T) *array.RawArray {
	result := cpu.alloc(name, x.Shape(), x.DType())
	xd, rd := as(x), as(result)

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			rd[i] = f(xd[i], s)
		}
	}, cpu.par)

	return result
}

// runUnary applies f element-wise into a fresh result of the same
// shape and dtype.
func runUnary[T numeric](cpu *CPUBackend, name string, x *array.RawArray, as func(*array.RawArray) []T, f func(T) T) *array.RawArray {
	result := cpu.alloc(name, x.Shape(), x.DType())
	xd, rd := as(x), as(result)

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			rd[i] = f(xd[i])
		}
	}, cpu.par)

	return result
}

// cmpOp identifies an element-wise comparison.
type cmpOp int

const (
	opGreater cmpOp = iota
	opGreaterEqual
	opLess
	opLessEqual
	opEqual
	opNotEqual
)

func cmpFn[T numeric](op cmpOp) func(T, T) bool {
	switch op {
	case opGreater:
		return func(x, y T) bool { return x > y }
	case opGreaterEqual:
		return func(x, y T) bool { return x >= y }
	case opLess:
		return func(x, y T) bool { return x < y }
	case opLessEqual:
		return func(x, y T) bool { return x <= y }
	case opEqual:
		return func(x, y T) bool { return x == y }
	case opNotEqual:
		return func(x, y T) bool { return x != y }
	default:
		panic(fmt.Sprintf("unknown comparison op %d", op))
	}
}

// compare dispatches a comparison kernel on the element type. Bool
// operands compare with false ordered before true.
func (cpu *CPUBackend) compare(name string, op cmpOp, a, b *array.RawArray) *array.RawArray {
	switch a.DType() {
	case array.Float32:
		return runCompare(cpu, name, op, a, b, (*array.RawArray).AsFloat32)
	case array.Float64:
		return runCompare(cpu, name, op, a, b, (*array.RawArray).AsFloat64)
	case array.Int32:
		return runCompare(cpu, name, op, a, b, (*array.RawArray).AsInt32)
	case array.Int64:
		return runCompare(cpu, name, op, a, b, (*array.RawArray).AsInt64)
	case array.Uint8:
		return runCompare(cpu, name, op, a, b, (*array.RawArray).AsUint8)
	case array.Bool:
		return runCompareBool(cpu, name, op, a, b)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, a.DType()))
	}
}

func runCompare[T numeric](cpu *CPUBackend, name string, op cmpOp, a, b *array.RawArray, as func(*array.RawArray) []T) *array.RawArray {
	outShape, err := array.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	f := cmpFn[T](op)
	result := cpu.alloc(name, outShape, array.Bool)
	rd := result.AsBool()

	if a.Shape().Equal(b.Shape()) {
		ad, bd := as(a), as(b)
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
	ad, bd := as(a), as(b)

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			rd[i] = f(ad[flatIndex(i, outStrides, aStrides)], bd[flatIndex(i, outStrides, bStrides)])
		}
	}, cpu.par)

	return result
}

func runCompareBool(cpu *CPUBackend, name string, op cmpOp, a, b *array.RawArray) *array.RawArray {
	outShape, err := array.Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	f := cmpFn[uint8](op)
	result := cpu.alloc(name, outShape, array.Bool)
	rd := result.AsBool()
	ad, bd := a.AsBool(), b.AsBool()

	if a.Shape().Equal(b.Shape()) {
		parallel.ForRange(len(rd), func(start, end int) {
			for i := start; i < end; i++ {
				rd[i] = f(boolByte(ad[i]), boolByte(bd[i]))
			}
		}, cpu.par)
		return result
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.Shape(), outShape)
	bStrides := broadcastStrides(b.Shape(), outShape)

	parallel.ForRange(len(rd), func(start, end int) {
		for i := start; i < end; i++ {
			av := boolByte(ad[flatIndex(i, outStrides, aStrides)])
			bv := boolByte(bd[flatIndex(i, outStrides, bStrides)])
			rd[i] = f(av, bv)
		}
	}, cpu.par)

	return result
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}
