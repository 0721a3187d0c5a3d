package cpu

import (
	"fmt"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// ============================================================================
// Full reductions
// ============================================================================

// Sum reduces the whole array to a 0-dimensional scalar of the same
// dtype.
func (cpu *CPUBackend) Sum(x *array.RawArray) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return sumAll(cpu, x, (*array.RawArray).AsFloat32)
	case array.Float64:
		return sumAll(cpu, x, (*array.RawArray).AsFloat64)
	case array.Int32:
		return sumAll(cpu, x, (*array.RawArray).AsInt32)
	case array.Int64:
		return sumAll(cpu, x, (*array.RawArray).AsInt64)
	case array.Uint8:
		return sumAll(cpu, x, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %v", x.DType()))
	}
}

func sumAll[T numeric](cpu *CPUBackend, x *array.RawArray, as func(*array.RawArray) []T) *array.RawArray {
	var total T
	for _, v := range as(x) {
		total += v
	}
	result := cpu.alloc("sum", array.Shape{}, x.DType())
	as(result)[0] = total
	return result
}

// Min reduces the whole array to its smallest element. Panics on an
// empty array.
func (cpu *CPUBackend) Min(x *array.RawArray) *array.RawArray {
	return cpu.extreme("min", opMinimum, x)
}

// Max reduces the whole array to its largest element. Panics on an
// empty array.
func (cpu *CPUBackend) Max(x *array.RawArray) *array.RawArray {
	return cpu.extreme("max", opMaximum, x)
}

func (cpu *CPUBackend) extreme(name string, op binOp, x *array.RawArray) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return extremeAll(cpu, name, op, x, (*array.RawArray).AsFloat32)
	case array.Float64:
		return extremeAll(cpu, name, op, x, (*array.RawArray).AsFloat64)
	case array.Int32:
		return extremeAll(cpu, name, op, x, (*array.RawArray).AsInt32)
	case array.Int64:
		return extremeAll(cpu, name, op, x, (*array.RawArray).AsInt64)
	case array.Uint8:
		return extremeAll(cpu, name, op, x, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
}

func extremeAll[T numeric](cpu *CPUBackend, name string, op binOp, x *array.RawArray, as func(*array.RawArray) []T) *array.RawArray {
	xd := as(x)
	if len(xd) == 0 {
		panic(name + ": empty array")
	}

	f := binFn[T](op)
	best := xd[0]
	for _, v := range xd[1:] {
		best = f(best, v)
	}

	result := cpu.alloc(name, array.Shape{}, x.DType())
	as(result)[0] = best
	return result
}

// ArgMin returns the flat index of the smallest element as an int64
// scalar. Ties resolve to the first occurrence. Panics on an empty
// array.
func (cpu *CPUBackend) ArgMin(x *array.RawArray) *array.RawArray {
	return cpu.arg("argmin", opLess, x)
}

// ArgMax returns the flat index of the largest element as an int64
// scalar. Ties resolve to the first occurrence. Panics on an empty
// array.
func (cpu *CPUBackend) ArgMax(x *array.RawArray) *array.RawArray {
	return cpu.arg("argmax", opGreater, x)
}

func (cpu *CPUBackend) arg(name string, op cmpOp, x *array.RawArray) *array.RawArray {
	if x.DType() == array.Bool {
		u := cpu.Cast(x, array.Uint8)
		defer u.Release()
		return cpu.arg(name, op, u)
	}

	switch x.DType() {
	case array.Float32:
		return argAll(cpu, name, op, x, (*array.RawArray).AsFloat32)
	case array.Float64:
		return argAll(cpu, name, op, x, (*array.RawArray).AsFloat64)
	case array.Int32:
		return argAll(cpu, name, op, x, (*array.RawArray).AsInt32)
	case array.Int64:
		return argAll(cpu, name, op, x, (*array.RawArray).AsInt64)
	case array.Uint8:
		return argAll(cpu, name, op, x, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
}

func argAll[T numeric](cpu *CPUBackend, name string, op cmpOp, x *array.RawArray, as func(*array.RawArray) []T) *array.RawArray {
	xd := as(x)
	if len(xd) == 0 {
		panic(name + ": empty array")
	}

	better := cmpFn[T](op)
	bestIdx := 0
	for i, v := range xd {
		if better(v, xd[bestIdx]) {
			bestIdx = i
		}
	}

	result := cpu.alloc(name, array.Shape{}, array.Int64)
	result.AsInt64()[0] = int64(bestIdx)
	return result
}

// CountNonzero counts elements that are not zero (not false for bool
// arrays) and returns the count as an int64 scalar.
func (cpu *CPUBackend) CountNonzero(x *array.RawArray) *array.RawArray {
	var count int
	switch x.DType() {
	case array.Float32:
		count = countNonzero(x.AsFloat32())
	case array.Float64:
		count = countNonzero(x.AsFloat64())
	case array.Int32:
		count = countNonzero(x.AsInt32())
	case array.Int64:
		count = countNonzero(x.AsInt64())
	case array.Uint8:
		count = countNonzero(x.AsUint8())
	case array.Bool:
		for _, v := range x.AsBool() {
			if v {
				count++
			}
		}
	default:
		panic(fmt.Sprintf("countnonzero: unsupported dtype %v", x.DType()))
	}

	result := cpu.alloc("countnonzero", array.Shape{}, array.Int64)
	result.AsInt64()[0] = int64(count)
	return result
}

func countNonzero[T numeric](xs []T) int {
	n := 0
	for _, v := range xs {
		if v != 0 {
			n++
		}
	}
	return n
}

// ============================================================================
// Axis reductions
// ============================================================================

// The flat layout of a row-major array factors around a reduced axis
// into (outer, axisN, inner): element (o, k, i) lives at flat index
// (o*axisN+k)*inner + i, and output element (o, i) lives at
// o*inner + i. Every axis kernel walks that decomposition.

func axisSplit(shape array.Shape, resolved int) (outer, axisN, inner int) {
	outer, inner = 1, 1
	for _, d := range shape[:resolved] {
		outer *= d
	}
	axisN = shape[resolved]
	for _, d := range shape[resolved+1:] {
		inner *= d
	}
	return outer, axisN, inner
}

func reducedShape(shape array.Shape, resolved int, keepDims bool) array.Shape {
	if keepDims {
		out := shape.Clone()
		out[resolved] = 1
		return out
	}
	out := make(array.Shape, 0, len(shape)-1)
	out = append(out, shape[:resolved]...)
	out = append(out, shape[resolved+1:]...)
	return out
}

// SumAxis sums along one axis. The reduced axis collapses to extent 1
// when keepDims is set and disappears otherwise.
func (cpu *CPUBackend) SumAxis(x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runSumAxis(cpu, x, axis, keepDims, (*array.RawArray).AsFloat32)
	case array.Float64:
		return runSumAxis(cpu, x, axis, keepDims, (*array.RawArray).AsFloat64)
	case array.Int32:
		return runSumAxis(cpu, x, axis, keepDims, (*array.RawArray).AsInt32)
	case array.Int64:
		return runSumAxis(cpu, x, axis, keepDims, (*array.RawArray).AsInt64)
	case array.Uint8:
		return runSumAxis(cpu, x, axis, keepDims, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %v", x.DType()))
	}
}

func runSumAxis[T numeric](cpu *CPUBackend, x *array.RawArray, axis int, keepDims bool, as func(*array.RawArray) []T) *array.RawArray {
	shape := x.Shape()
	resolved := resolveAxis("sum", axis, len(shape))
	outer, axisN, inner := axisSplit(shape, resolved)

	result := cpu.alloc("sum", reducedShape(shape, resolved, keepDims), x.DType())
	xd, rd := as(x), as(result)

	parallel.ForRange(outer*inner, func(start, end int) {
		for j := start; j < end; j++ {
			o, i := j/inner, j%inner
			base := o*axisN*inner + i
			var total T
			for k := 0; k < axisN; k++ {
				total += xd[base+k*inner]
			}
			rd[j] = total
		}
	}, cpu.par)

	return result
}

// MinAxis takes the minimum along one axis. Panics when the reduced
// axis is empty.
func (cpu *CPUBackend) MinAxis(x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	return cpu.extremeAxis("min", opMinimum, x, axis, keepDims)
}

// MaxAxis takes the maximum along one axis. Panics when the reduced
// axis is empty.
func (cpu *CPUBackend) MaxAxis(x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	return cpu.extremeAxis("max", opMaximum, x, axis, keepDims)
}

func (cpu *CPUBackend) extremeAxis(name string, op binOp, x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runExtremeAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsFloat32)
	case array.Float64:
		return runExtremeAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsFloat64)
	case array.Int32:
		return runExtremeAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsInt32)
	case array.Int64:
		return runExtremeAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsInt64)
	case array.Uint8:
		return runExtremeAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
}

func runExtremeAxis[T numeric](cpu *CPUBackend, name string, op binOp, x *array.RawArray, axis int, keepDims bool, as func(*array.RawArray) []T) *array.RawArray {
	shape := x.Shape()
	resolved := resolveAxis(name, axis, len(shape))
	outer, axisN, inner := axisSplit(shape, resolved)
	if axisN == 0 && outer*inner > 0 {
		panic(name + ": reduction over empty axis")
	}

	result := cpu.alloc(name, reducedShape(shape, resolved, keepDims), x.DType())
	xd, rd := as(x), as(result)
	f := binFn[T](op)

	parallel.ForRange(outer*inner, func(start, end int) {
		for j := start; j < end; j++ {
			o, i := j/inner, j%inner
			base := o*axisN*inner + i
			best := xd[base]
			for k := 1; k < axisN; k++ {
				best = f(best, xd[base+k*inner])
			}
			rd[j] = best
		}
	}, cpu.par)

	return result
}

// ArgMinAxis returns the index of the smallest element along one axis
// as an int64 array. Ties resolve to the first occurrence.
func (cpu *CPUBackend) ArgMinAxis(x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	return cpu.argAxis("argmin", opLess, x, axis, keepDims)
}

// ArgMaxAxis returns the index of the largest element along one axis
// as an int64 array. Ties resolve to the first occurrence.
func (cpu *CPUBackend) ArgMaxAxis(x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	return cpu.argAxis("argmax", opGreater, x, axis, keepDims)
}

func (cpu *CPUBackend) argAxis(name string, op cmpOp, x *array.RawArray, axis int, keepDims bool) *array.RawArray {
	if x.DType() == array.Bool {
		u := cpu.Cast(x, array.Uint8)
		defer u.Release()
		return cpu.argAxis(name, op, u, axis, keepDims)
	}

	switch x.DType() {
	case array.Float32:
		return runArgAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsFloat32)
	case array.Float64:
		return runArgAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsFloat64)
	case array.Int32:
		return runArgAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsInt32)
	case array.Int64:
		return runArgAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsInt64)
	case array.Uint8:
		return runArgAxis(cpu, name, op, x, axis, keepDims, (*array.RawArray).AsUint8)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %v", name, x.DType()))
	}
}

func runArgAxis[T numeric](cpu *CPUBackend, name string, op cmpOp, x *array.RawArray, axis int, keepDims bool, as func(*array.RawArray) []T) *array.RawArray {
	shape := x.Shape()
	resolved := resolveAxis(name, axis, len(shape))
	outer, axisN, inner := axisSplit(shape, resolved)
	if axisN == 0 && outer*inner > 0 {
		panic(name + ": reduction over empty axis")
	}

	result := cpu.alloc(name, reducedShape(shape, resolved, keepDims), array.Int64)
	xd, rd := as(x), result.AsInt64()
	better := cmpFn[T](op)

	parallel.ForRange(outer*inner, func(start, end int) {
		for j := start; j < end; j++ {
			o, i := j/inner, j%inner
			base := o*axisN*inner + i
			best := xd[base]
			bestK := 0
			for k := 1; k < axisN; k++ {
				if v := xd[base+k*inner]; better(v, best) {
					best, bestK = v, k
				}
			}
			rd[j] = int64(bestK)
		}
	}, cpu.par)

	return result
}
