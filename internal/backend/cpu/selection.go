package cpu

import (
	"fmt"
	"sort"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// Where selects elements from x where cond is true and from y where it
// is false. All three operands broadcast together.
func (cpu *CPUBackend) Where(cond, x, y *array.RawArray) *array.RawArray {
	if cond.DType() != array.Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", cond.DType()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch %v vs %v", x.DType(), y.DType()))
	}

	pairShape, err := array.Broadcast(x.Shape(), y.Shape())
	if err != nil {
		panic(err)
	}
	outShape, err := array.Broadcast(cond.Shape(), pairShape)
	if err != nil {
		panic(err)
	}

	result := cpu.alloc("where", outShape, x.DType())

	outStrides := outShape.ComputeStrides()
	condStrides := broadcastStrides(cond.Shape(), outShape)
	xStrides := broadcastStrides(x.Shape(), outShape)
	yStrides := broadcastStrides(y.Shape(), outShape)

	cd := cond.AsBool()
	esz := x.DType().Size()
	xb, yb, dst := x.Data(), y.Data(), result.Data()

	parallel.ForRange(result.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			var j int
			var src []byte
			if cd[flatIndex(i, outStrides, condStrides)] {
				j, src = flatIndex(i, outStrides, xStrides), xb
			} else {
				j, src = flatIndex(i, outStrides, yStrides), yb
			}
			copy(dst[i*esz:(i+1)*esz], src[j*esz:(j+1)*esz])
		}
	}, cpu.par)

	return result
}

// MaskedSelect gathers the elements of x where mask is true into a
// 1-dimensional array, in row-major order. The mask must be a bool
// array of the same shape as x.
func (cpu *CPUBackend) MaskedSelect(x, mask *array.RawArray) *array.RawArray {
	if mask.DType() != array.Bool {
		panic(fmt.Sprintf("masked select: mask must be bool, got %s", mask.DType()))
	}
	if !x.Shape().Equal(mask.Shape()) {
		panic(fmt.Sprintf("masked select: mask shape %v does not match %v", mask.Shape(), x.Shape()))
	}

	md := mask.AsBool()
	count := 0
	for _, keep := range md {
		if keep {
			count++
		}
	}

	result := cpu.alloc("masked select", array.Shape{count}, x.DType())
	esz := x.DType().Size()
	src, dst := x.Data(), result.Data()

	n := 0
	for i, keep := range md {
		if keep {
			copy(dst[n*esz:(n+1)*esz], src[i*esz:(i+1)*esz])
			n++
		}
	}

	return result
}

// MaskedFill writes value into x wherever mask is true. The mask must
// be a bool array of the same shape as x, and the value's Go type
// must match x's dtype.
func (cpu *CPUBackend) MaskedFill(x, mask *array.RawArray, value any) {
	if mask.DType() != array.Bool {
		panic(fmt.Sprintf("masked fill: mask must be bool, got %s", mask.DType()))
	}
	if !x.Shape().Equal(mask.Shape()) {
		panic(fmt.Sprintf("masked fill: mask shape %v does not match %v", mask.Shape(), x.Shape()))
	}

	switch x.DType() {
	case array.Float32:
		maskedFill(x.AsFloat32(), mask.AsBool(), value.(float32))
	case array.Float64:
		maskedFill(x.AsFloat64(), mask.AsBool(), value.(float64))
	case array.Int32:
		maskedFill(x.AsInt32(), mask.AsBool(), value.(int32))
	case array.Int64:
		maskedFill(x.AsInt64(), mask.AsBool(), value.(int64))
	case array.Uint8:
		maskedFill(x.AsUint8(), mask.AsBool(), value.(uint8))
	case array.Bool:
		maskedFill(x.AsBool(), mask.AsBool(), value.(bool))
	default:
		panic(fmt.Sprintf("masked fill: unsupported dtype %v", x.DType()))
	}
}

func maskedFill[T any](xs []T, mask []bool, value T) {
	for i, fill := range mask {
		if fill {
			xs[i] = value
		}
	}
}

// Unique returns the distinct elements of x as a sorted 1-dimensional
// array.
func (cpu *CPUBackend) Unique(x *array.RawArray) *array.RawArray {
	switch x.DType() {
	case array.Float32:
		return runUnique(cpu, x, (*array.RawArray).AsFloat32)
	case array.Float64:
		return runUnique(cpu, x, (*array.RawArray).AsFloat64)
	case array.Int32:
		return runUnique(cpu, x, (*array.RawArray).AsInt32)
	case array.Int64:
		return runUnique(cpu, x, (*array.RawArray).AsInt64)
	case array.Uint8:
		return runUnique(cpu, x, (*array.RawArray).AsUint8)
	case array.Bool:
		return cpu.uniqueBool(x)
	default:
		panic(fmt.Sprintf("unique: unsupported dtype %v", x.DType()))
	}
}

func runUnique[T numeric](cpu *CPUBackend, x *array.RawArray, as func(*array.RawArray) []T) *array.RawArray {
	xd := as(x)
	seen := make(map[T]bool, len(xd))
	distinct := make([]T, 0, len(xd))
	for _, v := range xd {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	result := cpu.alloc("unique", array.Shape{len(distinct)}, x.DType())
	copy(as(result), distinct)
	return result
}

func (cpu *CPUBackend) uniqueBool(x *array.RawArray) *array.RawArray {
	var hasFalse, hasTrue bool
	for _, v := range x.AsBool() {
		if v {
			hasTrue = true
		} else {
			hasFalse = true
		}
	}

	distinct := make([]bool, 0, 2)
	if hasFalse {
		distinct = append(distinct, false)
	}
	if hasTrue {
		distinct = append(distinct, true)
	}

	result := cpu.alloc("unique", array.Shape{len(distinct)}, array.Bool)
	copy(result.AsBool(), distinct)
	return result
}
