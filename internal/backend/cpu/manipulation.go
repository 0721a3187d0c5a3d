package cpu

import (
	"fmt"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

// Reshape returns a copy of x with a new shape holding the same number
// of elements.
func (cpu *CPUBackend) Reshape(x *array.RawArray, newShape array.Shape) *array.RawArray {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	if x.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape array with %d elements to shape %v (%d elements)",
			x.NumElements(), newShape, newShape.NumElements()))
	}

	result := cpu.alloc("reshape", newShape, x.DType())
	copy(result.Data(), x.Data())
	return result
}

// Transpose permutes the axes of x. With no axes given the order is
// reversed. axes[i] names the input axis that becomes output axis i.
func (cpu *CPUBackend) Transpose(x *array.RawArray, axes ...int) *array.RawArray {
	shape := x.Shape()
	ndim := len(shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d doesn't match array dimensions %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	outShape := make(array.Shape, ndim)
	for i, axis := range axes {
		if axis < 0 || axis >= ndim {
			panic(fmt.Sprintf("transpose: axis %d out of bounds for array with %d dimensions", axis, ndim))
		}
		if seen[axis] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", axis))
		}
		seen[axis] = true
		outShape[i] = shape[axis]
	}

	result := cpu.alloc("transpose", outShape, x.DType())

	// Gathering through permuted strides maps each output index back
	// to its source element.
	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	permStrides := make([]int, ndim)
	for i, axis := range axes {
		permStrides[i] = inStrides[axis]
	}

	esz := x.DType().Size()
	src, dst := x.Data(), result.Data()

	parallel.ForRange(result.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			j := flatIndex(i, outStrides, permStrides)
			copy(dst[i*esz:(i+1)*esz], src[j*esz:(j+1)*esz])
		}
	}, cpu.par)

	return result
}

// Concat joins arrays along an existing axis. All inputs must share
// rank, dtype, and every extent except the concatenation axis.
func (cpu *CPUBackend) Concat(xs []*array.RawArray, axis int) *array.RawArray {
	if len(xs) == 0 {
		panic("concat: at least one array required")
	}

	first := xs[0].Shape()
	resolved := resolveAxis("concat", axis, len(first))

	total := 0
	for _, x := range xs {
		shape := x.Shape()
		if len(shape) != len(first) {
			panic(fmt.Sprintf("concat: rank mismatch %v vs %v", shape, first))
		}
		if x.DType() != xs[0].DType() {
			panic(fmt.Sprintf("concat: dtype mismatch %v vs %v", x.DType(), xs[0].DType()))
		}
		for i, d := range shape {
			if i != resolved && d != first[i] {
				panic(fmt.Sprintf("concat: shape %v does not match %v along axis %d", shape, first, i))
			}
		}
		total += shape[resolved]
	}

	outShape := first.Clone()
	outShape[resolved] = total
	result := cpu.alloc("concat", outShape, xs[0].DType())

	// Each input contributes one contiguous block per outer index.
	outer, _, inner := axisSplit(outShape, resolved)
	esz := xs[0].DType().Size()
	outBlock := total * inner * esz
	dst := result.Data()

	off := 0
	for _, x := range xs {
		blk := x.Shape()[resolved] * inner * esz
		src := x.Data()
		for o := 0; o < outer; o++ {
			copy(dst[o*outBlock+off:o*outBlock+off+blk], src[o*blk:(o+1)*blk])
		}
		off += blk
	}

	return result
}

// Narrow copies the [start, start+length) range of one axis.
func (cpu *CPUBackend) Narrow(x *array.RawArray, axis, start, length int) *array.RawArray {
	shape := x.Shape()
	resolved := resolveAxis("narrow", axis, len(shape))
	if start < 0 || length < 0 || start+length > shape[resolved] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for axis extent %d", start, start+length, shape[resolved]))
	}

	outShape := shape.Clone()
	outShape[resolved] = length
	result := cpu.alloc("narrow", outShape, x.DType())

	outer, axisN, inner := axisSplit(shape, resolved)
	esz := x.DType().Size()
	blk := length * inner * esz
	src, dst := x.Data(), result.Data()

	for o := 0; o < outer; o++ {
		from := (o*axisN + start) * inner * esz
		copy(dst[o*blk:(o+1)*blk], src[from:from+blk])
	}

	return result
}

// Expand materializes x broadcast to the given shape. The target must
// be reachable from x's shape by broadcasting alone.
func (cpu *CPUBackend) Expand(x *array.RawArray, shape array.Shape) *array.RawArray {
	outShape, err := array.Broadcast(x.Shape(), shape)
	if err != nil {
		panic(err)
	}
	if !outShape.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot expand %v to %v", x.Shape(), shape))
	}

	result := cpu.alloc("expand", shape, x.DType())
	outStrides := shape.ComputeStrides()
	srcStrides := broadcastStrides(x.Shape(), shape)
	esz := x.DType().Size()
	src, dst := x.Data(), result.Data()

	parallel.ForRange(result.NumElements(), func(start, end int) {
		for i := start; i < end; i++ {
			j := flatIndex(i, outStrides, srcStrides)
			copy(dst[i*esz:(i+1)*esz], src[j*esz:(j+1)*esz])
		}
	}, cpu.par)

	return result
}
