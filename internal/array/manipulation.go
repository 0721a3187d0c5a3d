package array

import "fmt"

// Reshape returns an array with the same data but a different shape.
// The new shape must have the same number of elements. One dimension
// may be -1, in which case its extent is inferred from the rest.
//
// Example:
//
//	x := array.Arange[int32](0, 12, backend) // Shape: [12]
//	y := x.Reshape(3, 4)                     // Shape: [3, 4]
//	z := x.Reshape(3, -1)                    // Shape: [3, 4]
func (a *Array[T, B]) Reshape(dims ...int) *Array[T, B] {
	shape := inferReshape(Shape(dims), a.NumElements())
	result := a.backend.Reshape(a.raw, shape)
	return New[T, B](result, a.backend)
}

// inferReshape resolves a single -1 extent against the element count.
func inferReshape(dims Shape, numElements int) Shape {
	inferAt := -1
	known := 1
	for i, d := range dims {
		if d == -1 {
			if inferAt >= 0 {
				panic("reshape: only one dimension may be -1")
			}
			inferAt = i
			continue
		}
		if d < 0 {
			panic(fmt.Sprintf("reshape: invalid dimension %d", d))
		}
		known *= d
	}
	if inferAt < 0 {
		return dims
	}
	if known == 0 || numElements%known != 0 {
		panic(fmt.Sprintf("reshape: cannot infer dimension for %d elements in shape %v", numElements, dims))
	}
	resolved := dims.Clone()
	resolved[inferAt] = numElements / known
	return resolved
}

// Transpose permutes the array's axes.
//
// If axes is empty, all axes are reversed (the standard 2-D transpose).
// Otherwise axes specifies the permutation.
//
// Example:
//
//	x := array.Zeros[float32](Shape{2, 3, 4}, backend)
//	y := x.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (a *Array[T, B]) Transpose(axes ...int) *Array[T, B] {
	result := a.backend.Transpose(a.raw, axes...)
	return New[T, B](result, a.backend)
}

// T is a shortcut for 2-D transpose. Panics if the array is not 2-D.
func (a *Array[T, B]) T() *Array[T, B] {
	if a.NumDims() != 2 {
		panic("T() only works for 2-D arrays")
	}
	return a.Transpose(1, 0)
}

// Flatten returns a 1-D array with the same elements in row-major
// order.
func (a *Array[T, B]) Flatten() *Array[T, B] {
	return a.Reshape(a.NumElements())
}

// Squeeze removes an axis of extent 1. Panics if the extent is not 1.
// Supports negative axis indexing.
//
// Example:
//
//	x := array.Zeros[float32](Shape{2, 1, 3}, backend)
//	y := x.Squeeze(1) // Shape: [2, 3]
func (a *Array[T, B]) Squeeze(axis int) *Array[T, B] {
	resolved := normalizeAxis(axis, a.NumDims())
	shape := a.Shape()
	if shape[resolved] != 1 {
		panic(fmt.Sprintf("squeeze: axis %d has extent %d, expected 1", axis, shape[resolved]))
	}
	newShape := make(Shape, 0, len(shape)-1)
	newShape = append(newShape, shape[:resolved]...)
	newShape = append(newShape, shape[resolved+1:]...)
	return a.Reshape(newShape...)
}

// Unsqueeze inserts an axis of extent 1 at the given position. The
// position may range from 0 to NumDims inclusive. Negative positions
// count from the end of the new shape, so -1 appends a trailing axis.
//
// Example:
//
//	x := array.Zeros[float32](Shape{2, 3}, backend)
//	y := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (a *Array[T, B]) Unsqueeze(axis int) *Array[T, B] {
	ndims := a.NumDims() + 1
	resolved := axis
	if resolved < 0 {
		resolved += ndims
	}
	if resolved < 0 || resolved >= ndims {
		panic(fmt.Sprintf("unsqueeze: axis %d out of range for %d dimensions", axis, ndims))
	}
	shape := a.Shape()
	newShape := make(Shape, 0, ndims)
	newShape = append(newShape, shape[:resolved]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[resolved:]...)
	return a.Reshape(newShape...)
}

// Narrow returns a copy of a sub-range along the given axis.
//
// Example:
//
//	x := array.Arange[int32](0, 12, backend).Reshape(3, 4)
//	y := x.Narrow(1, 1, 2) // Shape: [3, 2], columns 1 and 2
func (a *Array[T, B]) Narrow(axis, start, length int) *Array[T, B] {
	result := a.backend.Narrow(a.raw, axis, start, length)
	return New[T, B](result, a.backend)
}

// Expand broadcasts the array to a larger shape, materializing the
// result. The target shape must be broadcast-compatible and each
// original axis must either match or have extent 1.
//
// Example:
//
//	x := array.Arange[float32](0, 3, backend).Reshape(1, 3)
//	y := x.Expand(Shape{4, 3}) // 4 copies of the row
func (a *Array[T, B]) Expand(shape Shape) *Array[T, B] {
	result := a.backend.Expand(a.raw, shape)
	return New[T, B](result, a.backend)
}

// Chunk splits the array into n equal parts along the given axis. The
// axis extent must be divisible by n.
//
// Example:
//
//	x := array.Zeros[float32](Shape{2, 6}, backend)
//	parts := x.Chunk(3, -1) // 3 arrays of shape [2, 2]
func (a *Array[T, B]) Chunk(n, axis int) []*Array[T, B] {
	if n <= 0 {
		panic("chunk: n must be positive")
	}
	resolved := normalizeAxis(axis, a.NumDims())
	extent := a.Shape()[resolved]
	if extent%n != 0 {
		panic(fmt.Sprintf("chunk: axis extent %d not divisible by %d", extent, n))
	}
	size := extent / n
	parts := make([]*Array[T, B], n)
	for i := range parts {
		parts[i] = a.Narrow(resolved, i*size, size)
	}
	return parts
}

// Concat concatenates arrays along the given axis. All arrays must
// share dtype and shape except along the concatenation axis. Supports
// negative axis indexing.
//
// Example:
//
//	a := array.Zeros[float32](Shape{2, 3}, backend)
//	b := array.Zeros[float32](Shape{2, 5}, backend)
//	c := array.Concat([]*Array[float32, B]{a, b}, 1) // Shape: [2, 8]
func Concat[T DType, B Backend](arrays []*Array[T, B], axis int) *Array[T, B] {
	if len(arrays) == 0 {
		panic("concat: at least one array required")
	}
	if len(arrays) == 1 {
		return arrays[0].Clone()
	}

	raws := make([]*RawArray, len(arrays))
	backend := arrays[0].backend
	for i, arr := range arrays {
		raws[i] = arr.raw
	}

	result := backend.Concat(raws, axis)
	return New[T, B](result, backend)
}

// Stack joins arrays of identical shape along a new axis.
//
// Example:
//
//	a := array.Zeros[float32](Shape{3}, backend)
//	b := array.Ones[float32](Shape{3}, backend)
//	c := array.Stack([]*Array[float32, B]{a, b}, 0) // Shape: [2, 3]
func Stack[T DType, B Backend](arrays []*Array[T, B], axis int) *Array[T, B] {
	if len(arrays) == 0 {
		panic("stack: at least one array required")
	}
	shape := arrays[0].Shape()
	expanded := make([]*Array[T, B], len(arrays))
	for i, arr := range arrays {
		if !arr.Shape().Equal(shape) {
			panic(fmt.Sprintf("stack: shape %v does not match %v", arr.Shape(), shape))
		}
		expanded[i] = arr.Unsqueeze(axis)
	}
	return Concat(expanded, axis)
}

// VStack stacks arrays vertically (row-wise). 1-D arrays are treated
// as rows.
func VStack[T DType, B Backend](arrays []*Array[T, B]) *Array[T, B] {
	rows := make([]*Array[T, B], len(arrays))
	for i, arr := range arrays {
		if arr.NumDims() == 1 {
			rows[i] = arr.Reshape(1, arr.NumElements())
		} else {
			rows[i] = arr
		}
	}
	return Concat(rows, 0)
}

// HStack stacks arrays horizontally (column-wise). 1-D arrays
// concatenate along their only axis.
func HStack[T DType, B Backend](arrays []*Array[T, B]) *Array[T, B] {
	if len(arrays) > 0 && arrays[0].NumDims() == 1 {
		return Concat(arrays, 0)
	}
	return Concat(arrays, 1)
}
