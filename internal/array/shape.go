package array

import "fmt"

// Shape represents the extents of an array, one entry per axis, outermost
// axis first. A zero-length Shape describes a scalar. A zero extent is a
// legal empty axis.
type Shape []int

// NumElements returns the total number of elements an array of this shape
// holds. A scalar shape has one element; any zero extent makes it zero.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NumDims returns the number of axes.
func (s Shape) NumDims() int {
	return len(s)
}

// Validate checks that every extent is non-negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be >= 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major element strides for the shape.
// stride[i] is the product of all extents after axis i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// IncompatibleShapesError reports two shapes whose extents cannot be
// aligned for element-wise combination. Axis is the offending position in
// the padded result coordinate system (0 is the leading axis of the
// result); DimA and DimB are the extents that clashed there.
type IncompatibleShapesError struct {
	A, B Shape
	Axis int
	DimA int
	DimB int
}

// Error implements the error interface.
func (e *IncompatibleShapesError) Error() string {
	return fmt.Sprintf("shapes %v and %v are not compatible for broadcasting (axis %d: %d vs %d)",
		e.A, e.B, e.Axis, e.DimA, e.DimB)
}

// Broadcast aligns two shapes by their trailing axes and computes the
// shape of their element-wise combination.
//
// Extents are compared right to left; a missing axis counts as extent 1.
// At each position the extents must be equal, or one of them must be 1,
// in which case the result takes the other. The result has
// max(len(a), len(b)) axes. A 1 extent stretches even against 0, so
// broadcasting 0 against 1 yields 0, while 0 against anything larger
// than 1 fails.
//
// The scan reports the first failing axis it meets, counted in result
// coordinates.
//
// Examples:
//
//	Broadcast(Shape{5, 4}, Shape{1})        // (5, 4)
//	Broadcast(Shape{15, 3, 5}, Shape{3, 1}) // (15, 3, 5)
//	Broadcast(Shape{3, 4}, Shape{2, 4})     // error: axis 0, 3 vs 2
func Broadcast(a, b Shape) (Shape, error) {
	n := max(len(a), len(b))
	result := make(Shape, n)

	for i := 0; i < n; i++ {
		aIdx := len(a) - 1 - i
		bIdx := len(b) - 1 - i

		aDim := 1
		if aIdx >= 0 {
			aDim = a[aIdx]
		}

		bDim := 1
		if bIdx >= 0 {
			bDim = b[bIdx]
		}

		switch {
		case aDim == bDim:
			result[n-1-i] = aDim
		case aDim == 1:
			result[n-1-i] = bDim
		case bDim == 1:
			result[n-1-i] = aDim
		default:
			return nil, &IncompatibleShapesError{
				A:    a.Clone(),
				B:    b.Clone(),
				Axis: n - 1 - i,
				DimA: aDim,
				DimB: bDim,
			}
		}
	}

	return result, nil
}
