package array

// Boolean-mask operations. Masks come from the comparison methods and
// drive filtering and conditional assignment.

// Where selects elements from x or y based on cond: where cond is true
// the element comes from x, otherwise from y. All three operands
// broadcast together.
//
// Example:
//
//	cond := a.GreaterScalar(0)
//	result := array.Where(cond, a, a.Neg()) // absolute value, the long way
func Where[T DType, B Backend](cond *Array[bool, B], x, y *Array[T, B]) *Array[T, B] {
	result := x.backend.Where(cond.raw, x.raw, y.raw)
	return New[T, B](result, x.backend)
}

// MaskedSelect returns a 1-D array holding the elements where mask is
// true, in row-major order. The mask must have the same shape as the
// array.
//
// Example:
//
//	a := array.Arange[int32](0, 10, backend)
//	big := a.MaskedSelect(a.GreaterScalar(5)) // [6, 7, 8, 9]
func (a *Array[T, B]) MaskedSelect(mask *Array[bool, B]) *Array[T, B] {
	result := a.backend.MaskedSelect(a.raw, mask.raw)
	return New[T, B](result, a.backend)
}

// MaskedFill assigns value to the elements where mask is true, in
// place. The write is visible through every handle sharing the
// array's storage. The mask must have the same shape as the array.
//
// Example:
//
//	a.MaskedFill(a.LessScalar(0), 0) // clamp negatives to zero
func (a *Array[T, B]) MaskedFill(mask *Array[bool, B], value T) {
	a.backend.MaskedFill(a.raw, mask.raw, value)
}

// Unique returns the sorted distinct values of the array as a 1-D
// array.
//
// Example:
//
//	a, _ := array.FromSlice([]int32{3, 1, 3, 2, 1}, Shape{5}, backend)
//	u := a.Unique() // [1, 2, 3]
func (a *Array[T, B]) Unique() *Array[T, B] {
	result := a.backend.Unique(a.raw)
	return New[T, B](result, a.backend)
}

// CountTrue returns the number of true elements in a Bool array.
func CountTrue[B Backend](mask *Array[bool, B]) int {
	return mask.CountNonzero()
}
