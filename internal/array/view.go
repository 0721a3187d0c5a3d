package array

import "fmt"

// View is an aliasing window into another array's storage: a distinct
// type documenting shared, non-owning access. Writes through a View are
// visible in the parent array and in every other handle on the same
// buffer. Copy detaches into exclusively owned storage.
//
// Views come from Slice and Index; the zero value is not usable.
//
// Example:
//
//	a := array.Arange[float64](0, 10, backend)
//	v := a.Slice(5, 8)
//	v.Fill(12)          // a is now [0..4, 12, 12, 12, 8, 9]
//	own := v.Copy()     // own no longer aliases a
type View[T DType, B Backend] struct {
	raw     *RawArray
	backend B
}

// Slice returns a view of entries [lo, hi) along the leading axis.
// The view aliases the parent's buffer.
func (a *Array[T, B]) Slice(lo, hi int) *View[T, B] {
	return &View[T, B]{raw: a.raw.sliceView(lo, hi), backend: a.backend}
}

// Index returns a view of the i-th entry along the leading axis, with
// that axis dropped. For a 2-D array this is a row; for a 1-D array the
// result is a scalar view.
func (a *Array[T, B]) Index(i int) *View[T, B] {
	return &View[T, B]{raw: a.raw.indexView(i), backend: a.backend}
}

// Row is a readable alias for Index on 2-D arrays.
func (a *Array[T, B]) Row(i int) *View[T, B] {
	return a.Index(i)
}

// Slice narrows the view further along its leading axis.
func (v *View[T, B]) Slice(lo, hi int) *View[T, B] {
	return &View[T, B]{raw: v.raw.sliceView(lo, hi), backend: v.backend}
}

// Shape returns the view's shape.
func (v *View[T, B]) Shape() Shape {
	return v.raw.Shape()
}

// NumElements returns the total number of elements in the view.
func (v *View[T, B]) NumElements() int {
	return v.raw.NumElements()
}

// Raw returns the underlying RawArray.
func (v *View[T, B]) Raw() *RawArray {
	return v.raw
}

// Data returns a typed slice over the view's elements. Writes go
// straight through to the parent's storage.
func (v *View[T, B]) Data() []T {
	return v.handle().Data()
}

// At returns the element at the given indices within the view.
func (v *View[T, B]) At(indices ...int) T {
	return v.handle().At(indices...)
}

// Set writes the element at the given indices. The write is visible in
// the parent array.
func (v *View[T, B]) Set(value T, indices ...int) {
	v.handle().Set(value, indices...)
}

// Fill sets every element of the viewed region, writing through to the
// parent array.
func (v *View[T, B]) Fill(value T) {
	data := v.Data()
	for i := range data {
		data[i] = value
	}
}

// Assign copies src's elements into the viewed region, writing through.
// Panics if the shapes differ.
func (v *View[T, B]) Assign(src *Array[T, B]) {
	if !v.Shape().Equal(src.Shape()) {
		panic(fmt.Sprintf("assign: view shape %v does not match source shape %v", v.Shape(), src.Shape()))
	}
	copy(v.Data(), src.Data())
}

// Copy materializes the view into an array with exclusively owned
// storage. Later writes to the parent no longer affect the result.
func (v *View[T, B]) Copy() *Array[T, B] {
	return New[T, B](v.raw.Copy(), v.backend)
}

// Array returns an array handle that still shares the view's storage,
// for running array operations on the viewed region.
func (v *View[T, B]) Array() *Array[T, B] {
	return New[T, B](v.raw.Clone(), v.backend)
}

// String returns a human-readable representation of the view.
func (v *View[T, B]) String() string {
	return fmt.Sprintf("View[%s]%v on %s", v.raw.DType(), v.raw.Shape(), v.raw.Device())
}

// handle wraps the view's raw storage in a borrowed Array for shared
// accessor logic. The handle must not outlive the view.
func (v *View[T, B]) handle() *Array[T, B] {
	return &Array[T, B]{raw: v.raw, backend: v.backend}
}
