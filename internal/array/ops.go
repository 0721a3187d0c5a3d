package array

// Typed wrappers over backend operations.
//
// Binary operations broadcast their operands following the trailing-axis
// rules implemented by Broadcast. Scalar variants treat the scalar as a
// 0-dimensional operand. Comparison operations return Array[bool, B].

// ============================================================================
// Arithmetic
// ============================================================================

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := array.Ones[float32](Shape{3, 1}, backend)
//	b := array.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcast)
func (a *Array[T, B]) Add(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Add(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (a *Array[T, B]) Sub(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Sub(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (a *Array[T, B]) Mul(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Mul(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Div performs element-wise division with broadcasting.
func (a *Array[T, B]) Div(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Div(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Maximum returns the element-wise maximum of two arrays with broadcasting.
func (a *Array[T, B]) Maximum(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Maximum(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Minimum returns the element-wise minimum of two arrays with broadcasting.
func (a *Array[T, B]) Minimum(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Minimum(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// ============================================================================
// Scalar operations
// ============================================================================

// AddScalar adds a scalar value to each element.
//
// Example:
//
//	x := array.Arange[float32](0, 5, backend)
//	y := x.AddScalar(1.0) // [1, 2, 3, 4, 5]
func (a *Array[T, B]) AddScalar(scalar T) *Array[T, B] {
	result := a.backend.AddScalar(a.raw, scalar)
	return New[T, B](result, a.backend)
}

// SubScalar subtracts a scalar value from each element.
func (a *Array[T, B]) SubScalar(scalar T) *Array[T, B] {
	result := a.backend.SubScalar(a.raw, scalar)
	return New[T, B](result, a.backend)
}

// MulScalar multiplies each element by a scalar value.
func (a *Array[T, B]) MulScalar(scalar T) *Array[T, B] {
	result := a.backend.MulScalar(a.raw, scalar)
	return New[T, B](result, a.backend)
}

// DivScalar divides each element by a scalar value.
func (a *Array[T, B]) DivScalar(scalar T) *Array[T, B] {
	result := a.backend.DivScalar(a.raw, scalar)
	return New[T, B](result, a.backend)
}

// Pow raises each element to the given power.
//
// Example:
//
//	x := array.Arange[float64](0, 4, backend)
//	y := x.Pow(2) // [0, 1, 4, 9]
func (a *Array[T, B]) Pow(exponent float64) *Array[T, B] {
	result := a.backend.Pow(a.raw, exponent)
	return New[T, B](result, a.backend)
}

// ============================================================================
// Unary math
// ============================================================================

// Neg negates each element.
func (a *Array[T, B]) Neg() *Array[T, B] {
	result := a.backend.Neg(a.raw)
	return New[T, B](result, a.backend)
}

// Abs computes the absolute value of each element.
func (a *Array[T, B]) Abs() *Array[T, B] {
	result := a.backend.Abs(a.raw)
	return New[T, B](result, a.backend)
}

// Sqrt computes the square root of each element. Negative inputs
// produce NaN for float dtypes.
func (a *Array[T, B]) Sqrt() *Array[T, B] {
	result := a.backend.Sqrt(a.raw)
	return New[T, B](result, a.backend)
}

// Square computes the square of each element.
func (a *Array[T, B]) Square() *Array[T, B] {
	result := a.backend.Square(a.raw)
	return New[T, B](result, a.backend)
}

// Exp computes the exponential (e^x) of each element.
func (a *Array[T, B]) Exp() *Array[T, B] {
	result := a.backend.Exp(a.raw)
	return New[T, B](result, a.backend)
}

// Log computes the natural logarithm of each element. Zero inputs
// produce -Inf and negative inputs produce NaN for float dtypes.
func (a *Array[T, B]) Log() *Array[T, B] {
	result := a.backend.Log(a.raw)
	return New[T, B](result, a.backend)
}

// Ceil rounds each element up to the nearest integer value.
func (a *Array[T, B]) Ceil() *Array[T, B] {
	result := a.backend.Ceil(a.raw)
	return New[T, B](result, a.backend)
}

// Floor rounds each element down to the nearest integer value.
func (a *Array[T, B]) Floor() *Array[T, B] {
	result := a.backend.Floor(a.raw)
	return New[T, B](result, a.backend)
}

// Rint rounds each element to the nearest integer value, with ties
// going to the nearest even value.
//
// Example:
//
//	x, _ := array.FromSlice([]float64{0.5, 1.5, 2.5}, Shape{3}, backend)
//	y := x.Rint() // [0, 2, 2]
func (a *Array[T, B]) Rint() *Array[T, B] {
	result := a.backend.Rint(a.raw)
	return New[T, B](result, a.backend)
}

// IsNaN returns a boolean array marking the NaN elements. For integer
// and bool dtypes the result is all false.
func (a *Array[T, B]) IsNaN() *Array[bool, B] {
	result := a.backend.IsNaN(a.raw)
	return New[bool, B](result, a.backend)
}

// ============================================================================
// Comparisons
//
// All comparison operations broadcast and return Array[bool, B].
// ============================================================================

// Greater returns a boolean array marking where a > other.
//
// Example:
//
//	a := array.Arange[float32](0, 5, backend)
//	b := array.Full[float32](Shape{5}, 2.0, backend)
//	mask := a.Greater(b) // [false, false, false, true, true]
func (a *Array[T, B]) Greater(other *Array[T, B]) *Array[bool, B] {
	result := a.backend.Greater(a.raw, other.raw)
	return New[bool, B](result, a.backend)
}

// Gt is a short alias for Greater.
func (a *Array[T, B]) Gt(other *Array[T, B]) *Array[bool, B] {
	return a.Greater(other)
}

// GreaterEqual returns a boolean array marking where a >= other.
func (a *Array[T, B]) GreaterEqual(other *Array[T, B]) *Array[bool, B] {
	result := a.backend.GreaterEqual(a.raw, other.raw)
	return New[bool, B](result, a.backend)
}

// Ge is a short alias for GreaterEqual.
func (a *Array[T, B]) Ge(other *Array[T, B]) *Array[bool, B] {
	return a.GreaterEqual(other)
}

// Less returns a boolean array marking where a < other.
func (a *Array[T, B]) Less(other *Array[T, B]) *Array[bool, B] {
	result := a.backend.Less(a.raw, other.raw)
	return New[bool, B](result, a.backend)
}

// Lt is a short alias for Less.
func (a *Array[T, B]) Lt(other *Array[T, B]) *Array[bool, B] {
	return a.Less(other)
}

// LessEqual returns a boolean array marking where a <= other.
func (a *Array[T, B]) LessEqual(other *Array[T, B]) *Array[bool, B] {
	result := a.backend.LessEqual(a.raw, other.raw)
	return New[bool, B](result, a.backend)
}

// Le is a short alias for LessEqual.
func (a *Array[T, B]) Le(other *Array[T, B]) *Array[bool, B] {
	return a.LessEqual(other)
}

// Equal returns a boolean array marking where a == other.
func (a *Array[T, B]) Equal(other *Array[T, B]) *Array[bool, B] {
	result := a.backend.Equal(a.raw, other.raw)
	return New[bool, B](result, a.backend)
}

// Eq is a short alias for Equal.
func (a *Array[T, B]) Eq(other *Array[T, B]) *Array[bool, B] {
	return a.Equal(other)
}

// NotEqual returns a boolean array marking where a != other.
func (a *Array[T, B]) NotEqual(other *Array[T, B]) *Array[bool, B] {
	result := a.backend.NotEqual(a.raw, other.raw)
	return New[bool, B](result, a.backend)
}

// Ne is a short alias for NotEqual.
func (a *Array[T, B]) Ne(other *Array[T, B]) *Array[bool, B] {
	return a.NotEqual(other)
}

// Scalar comparison variants wrap the scalar in a 0-dimensional array
// and ride the regular broadcast path.

// GreaterScalar returns a boolean array marking where a > scalar.
//
// Example:
//
//	a := array.Arange[int32](0, 10, backend)
//	mask := a.GreaterScalar(5) // true for 6..9
func (a *Array[T, B]) GreaterScalar(scalar T) *Array[bool, B] {
	return a.Greater(Scalar(scalar, a.backend))
}

// GreaterEqualScalar returns a boolean array marking where a >= scalar.
func (a *Array[T, B]) GreaterEqualScalar(scalar T) *Array[bool, B] {
	return a.GreaterEqual(Scalar(scalar, a.backend))
}

// LessScalar returns a boolean array marking where a < scalar.
func (a *Array[T, B]) LessScalar(scalar T) *Array[bool, B] {
	return a.Less(Scalar(scalar, a.backend))
}

// LessEqualScalar returns a boolean array marking where a <= scalar.
func (a *Array[T, B]) LessEqualScalar(scalar T) *Array[bool, B] {
	return a.LessEqual(Scalar(scalar, a.backend))
}

// EqualScalar returns a boolean array marking where a == scalar.
func (a *Array[T, B]) EqualScalar(scalar T) *Array[bool, B] {
	return a.Equal(Scalar(scalar, a.backend))
}

// NotEqualScalar returns a boolean array marking where a != scalar.
func (a *Array[T, B]) NotEqualScalar(scalar T) *Array[bool, B] {
	return a.NotEqual(Scalar(scalar, a.backend))
}

// ============================================================================
// Boolean operations
//
// These require Bool elements; the backend panics otherwise.
// ============================================================================

// And computes element-wise logical AND with broadcasting.
func (a *Array[T, B]) And(other *Array[T, B]) *Array[T, B] {
	result := a.backend.And(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Or computes element-wise logical OR with broadcasting.
func (a *Array[T, B]) Or(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Or(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Xor computes element-wise logical XOR with broadcasting.
func (a *Array[T, B]) Xor(other *Array[T, B]) *Array[T, B] {
	result := a.backend.Xor(a.raw, other.raw)
	return New[T, B](result, a.backend)
}

// Not computes element-wise logical NOT.
//
// Example:
//
//	mask := a.GreaterScalar(5)
//	inverse := mask.Not()
func (a *Array[T, B]) Not() *Array[T, B] {
	result := a.backend.Not(a.raw)
	return New[T, B](result, a.backend)
}
