package array

// Backend defines the interface that all compute backends must implement.
// Backends carry out the actual computation for array operations.
//
// Implementations:
//   - CPU: pure Go kernels with optional worker-pool parallelism
//   - WebGPU: float32 element-wise ops on the GPU (windows builds)
//   - MockBackend: naive reference implementation for tests
type Backend interface {
	// Element-wise binary operations with broadcasting
	Add(a, b *RawArray) *RawArray
	Sub(a, b *RawArray) *RawArray
	Mul(a, b *RawArray) *RawArray
	Div(a, b *RawArray) *RawArray
	Maximum(a, b *RawArray) *RawArray
	Minimum(a, b *RawArray) *RawArray

	// Scalar operations (element-wise with a scalar)
	AddScalar(x *RawArray, scalar any) *RawArray
	SubScalar(x *RawArray, scalar any) *RawArray
	MulScalar(x *RawArray, scalar any) *RawArray
	DivScalar(x *RawArray, scalar any) *RawArray
	Pow(x *RawArray, exponent float64) *RawArray

	// Math operations (element-wise)
	Neg(x *RawArray) *RawArray
	Abs(x *RawArray) *RawArray
	Sqrt(x *RawArray) *RawArray
	Square(x *RawArray) *RawArray
	Exp(x *RawArray) *RawArray
	Log(x *RawArray) *RawArray
	Ceil(x *RawArray) *RawArray
	Floor(x *RawArray) *RawArray
	Rint(x *RawArray) *RawArray
	IsNaN(x *RawArray) *RawArray // returns bool array

	// Comparison operations (element-wise with broadcasting, return bool arrays)
	Greater(a, b *RawArray) *RawArray
	GreaterEqual(a, b *RawArray) *RawArray
	Less(a, b *RawArray) *RawArray
	LessEqual(a, b *RawArray) *RawArray
	Equal(a, b *RawArray) *RawArray
	NotEqual(a, b *RawArray) *RawArray

	// Boolean operations (element-wise on bool arrays, with broadcasting)
	And(a, b *RawArray) *RawArray
	Or(a, b *RawArray) *RawArray
	Xor(a, b *RawArray) *RawArray
	Not(x *RawArray) *RawArray

	// Full reductions (scalar results)
	Sum(x *RawArray) *RawArray
	Min(x *RawArray) *RawArray
	Max(x *RawArray) *RawArray
	ArgMin(x *RawArray) *RawArray       // int64 scalar, flat index
	ArgMax(x *RawArray) *RawArray       // int64 scalar, flat index
	CountNonzero(x *RawArray) *RawArray // int64 scalar

	// Axis reductions (negative axes allowed)
	SumAxis(x *RawArray, axis int, keepDims bool) *RawArray
	MinAxis(x *RawArray, axis int, keepDims bool) *RawArray
	MaxAxis(x *RawArray, axis int, keepDims bool) *RawArray
	ArgMinAxis(x *RawArray, axis int, keepDims bool) *RawArray // int64 result
	ArgMaxAxis(x *RawArray, axis int, keepDims bool) *RawArray // int64 result

	// Shape operations
	Reshape(x *RawArray, newShape Shape) *RawArray
	Transpose(x *RawArray, axes ...int) *RawArray
	Concat(xs []*RawArray, axis int) *RawArray
	Narrow(x *RawArray, axis, start, length int) *RawArray // copy of a sub-range along axis
	Expand(x *RawArray, shape Shape) *RawArray             // materialized broadcast to shape

	// Selection operations
	Where(cond, x, y *RawArray) *RawArray      // conditional element selection
	MaskedSelect(x, mask *RawArray) *RawArray  // 1-D copy of elements where mask is true
	MaskedFill(x, mask *RawArray, value any)   // in-place assignment where mask is true
	Unique(x *RawArray) *RawArray              // sorted distinct values, 1-D

	// Type conversion
	Cast(x *RawArray, dtype DataType) *RawArray

	// Metadata
	Name() string
	Device() Device
}
