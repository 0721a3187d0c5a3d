package array

import (
	"fmt"
	"math"
	"sort"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing. It implements every
// operation naively through float64, trading speed for obvious
// correctness.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// ============================================================================
// Element-wise binary operations
// ============================================================================

func (m *MockBackend) Add(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

func (m *MockBackend) Sub(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

func (m *MockBackend) Mul(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

func (m *MockBackend) Div(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

func (m *MockBackend) Maximum(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, math.Max)
}

func (m *MockBackend) Minimum(a, b *RawArray) *RawArray {
	return m.elementWise(a, b, math.Min)
}

// elementWise performs a binary operation with broadcasting, computing
// through float64.
func (m *MockBackend) elementWise(a, b *RawArray, op func(float64, float64) float64) *RawArray {
	outShape, err := Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, outShape.NumElements())

	for i := range resultData {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// ============================================================================
// Scalar operations
// ============================================================================

func (m *MockBackend) AddScalar(x *RawArray, scalar any) *RawArray {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

func (m *MockBackend) SubScalar(x *RawArray, scalar any) *RawArray {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v - s })
}

func (m *MockBackend) MulScalar(x *RawArray, scalar any) *RawArray {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

func (m *MockBackend) DivScalar(x *RawArray, scalar any) *RawArray {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v / s })
}

func (m *MockBackend) Pow(x *RawArray, exponent float64) *RawArray {
	return m.unary(x, func(v float64) float64 { return math.Pow(v, exponent) })
}

// ============================================================================
// Math operations
// ============================================================================

func (m *MockBackend) Neg(x *RawArray) *RawArray {
	return m.unary(x, func(v float64) float64 { return -v })
}

func (m *MockBackend) Abs(x *RawArray) *RawArray {
	return m.unary(x, math.Abs)
}

func (m *MockBackend) Sqrt(x *RawArray) *RawArray {
	return m.unary(x, math.Sqrt)
}

func (m *MockBackend) Square(x *RawArray) *RawArray {
	return m.unary(x, func(v float64) float64 { return v * v })
}

func (m *MockBackend) Exp(x *RawArray) *RawArray {
	return m.unary(x, math.Exp)
}

func (m *MockBackend) Log(x *RawArray) *RawArray {
	return m.unary(x, math.Log)
}

func (m *MockBackend) Ceil(x *RawArray) *RawArray {
	return m.unary(x, math.Ceil)
}

func (m *MockBackend) Floor(x *RawArray) *RawArray {
	return m.unary(x, math.Floor)
}

func (m *MockBackend) Rint(x *RawArray) *RawArray {
	return m.unary(x, math.RoundToEven)
}

func (m *MockBackend) IsNaN(x *RawArray) *RawArray {
	result, err := NewRaw(x.Shape(), Bool, m.Device())
	if err != nil {
		panic(err)
	}
	data := m.toFloat64Slice(x)
	out := result.AsBool()
	for i, v := range data {
		out[i] = math.IsNaN(v)
	}
	return result
}

// unary applies op to every element, computing through float64.
func (m *MockBackend) unary(x *RawArray, op func(float64) float64) *RawArray {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	data := m.toFloat64Slice(x)
	for i, v := range data {
		data[i] = op(v)
	}
	m.fromFloat64Slice(data, result)
	return result
}

// ============================================================================
// Comparison operations
// ============================================================================

func (m *MockBackend) Greater(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x > y })
}

func (m *MockBackend) GreaterEqual(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x >= y })
}

func (m *MockBackend) Less(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x < y })
}

func (m *MockBackend) LessEqual(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x <= y })
}

func (m *MockBackend) Equal(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x == y })
}

func (m *MockBackend) NotEqual(a, b *RawArray) *RawArray {
	return m.compare(a, b, func(x, y float64) bool { return x != y })
}

// compare performs a comparison with broadcasting, returning a Bool
// array.
func (m *MockBackend) compare(a, b *RawArray, pred func(float64, float64) bool) *RawArray {
	outShape, err := Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, Bool, m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	out := result.AsBool()

	for i := range out {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		out[i] = pred(aData[aIdx], bData[bIdx])
	}

	return result
}

// ============================================================================
// Boolean operations
// ============================================================================

func (m *MockBackend) And(a, b *RawArray) *RawArray {
	return m.boolWise(a, b, func(x, y bool) bool { return x && y })
}

func (m *MockBackend) Or(a, b *RawArray) *RawArray {
	return m.boolWise(a, b, func(x, y bool) bool { return x || y })
}

func (m *MockBackend) Xor(a, b *RawArray) *RawArray {
	return m.boolWise(a, b, func(x, y bool) bool { return x != y })
}

func (m *MockBackend) Not(x *RawArray) *RawArray {
	if x.DType() != Bool {
		panic(fmt.Sprintf("not: unsupported dtype %s", x.DType()))
	}
	result, err := NewRaw(x.Shape(), Bool, m.Device())
	if err != nil {
		panic(err)
	}
	in := x.AsBool()
	out := result.AsBool()
	for i, v := range in {
		out[i] = !v
	}
	return result
}

func (m *MockBackend) boolWise(a, b *RawArray, op func(bool, bool) bool) *RawArray {
	if a.DType() != Bool || b.DType() != Bool {
		panic(fmt.Sprintf("boolean op: unsupported dtypes %s, %s", a.DType(), b.DType()))
	}

	outShape, err := Broadcast(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, Bool, m.Device())
	if err != nil {
		panic(err)
	}

	aData := a.AsBool()
	bData := b.AsBool()
	out := result.AsBool()

	for i := range out {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		out[i] = op(aData[aIdx], bData[bIdx])
	}

	return result
}

// ============================================================================
// Reductions
// ============================================================================

func (m *MockBackend) Sum(x *RawArray) *RawArray {
	if x.DType() == Bool {
		panic("sum: unsupported dtype bool")
	}
	data := m.toFloat64Slice(x)
	total := 0.0
	for _, v := range data {
		total += v
	}
	return m.scalarResult(total, x.DType())
}

func (m *MockBackend) Min(x *RawArray) *RawArray {
	if x.DType() == Bool {
		panic("min: unsupported dtype bool")
	}
	data := m.toFloat64Slice(x)
	if len(data) == 0 {
		panic("min: empty array")
	}
	best := data[0]
	for _, v := range data[1:] {
		if v < best {
			best = v
		}
	}
	return m.scalarResult(best, x.DType())
}

func (m *MockBackend) Max(x *RawArray) *RawArray {
	if x.DType() == Bool {
		panic("max: unsupported dtype bool")
	}
	data := m.toFloat64Slice(x)
	if len(data) == 0 {
		panic("max: empty array")
	}
	best := data[0]
	for _, v := range data[1:] {
		if v > best {
			best = v
		}
	}
	return m.scalarResult(best, x.DType())
}

func (m *MockBackend) ArgMin(x *RawArray) *RawArray {
	data := m.toFloat64Slice(x)
	if len(data) == 0 {
		panic("argmin: empty array")
	}
	bestIdx := 0
	for i, v := range data {
		if v < data[bestIdx] {
			bestIdx = i
		}
	}
	return m.scalarResult(float64(bestIdx), Int64)
}

func (m *MockBackend) ArgMax(x *RawArray) *RawArray {
	data := m.toFloat64Slice(x)
	if len(data) == 0 {
		panic("argmax: empty array")
	}
	bestIdx := 0
	for i, v := range data {
		if v > data[bestIdx] {
			bestIdx = i
		}
	}
	return m.scalarResult(float64(bestIdx), Int64)
}

func (m *MockBackend) CountNonzero(x *RawArray) *RawArray {
	data := m.toFloat64Slice(x)
	count := 0
	for _, v := range data {
		if v != 0 {
			count++
		}
	}
	return m.scalarResult(float64(count), Int64)
}

// scalarResult wraps a float64 value in a 0-dimensional array of the
// given dtype.
func (m *MockBackend) scalarResult(value float64, dtype DataType) *RawArray {
	result, err := NewRaw(Shape{}, dtype, m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice([]float64{value}, result)
	return result
}

// ============================================================================
// Axis reductions
// ============================================================================

func (m *MockBackend) SumAxis(x *RawArray, axis int, keepDims bool) *RawArray {
	if x.DType() == Bool {
		panic("sum: unsupported dtype bool")
	}
	return m.reduceAxis(x, axis, keepDims, x.DType(), func(values []float64) float64 {
		total := 0.0
		for _, v := range values {
			total += v
		}
		return total
	})
}

func (m *MockBackend) MinAxis(x *RawArray, axis int, keepDims bool) *RawArray {
	if x.DType() == Bool {
		panic("min: unsupported dtype bool")
	}
	return m.reduceAxis(x, axis, keepDims, x.DType(), func(values []float64) float64 {
		if len(values) == 0 {
			panic("min: reduction over empty axis")
		}
		best := values[0]
		for _, v := range values[1:] {
			if v < best {
				best = v
			}
		}
		return best
	})
}

func (m *MockBackend) MaxAxis(x *RawArray, axis int, keepDims bool) *RawArray {
	if x.DType() == Bool {
		panic("max: unsupported dtype bool")
	}
	return m.reduceAxis(x, axis, keepDims, x.DType(), func(values []float64) float64 {
		if len(values) == 0 {
			panic("max: reduction over empty axis")
		}
		best := values[0]
		for _, v := range values[1:] {
			if v > best {
				best = v
			}
		}
		return best
	})
}

func (m *MockBackend) ArgMinAxis(x *RawArray, axis int, keepDims bool) *RawArray {
	return m.reduceAxis(x, axis, keepDims, Int64, func(values []float64) float64 {
		if len(values) == 0 {
			panic("argmin: reduction over empty axis")
		}
		bestIdx := 0
		for i, v := range values {
			if v < values[bestIdx] {
				bestIdx = i
			}
		}
		return float64(bestIdx)
	})
}

func (m *MockBackend) ArgMaxAxis(x *RawArray, axis int, keepDims bool) *RawArray {
	return m.reduceAxis(x, axis, keepDims, Int64, func(values []float64) float64 {
		if len(values) == 0 {
			panic("argmax: reduction over empty axis")
		}
		bestIdx := 0
		for i, v := range values {
			if v > values[bestIdx] {
				bestIdx = i
			}
		}
		return float64(bestIdx)
	})
}

// reduceAxis collapses one axis by gathering each group of values into
// a slice and applying reduce to it. Output elements are produced in
// row-major order.
func (m *MockBackend) reduceAxis(x *RawArray, axis int, keepDims bool, outDType DataType, reduce func([]float64) float64) *RawArray {
	shape := x.Shape()
	resolved := normalizeAxis(axis, len(shape))

	dropped := make(Shape, 0, len(shape)-1)
	dropped = append(dropped, shape[:resolved]...)
	dropped = append(dropped, shape[resolved+1:]...)

	result, err := NewRaw(dropped, outDType, m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(x)
	out := make([]float64, dropped.NumElements())
	inStrides := shape.ComputeStrides()
	outStrides := dropped.ComputeStrides()
	group := make([]float64, shape[resolved])

	for i := range out {
		// Rebuild the input flat index with the reduced axis at 0.
		base := 0
		temp := i
		for j := 0; j < len(dropped); j++ {
			idx := temp / outStrides[j]
			temp %= outStrides[j]
			inAxis := j
			if j >= resolved {
				inAxis = j + 1
			}
			base += idx * inStrides[inAxis]
		}
		for k := 0; k < shape[resolved]; k++ {
			group[k] = data[base+k*inStrides[resolved]]
		}
		out[i] = reduce(group)
	}

	m.fromFloat64Slice(out, result)

	if keepDims {
		kept := make(Shape, 0, len(shape))
		kept = append(kept, shape[:resolved]...)
		kept = append(kept, 1)
		kept = append(kept, shape[resolved+1:]...)
		return m.Reshape(result, kept)
	}
	return result
}

// ============================================================================
// Shape operations
// ============================================================================

func (m *MockBackend) Reshape(x *RawArray, newShape Shape) *RawArray {
	if err := newShape.Validate(); err != nil {
		panic(err)
	}
	if x.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape array with %d elements to shape %v (%d elements)",
			x.NumElements(), newShape, newShape.NumElements()))
	}

	result, err := NewRaw(newShape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	copy(result.Data(), x.Data())
	return result
}

func (m *MockBackend) Transpose(x *RawArray, axes ...int) *RawArray {
	shape := x.Shape()

	if len(axes) == 0 {
		axes = make([]int, len(shape))
		for i := range axes {
			axes[i] = len(shape) - 1 - i
		}
	}
	if len(axes) != len(shape) {
		panic(fmt.Sprintf("axes length %d doesn't match array dimensions %d", len(axes), len(shape)))
	}

	newShape := make(Shape, len(shape))
	for i, axis := range axes {
		if axis < 0 || axis >= len(shape) {
			panic(fmt.Sprintf("axis %d out of bounds for array with %d dimensions", axis, len(shape)))
		}
		newShape[i] = shape[axis]
	}

	result, err := NewRaw(newShape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(x)
	out := make([]float64, len(data))
	oldStrides := shape.ComputeStrides()
	newStrides := newShape.ComputeStrides()

	for i := range data {
		temp := i
		newIdx := 0
		indices := make([]int, len(shape))
		for j := 0; j < len(shape); j++ {
			indices[j] = temp / oldStrides[j]
			temp %= oldStrides[j]
		}
		for j, axis := range axes {
			newIdx += indices[axis] * newStrides[j]
		}
		out[newIdx] = data[i]
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) Concat(xs []*RawArray, axis int) *RawArray {
	if len(xs) == 0 {
		panic("concat: at least one array required")
	}
	first := xs[0].Shape()
	resolved := normalizeAxis(axis, len(first))

	total := 0
	for _, x := range xs {
		shape := x.Shape()
		if len(shape) != len(first) {
			panic(fmt.Sprintf("concat: rank mismatch %v vs %v", shape, first))
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
	result, err := NewRaw(outShape, xs[0].DType(), m.Device())
	if err != nil {
		panic(err)
	}

	out := make([]float64, outShape.NumElements())
	outStrides := outShape.ComputeStrides()
	offset := 0
	for _, x := range xs {
		shape := x.Shape()
		data := m.toFloat64Slice(x)
		inStrides := shape.ComputeStrides()
		for i, v := range data {
			temp := i
			outIdx := 0
			for j := 0; j < len(shape); j++ {
				idx := temp / inStrides[j]
				temp %= inStrides[j]
				if j == resolved {
					idx += offset
				}
				outIdx += idx * outStrides[j]
			}
			out[outIdx] = v
		}
		offset += shape[resolved]
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) Narrow(x *RawArray, axis, start, length int) *RawArray {
	shape := x.Shape()
	resolved := normalizeAxis(axis, len(shape))
	if start < 0 || length < 0 || start+length > shape[resolved] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for axis extent %d", start, start+length, shape[resolved]))
	}

	outShape := shape.Clone()
	outShape[resolved] = length
	result, err := NewRaw(outShape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(x)
	out := make([]float64, outShape.NumElements())
	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()

	for i := range out {
		temp := i
		inIdx := 0
		for j := 0; j < len(outShape); j++ {
			idx := temp / outStrides[j]
			temp %= outStrides[j]
			if j == resolved {
				idx += start
			}
			inIdx += idx * inStrides[j]
		}
		out[i] = data[inIdx]
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) Expand(x *RawArray, shape Shape) *RawArray {
	outShape, err := Broadcast(x.Shape(), shape)
	if err != nil {
		panic(err)
	}
	if !outShape.Equal(shape) {
		panic(fmt.Sprintf("expand: cannot expand %v to %v", x.Shape(), shape))
	}

	result, err := NewRaw(shape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	data := m.toFloat64Slice(x)
	out := make([]float64, shape.NumElements())
	for i := range out {
		out[i] = data[m.broadcastIndex(i, shape, x.Shape())]
	}

	m.fromFloat64Slice(out, result)
	return result
}

// ============================================================================
// Selection operations
// ============================================================================

func (m *MockBackend) Where(cond, x, y *RawArray) *RawArray {
	if cond.DType() != Bool {
		panic(fmt.Sprintf("where: condition must be bool, got %s", cond.DType()))
	}

	pairShape, err := Broadcast(x.Shape(), y.Shape())
	if err != nil {
		panic(err)
	}
	outShape, err := Broadcast(cond.Shape(), pairShape)
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	condData := cond.AsBool()
	xData := m.toFloat64Slice(x)
	yData := m.toFloat64Slice(y)
	out := make([]float64, outShape.NumElements())

	for i := range out {
		if condData[m.broadcastIndex(i, outShape, cond.Shape())] {
			out[i] = xData[m.broadcastIndex(i, outShape, x.Shape())]
		} else {
			out[i] = yData[m.broadcastIndex(i, outShape, y.Shape())]
		}
	}

	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) MaskedSelect(x, mask *RawArray) *RawArray {
	if mask.DType() != Bool {
		panic(fmt.Sprintf("masked select: mask must be bool, got %s", mask.DType()))
	}
	if !x.Shape().Equal(mask.Shape()) {
		panic(fmt.Sprintf("masked select: mask shape %v does not match %v", mask.Shape(), x.Shape()))
	}

	data := m.toFloat64Slice(x)
	maskData := mask.AsBool()
	selected := make([]float64, 0, len(data))
	for i, keep := range maskData {
		if keep {
			selected = append(selected, data[i])
		}
	}

	result, err := NewRaw(Shape{len(selected)}, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice(selected, result)
	return result
}

func (m *MockBackend) MaskedFill(x, mask *RawArray, value any) {
	if mask.DType() != Bool {
		panic(fmt.Sprintf("masked fill: mask must be bool, got %s", mask.DType()))
	}
	if !x.Shape().Equal(mask.Shape()) {
		panic(fmt.Sprintf("masked fill: mask shape %v does not match %v", mask.Shape(), x.Shape()))
	}

	data := m.toFloat64Slice(x)
	maskData := mask.AsBool()
	v := scalarToFloat64(value)
	for i, fill := range maskData {
		if fill {
			data[i] = v
		}
	}
	m.fromFloat64Slice(data, x)
}

func (m *MockBackend) Unique(x *RawArray) *RawArray {
	data := m.toFloat64Slice(x)
	seen := make(map[float64]bool, len(data))
	distinct := make([]float64, 0, len(data))
	for _, v := range data {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Float64s(distinct)

	result, err := NewRaw(Shape{len(distinct)}, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice(distinct, result)
	return result
}

// ============================================================================
// Type conversion
// ============================================================================

func (m *MockBackend) Cast(x *RawArray, dtype DataType) *RawArray {
	if x.DType() == dtype {
		return x.Clone()
	}
	result, err := NewRaw(x.Shape(), dtype, m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice(m.toFloat64Slice(x), result)
	return result
}

// ============================================================================
// Helpers
// ============================================================================

func (m *MockBackend) toFloat64Slice(x *RawArray) []float64 {
	switch x.DType() {
	case Float32:
		src := x.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		src := x.AsFloat64()
		dst := make([]float64, len(src))
		copy(dst, src)
		return dst
	case Int32:
		src := x.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := x.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := x.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Bool:
		src := x.AsBool()
		dst := make([]float64, len(src))
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", x.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, x *RawArray) {
	switch x.DType() {
	case Float32:
		dst := x.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(x.AsFloat64(), src)
	case Int32:
		dst := x.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := x.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := x.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	case Bool:
		dst := x.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", x.DType()))
	}
}

// broadcastIndex maps a flat index in the output shape to the flat
// index of the operand it reads from, honoring stretched axes.
func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	outStrides := outShape.ComputeStrides()
	inStrides := inShape.ComputeStrides()

	inIdx := 0
	offset := len(outShape) - len(inShape)
	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		idx := temp / outStrides[i]
		temp %= outStrides[i]
		if i < offset {
			continue
		}
		if inShape[i-offset] == 1 {
			idx = 0
		}
		inIdx += idx * inStrides[i-offset]
	}
	return inIdx
}

// scalarToFloat64 widens any supported scalar type to float64.
func scalarToFloat64(scalar any) float64 {
	switch v := scalar.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint8:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unsupported scalar type: %T", scalar))
	}
}
