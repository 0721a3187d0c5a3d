package array

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Device represents the compute device holding array data.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// arrayBuffer is a reference-counted shared buffer. Clones and views
// share it; refCount == 1 means the holder may mutate in place.
type arrayBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// newArrayBuffer creates a new reference-counted buffer with refCount = 1.
func newArrayBuffer(size int) *arrayBuffer {
	buf := &arrayBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// addRef increments the reference count (for Clone and view operations).
func (ab *arrayBuffer) addRef() {
	ab.refCount.Add(1)
}

// release decrements the reference count and deallocates if it reaches 0.
func (ab *arrayBuffer) release() {
	if ab.refCount.Add(-1) == 0 {
		ab.mu.Lock()
		defer ab.mu.Unlock()
		ab.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (ab *arrayBuffer) isUnique() bool {
	return ab.refCount.Load() == 1
}

// RawArray is the low-level, untyped array representation. It carries a
// shape, row-major strides, runtime element type, and an offset into a
// reference-counted shared buffer, so aliasing views and cheap clones
// are both expressible.
type RawArray struct {
	buffer *arrayBuffer // Shared reference-counted buffer
	shape  Shape        // Array extents
	stride []int        // Element strides (row-major)
	dtype  DataType     // Runtime type information
	device Device       // Compute device
	offset int          // Byte offset into the buffer, for views
}

// NewRaw creates a new RawArray with the given shape and type.
// Memory is allocated and zero-initialized. Shapes with zero extents are
// legal and allocate no payload.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawArray, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()

	return &RawArray{
		buffer: newArrayBuffer(byteSize),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
		offset: 0,
	}, nil
}

// Shape returns the array's shape.
func (r *RawArray) Shape() Shape {
	return r.shape
}

// Strides returns the array's element strides.
func (r *RawArray) Strides() []int {
	return r.stride
}

// DType returns the array's element type.
func (r *RawArray) DType() DataType {
	return r.dtype
}

// Device returns the array's compute device.
func (r *RawArray) Device() Device {
	return r.device
}

// NumDims returns the number of axes.
func (r *RawArray) NumDims() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawArray) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawArray) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw bytes of exactly this array's elements.
// WARNING: direct access to underlying memory, writes alias every handle
// sharing the buffer.
func (r *RawArray) Data() []byte {
	return r.buffer.data[r.offset : r.offset+r.ByteSize()]
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (r *RawArray) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), n)
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (r *RawArray) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&data[0])), n)
}

// AsInt32 interprets the data as []int32.
// Panics if the array's dtype is not Int32.
func (r *RawArray) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("array dtype is %s, not int32", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&data[0])), n)
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int64.
func (r *RawArray) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&data[0])), n)
}

// AsUint8 interprets the data as []uint8.
// Panics if the array's dtype is not Uint8.
func (r *RawArray) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("array dtype is %s, not uint8", r.dtype))
	}
	return r.Data() // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the array's dtype is not Bool.
func (r *RawArray) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("array dtype is %s, not bool", r.dtype))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	data := r.buffer.data[r.offset:]
	//nolint:gosec // unsafe.Slice for zero-copy access, length bounded by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&data[0])), n)
}

// Clone creates a shallow copy that shares the buffer with reference
// counting. Mutation through either handle is visible in both; Copy
// detaches instead.
func (r *RawArray) Clone() *RawArray {
	r.buffer.addRef()
	return &RawArray{
		buffer: r.buffer,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset,
	}
}

// Copy creates a deep copy with freshly allocated, exclusively owned
// storage.
func (r *RawArray) Copy() *RawArray {
	out, err := NewRaw(r.shape, r.dtype, r.device)
	if err != nil {
		panic(fmt.Sprintf("copy: %v", err))
	}
	copy(out.buffer.data, r.Data())
	return out
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawArray) Release() {
	r.buffer.release()
}

// IsUnique returns true if this array is the only reference to the
// buffer. When true, backends may overwrite it in place.
func (r *RawArray) IsUnique() bool {
	return r.buffer.isUnique()
}

// sliceView returns a RawArray aliasing rows [lo, hi) along the leading
// axis. The underlying buffer is shared; the view's refCount keeps it
// alive. Panics on a scalar or out-of-range bounds.
func (r *RawArray) sliceView(lo, hi int) *RawArray {
	if len(r.shape) == 0 {
		panic("slice: cannot slice a scalar array")
	}
	if lo < 0 || hi > r.shape[0] || lo > hi {
		panic(fmt.Sprintf("slice: bounds [%d:%d) out of range for leading axis of size %d", lo, hi, r.shape[0]))
	}

	newShape := r.shape.Clone()
	newShape[0] = hi - lo

	r.buffer.addRef()
	return &RawArray{
		buffer: r.buffer,
		shape:  newShape,
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset + lo*r.stride[0]*r.dtype.Size(),
	}
}

// indexView returns a RawArray aliasing the i-th entry along the leading
// axis, with that axis dropped. Panics on a scalar or out-of-range index.
func (r *RawArray) indexView(i int) *RawArray {
	if len(r.shape) == 0 {
		panic("index: cannot index a scalar array")
	}
	if i < 0 || i >= r.shape[0] {
		panic(fmt.Sprintf("index: %d out of range for leading axis of size %d", i, r.shape[0]))
	}

	newShape := r.shape[1:].Clone()

	r.buffer.addRef()
	return &RawArray{
		buffer: r.buffer,
		shape:  newShape,
		stride: append([]int(nil), r.stride[1:]...),
		dtype:  r.dtype,
		device: r.device,
		offset: r.offset + i*r.stride[0]*r.dtype.Size(),
	}
}
