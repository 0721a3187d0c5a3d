package array

import "testing"

func TestNewRaw(t *testing.T) {
	shape := Shape{3, 4}
	raw, err := NewRaw(shape, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(shape) {
		t.Errorf("Shape = %v, want %v", raw.Shape(), shape)
	}
	if raw.DType() != Float32 {
		t.Errorf("DType = %v, want Float32", raw.DType())
	}
	if raw.Device() != CPU {
		t.Errorf("Device = %v, want CPU", raw.Device())
	}
	if raw.NumElements() != 12 {
		t.Errorf("NumElements = %d, want 12", raw.NumElements())
	}
	if raw.ByteSize() != 48 { // 12 * 4 bytes
		t.Errorf("ByteSize = %d, want 48", raw.ByteSize())
	}
}

func TestNewRawScalar(t *testing.T) {
	raw, err := NewRaw(Shape{}, Float64, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 1 {
		t.Errorf("scalar NumElements = %d, want 1", raw.NumElements())
	}
	if len(raw.AsFloat64()) != 1 {
		t.Errorf("scalar AsFloat64 length = %d, want 1", len(raw.AsFloat64()))
	}
}

func TestNewRawZeroExtent(t *testing.T) {
	raw, err := NewRaw(Shape{3, 0, 4}, Float32, CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	if raw.NumElements() != 0 {
		t.Errorf("NumElements = %d, want 0", raw.NumElements())
	}
	if len(raw.Data()) != 0 {
		t.Errorf("Data length = %d, want 0", len(raw.Data()))
	}
	if got := raw.AsFloat32(); got != nil {
		t.Errorf("AsFloat32 = %v, want nil", got)
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{3, -1}, Float32, CPU); err == nil {
		t.Error("NewRaw with negative extent should fail")
	}
}

func TestRawArrayAsFloat32(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 4}, Float32, CPU)
	data := raw.AsFloat32()

	if len(data) != 12 {
		t.Errorf("AsFloat32 length = %d, want 12", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 3.14
	if raw.AsFloat32()[0] != 3.14 {
		t.Error("AsFloat32 should return zero-copy slice")
	}
}

func TestRawArrayTypedAccessors(t *testing.T) {
	tests := []struct {
		dtype DataType
		read  func(*RawArray) int
	}{
		{Float32, func(r *RawArray) int { return len(r.AsFloat32()) }},
		{Float64, func(r *RawArray) int { return len(r.AsFloat64()) }},
		{Int32, func(r *RawArray) int { return len(r.AsInt32()) }},
		{Int64, func(r *RawArray) int { return len(r.AsInt64()) }},
		{Uint8, func(r *RawArray) int { return len(r.AsUint8()) }},
		{Bool, func(r *RawArray) int { return len(r.AsBool()) }},
	}

	for _, tt := range tests {
		raw, err := NewRaw(Shape{6}, tt.dtype, CPU)
		if err != nil {
			t.Fatalf("NewRaw(%s) failed: %v", tt.dtype, err)
		}
		if got := tt.read(raw); got != 6 {
			t.Errorf("%s accessor length = %d, want 6", tt.dtype, got)
		}
	}
}

func TestRawArrayClone(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 2}, Float32, CPU)
	data := raw.AsFloat32()
	data[0] = 1.0
	data[1] = 2.0

	clone := raw.Clone()

	if clone.AsFloat32()[0] != 1.0 {
		t.Error("Clone should share data")
	}
	if raw.IsUnique() {
		t.Error("buffer should not be unique after Clone")
	}

	// Modifying the clone is visible through the original
	clone.AsFloat32()[0] = 999.0
	if raw.AsFloat32()[0] != 999.0 {
		t.Error("Clone shares buffer, modifications should be visible")
	}

	clone.Release()
	if !raw.IsUnique() {
		t.Error("buffer should be unique again after releasing the clone")
	}
}

func TestRawArrayCopy(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Int32, CPU)
	raw.AsInt32()[0] = 7

	cp := raw.Copy()
	cp.AsInt32()[0] = 42

	if raw.AsInt32()[0] != 7 {
		t.Errorf("Copy should not share storage: original[0] = %d", raw.AsInt32()[0])
	}
	if !cp.IsUnique() {
		t.Error("Copy should own its buffer")
	}
}

func TestRawArraySliceView(t *testing.T) {
	raw, _ := NewRaw(Shape{4, 3}, Float32, CPU)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}

	view := raw.sliceView(1, 3)

	if !view.Shape().Equal(Shape{2, 3}) {
		t.Errorf("view shape = %v, want [2 3]", view.Shape())
	}
	if got := view.AsFloat32()[0]; got != 3 {
		t.Errorf("view[0] = %v, want 3", got)
	}

	// Writes through the view are visible in the parent
	view.AsFloat32()[0] = -1
	if raw.AsFloat32()[3] != -1 {
		t.Error("slice view should alias parent storage")
	}
	if raw.IsUnique() {
		t.Error("parent buffer should be shared while the view is live")
	}
}

func TestRawArrayIndexView(t *testing.T) {
	raw, _ := NewRaw(Shape{3, 4}, Int64, CPU)
	data := raw.AsInt64()
	for i := range data {
		data[i] = int64(i)
	}

	row := raw.indexView(2)

	if !row.Shape().Equal(Shape{4}) {
		t.Errorf("row shape = %v, want [4]", row.Shape())
	}
	want := []int64{8, 9, 10, 11}
	got := row.AsInt64()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRawArraySliceViewBounds(t *testing.T) {
	raw, _ := NewRaw(Shape{4}, Float32, CPU)

	defer func() {
		if recover() == nil {
			t.Error("sliceView out of bounds should panic")
		}
	}()
	raw.sliceView(2, 9)
}

func TestRawArrayViewOfViewOffsets(t *testing.T) {
	raw, _ := NewRaw(Shape{6}, Float32, CPU)
	data := raw.AsFloat32()
	for i := range data {
		data[i] = float32(i)
	}

	inner := raw.sliceView(2, 6).sliceView(1, 3)
	if !inner.Shape().Equal(Shape{2}) {
		t.Fatalf("inner shape = %v, want [2]", inner.Shape())
	}
	if inner.AsFloat32()[0] != 3 || inner.AsFloat32()[1] != 4 {
		t.Errorf("inner = %v, want [3 4]", inner.AsFloat32())
	}
}
