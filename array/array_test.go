// Copyright 2026 The nda Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"errors"
	"testing"

	"github.com/nda-dev/nda/array"
	"github.com/nda-dev/nda/internal/backend/cpu"
	"github.com/nda-dev/nda/rng"
)

// TestBackendInterface verifies that cpu.CPUBackend implements array.Backend.
func TestBackendInterface(_ *testing.T) {
	var _ array.Backend = (*cpu.CPUBackend)(nil)
}

// TestRawArrayAPI verifies the RawArray type alias exposes the expected API.
func TestRawArrayAPI(t *testing.T) {
	raw, err := array.NewRaw(array.Shape{2, 3}, array.Float32, array.CPU)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(array.Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != array.Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.Device() != array.CPU {
		t.Errorf("Device() = %v, want CPU", raw.Device())
	}
	if n := raw.NumElements(); n != 6 {
		t.Errorf("NumElements() = %d, want 6", n)
	}

	byteSize := raw.ByteSize()
	expected := 6 * 4 // 6 elements * 4 bytes (float32)
	if byteSize != expected {
		t.Errorf("ByteSize() = %d, want %d", byteSize, expected)
	}

	clone := raw.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	if raw.IsUnique() {
		t.Error("IsUnique() = true after Clone(), want false (refcount > 1)")
	}
	clone.Release()
	if !raw.IsUnique() {
		t.Error("IsUnique() = false after clone.Release(), want true (refcount == 1)")
	}

	if data := raw.Data(); len(data) != byteSize {
		t.Errorf("Data() length = %d, want %d", len(data), byteSize)
	}
	if f32 := raw.AsFloat32(); len(f32) != 6 {
		t.Errorf("AsFloat32() length = %d, want 6", len(f32))
	}
}

// TestArrayCreationFunctions verifies the high-level creation API.
func TestArrayCreationFunctions(t *testing.T) {
	backend := cpu.New()
	g := rng.New(1)

	tests := []struct {
		name string
		fn   func() any
	}{
		{"Zeros", func() any { return array.Zeros[float32](array.Shape{2, 3}, backend) }},
		{"Ones", func() any { return array.Ones[float32](array.Shape{2, 3}, backend) }},
		{"Full", func() any { return array.Full[float32](array.Shape{2, 3}, 3.14, backend) }},
		{"Scalar", func() any { return array.Scalar[float64](2.5, backend) }},
		{"Arange", func() any { return array.Arange[float32](0, 10, backend) }},
		{"ArangeStep", func() any { return array.ArangeStep[float64](0, 1, 0.25, backend) }},
		{"Linspace", func() any { return array.Linspace[float64](0, 1, 5, backend) }},
		{"Logspace", func() any { return array.Logspace[float64](0, 3, 4, 10, backend) }},
		{"Eye", func() any { return array.Eye[float32](3, backend) }},
		{"Rand", func() any { return array.Rand[float64](g, array.Shape{2, 3}, backend) }},
		{"Randn", func() any { return array.Randn[float64](g, array.Shape{2, 3}, backend) }},
		{"RandInt", func() any { return array.RandInt[int64](g, 0, 10, array.Shape{2, 3}, backend) }},
		{"FromSlice", func() any {
			data := []float32{1, 2, 3, 4, 5, 6}
			a, err := array.FromSlice(data, array.Shape{2, 3}, backend)
			if err != nil {
				return err
			}
			return a
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn()
			if result == nil {
				t.Fatalf("%s() returned nil", tt.name)
			}
			if err, ok := result.(error); ok {
				t.Errorf("%s() returned error: %v", tt.name, err)
			}
		})
	}
}

// TestDeviceConstants verifies all device constants are accessible.
func TestDeviceConstants(t *testing.T) {
	devices := []struct {
		name   string
		device array.Device
	}{
		{"CPU", array.CPU},
		{"WebGPU", array.WebGPU},
	}

	for _, d := range devices {
		t.Run(d.name, func(t *testing.T) {
			str := d.device.String()
			if str == "" || str == "Unknown" {
				t.Errorf("Device.String() = %q, want non-empty known device name", str)
			}
		})
	}
}

// TestDataTypeConstants verifies all data type constants are accessible.
func TestDataTypeConstants(t *testing.T) {
	dtypes := []struct {
		name  string
		dtype array.DataType
	}{
		{"Float32", array.Float32},
		{"Float64", array.Float64},
		{"Int32", array.Int32},
		{"Int64", array.Int64},
		{"Uint8", array.Uint8},
		{"Bool", array.Bool},
	}

	for _, dt := range dtypes {
		t.Run(dt.name, func(t *testing.T) {
			if str := dt.dtype.String(); str == "" {
				t.Errorf("DataType.String() = %q, want non-empty", str)
			}
			if size := dt.dtype.Size(); size <= 0 {
				t.Errorf("DataType.Size() = %d, want > 0", size)
			}
		})
	}
}

// TestShapeAPI verifies the Shape type alias exposes the expected API.
func TestShapeAPI(t *testing.T) {
	shape := array.Shape{2, 3, 4}

	if n := shape.NumElements(); n != 24 {
		t.Errorf("NumElements() = %d, want 24", n)
	}
	if len(shape) != 3 {
		t.Errorf("len(shape) = %d, want 3", len(shape))
	}
	if !shape.Equal(array.Shape{2, 3, 4}) {
		t.Error("Equal() = false, want true for identical shapes")
	}

	clone := shape.Clone()
	if !clone.Equal(shape) {
		t.Error("Clone() created non-equal shape")
	}
	clone[0] = 999
	if shape[0] == 999 {
		t.Error("Clone() didn't create independent copy")
	}
}

// TestBroadcast verifies the Broadcast utility function.
func TestBroadcast(t *testing.T) {
	tests := []struct {
		name      string
		shapeA    array.Shape
		shapeB    array.Shape
		wantShape array.Shape
		wantErr   bool
	}{
		{"same shape", array.Shape{2, 3}, array.Shape{2, 3}, array.Shape{2, 3}, false},
		{"trailing vector", array.Shape{5, 4}, array.Shape{1}, array.Shape{5, 4}, false},
		{"mixed ranks", array.Shape{15, 3, 5}, array.Shape{3, 1}, array.Shape{15, 3, 5}, false},
		{"incompatible", array.Shape{3, 4}, array.Shape{2, 4}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := array.Broadcast(tt.shapeA, tt.shapeB)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Broadcast() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !got.Equal(tt.wantShape) {
				t.Errorf("Broadcast() = %v, want %v", got, tt.wantShape)
			}
		})
	}
}

// TestBroadcastErrorDetails verifies the exported error type carries the
// offending axis.
func TestBroadcastErrorDetails(t *testing.T) {
	_, err := array.Broadcast(array.Shape{3, 4}, array.Shape{2, 4})
	if err == nil {
		t.Fatal("Broadcast() succeeded for incompatible shapes")
	}

	var shapeErr *array.IncompatibleShapesError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error %T is not *IncompatibleShapesError", err)
	}
	if shapeErr.Axis != 0 {
		t.Errorf("Axis = %d, want 0", shapeErr.Axis)
	}
	if shapeErr.DimA != 3 || shapeErr.DimB != 2 {
		t.Errorf("DimA, DimB = %d, %d, want 3, 2", shapeErr.DimA, shapeErr.DimB)
	}
}

// TestManipulationFunctions verifies package-level manipulation helpers.
func TestManipulationFunctions(t *testing.T) {
	backend := cpu.New()

	t.Run("Concat", func(t *testing.T) {
		a := array.Ones[float32](array.Shape{2, 3}, backend)
		b := array.Zeros[float32](array.Shape{2, 3}, backend)
		c := array.Concat([]*array.Array[float32, *cpu.CPUBackend]{a, b}, 0)

		wantShape := array.Shape{4, 3}
		if !c.Shape().Equal(wantShape) {
			t.Errorf("Concat() shape = %v, want %v", c.Shape(), wantShape)
		}
	})

	t.Run("Stack", func(t *testing.T) {
		a := array.Ones[float32](array.Shape{2, 3}, backend)
		b := array.Zeros[float32](array.Shape{2, 3}, backend)
		c := array.Stack([]*array.Array[float32, *cpu.CPUBackend]{a, b}, 0)

		wantShape := array.Shape{2, 2, 3}
		if !c.Shape().Equal(wantShape) {
			t.Errorf("Stack() shape = %v, want %v", c.Shape(), wantShape)
		}
	})

	t.Run("Where", func(t *testing.T) {
		cond := array.Full[bool](array.Shape{3}, true, backend)
		x := array.Full[float32](array.Shape{3}, 1.0, backend)
		y := array.Full[float32](array.Shape{3}, 0.0, backend)
		result := array.Where(cond, x, y)

		for i, v := range result.Data() {
			if v != 1.0 {
				t.Errorf("Where() data[%d] = %v, want 1.0", i, v)
			}
		}
	})
}

// TestRandReproducible verifies that seeding produces identical draws.
func TestRandReproducible(t *testing.T) {
	backend := cpu.New()

	a := array.Rand[float64](rng.New(7), array.Shape{16}, backend)
	b := array.Rand[float64](rng.New(7), array.Shape{16}, backend)

	da, db := a.Data(), b.Data()
	for i := range da {
		if da[i] != db[i] {
			t.Fatalf("draw %d differs: %v vs %v", i, da[i], db[i])
		}
	}
}

// TestViewWritesThrough verifies views share storage with their parent.
func TestViewWritesThrough(t *testing.T) {
	backend := cpu.New()

	x, err := array.FromSlice([]float64{1, 2, 3, 4}, array.Shape{2, 2}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	var row *array.View[float64, *cpu.CPUBackend] = x.Row(1)
	row.Fill(0)

	want := []float64{1, 2, 0, 0}
	for i, v := range x.Data() {
		if v != want[i] {
			t.Errorf("data[%d] = %v, want %v", i, v, want[i])
		}
	}
}

// TestAsType verifies the package-level conversion helper.
func TestAsType(t *testing.T) {
	backend := cpu.New()

	x, err := array.FromSlice([]float32{1.9, -2.5, 3.1}, array.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	converted := array.AsType[int32](x)
	if converted.DType() != array.Int32 {
		t.Errorf("DType = %v, want Int32", converted.DType())
	}
	want := []int32{1, -2, 3}
	for i, v := range converted.Data() {
		if v != want[i] {
			t.Errorf("data[%d] = %d, want %d", i, v, want[i])
		}
	}
}

// TestCountTrue counts mask bits through the public wrapper.
func TestCountTrue(t *testing.T) {
	backend := cpu.New()

	mask, err := array.FromSlice([]bool{true, false, true}, array.Shape{3}, backend)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	if n := array.CountTrue(mask); n != 2 {
		t.Errorf("CountTrue = %d, want 2", n)
	}
}
