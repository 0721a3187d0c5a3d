package cpu

import (
	"testing"

	"github.com/nda-dev/nda/internal/array"
)

func TestCastFloatToIntTruncates(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{0.9, 1.5, -2.7}, array.Shape{3})

	result := cpu.Cast(x, array.Int32)

	if result.DType() != array.Int32 {
		t.Fatalf("dtype = %v, want int32", result.DType())
	}
	assertSlice(t, result.AsInt32(), []int32{0, 1, -2}, "float to int truncates toward zero")
}

func TestCastIntToFloat(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int64{1, -2, 3}, array.Shape{3})

	result := cpu.Cast(x, array.Float32)

	assertSlice(t, result.AsFloat32(), []float32{1, -2, 3}, "int to float")
}

func TestCastFloat32ToFloat64(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{0.5, 1.25}, array.Shape{2})

	result := cpu.Cast(x, array.Float64)

	assertSlice(t, result.AsFloat64(), []float64{0.5, 1.25}, "float32 to float64")
}

func TestCastUint8ToInt64(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []uint8{0, 128, 255}, array.Shape{3})

	result := cpu.Cast(x, array.Int64)

	assertSlice(t, result.AsInt64(), []int64{0, 128, 255}, "uint8 to int64")
}

func TestCastToBool(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{0, 1.5, -2, 0}, array.Shape{4})

	result := cpu.Cast(x, array.Bool)

	assertSlice(t, result.AsBool(), []bool{false, true, true, false}, "nonzero maps to true")
}

func TestCastFromBool(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []bool{true, false, true}, array.Shape{3})

	u := cpu.Cast(x, array.Uint8)
	assertSlice(t, u.AsUint8(), []uint8{1, 0, 1}, "bool to uint8")

	f := cpu.Cast(x, array.Float64)
	assertSlice(t, f.AsFloat64(), []float64{1, 0, 1}, "bool to float64")
}

func TestCastSameDtypeSharesBuffer(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3}, array.Shape{3})

	result := cpu.Cast(x, array.Float32)
	defer result.Release()

	if result.IsUnique() {
		t.Error("same-dtype cast should share the source buffer")
	}
	result.AsFloat32()[0] = 99
	assertSlice(t, x.AsFloat32(), []float32{99, 2, 3}, "writes visible through both handles")
}

func TestCastPreservesShape(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	result := cpu.Cast(x, array.Float64)

	assertShape(t, result.Shape(), array.Shape{2, 3}, "cast shape")
}
