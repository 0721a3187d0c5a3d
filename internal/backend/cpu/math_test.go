package cpu

import (
	"math"
	"testing"

	"github.com/nda-dev/nda/internal/array"
)

func TestAddScalar(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3}, array.Shape{3})

	result := cpu.AddScalar(x, float32(10))

	assertSlice(t, result.AsFloat32(), []float32{11, 12, 13}, "add scalar")
	assertSlice(t, x.AsFloat32(), []float32{1, 2, 3}, "input unchanged")
}

func TestSubScalar(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{10, 20, 30}, array.Shape{3})

	result := cpu.SubScalar(x, int32(5))

	assertSlice(t, result.AsInt32(), []int32{5, 15, 25}, "sub scalar")
}

func TestMulScalar(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{1.5, -2}, array.Shape{2})

	result := cpu.MulScalar(x, float64(4))

	assertSlice(t, result.AsFloat64(), []float64{6, -8}, "mul scalar")
}

func TestDivScalar(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{10, 25}, array.Shape{2})

	result := cpu.DivScalar(x, float32(5))

	assertSlice(t, result.AsFloat32(), []float32{2, 5}, "div scalar")
}

func TestScalarWrongTypePanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2}, array.Shape{2})

	assertPanics(t, "float64 scalar against float32 array", func() {
		cpu.AddScalar(x, float64(1))
	})
}

func TestScalarBoolPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []bool{true}, array.Shape{1})

	assertPanics(t, "scalar arithmetic on bool array", func() {
		cpu.MulScalar(x, true)
	})
}

func TestPow(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3}, array.Shape{3})

	result := cpu.Pow(x, 2)

	assertSlice(t, result.AsFloat32(), []float32{1, 4, 9}, "pow")
}

func TestPowFractionalExponent(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{4, 9, 16}, array.Shape{3})

	result := cpu.Pow(x, 0.5)

	assertSlice(t, result.AsFloat64(), []float64{2, 3, 4}, "pow 0.5")
}

func TestPowIntPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{2}, array.Shape{1})

	assertPanics(t, "pow on int32", func() {
		cpu.Pow(x, 2)
	})
}

func TestNeg(t *testing.T) {
	cpu := newBackend()

	f := cpu.Neg(raw(t, cpu, []float32{1, -2, 0}, array.Shape{3}))
	assertSlice(t, f.AsFloat32(), []float32{-1, 2, 0}, "float32 neg")

	i := cpu.Neg(raw(t, cpu, []int64{5, -7}, array.Shape{2}))
	assertSlice(t, i.AsInt64(), []int64{-5, 7}, "int64 neg")

	u := cpu.Neg(raw(t, cpu, []uint8{0, 5}, array.Shape{2}))
	assertSlice(t, u.AsUint8(), []uint8{0, 251}, "uint8 neg wraps")
}

func TestAbs(t *testing.T) {
	cpu := newBackend()

	f := cpu.Abs(raw(t, cpu, []float64{-1.5, 2.5, 0}, array.Shape{3}))
	assertSlice(t, f.AsFloat64(), []float64{1.5, 2.5, 0}, "float64 abs")

	i := cpu.Abs(raw(t, cpu, []int32{-3, 4}, array.Shape{2}))
	assertSlice(t, i.AsInt32(), []int32{3, 4}, "int32 abs")
}

func TestSquare(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{-3, 0.5, 4}, array.Shape{3})

	result := cpu.Square(x)

	assertSlice(t, result.AsFloat32(), []float32{9, 0.25, 16}, "square")
}

func TestSqrt(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{4, 2.25, 0}, array.Shape{3})

	result := cpu.Sqrt(x)

	assertSlice(t, result.AsFloat64(), []float64{2, 1.5, 0}, "sqrt")
}

func TestSqrtNegativeIsNaN(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{-1}, array.Shape{1})

	result := cpu.Sqrt(x)

	if !math.IsNaN(result.AsFloat64()[0]) {
		t.Errorf("sqrt(-1) = %v, want NaN", result.AsFloat64()[0])
	}
}

func TestSqrtIntPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{4}, array.Shape{1})

	assertPanics(t, "sqrt on int32", func() {
		cpu.Sqrt(x)
	})
}

func TestExp(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{0, 1, -1}, array.Shape{3})

	result := cpu.Exp(x)

	want := []float32{1, float32(math.Exp(1)), float32(math.Exp(-1))}
	assertSlice(t, result.AsFloat32(), want, "exp")
}

func TestLog(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{1, math.E}, array.Shape{2})

	result := cpu.Log(x)

	assertSlice(t, result.AsFloat64(), []float64{0, 1}, "log")
}

func TestLogZeroIsNegInf(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{0}, array.Shape{1})

	result := cpu.Log(x)

	if !math.IsInf(result.AsFloat64()[0], -1) {
		t.Errorf("log(0) = %v, want -Inf", result.AsFloat64()[0])
	}
}

func TestCeilFloor(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{1.2, -1.2, 3}, array.Shape{3})

	assertSlice(t, cpu.Ceil(x).AsFloat64(), []float64{2, -1, 3}, "ceil")
	assertSlice(t, cpu.Floor(x).AsFloat64(), []float64{1, -2, 3}, "floor")
}

func TestRintTiesToEven(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{0.5, 1.5, 2.5, -0.5, 1.4}, array.Shape{5})

	result := cpu.Rint(x)

	assertSlice(t, result.AsFloat64(), []float64{0, 2, 2, 0, 1}, "rint")
}

func TestIsNaN(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, float32(math.NaN()), 3}, array.Shape{3})

	result := cpu.IsNaN(x)

	if result.DType() != array.Bool {
		t.Fatalf("IsNaN dtype = %v, want bool", result.DType())
	}
	assertSlice(t, result.AsBool(), []bool{false, true, false}, "isnan")
}

func TestIsNaNIntAllFalse(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{1, 0, -5}, array.Shape{3})

	result := cpu.IsNaN(x)

	assertSlice(t, result.AsBool(), []bool{false, false, false}, "isnan on int32")
}
