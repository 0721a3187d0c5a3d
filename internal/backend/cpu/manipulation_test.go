package cpu

import (
	"testing"

	"github.com/nda-dev/nda/internal/array"
)

func TestReshape(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	result := cpu.Reshape(x, array.Shape{3, 2})

	assertShape(t, result.Shape(), array.Shape{3, 2}, "reshape")
	assertSlice(t, result.AsFloat32(), []float32{1, 2, 3, 4, 5, 6}, "reshape preserves order")
}

func TestReshapeScalar(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{42}, array.Shape{})

	result := cpu.Reshape(x, array.Shape{1, 1})

	assertShape(t, result.Shape(), array.Shape{1, 1}, "reshape scalar")
	assertSlice(t, result.AsFloat64(), []float64{42}, "reshape scalar")
}

func TestReshapeElementMismatchPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4}, array.Shape{4})

	assertPanics(t, "reshape 4 elements to (3,)", func() {
		cpu.Reshape(x, array.Shape{3})
	})
}

func TestTransposeDefault(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	result := cpu.Transpose(x)

	assertShape(t, result.Shape(), array.Shape{3, 2}, "transpose")
	assertSlice(t, result.AsFloat32(), []float32{1, 4, 2, 5, 3, 6}, "transpose")
}

func TestTransposeReverses3D(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 2, 2})

	result := cpu.Transpose(x)

	assertShape(t, result.Shape(), array.Shape{2, 2, 2}, "3-D transpose")
	assertSlice(t, result.AsInt32(), []int32{1, 5, 3, 7, 2, 6, 4, 8}, "3-D transpose")
}

func TestTransposeExplicitAxes(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4, 5, 6}, array.Shape{1, 2, 3})

	result := cpu.Transpose(x, 1, 2, 0)

	assertShape(t, result.Shape(), array.Shape{2, 3, 1}, "transpose(1,2,0)")
	assertSlice(t, result.AsFloat32(), []float32{1, 2, 3, 4, 5, 6}, "transpose(1,2,0)")
}

func TestTransposeBadAxesPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4}, array.Shape{2, 2})

	assertPanics(t, "duplicate axes", func() {
		cpu.Transpose(x, 0, 0)
	})
	assertPanics(t, "wrong axis count", func() {
		cpu.Transpose(x, 0)
	})
	assertPanics(t, "axis out of bounds", func() {
		cpu.Transpose(x, 0, 2)
	})
}

func TestConcatAxis0(t *testing.T) {
	cpu := newBackend()
	a := raw(t, cpu, []float32{1, 2}, array.Shape{1, 2})
	b := raw(t, cpu, []float32{3, 4, 5, 6}, array.Shape{2, 2})

	result := cpu.Concat([]*array.RawArray{a, b}, 0)

	assertShape(t, result.Shape(), array.Shape{3, 2}, "concat axis 0")
	assertSlice(t, result.AsFloat32(), []float32{1, 2, 3, 4, 5, 6}, "concat axis 0")
}

func TestConcatAxis1(t *testing.T) {
	cpu := newBackend()
	a := raw(t, cpu, []float32{1, 2, 5, 6}, array.Shape{2, 2})
	b := raw(t, cpu, []float32{3, 7}, array.Shape{2, 1})

	result := cpu.Concat([]*array.RawArray{a, b}, 1)

	assertShape(t, result.Shape(), array.Shape{2, 3}, "concat axis 1")
	assertSlice(t, result.AsFloat32(), []float32{1, 2, 3, 5, 6, 7}, "concat axis 1")
}

func TestConcatNegativeAxis(t *testing.T) {
	cpu := newBackend()
	a := raw(t, cpu, []int64{1, 2}, array.Shape{2, 1})
	b := raw(t, cpu, []int64{3, 4}, array.Shape{2, 1})

	result := cpu.Concat([]*array.RawArray{a, b}, -1)

	assertShape(t, result.Shape(), array.Shape{2, 2}, "concat axis -1")
	assertSlice(t, result.AsInt64(), []int64{1, 3, 2, 4}, "concat axis -1")
}

func TestConcatMismatchPanics(t *testing.T) {
	cpu := newBackend()

	assertPanics(t, "off-axis extent mismatch", func() {
		a := raw(t, cpu, []float32{1, 2}, array.Shape{1, 2})
		b := raw(t, cpu, []float32{1, 2, 3}, array.Shape{1, 3})
		cpu.Concat([]*array.RawArray{a, b}, 0)
	})
	assertPanics(t, "dtype mismatch", func() {
		a := raw(t, cpu, []float32{1}, array.Shape{1})
		b := raw(t, cpu, []int32{1}, array.Shape{1})
		cpu.Concat([]*array.RawArray{a, b}, 0)
	})
	assertPanics(t, "no inputs", func() {
		cpu.Concat(nil, 0)
	})
}

func TestNarrow(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, array.Shape{3, 4})

	cols := cpu.Narrow(x, 1, 1, 2)
	assertShape(t, cols.Shape(), array.Shape{3, 2}, "narrow columns")
	assertSlice(t, cols.AsFloat32(), []float32{2, 3, 6, 7, 10, 11}, "narrow columns")

	rows := cpu.Narrow(x, 0, 2, 1)
	assertShape(t, rows.Shape(), array.Shape{1, 4}, "narrow rows")
	assertSlice(t, rows.AsFloat32(), []float32{9, 10, 11, 12}, "narrow rows")
}

func TestNarrowOutOfBoundsPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3}, array.Shape{3})

	assertPanics(t, "narrow past the end", func() {
		cpu.Narrow(x, 0, 2, 2)
	})
}

func TestExpand(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3}, array.Shape{1, 3})

	result := cpu.Expand(x, array.Shape{4, 3})

	assertShape(t, result.Shape(), array.Shape{4, 3}, "expand")
	assertSlice(t, result.AsFloat32(), []float32{1, 2, 3, 1, 2, 3, 1, 2, 3, 1, 2, 3}, "expand")
}

func TestExpandAddsLeadingAxes(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{7, 8}, array.Shape{2})

	result := cpu.Expand(x, array.Shape{3, 2})

	assertShape(t, result.Shape(), array.Shape{3, 2}, "expand leading")
	assertSlice(t, result.AsInt32(), []int32{7, 8, 7, 8, 7, 8}, "expand leading")
}

func TestExpandInvalidPanics(t *testing.T) {
	cpu := newBackend()

	assertPanics(t, "incompatible target", func() {
		x := raw(t, cpu, []float32{1, 2, 3}, array.Shape{3})
		cpu.Expand(x, array.Shape{4, 2})
	})
	assertPanics(t, "target smaller than source", func() {
		x := raw(t, cpu, []float32{1, 2, 3, 4}, array.Shape{4, 1})
		cpu.Expand(x, array.Shape{1, 1})
	})
}
