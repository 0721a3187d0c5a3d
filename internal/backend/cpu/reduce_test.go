package cpu

import (
	"testing"

	"github.com/nda-dev/nda/internal/array"
	"github.com/nda-dev/nda/internal/parallel"
)

func TestSum(t *testing.T) {
	cpu := newBackend()

	f := cpu.Sum(raw(t, cpu, []float32{1.5, 2.5, 3}, array.Shape{3}))
	assertShape(t, f.Shape(), array.Shape{}, "sum result")
	assertSlice(t, f.AsFloat32(), []float32{7}, "float32 sum")

	i := cpu.Sum(raw(t, cpu, []int64{10, -3, 5}, array.Shape{3}))
	assertSlice(t, i.AsInt64(), []int64{12}, "int64 sum")
}

func TestSumEmptyIsZero(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{}, array.Shape{0})

	result := cpu.Sum(x)

	assertSlice(t, result.AsFloat64(), []float64{0}, "empty sum")
}

func TestSumBoolPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []bool{true, false}, array.Shape{2})

	assertPanics(t, "sum on bool array", func() {
		cpu.Sum(x)
	})
}

func TestMinMax(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{3, -1, 4, 1, 5}, array.Shape{5})

	assertSlice(t, cpu.Min(x).AsFloat32(), []float32{-1}, "min")
	assertSlice(t, cpu.Max(x).AsFloat32(), []float32{5}, "max")
}

func TestMinEmptyPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{}, array.Shape{0})

	assertPanics(t, "min of empty array", func() {
		cpu.Min(x)
	})
}

func TestArgMinFirstOccurrence(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{3, 1, 4, 1, 5}, array.Shape{5})

	result := cpu.ArgMin(x)

	if result.DType() != array.Int64 {
		t.Fatalf("argmin dtype = %v, want int64", result.DType())
	}
	assertSlice(t, result.AsInt64(), []int64{1}, "argmin ties to first")
}

func TestArgMax(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{2, 9, 9, 1}, array.Shape{2, 2})

	result := cpu.ArgMax(x)

	assertSlice(t, result.AsInt64(), []int64{1}, "argmax flat index")
}

func TestArgMinBool(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []bool{true, false, true}, array.Shape{3})

	result := cpu.ArgMin(x)

	assertSlice(t, result.AsInt64(), []int64{1}, "argmin of bool array")
}

func TestCountNonzero(t *testing.T) {
	cpu := newBackend()

	f := cpu.CountNonzero(raw(t, cpu, []float64{0, 1.5, 0, -2}, array.Shape{4}))
	assertSlice(t, f.AsInt64(), []int64{2}, "float64 count")

	b := cpu.CountNonzero(raw(t, cpu, []bool{true, false, true, true}, array.Shape{4}))
	assertSlice(t, b.AsInt64(), []int64{3}, "bool count")
}

func TestSumAxis(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	rows := cpu.SumAxis(x, 0, false)
	assertShape(t, rows.Shape(), array.Shape{3}, "sum axis 0")
	assertSlice(t, rows.AsFloat32(), []float32{5, 7, 9}, "sum axis 0")

	cols := cpu.SumAxis(x, 1, false)
	assertShape(t, cols.Shape(), array.Shape{2}, "sum axis 1")
	assertSlice(t, cols.AsFloat32(), []float32{6, 15}, "sum axis 1")

	neg := cpu.SumAxis(x, -1, false)
	assertSlice(t, neg.AsFloat32(), []float32{6, 15}, "sum axis -1")
}

func TestSumAxisKeepDims(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4, 5, 6}, array.Shape{2, 3})

	result := cpu.SumAxis(x, 1, true)

	assertShape(t, result.Shape(), array.Shape{2, 1}, "keepdims")
	assertSlice(t, result.AsFloat32(), []float32{6, 15}, "keepdims values")
}

func TestSumAxisMiddle(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float64{1, 2, 3, 4, 5, 6, 7, 8}, array.Shape{2, 2, 2})

	result := cpu.SumAxis(x, 1, false)

	assertShape(t, result.Shape(), array.Shape{2, 2}, "sum middle axis")
	assertSlice(t, result.AsFloat64(), []float64{4, 6, 12, 14}, "sum middle axis")
}

func TestSumAxisEmptyAxisGivesZeros(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{}, array.Shape{3, 0})

	result := cpu.SumAxis(x, 1, false)

	assertShape(t, result.Shape(), array.Shape{3}, "sum over empty axis")
	assertSlice(t, result.AsFloat32(), []float32{0, 0, 0}, "sum over empty axis")
}

func TestMinMaxAxis(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []int32{4, 1, 2, 8, 3, 6}, array.Shape{2, 3})

	minRows := cpu.MinAxis(x, 1, false)
	assertSlice(t, minRows.AsInt32(), []int32{1, 3}, "min axis 1")

	maxCols := cpu.MaxAxis(x, 0, false)
	assertSlice(t, maxCols.AsInt32(), []int32{8, 3, 6}, "max axis 0")
}

func TestMinAxisEmptyAxisPanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{}, array.Shape{3, 0})

	assertPanics(t, "min over empty axis", func() {
		cpu.MinAxis(x, 1, false)
	})
}

func TestArgMinAxis(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{4, 1, 2, 8, 3, 6}, array.Shape{2, 3})

	result := cpu.ArgMinAxis(x, 1, false)

	if result.DType() != array.Int64 {
		t.Fatalf("argminaxis dtype = %v, want int64", result.DType())
	}
	assertSlice(t, result.AsInt64(), []int64{1, 1}, "argmin axis 1")
}

func TestArgMaxAxisTiesToFirst(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 5, 3, 9, 2, 9}, array.Shape{2, 3})

	result := cpu.ArgMaxAxis(x, 1, false)

	assertSlice(t, result.AsInt64(), []int64{1, 0}, "argmax ties to first")
}

func TestArgMaxAxisKeepDims(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 5, 3, 9, 2, 9}, array.Shape{2, 3})

	result := cpu.ArgMaxAxis(x, 1, true)

	assertShape(t, result.Shape(), array.Shape{2, 1}, "argmax keepdims")
}

func TestAxisOutOfRangePanics(t *testing.T) {
	cpu := newBackend()
	x := raw(t, cpu, []float32{1, 2, 3, 4}, array.Shape{2, 2})

	assertPanics(t, "axis 2 on 2-D array", func() {
		cpu.SumAxis(x, 2, false)
	})
	assertPanics(t, "axis -3 on 2-D array", func() {
		cpu.MaxAxis(x, -3, false)
	})
}

func TestSumAxisParallelMatchSequential(t *testing.T) {
	seq := newBackend()
	par := NewWithParallelism(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 64})

	n := 400
	data := make([]float64, n*8)
	for i := range data {
		data[i] = float64(i % 31)
	}

	seqResult := seq.SumAxis(raw(t, seq, data, array.Shape{n, 8}), 1, false)
	parResult := par.SumAxis(raw(t, par, data, array.Shape{n, 8}), 1, false)

	assertSlice(t, parResult.AsFloat64(), seqResult.AsFloat64(), "parallel sum axis")
}
