package array

import (
	"github.com/nda-dev/nda/internal/rng"
)

// Random creation goes through an explicit rng.Generator rather than any
// process-wide generator, so draws are reproducible and isolated per
// caller.

// Rand creates an array with values uniformly distributed in [0, 1).
// Only works with float types.
//
// Example:
//
//	g := rng.New(5)
//	a := array.Rand[float32](g, array.Shape{10, 10}, backend)
func Rand[T DType, B Backend](g *rng.Generator, shape Shape, b B) *Array[T, B] {
	a := Zeros[T, B](shape, b)
	data := a.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(g.Float64())
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = g.Float64()
		}
	default:
		panic("rand only supports float32 and float64 types")
	}
	return a
}

// Randn creates an array with values drawn from the standard normal
// distribution N(0, 1). Only works with float types.
//
// Example:
//
//	g := rng.New(5)
//	a := array.Randn[float64](g, array.Shape{100, 100}, backend)
func Randn[T DType, B Backend](g *rng.Generator, shape Shape, b B) *Array[T, B] {
	a := Zeros[T, B](shape, b)
	data := a.Data()

	var dummy T
	switch any(dummy).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i := range dataF32 {
			dataF32[i] = float32(g.Norm())
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i := range dataF64 {
			dataF64[i] = g.Norm()
		}
	default:
		panic("randn only supports float32 and float64 types")
	}
	return a
}

// RandInt creates an array with integers uniformly distributed in
// [low, high). Only works with integer types.
//
// Example:
//
//	g := rng.New(5)
//	a := array.RandInt[int64](g, 0, 10, array.Shape{4}, backend)
func RandInt[T DType, B Backend](g *rng.Generator, low, high int64, shape Shape, b B) *Array[T, B] {
	if high <= low {
		panic("randint: high must be greater than low")
	}
	span := high - low

	a := Zeros[T, B](shape, b)
	data := a.Data()

	var dummy T
	switch any(dummy).(type) {
	case int32:
		dataI32 := any(data).([]int32)
		for i := range dataI32 {
			dataI32[i] = int32(low + g.Int63n(span)) //nolint:gosec // G115: caller-bounded range
		}
	case int64:
		dataI64 := any(data).([]int64)
		for i := range dataI64 {
			dataI64[i] = low + g.Int63n(span)
		}
	case uint8:
		dataU8 := any(data).([]uint8)
		for i := range dataU8 {
			dataU8[i] = uint8(low + g.Int63n(span)) //nolint:gosec // G115: caller-bounded range
		}
	default:
		panic("randint only supports int32, int64 and uint8 types")
	}
	return a
}
