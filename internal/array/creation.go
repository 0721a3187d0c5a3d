package array

import (
	"fmt"
	"math"
)

// Zeros creates an array filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	a := array.Zeros[float32](array.Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates an array filled with ones.
//
// Example:
//
//	a := array.Ones[float64](array.Shape{2, 3}, backend)
func Ones[T DType, B Backend](shape Shape, b B) *Array[T, B] {
	return Full[T, B](shape, one[T](), b)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := array.Full[float32](array.Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Array[T, B] {
	a := Zeros[T, B](shape, b)
	a.Fill(value)
	return a
}

// Scalar creates a 0-D array holding a single value. Useful for mixing
// scalars into broadcasting operations.
func Scalar[T DType, B Backend](value T, b B) *Array[T, B] {
	return Full[T, B](Shape{}, value, b)
}

// one returns the multiplicative identity for T (true for bool).
func one[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case uint8:
		v = uint8(1)
	case bool:
		v = true
	}
	return v.(T)
}

// Arange creates a 1-D array with values from start to end (exclusive),
// stepping by one. Not supported for bool.
//
// Example:
//
//	a := array.Arange[int32](0, 10, backend) // [0, 1, 2, ..., 9]
func Arange[T DType, B Backend](start, end T, b B) *Array[T, B] {
	return ArangeStep[T, B](start, end, one[T](), b)
}

// ArangeStep creates a 1-D array with values from start to end
// (exclusive), advancing by step. Step must be positive for ascending
// ranges and negative for descending ones. Not supported for bool.
//
// Example:
//
//	a := array.ArangeStep[int32](10, 30, 5, backend) // [10, 15, 20, 25]
//
//nolint:gocyclo,cyclop // Type-specific logic for each supported numeric type
func ArangeStep[T DType, B Backend](start, end, step T, b B) *Array[T, B] {
	var numElements int
	switch s := any(start).(type) {
	case float32:
		numElements = rangeLen(float64(s), float64(any(end).(float32)), float64(any(step).(float32)))
	case float64:
		numElements = rangeLen(s, any(end).(float64), any(step).(float64))
	case int32:
		numElements = rangeLen(float64(s), float64(any(end).(int32)), float64(any(step).(int32)))
	case int64:
		numElements = rangeLen(float64(s), float64(any(end).(int64)), float64(any(step).(int64)))
	case uint8:
		numElements = rangeLen(float64(s), float64(any(end).(uint8)), float64(any(step).(uint8)))
	default:
		panic("arange not supported for this type")
	}

	a := Zeros[T, B](Shape{numElements}, b)
	data := a.Data()

	switch any(start).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		startF32 := any(start).(float32)
		stepF32 := any(step).(float32)
		for i := range dataF32 {
			dataF32[i] = startF32 + float32(i)*stepF32
		}
	case float64:
		dataF64 := any(data).([]float64)
		startF64 := any(start).(float64)
		stepF64 := any(step).(float64)
		for i := range dataF64 {
			dataF64[i] = startF64 + float64(i)*stepF64
		}
	case int32:
		dataI32 := any(data).([]int32)
		startI32 := any(start).(int32)
		stepI32 := any(step).(int32)
		for i := range dataI32 {
			dataI32[i] = startI32 + int32(i)*stepI32 //nolint:gosec // G115: i is within valid range.
		}
	case int64:
		dataI64 := any(data).([]int64)
		startI64 := any(start).(int64)
		stepI64 := any(step).(int64)
		for i := range dataI64 {
			dataI64[i] = startI64 + int64(i)*stepI64
		}
	case uint8:
		dataU8 := any(data).([]uint8)
		startU8 := any(start).(uint8)
		stepU8 := any(step).(uint8)
		for i := range dataU8 {
			dataU8[i] = startU8 + uint8(i)*stepU8 //nolint:gosec // G115: i is within valid range.
		}
	}
	return a
}

// rangeLen computes the element count of a half-open stepped range.
func rangeLen(start, end, step float64) int {
	if step == 0 {
		panic("arange: step must be nonzero")
	}
	n := int(math.Ceil((end - start) / step))
	if n < 0 {
		return 0
	}
	return n
}

// Linspace creates a 1-D array of num evenly spaced values from start to
// stop, both endpoints included. Only float types are supported.
//
// Example:
//
//	a := array.Linspace[float64](0, 1, 5, backend) // [0, 0.25, 0.5, 0.75, 1]
func Linspace[T DType, B Backend](start, stop T, num int, b B) *Array[T, B] {
	if num < 2 {
		panic(fmt.Sprintf("linspace: num must be at least 2, got %d", num))
	}

	a := Zeros[T, B](Shape{num}, b)
	data := a.Data()

	switch any(start).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		startF := float64(any(start).(float32))
		stopF := float64(any(stop).(float32))
		step := (stopF - startF) / float64(num-1)
		for i := range dataF32 {
			dataF32[i] = float32(startF + float64(i)*step)
		}
		dataF32[num-1] = any(stop).(float32)
	case float64:
		dataF64 := any(data).([]float64)
		startF := any(start).(float64)
		stopF := any(stop).(float64)
		step := (stopF - startF) / float64(num-1)
		for i := range dataF64 {
			dataF64[i] = startF + float64(i)*step
		}
		dataF64[num-1] = any(stop).(float64)
	default:
		panic("linspace only supports float32 and float64 types")
	}
	return a
}

// Logspace creates a 1-D array of num values spaced evenly on a log
// scale: base raised to exponents running from start to stop inclusive.
// Only float types are supported.
//
// Example:
//
//	a := array.Logspace[float64](0, 2, 3, 10, backend) // [1, 10, 100]
func Logspace[T DType, B Backend](start, stop T, num int, base float64, b B) *Array[T, B] {
	exponents := Linspace[T, B](start, stop, num, b)
	data := exponents.Data()

	switch any(start).(type) {
	case float32:
		dataF32 := any(data).([]float32)
		for i, v := range dataF32 {
			dataF32[i] = float32(math.Pow(base, float64(v)))
		}
	case float64:
		dataF64 := any(data).([]float64)
		for i, v := range dataF64 {
			dataF64[i] = math.Pow(base, v)
		}
	default:
		panic("logspace only supports float32 and float64 types")
	}
	return exponents
}

// Eye creates a 2-D identity matrix.
//
// Example:
//
//	a := array.Eye[float32](3, backend) // 3x3 identity matrix
func Eye[T DType, B Backend](n int, b B) *Array[T, B] {
	a := Zeros[T, B](Shape{n, n}, b)
	v := one[T]()
	for i := 0; i < n; i++ {
		a.Set(v, i, i)
	}
	return a
}
