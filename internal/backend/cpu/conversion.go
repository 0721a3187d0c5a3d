package cpu

import (
	"fmt"

	"github.com/nda-dev/nda/internal/array"
)

// Cast converts x to another dtype. Float to integer conversions
// truncate toward zero, and casts to bool map nonzero to true. Casting
// to the same dtype returns an array sharing x's buffer.
func (cpu *CPUBackend) Cast(x *array.RawArray, dtype array.DataType) *array.RawArray {
	if x.DType() == dtype {
		return x.Clone()
	}

	result := cpu.alloc("cast", x.Shape(), dtype)

	switch x.DType() {
	case array.Float32:
		castFrom(result, x, (*array.RawArray).AsFloat32)
	case array.Float64:
		castFrom(result, x, (*array.RawArray).AsFloat64)
	case array.Int32:
		castFrom(result, x, (*array.RawArray).AsInt32)
	case array.Int64:
		castFrom(result, x, (*array.RawArray).AsInt64)
	case array.Uint8:
		castFrom(result, x, (*array.RawArray).AsUint8)
	case array.Bool:
		castFromBool(result, x)
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", x.DType()))
	}

	return result
}

func castFrom[F numeric](result, x *array.RawArray, as func(*array.RawArray) []F) {
	src := as(x)

	switch result.DType() {
	case array.Float32:
		castNumeric(result.AsFloat32(), src)
	case array.Float64:
		castNumeric(result.AsFloat64(), src)
	case array.Int32:
		castNumeric(result.AsInt32(), src)
	case array.Int64:
		castNumeric(result.AsInt64(), src)
	case array.Uint8:
		castNumeric(result.AsUint8(), src)
	case array.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", result.DType()))
	}
}

func castNumeric[T, F numeric](dst []T, src []F) {
	for i, v := range src {
		dst[i] = T(v)
	}
}

func castFromBool(result, x *array.RawArray) {
	src := x.AsBool()

	switch result.DType() {
	case array.Float32:
		castBoolNumeric(result.AsFloat32(), src)
	case array.Float64:
		castBoolNumeric(result.AsFloat64(), src)
	case array.Int32:
		castBoolNumeric(result.AsInt32(), src)
	case array.Int64:
		castBoolNumeric(result.AsInt64(), src)
	case array.Uint8:
		castBoolNumeric(result.AsUint8(), src)
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v from bool", result.DType()))
	}
}

func castBoolNumeric[T numeric](dst []T, src []bool) {
	for i, v := range src {
		if v {
			dst[i] = 1
		}
	}
}
