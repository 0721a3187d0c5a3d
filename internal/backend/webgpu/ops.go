//go:build windows

package webgpu

import (
	"fmt"

	"github.com/nda-dev/nda/internal/array"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *array.RawArray) (*array.RawArray, error) {
	return b.runBinaryOp(a, other, "add", addShader)
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(a, other *array.RawArray) (*array.RawArray, error) {
	return b.runBinaryOp(a, other, "sub", subShader)
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(a, other *array.RawArray) (*array.RawArray, error) {
	return b.runBinaryOp(a, other, "mul", mulShader)
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(a, other *array.RawArray) (*array.RawArray, error) {
	return b.runBinaryOp(a, other, "div", divShader)
}

// MulScalar multiplies array elements by a scalar on GPU.
func (b *Backend) MulScalar(x *array.RawArray, scalar float32) (*array.RawArray, error) {
	return b.runScalarOp(x, scalar, "scalarMul", scalarMulShader)
}

// DivScalar divides array elements by a scalar on GPU, computed as
// multiplication by the reciprocal.
func (b *Backend) DivScalar(x *array.RawArray, scalar float32) (*array.RawArray, error) {
	if scalar == 0 {
		return nil, fmt.Errorf("webgpu: DivScalar: division by zero")
	}
	return b.runScalarOp(x, 1.0/scalar, "scalarMul", scalarMulShader)
}
