package cpu

import "github.com/nda-dev/nda/internal/array"

// broadcastStrides computes element strides for reading a source array
// as if it had the target shape. Axes the source is broadcast along
// (missing axes and axes of extent 1) get stride 0, so every output
// index maps back to the single source element that feeds it.
func broadcastStrides(shape, target array.Shape) []int {
	ndim := len(target)
	strides := make([]int, ndim)
	src := shape.ComputeStrides()

	// Align the source shape with the rightmost target axes.
	pad := ndim - len(shape)

	for i := 0; i < ndim; i++ {
		if i < pad {
			strides[i] = 0
			continue
		}
		d := i - pad
		if shape[d] == 1 && target[i] > 1 {
			strides[i] = 0
		} else {
			strides[i] = src[d]
		}
	}

	return strides
}

// flatIndex maps a flat output index to the flat source index through
// the source's broadcast strides. outStrides must be the contiguous
// strides of the output shape.
func flatIndex(outIdx int, outStrides, srcStrides []int) int {
	srcIdx := 0
	rem := outIdx

	for i := 0; i < len(outStrides); i++ {
		coord := rem / outStrides[i]
		rem %= outStrides[i]
		srcIdx += coord * srcStrides[i]
	}

	return srcIdx
}
