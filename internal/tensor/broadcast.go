package tensor

import (
	"github.com/gomlx/exceptions"
)

// broadcastStrides computes strides for reading a buffer of inShape as if it
// had outShape. Broadcast and padded dimensions get stride 0.
func broadcastStrides(inShape, outShape Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	inDim := len(inShape)
	offset := outDim - inDim
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0 || inIdx >= inDim:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}
	return strides
}

// flatIndex maps a flat output index to the flat index of a source buffer
// read with inStrides.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flat := 0
	for i := range outStrides {
		if outStrides[i] == 0 {
			continue
		}
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flat += coord * inStrides[i]
	}
	return flat
}

// BroadcastTo returns the buffer expanded to shape following broadcasting rules.
func (r *RawTensor) BroadcastTo(shape Shape) *RawTensor {
	if r.shape.Equal(shape) {
		return r
	}
	out, _, err := BroadcastShapes(r.shape, shape)
	if err != nil || !out.Equal(shape) {
		exceptions.Panicf("BroadcastTo: cannot broadcast %v to %v", r.shape, shape)
	}
	return gather(r, shape)
}

// gather materializes r read with broadcast strides as a buffer of shape.
func gather(r *RawTensor, shape Shape) *RawTensor {
	n := shape.NumElements()
	data := make([]float64, n)
	outStrides := shape.ComputeStrides()
	inStrides := broadcastStrides(r.shape, shape)
	for i := 0; i < n; i++ {
		data[i] = r.data[flatIndex(i, outStrides, inStrides)]
	}
	return &RawTensor{data: data, shape: shape.Clone(), dtype: r.dtype}
}

// binary applies fn element-wise over the broadcast of a and b.
func binary(a, b *RawTensor, dtype DataType, fn func(x, y float64) float64) *RawTensor {
	outShape, needsBroadcast, err := BroadcastShapes(a.shape, b.shape)
	if err != nil {
		exceptions.Panicf("%v", err)
	}
	n := outShape.NumElements()
	data := make([]float64, n)

	if !needsBroadcast && len(a.shape) == len(b.shape) {
		for i := range data {
			data[i] = fn(a.data[i], b.data[i])
		}
		return newRaw(data, outShape, dtype)
	}

	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(a.shape, outShape)
	bStrides := broadcastStrides(b.shape, outShape)
	for i := 0; i < n; i++ {
		data[i] = fn(a.data[flatIndex(i, outStrides, aStrides)], b.data[flatIndex(i, outStrides, bStrides)])
	}
	return newRaw(data, outShape, dtype)
}

// unary applies fn to every element.
func unary(r *RawTensor, dtype DataType, fn func(x float64) float64) *RawTensor {
	data := make([]float64, len(r.data))
	for i, v := range r.data {
		data[i] = fn(v)
	}
	return newRaw(data, r.shape.Clone(), dtype)
}
