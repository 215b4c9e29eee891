package tensor

import (
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/floats"
)

// Sum returns the sum of all elements as a 0-d tensor.
func (r *RawTensor) Sum() *RawTensor {
	return newRaw([]float64{floats.Sum(r.data)}, Shape{}, r.dtype)
}

// Max returns the largest element as a 0-d tensor.
func (r *RawTensor) Max() *RawTensor {
	if len(r.data) == 0 {
		exceptions.Panicf("Max: zero-size tensor of shape %v has no maximum", r.shape)
	}
	return newRaw([]float64{floats.Max(r.data)}, Shape{}, r.dtype)
}

// Min returns the smallest element as a 0-d tensor.
func (r *RawTensor) Min() *RawTensor {
	if len(r.data) == 0 {
		exceptions.Panicf("Min: zero-size tensor of shape %v has no minimum", r.shape)
	}
	return newRaw([]float64{floats.Min(r.data)}, Shape{}, r.dtype)
}

// Mean returns the arithmetic mean of all elements as a 0-d tensor.
func (r *RawTensor) Mean() *RawTensor {
	return newRaw([]float64{floats.Sum(r.data) / float64(len(r.data))}, Shape{}, floatResult(r.dtype))
}

// SumAxis sums elements along axis.
//
// Parameters:
//   - axis: axis to reduce (supports negative indexing: -1 = last axis)
//   - keepDims: if true, keep the reduced axis with size 1; if false, remove it
//
// Example:
//
//	x := tensor.Ones(tensor.Shape{2, 3, 4})
//	y := x.SumAxis(-1, true)   // shape: (2, 3, 1)
//	z := x.SumAxis(-1, false)  // shape: (2, 3)
func (r *RawTensor) SumAxis(axis int, keepDims bool) *RawTensor {
	return r.reduceAxis("SumAxis", axis, keepDims, floats.Sum)
}

// MaxAxis returns the maximum along axis.
func (r *RawTensor) MaxAxis(axis int, keepDims bool) *RawTensor {
	return r.reduceAxis("MaxAxis", axis, keepDims, floats.Max)
}

// MinAxis returns the minimum along axis.
func (r *RawTensor) MinAxis(axis int, keepDims bool) *RawTensor {
	return r.reduceAxis("MinAxis", axis, keepDims, floats.Min)
}

// reduceAxis views the buffer as (outer, n, inner) around axis and applies
// fn to every length-n fiber.
func (r *RawTensor) reduceAxis(name string, axis int, keepDims bool, fn func([]float64) float64) *RawTensor {
	if len(r.shape) == 0 {
		exceptions.Panicf("%s: cannot reduce a 0-d tensor along axis %d", name, axis)
	}
	axis = NormalizeAxis(axis, len(r.shape))
	n := r.shape[axis]

	outer := 1
	for _, d := range r.shape[:axis] {
		outer *= d
	}
	inner := 1
	for _, d := range r.shape[axis+1:] {
		inner *= d
	}

	outShape := reducedShape(r.shape, axis, keepDims)
	data := make([]float64, outer*inner)
	if n == 0 && len(data) > 0 && name != "SumAxis" {
		exceptions.Panicf("%s: zero-size axis %d of shape %v", name, axis, r.shape)
	}

	fiber := make([]float64, n)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			base := o*n*inner + i
			for k := 0; k < n; k++ {
				fiber[k] = r.data[base+k*inner]
			}
			data[o*inner+i] = fn(fiber)
		}
	}
	return newRaw(data, outShape, r.dtype)
}

func reducedShape(shape Shape, axis int, keepDims bool) Shape {
	if keepDims {
		out := shape.Clone()
		out[axis] = 1
		return out
	}
	out := make(Shape, 0, len(shape)-1)
	out = append(out, shape[:axis]...)
	return append(out, shape[axis+1:]...)
}
