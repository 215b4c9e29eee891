package tensor

import (
	"github.com/gomlx/exceptions"
)

// Reshape returns the tensor with a new shape holding the same elements.
// One dimension may be -1, in which case it is inferred.
// The result shares storage with r.
func (r *RawTensor) Reshape(shape ...int) *RawTensor {
	newShape := Shape(shape).Clone()
	infer := -1
	known := 1
	for i, d := range newShape {
		switch {
		case d == -1:
			if infer >= 0 {
				exceptions.Panicf("Reshape: only one dimension can be -1, got %v", shape)
			}
			infer = i
		case d < 0:
			exceptions.Panicf("Reshape: invalid dimension %d in %v", d, shape)
		default:
			known *= d
		}
	}
	if infer >= 0 {
		if known == 0 || len(r.data)%known != 0 {
			exceptions.Panicf("Reshape: cannot reshape %v into %v", r.shape, shape)
		}
		newShape[infer] = len(r.data) / known
	}
	if newShape.NumElements() != len(r.data) {
		exceptions.Panicf("Reshape: cannot reshape %v (%d elements) into %v", r.shape, len(r.data), shape)
	}
	return &RawTensor{data: r.data, shape: newShape, dtype: r.dtype}
}

// Ravel returns the tensor flattened to one dimension.
func (r *RawTensor) Ravel() *RawTensor {
	return r.Reshape(len(r.data))
}

// Transpose permutes the axes. With no arguments the axes are reversed.
//
// Example:
//
//	x := tensor.Zeros(tensor.Shape{2, 3, 4})
//	x.Transpose()        // shape: (4, 3, 2)
//	x.Transpose(0, 2, 1) // shape: (2, 4, 3)
func (r *RawTensor) Transpose(axes ...int) *RawTensor {
	ndim := len(r.shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	if len(axes) != ndim {
		exceptions.Panicf("Transpose: got %d axes for tensor of rank %d", len(axes), ndim)
	}

	seen := make([]bool, ndim)
	perm := make([]int, ndim)
	for i, a := range axes {
		a = NormalizeAxis(a, ndim)
		if seen[a] {
			exceptions.Panicf("Transpose: repeated axis %d in %v", a, axes)
		}
		seen[a] = true
		perm[i] = a
	}

	srcStrides := r.Strides()
	outShape := make(Shape, ndim)
	inStrides := make([]int, ndim)
	for i, a := range perm {
		outShape[i] = r.shape[a]
		inStrides[i] = srcStrides[a]
	}

	n := len(r.data)
	data := make([]float64, n)
	outStrides := outShape.ComputeStrides()
	for i := 0; i < n; i++ {
		data[i] = r.data[flatIndex(i, outStrides, inStrides)]
	}
	return &RawTensor{data: data, shape: outShape, dtype: r.dtype}
}

// ExpandDims inserts a size-1 axis at position axis.
func (r *RawTensor) ExpandDims(axis int) *RawTensor {
	ndim := len(r.shape) + 1
	axis = NormalizeAxis(axis, ndim)
	shape := make(Shape, 0, ndim)
	shape = append(shape, r.shape[:axis]...)
	shape = append(shape, 1)
	shape = append(shape, r.shape[axis:]...)
	return r.Reshape(shape...)
}

// Squeeze removes a size-1 axis.
func (r *RawTensor) Squeeze(axis int) *RawTensor {
	axis = NormalizeAxis(axis, len(r.shape))
	if r.shape[axis] != 1 {
		exceptions.Panicf("Squeeze: axis %d has size %d, expected 1", axis, r.shape[axis])
	}
	return r.Reshape(reducedShape(r.shape, axis, false)...)
}

// Repeat repeats every element n times along axis.
//
// Example:
//
//	x := [[1, 2]]          // shape: (1, 2)
//	x.Repeat(3, 0)         // [[1, 2], [1, 2], [1, 2]]
//	x.Repeat(2, 1)         // [[1, 1, 2, 2]]
func (r *RawTensor) Repeat(n, axis int) *RawTensor {
	if n < 0 {
		exceptions.Panicf("Repeat: negative repeat count %d", n)
	}
	axis = NormalizeAxis(axis, len(r.shape))
	dim := r.shape[axis]

	outer := 1
	for _, d := range r.shape[:axis] {
		outer *= d
	}
	inner := 1
	for _, d := range r.shape[axis+1:] {
		inner *= d
	}

	outShape := r.shape.Clone()
	outShape[axis] = dim * n
	data := make([]float64, outer*dim*n*inner)
	for o := 0; o < outer; o++ {
		for k := 0; k < dim*n; k++ {
			src := (o*dim + k/n) * inner
			dst := (o*dim*n + k) * inner
			copy(data[dst:dst+inner], r.data[src:src+inner])
		}
	}
	return &RawTensor{data: data, shape: outShape, dtype: r.dtype}
}
