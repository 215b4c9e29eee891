package tensor

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// RawTensor is the low-level numeric buffer.
//
// A RawTensor never changes after construction: operations allocate new
// storage for their result. Views produced by Reshape may share storage with
// their source, which is safe because neither side is ever written again.
type RawTensor struct {
	data  []float64 // Row-major element storage
	shape Shape     // Tensor dimensions
	dtype DataType  // Element precision
}

// newRaw wraps data without copying. The caller gives up ownership of data.
// Values are rounded to the precision of dtype.
func newRaw(data []float64, shape Shape, dtype DataType) *RawTensor {
	if len(data) != shape.NumElements() {
		exceptions.Panicf("buffer of %d elements does not match shape %v", len(data), shape)
	}
	if dtype != Float64 {
		for i, v := range data {
			data[i] = dtype.Round(v)
		}
	}
	return &RawTensor{data: data, shape: shape, dtype: dtype}
}

// New creates a buffer from a flat row-major slice and a shape.
// The data is copied.
func New(data []float64, shape Shape, opts ...Option) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	cfg := newOptions(opts)
	buf := make([]float64, len(data))
	copy(buf, data)
	return newRaw(buf, shape.Clone(), cfg.dtype), nil
}

// Shape returns a copy of the tensor shape.
func (r *RawTensor) Shape() Shape {
	return r.shape.Clone()
}

// Strides returns the row-major strides of the tensor.
func (r *RawTensor) Strides() []int {
	return r.shape.ComputeStrides()
}

// DType returns the element type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// Size is an alias for NumElements.
func (r *RawTensor) Size() int {
	return len(r.data)
}

// NDim returns the number of dimensions.
func (r *RawTensor) NDim() int {
	return len(r.shape)
}

// Data returns a copy of the underlying row-major storage.
func (r *RawTensor) Data() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)
	return out
}

// Item returns the single value of a one-element tensor.
func (r *RawTensor) Item() float64 {
	if len(r.data) != 1 {
		exceptions.Panicf("Item() requires a single-element tensor, got shape %v", r.shape)
	}
	return r.data[0]
}

// At returns the element at the given multi-dimensional index.
// Negative indices count from the end of the dimension.
func (r *RawTensor) At(idx ...int) float64 {
	if len(idx) != len(r.shape) {
		exceptions.Panicf("At: got %d indices for tensor of rank %d", len(idx), len(r.shape))
	}
	strides := r.Strides()
	offset := 0
	for i, v := range idx {
		dim := r.shape[i]
		if v < 0 {
			v += dim
		}
		if v < 0 || v >= dim {
			exceptions.Panicf("At: index %d out of range for axis %d with size %d", idx[i], i, dim)
		}
		offset += v * strides[i]
	}
	return r.data[offset]
}

// AsType returns a copy of the tensor converted to dtype.
func (r *RawTensor) AsType(dtype DataType) *RawTensor {
	return newRaw(r.Data(), r.shape.Clone(), dtype)
}

// Equal reports whether both tensors have the same shape and identical values.
func (r *RawTensor) Equal(other *RawTensor) bool {
	if !r.shape.Equal(other.shape) {
		return false
	}
	for i, v := range r.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}
