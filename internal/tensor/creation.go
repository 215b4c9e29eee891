package tensor

import (
	"math/rand/v2"

	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"
)

// Option configures buffer construction.
type Option func(*options)

type options struct {
	dtype DataType
}

func newOptions(opts []Option) options {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDType sets the element type of the new buffer.
func WithDType(dtype DataType) Option {
	return func(o *options) {
		o.dtype = dtype
	}
}

// Number is any Go integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// FromSlice creates a buffer from a flat slice of any numeric type.
//
// Integer slices default to Int64, floating point slices to Float64; an
// explicit WithDType option overrides that.
//
// Example:
//
//	t, err := tensor.FromSlice([]int{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T Number](data []T, shape Shape, opts ...Option) (*RawTensor, error) {
	buf := make([]float64, len(data))
	for i, v := range data {
		buf[i] = float64(v)
	}
	var zero T
	switch any(zero).(type) {
	case float32, float64:
	default:
		opts = append([]Option{WithDType(Int64)}, opts...)
	}
	return New(buf, shape, opts...)
}

// Scalar creates a 0-d Float64 buffer holding v.
func Scalar(v float64) *RawTensor {
	return newRaw([]float64{v}, Shape{}, Float64)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, opts ...Option) *RawTensor {
	return Full(shape, 0, opts...)
}

// ZerosLike creates a zero tensor with the same shape and dtype as t.
func ZerosLike(t *RawTensor) *RawTensor {
	return Zeros(t.shape.Clone(), WithDType(t.dtype))
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, opts ...Option) *RawTensor {
	return Full(shape, 1, opts...)
}

// OnesLike creates a tensor of ones with the same shape and dtype as t.
func OnesLike(t *RawTensor) *RawTensor {
	return Ones(t.shape.Clone(), WithDType(t.dtype))
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, opts ...Option) *RawTensor {
	if err := shape.Validate(); err != nil {
		exceptions.Panicf("Full: %v", err)
	}
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = value
	}
	return newRaw(data, shape.Clone(), newOptions(opts).dtype)
}

// Randn creates a tensor with values drawn from N(mean, std²).
func Randn(rng *rand.Rand, shape Shape, mean, std float64, opts ...Option) *RawTensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = mean + std*rng.NormFloat64()
	}
	return newRaw(data, shape.Clone(), newOptions(opts).dtype)
}

// Uniform creates a tensor with values drawn uniformly from [low, high).
func Uniform(rng *rand.Rand, shape Shape, low, high float64, opts ...Option) *RawTensor {
	data := make([]float64, shape.NumElements())
	for i := range data {
		data[i] = low + (high-low)*rng.Float64()
	}
	return newRaw(data, shape.Clone(), newOptions(opts).dtype)
}

// Arange creates a 1-D tensor with values [start, start+1, ..., end-1].
func Arange(start, end int, opts ...Option) *RawTensor {
	if end < start {
		exceptions.Panicf("Arange: end (%d) must be >= start (%d)", end, start)
	}
	data := make([]float64, end-start)
	for i := range data {
		data[i] = float64(start + i)
	}
	return newRaw(data, Shape{len(data)}, newOptions(opts).dtype)
}

// Eye creates a 2-D identity matrix of size n×n.
func Eye(n int, opts ...Option) *RawTensor {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return newRaw(data, Shape{n, n}, newOptions(opts).dtype)
}
