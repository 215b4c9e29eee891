// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/minigrad/internal/tensor"
)

// RawTensor is the immutable N-dimensional buffer.
//
// Example:
//
//	raw, _ := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	raw.At(1, 2)    // 6
//	raw.Data()      // copy of the values
type RawTensor = tensor.RawTensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// DataType represents the element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float64 DataType = tensor.Float64
	Float32 DataType = tensor.Float32
	Float16 DataType = tensor.Float16
	Int64   DataType = tensor.Int64
)

// Option configures tensor construction.
type Option = tensor.Option

// Number is any Go integer or floating point type.
type Number = tensor.Number

// Index is one component of a slicing key.
type Index = tensor.Index

// PadMode selects how padded positions are filled.
type PadMode = tensor.PadMode

// Padding modes.
const (
	PadConstant PadMode = tensor.PadConstant
	PadEdge     PadMode = tensor.PadEdge
	PadReflect  PadMode = tensor.PadReflect
)

// WithDType sets the element type of a new tensor.
func WithDType(dtype DataType) Option { return tensor.WithDType(dtype) }

// New creates a tensor from flat row-major data.
func New(data []float64, shape Shape, opts ...Option) (*RawTensor, error) {
	return tensor.New(data, shape, opts...)
}

// FromSlice creates a tensor from a flat slice of any numeric type.
func FromSlice[T Number](data []T, shape Shape, opts ...Option) (*RawTensor, error) {
	return tensor.FromSlice(data, shape, opts...)
}

// FromValue creates a tensor from a number or a nested slice of numbers.
func FromValue(v any, opts ...Option) (*RawTensor, error) {
	return tensor.FromValue(v, opts...)
}

// Scalar creates a 0-d tensor.
func Scalar(v float64) *RawTensor { return tensor.Scalar(v) }

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, opts ...Option) *RawTensor { return tensor.Zeros(shape, opts...) }

// Ones creates a tensor filled with ones.
func Ones(shape Shape, opts ...Option) *RawTensor { return tensor.Ones(shape, opts...) }

// Full creates a tensor filled with value.
func Full(shape Shape, value float64, opts ...Option) *RawTensor {
	return tensor.Full(shape, value, opts...)
}

// Randn draws from a normal distribution.
func Randn(rng *rand.Rand, shape Shape, mean, std float64, opts ...Option) *RawTensor {
	return tensor.Randn(rng, shape, mean, std, opts...)
}

// Uniform draws from a uniform distribution over [low, high).
func Uniform(rng *rand.Rand, shape Shape, low, high float64, opts ...Option) *RawTensor {
	return tensor.Uniform(rng, shape, low, high, opts...)
}

// Arange returns the integers start, start+1, ..., end-1.
func Arange(start, end int, opts ...Option) *RawTensor { return tensor.Arange(start, end, opts...) }

// Eye returns the n×n identity matrix.
func Eye(n int, opts ...Option) *RawTensor { return tensor.Eye(n, opts...) }

// Indexing keys.

// At selects a single position and drops the axis.
func At(i int) Index { return tensor.At(i) }

// Range selects [start, stop).
func Range(start, stop int) Index { return tensor.Range(start, stop) }

// RangeStep selects [start, stop) with a positive step.
func RangeStep(start, stop, step int) Index { return tensor.RangeStep(start, stop, step) }

// From selects [start, end of axis).
func From(start int) Index { return tensor.From(start) }

// To selects [0, stop).
func To(stop int) Index { return tensor.To(stop) }

// All selects the whole axis.
func All() Index { return tensor.All() }
