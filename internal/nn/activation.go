package nn

import (
	"math"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
)

// ReLU is a Rectified Linear Unit activation layer.
//
// Applies the element-wise function: f(x) = max(0, x), computed as a clip
// with no upper bound so negative inputs receive no gradient.
type ReLU struct{ base }

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{base{name: "ReLU"}}
}

// Forward applies ReLU activation.
func (r *ReLU) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	return input.Clip(0, math.Inf(1))
}

// Sigmoid is a sigmoid activation layer.
//
// Applies the element-wise function: σ(x) = 1 / (1 + exp(-x))
type Sigmoid struct{ base }

// NewSigmoid creates a new Sigmoid activation layer.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{base{name: "Sigmoid"}}
}

// Forward applies Sigmoid activation.
func (s *Sigmoid) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	return input.Neg().Exp().AddScalar(1).RDivScalar(1)
}

// Tanh is a hyperbolic tangent activation layer.
//
// Applies (1 - exp(-x)) / (1 + exp(-x)), which equals tanh(x/2) and
// squashes values to the range (-1, 1).
type Tanh struct{ base }

// NewTanh creates a new Tanh activation layer.
func NewTanh() *Tanh {
	return &Tanh{base{name: "Tanh"}}
}

// Forward applies Tanh activation.
func (t *Tanh) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	e := input.Neg().Exp()
	return e.RSubScalar(1).Div(e.AddScalar(1))
}

// Softmax normalizes the last axis into probabilities.
//
// The row maximum is subtracted first as a constant, which leaves the result
// and its gradient unchanged but keeps exp from overflowing.
type Softmax struct{ base }

// NewSoftmax creates a new Softmax layer.
func NewSoftmax() *Softmax {
	return &Softmax{base{name: "Softmax"}}
}

// Forward applies softmax over the last axis.
func (s *Softmax) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	shape := input.Shape()
	if len(shape) == 0 {
		return input.Sub(input).Exp()
	}
	last := len(shape) - 1
	shift := autodiff.Const(input.Values().MaxAxis(last, true))
	e := input.Sub(shift).Exp()

	kept := append(tensor.Shape(nil), shape...)
	kept[last] = 1
	return e.Div(e.Sum(last).Reshape(kept...))
}
