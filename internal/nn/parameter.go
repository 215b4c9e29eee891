package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are leaf tensors that require gradients. They typically
// represent weights and biases of layers.
//
// Example:
//
//	weight := nn.NewParameter("weight", tensor.Zeros(tensor.Shape{3, 1}))
//	y := x.MatMul(weight.Tensor())
//	y.Sum().Backward()
//	grad := weight.Grad()
type Parameter struct {
	name   string
	tensor *autodiff.Tensor
}

// NewParameter wraps values in a leaf tensor that requires gradients.
func NewParameter(name string, values *tensor.RawTensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: autodiff.Param(values),
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *autodiff.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient.
//
// Returns nil after the values were updated in place and before the next
// ZeroGrad or Backward.
func (p *Parameter) Grad() *tensor.RawTensor {
	return p.tensor.Grad()
}

// ZeroGrad resets the gradient accumulator.
//
// This should be called before each training iteration to avoid
// accumulating gradients from previous iterations.
func (p *Parameter) ZeroGrad() {
	p.tensor.ZeroGrad()
}

// NumElements returns the number of scalar values in the parameter.
func (p *Parameter) NumElements() int {
	return p.tensor.Values().NumElements()
}
