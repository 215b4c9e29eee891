package ops

import "github.com/born-ml/minigrad/internal/tensor"

// ReshapeOp is the gradient record of Reshape and Flatten.
//
// Forward:
//
//	output = reshape(input, newShape)
//
// Backward:
//
//	∂L/∂input = reshape(∂L/∂output, input.shape)
type ReshapeOp struct {
	kind  Kind
	shape tensor.Shape // original input shape
}

// Reshape gives x a new shape with the same number of elements.
// One dimension may be -1.
func Reshape(x *tensor.RawTensor, shape ...int) Result {
	return unaryResult(x.Reshape(shape...), &ReshapeOp{kind: KindReshape, shape: x.Shape()})
}

// Flatten reshapes x to one dimension.
func Flatten(x *tensor.RawTensor) Result {
	return unaryResult(x.Ravel(), &ReshapeOp{kind: KindFlatten, shape: x.Shape()})
}

// Kind returns KindReshape or KindFlatten.
func (op *ReshapeOp) Kind() Kind { return op.kind }

// Backward reshapes the gradient back to the input shape.
func (op *ReshapeOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return grad.Reshape(op.shape...)
}
