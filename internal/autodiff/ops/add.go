package ops

import "github.com/born-ml/minigrad/internal/tensor"

// AddOp is the gradient record of an element-wise addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad reduced to a's shape
//   - d(a+b)/db = 1, so grad_b = outputGrad reduced to b's shape
type AddOp struct {
	shape tensor.Shape // operand shape before broadcasting
}

// Add computes a + b.
//
// Subtraction has no operation of its own: a - b is Add(a, Neg(b)).
func Add(a, b *tensor.RawTensor) Result {
	return binaryResult(a.Add(b),
		&AddOp{shape: a.Shape()},
		&AddOp{shape: b.Shape()})
}

// Kind returns KindAdd.
func (op *AddOp) Kind() Kind { return KindAdd }

// Backward passes the gradient through unchanged, up to broadcasting.
func (op *AddOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return ReduceBroadcast(grad, op.shape)
}
