package ops

import "github.com/born-ml/minigrad/internal/tensor"

// MulOp is the gradient record of an element-wise multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct {
	other *tensor.RawTensor // the other operand
	shape tensor.Shape      // this operand's shape before broadcasting
}

// Mul computes a * b.
func Mul(a, b *tensor.RawTensor) Result {
	return binaryResult(a.Mul(b),
		&MulOp{other: b, shape: a.Shape()},
		&MulOp{other: a, shape: b.Shape()})
}

// Kind returns KindMul.
func (op *MulOp) Kind() Kind { return KindMul }

// Backward computes outputGrad * other.
func (op *MulOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return ReduceBroadcast(grad.Mul(op.other), op.shape)
}
