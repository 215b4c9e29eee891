package ops

import "github.com/born-ml/minigrad/internal/tensor"

// NegOp is the gradient record of a negation: y = -x.
type NegOp struct{}

// Neg computes -x.
func Neg(x *tensor.RawTensor) Result {
	return unaryResult(x.Neg(), &NegOp{})
}

// Kind returns KindNeg.
func (op *NegOp) Kind() Kind { return KindNeg }

// Backward computes -grad_output.
func (op *NegOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return grad.Neg()
}
