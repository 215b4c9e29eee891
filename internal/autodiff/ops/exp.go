package ops

import "github.com/born-ml/minigrad/internal/tensor"

// ExpOp is the gradient record of the exponential: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp struct {
	output *tensor.RawTensor // exp(x)
}

// Exp computes e^x.
func Exp(x *tensor.RawTensor) Result {
	out := x.Exp()
	return unaryResult(out, &ExpOp{output: out})
}

// Kind returns KindExp.
func (op *ExpOp) Kind() Kind { return KindExp }

// Backward computes grad_output * exp(x).
func (op *ExpOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return grad.Mul(op.output)
}
