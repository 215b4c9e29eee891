package ops

import "github.com/born-ml/minigrad/internal/tensor"

// LogOp is the gradient record of the natural logarithm: y = log(x).
//
// Backward pass:
//   - d(log(x))/dx = 1/x
//   - grad_input = grad_output / x
type LogOp struct {
	input *tensor.RawTensor
}

// Log computes ln(x).
func Log(x *tensor.RawTensor) Result {
	return unaryResult(x.Log(), &LogOp{input: x})
}

// Kind returns KindLog.
func (op *LogOp) Kind() Kind { return KindLog }

// Backward computes grad_output / x.
func (op *LogOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return grad.Div(op.input)
}
