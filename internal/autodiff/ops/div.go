package ops

import "github.com/born-ml/minigrad/internal/tensor"

// DivOp is the gradient record of an element-wise division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct {
	a, b       *tensor.RawTensor
	shape      tensor.Shape
	wrtDivisor bool
}

// Div computes a / b.
func Div(a, b *tensor.RawTensor) Result {
	return binaryResult(a.Div(b),
		&DivOp{a: a, b: b, shape: a.Shape()},
		&DivOp{a: a, b: b, shape: b.Shape(), wrtDivisor: true})
}

// Kind returns KindDiv.
func (op *DivOp) Kind() Kind { return KindDiv }

// Backward computes the gradient for the dividend or the divisor.
func (op *DivOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	if !op.wrtDivisor {
		return ReduceBroadcast(grad.Div(op.b), op.shape)
	}
	g := grad.Neg().Mul(op.a).Div(op.b.Mul(op.b))
	return ReduceBroadcast(g, op.shape)
}
