package ops

import "github.com/born-ml/minigrad/internal/tensor"

// PowOp is the gradient record of an element-wise power: output = a ^ b.
//
// Backward pass:
//   - d(a^b)/da = b * a^(b-1)
//   - d(a^b)/db = ln(a) * a^b
//
// The exponent gradient is NaN wherever a is negative, as ln(a) is.
type PowOp struct {
	a, b        *tensor.RawTensor
	output      *tensor.RawTensor
	shape       tensor.Shape
	wrtExponent bool
}

// Pow computes a ^ b.
func Pow(a, b *tensor.RawTensor) Result {
	out := a.Pow(b)
	return binaryResult(out,
		&PowOp{a: a, b: b, output: out, shape: a.Shape()},
		&PowOp{a: a, b: b, output: out, shape: b.Shape(), wrtExponent: true})
}

// Kind returns KindPow.
func (op *PowOp) Kind() Kind { return KindPow }

// Backward computes the gradient for the base or the exponent.
func (op *PowOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	if !op.wrtExponent {
		local := op.b.Mul(op.a.Pow(op.b.AddScalar(-1)))
		return ReduceBroadcast(grad.Mul(local), op.shape)
	}
	return ReduceBroadcast(grad.Mul(op.a.Log().Mul(op.output)), op.shape)
}
