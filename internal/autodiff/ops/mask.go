package ops

import (
	"math"

	"github.com/born-ml/minigrad/internal/tensor"
)

// MaskOp is the gradient record of operations that route the output
// gradient to a subset of the input elements: Maximum, Minimum and Clip.
//
// Backward pass:
//   - grad_input = outputGrad * mask, reduced to the operand's shape
//
// The mask is computed during the forward pass from the operand values.
type MaskOp struct {
	kind  Kind
	mask  *tensor.RawTensor // 1 where the gradient flows, 0 elsewhere
	shape tensor.Shape
}

// Maximum computes the element-wise maximum of a and b.
// On ties the gradient goes to a.
func Maximum(a, b *tensor.RawTensor) Result {
	return binaryResult(a.Maximum(b),
		&MaskOp{kind: KindMaximum, mask: a.GreaterEqual(b), shape: a.Shape()},
		&MaskOp{kind: KindMaximum, mask: b.Greater(a), shape: b.Shape()})
}

// Minimum computes the element-wise minimum of a and b.
// On ties the gradient goes to a.
func Minimum(a, b *tensor.RawTensor) Result {
	return binaryResult(a.Minimum(b),
		&MaskOp{kind: KindMinimum, mask: a.LessEqual(b), shape: a.Shape()},
		&MaskOp{kind: KindMinimum, mask: b.Less(a), shape: b.Shape()})
}

// Clip limits x to [lo, hi]. Pass math.Inf(-1) or math.Inf(1) to leave a
// side open. Elements outside the bounds receive no gradient.
func Clip(x *tensor.RawTensor, lo, hi float64) Result {
	mask := tensor.OnesLike(x)
	if !math.IsInf(lo, -1) {
		mask = mask.Mul(x.GreaterEqual(tensor.Scalar(lo)))
	}
	if !math.IsInf(hi, 1) {
		mask = mask.Mul(x.LessEqual(tensor.Scalar(hi)))
	}
	return unaryResult(x.Clip(lo, hi), &MaskOp{kind: KindClip, mask: mask, shape: x.Shape()})
}

// Kind returns the operation the mask belongs to.
func (op *MaskOp) Kind() Kind { return op.kind }

// Backward computes outputGrad * mask.
func (op *MaskOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return ReduceBroadcast(grad.Mul(op.mask), op.shape)
}
