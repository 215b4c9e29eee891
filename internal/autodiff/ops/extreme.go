package ops

import "github.com/born-ml/minigrad/internal/tensor"

// ExtremeOp is the gradient record of Max and Min reductions.
//
// Backward pass:
//   - the gradient flows only to the elements equal to the extreme value
//   - ties all receive the full gradient
type ExtremeOp struct {
	kind Kind
	mask *tensor.RawTensor // 1 at the positions holding the extreme value
	axis int
	all  bool
}

// Max reduces x to its largest element.
func Max(x *tensor.RawTensor) Result {
	out := x.Max()
	return unaryResult(out, &ExtremeOp{kind: KindMax, mask: x.ElementEqual(out), all: true})
}

// MaxAxis reduces x to its largest elements along axis.
func MaxAxis(x *tensor.RawTensor, axis int) Result {
	axis = tensor.NormalizeAxis(axis, x.NDim())
	mask := x.ElementEqual(x.MaxAxis(axis, true))
	return unaryResult(x.MaxAxis(axis, false), &ExtremeOp{kind: KindMax, mask: mask, axis: axis})
}

// Min reduces x to its smallest element.
func Min(x *tensor.RawTensor) Result {
	out := x.Min()
	return unaryResult(out, &ExtremeOp{kind: KindMin, mask: x.ElementEqual(out), all: true})
}

// MinAxis reduces x to its smallest elements along axis.
func MinAxis(x *tensor.RawTensor, axis int) Result {
	axis = tensor.NormalizeAxis(axis, x.NDim())
	mask := x.ElementEqual(x.MinAxis(axis, true))
	return unaryResult(x.MinAxis(axis, false), &ExtremeOp{kind: KindMin, mask: mask, axis: axis})
}

// Kind returns KindMax or KindMin.
func (op *ExtremeOp) Kind() Kind { return op.kind }

// Backward routes the gradient to the extreme positions.
func (op *ExtremeOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	if !op.all {
		grad = grad.ExpandDims(op.axis)
	}
	return grad.Mul(op.mask)
}
