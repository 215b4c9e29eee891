package ops

import "github.com/born-ml/minigrad/internal/tensor"

// SumOp is the gradient record of a sum reduction.
//
// Forward:
//
//	y = sum(x)          (whole tensor, 0-d result)
//	y = sum(x, axis)    (axis removed)
//
// Backward:
//
//	grad_x = broadcast(grad_y, x.shape)
//
// Along an axis the reduced axis is reinserted and the gradient repeated
// over it.
type SumOp struct {
	shape tensor.Shape // input shape
	axis  int
	all   bool
}

// Sum reduces every element of x.
func Sum(x *tensor.RawTensor) Result {
	return unaryResult(x.Sum(), &SumOp{shape: x.Shape(), all: true})
}

// SumAxis reduces x along axis. Negative axes count from the end.
func SumAxis(x *tensor.RawTensor, axis int) Result {
	out := x.SumAxis(axis, false)
	axis = tensor.NormalizeAxis(axis, x.NDim())
	return unaryResult(out, &SumOp{shape: x.Shape(), axis: axis})
}

// Kind returns KindSum.
func (op *SumOp) Kind() Kind { return KindSum }

// Backward broadcasts the gradient back to the input shape.
func (op *SumOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	if op.all {
		return grad.BroadcastTo(op.shape)
	}
	return grad.ExpandDims(op.axis).Repeat(op.shape[op.axis], op.axis)
}
