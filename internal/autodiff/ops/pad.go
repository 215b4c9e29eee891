package ops

import "github.com/born-ml/minigrad/internal/tensor"

// PadOp is the gradient record of border padding.
//
// Backward:
//
//	∂L/∂input = ∂L/∂output[before_0:before_0+dim_0, ...]
//
// Only the interior receives gradient, whatever the padding mode.
type PadOp struct {
	interior []tensor.Index
}

// Pad adds widths[i][0] elements before and widths[i][1] after axis i.
func Pad(x *tensor.RawTensor, widths [][2]int, mode tensor.PadMode) Result {
	out := x.Pad(widths, mode)
	shape := x.Shape()
	interior := make([]tensor.Index, len(shape))
	for i, dim := range shape {
		interior[i] = tensor.Range(widths[i][0], widths[i][0]+dim)
	}
	return unaryResult(out, &PadOp{interior: interior})
}

// Kind returns KindPad.
func (op *PadOp) Kind() Kind { return KindPad }

// Backward slices the gradient back to the unpadded region.
func (op *PadOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return grad.Slice(op.interior...)
}
