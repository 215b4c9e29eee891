package ops

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// TransposeOp is the gradient record of an axis permutation.
//
// Forward:
//
//	output = transpose(input, axes)
//
// Backward:
//
//	∂L/∂input = transpose(∂L/∂output, argsort(axes))
type TransposeOp struct {
	inverse []int
}

// Transpose permutes the axes of x. With no axes the order is reversed.
func Transpose(x *tensor.RawTensor, axes ...int) Result {
	ndim := x.NDim()
	out := x.Transpose(axes...)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	return unaryResult(out, &TransposeOp{inverse: inversePermutation(axes, ndim)})
}

// inversePermutation returns argsort(axes).
func inversePermutation(axes []int, ndim int) []int {
	keys := make([]float64, len(axes))
	for i, a := range axes {
		keys[i] = float64(tensor.NormalizeAxis(a, ndim))
	}
	inverse := make([]int, len(axes))
	floats.Argsort(keys, inverse)
	return inverse
}

// Kind returns KindTranspose.
func (op *TransposeOp) Kind() Kind { return KindTranspose }

// Backward transposes the gradient with the inverse permutation.
func (op *TransposeOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return grad.Transpose(op.inverse...)
}
