package ops

import "github.com/born-ml/minigrad/internal/tensor"

// IndexOp is the gradient record of indexing and slicing.
//
// Forward: output = input[key]
//
// Backward:
//
//	gradInput starts as zeros of the input shape and the output gradient is
//	scattered back at the same key. Unselected positions get zero.
//
// Example:
//
//	input: [10, 20, 30, 40, 50]
//	key: 2
//	output: 30
//	gradInput: [0, 0, dL/d30, 0, 0]
type IndexOp struct {
	shape tensor.Shape
	key   []tensor.Index
}

// Index selects the elements of x addressed by key.
func Index(x *tensor.RawTensor, key ...tensor.Index) Result {
	return unaryResult(x.Slice(key...), &IndexOp{shape: x.Shape(), key: append([]tensor.Index(nil), key...)})
}

// Kind returns KindIndex.
func (op *IndexOp) Kind() Kind { return KindIndex }

// Backward scatters the gradient into a zero buffer of the input shape.
func (op *IndexOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	return tensor.Zeros(op.shape).Scatter(op.key, grad)
}
