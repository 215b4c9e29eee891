package ops

import "github.com/born-ml/minigrad/internal/tensor"

// DotOp is the gradient record of a matrix product: output = A @ B.
//
// Backward pass:
//   - d(A@B)/dA = outputGrad @ B^T
//   - d(A@B)/dB = A^T @ outputGrad
//
// Rank-1 operands are promoted to matrices (a row vector on the left, a
// column vector on the right) so the same rules apply; gradients are reshaped
// back to the operand's own shape.
type DotOp struct {
	a, b  *tensor.RawTensor // operands promoted to rank 2
	shape tensor.Shape      // original shape of this operand
	wrtB  bool
}

// Dot computes the matrix product a @ b.
func Dot(a, b *tensor.RawTensor) Result {
	a2, b2 := a, b
	if a.NDim() == 1 {
		a2 = a.Reshape(1, -1)
	}
	if b.NDim() == 1 {
		b2 = b.Reshape(-1, 1)
	}
	return binaryResult(a.MatMul(b),
		&DotOp{a: a2, b: b2, shape: a.Shape()},
		&DotOp{a: a2, b: b2, shape: b.Shape(), wrtB: true})
}

// Kind returns KindDot.
func (op *DotOp) Kind() Kind { return KindDot }

// Backward computes the gradient for the left or right operand.
func (op *DotOp) Backward(grad *tensor.RawTensor) *tensor.RawTensor {
	m, n := op.a.Shape()[0], op.b.Shape()[1]
	g := grad.Reshape(m, n)
	if !op.wrtB {
		return g.MatMul(op.b.Transpose()).Reshape(op.shape...)
	}
	return op.a.Transpose().MatMul(g).Reshape(op.shape...)
}
