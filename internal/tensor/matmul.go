package tensor

import (
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/mat"
)

// MatMul returns the matrix product r @ other.
//
// Operands must have rank 1 or 2. As in NumPy, a rank-1 left operand is
// treated as a row vector and a rank-1 right operand as a column vector; the
// promoted axis is removed from the result, so vector @ vector is a 0-d dot
// product.
func (r *RawTensor) MatMul(other *RawTensor) *RawTensor {
	if r.NDim() < 1 || r.NDim() > 2 || other.NDim() < 1 || other.NDim() > 2 {
		exceptions.Panicf("MatMul: operands must have rank 1 or 2, got %v and %v", r.shape, other.shape)
	}

	m, k := 1, r.shape[0]
	if r.NDim() == 2 {
		m, k = r.shape[0], r.shape[1]
	}
	k2, n := other.shape[0], 1
	if other.NDim() == 2 {
		n = other.shape[1]
	}
	if k != k2 {
		exceptions.Panicf("MatMul: inner dimensions do not match: %v @ %v", r.shape, other.shape)
	}

	outShape := Shape{}
	if r.NDim() == 2 {
		outShape = append(outShape, m)
	}
	if other.NDim() == 2 {
		outShape = append(outShape, n)
	}
	dtype := Promote(r.dtype, other.dtype)

	data := make([]float64, m*n)
	if m == 0 || n == 0 || k == 0 {
		return newRaw(data, outShape, dtype)
	}

	a := mat.NewDense(m, k, r.Data())
	b := mat.NewDense(k, n, other.Data())
	out := mat.NewDense(m, n, data)
	out.Mul(a, b)
	return newRaw(data, outShape, dtype)
}
