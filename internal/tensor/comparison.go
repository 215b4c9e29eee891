package tensor

import (
	"gonum.org/v1/gonum/floats"
)

// Comparisons return a mask of the broadcast shape holding 1 where the
// condition holds and 0 elsewhere. Masks always have Float64 elements.

func mask(cond bool) float64 {
	if cond {
		return 1
	}
	return 0
}

// Greater returns the mask a > b.
func (r *RawTensor) Greater(other *RawTensor) *RawTensor {
	return binary(r, other, Float64, func(x, y float64) float64 { return mask(x > y) })
}

// GreaterEqual returns the mask a >= b.
func (r *RawTensor) GreaterEqual(other *RawTensor) *RawTensor {
	return binary(r, other, Float64, func(x, y float64) float64 { return mask(x >= y) })
}

// Less returns the mask a < b.
func (r *RawTensor) Less(other *RawTensor) *RawTensor {
	return binary(r, other, Float64, func(x, y float64) float64 { return mask(x < y) })
}

// LessEqual returns the mask a <= b.
func (r *RawTensor) LessEqual(other *RawTensor) *RawTensor {
	return binary(r, other, Float64, func(x, y float64) float64 { return mask(x <= y) })
}

// ElementEqual returns the mask a == b.
func (r *RawTensor) ElementEqual(other *RawTensor) *RawTensor {
	return binary(r, other, Float64, func(x, y float64) float64 { return mask(x == y) })
}

// AllClose reports whether both tensors have the same shape and every pair of
// elements is within tol of each other (absolute or relative).
func (r *RawTensor) AllClose(other *RawTensor, tol float64) bool {
	if !r.shape.Equal(other.shape) {
		return false
	}
	return floats.EqualApprox(r.data, other.data, tol)
}
