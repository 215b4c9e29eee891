package autodiff

import "github.com/born-ml/minigrad/internal/tensor"

// In-place arithmetic replaces the values with plain buffer arithmetic. It is
// not differentiable: no edge is recorded and the gradient is cleared, as
// with SetValues. Results computed earlier from t keep the values they saw.
//
// Typical use is a parameter update:
//
//	w.SubAssign(autodiff.Const(w.Grad().MulScalar(lr)))

// AddAssign sets t = t + other.
func (t *Tensor) AddAssign(other *Tensor) *Tensor {
	return t.assign(t.values.Add(other.values))
}

// SubAssign sets t = t - other.
func (t *Tensor) SubAssign(other *Tensor) *Tensor {
	return t.assign(t.values.Sub(other.values))
}

// MulAssign sets t = t * other.
func (t *Tensor) MulAssign(other *Tensor) *Tensor {
	return t.assign(t.values.Mul(other.values))
}

// DivAssign sets t = t / other.
func (t *Tensor) DivAssign(other *Tensor) *Tensor {
	return t.assign(t.values.Div(other.values))
}

// PowAssign sets t = t ^ other.
func (t *Tensor) PowAssign(other *Tensor) *Tensor {
	return t.assign(t.values.Pow(other.values))
}

// MatMulAssign sets t = t @ other.
func (t *Tensor) MatMulAssign(other *Tensor) *Tensor {
	return t.assign(t.values.MatMul(other.values))
}

func (t *Tensor) assign(values *tensor.RawTensor) *Tensor {
	t.SetValues(values)
	return t
}
