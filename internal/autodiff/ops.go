package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Binary operations. Operands broadcast following NumPy rules; the gradient
// of each operand is reduced back to its own shape.

// Add returns t + other.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return build(ops.Add(t.values, other.values), t, other)
}

// Sub returns t - other, computed as t + (-other).
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.Add(other.Neg())
}

// Mul returns the element-wise product t * other.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return build(ops.Mul(t.values, other.values), t, other)
}

// Div returns t / other.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return build(ops.Div(t.values, other.values), t, other)
}

// Pow returns t raised to the power other.
func (t *Tensor) Pow(other *Tensor) *Tensor {
	return build(ops.Pow(t.values, other.values), t, other)
}

// MatMul returns the matrix product t @ other for rank 1 or 2 operands.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return build(ops.Dot(t.values, other.values), t, other)
}

// Maximum returns the element-wise maximum.
func (t *Tensor) Maximum(other *Tensor) *Tensor {
	return build(ops.Maximum(t.values, other.values), t, other)
}

// Minimum returns the element-wise minimum.
func (t *Tensor) Minimum(other *Tensor) *Tensor {
	return build(ops.Minimum(t.values, other.values), t, other)
}

// Scalar operands become leaves that do not require gradients.

// AddScalar returns t + v.
func (t *Tensor) AddScalar(v float64) *Tensor { return t.Add(Scalar(v)) }

// SubScalar returns t - v.
func (t *Tensor) SubScalar(v float64) *Tensor { return t.Sub(Scalar(v)) }

// RSubScalar returns v - t.
func (t *Tensor) RSubScalar(v float64) *Tensor { return Scalar(v).Sub(t) }

// MulScalar returns t * v.
func (t *Tensor) MulScalar(v float64) *Tensor { return t.Mul(Scalar(v)) }

// DivScalar returns t / v.
func (t *Tensor) DivScalar(v float64) *Tensor { return t.Div(Scalar(v)) }

// RDivScalar returns v / t.
func (t *Tensor) RDivScalar(v float64) *Tensor { return Scalar(v).Div(t) }

// PowScalar returns t ^ v.
func (t *Tensor) PowScalar(v float64) *Tensor { return t.Pow(Scalar(v)) }

// RPowScalar returns v ^ t.
func (t *Tensor) RPowScalar(v float64) *Tensor { return Scalar(v).Pow(t) }

// Unary operations.

// Neg returns -t.
func (t *Tensor) Neg() *Tensor {
	return build(ops.Neg(t.values), t)
}

// Exp returns e^t.
func (t *Tensor) Exp() *Tensor {
	return build(ops.Exp(t.values), t)
}

// Log returns the natural logarithm of t.
func (t *Tensor) Log() *Tensor {
	return build(ops.Log(t.values), t)
}

// Sum reduces all elements to a 0-d tensor, or with an axis, reduces along
// that axis only.
func (t *Tensor) Sum(axis ...int) *Tensor {
	if len(axis) == 0 {
		return build(ops.Sum(t.values), t)
	}
	return build(ops.SumAxis(t.values, singleAxis("Sum", axis)), t)
}

// Max reduces to the largest element, or the largest elements along an axis.
// Ties share the gradient.
func (t *Tensor) Max(axis ...int) *Tensor {
	if len(axis) == 0 {
		return build(ops.Max(t.values), t)
	}
	return build(ops.MaxAxis(t.values, singleAxis("Max", axis)), t)
}

// Min reduces to the smallest element, or the smallest elements along an axis.
// Ties share the gradient.
func (t *Tensor) Min(axis ...int) *Tensor {
	if len(axis) == 0 {
		return build(ops.Min(t.values), t)
	}
	return build(ops.MinAxis(t.values, singleAxis("Min", axis)), t)
}

func singleAxis(name string, axis []int) int {
	if len(axis) != 1 {
		exceptions.Panicf("%s: expected at most one axis, got %v", name, axis)
	}
	return axis[0]
}

// Mean returns the average of all elements.
func (t *Tensor) Mean() *Tensor {
	return t.Sum().DivScalar(float64(t.values.NumElements()))
}

// Transpose permutes the axes; with no arguments they are reversed.
func (t *Tensor) Transpose(axes ...int) *Tensor {
	return build(ops.Transpose(t.values, axes...), t)
}

// T is shorthand for Transpose().
func (t *Tensor) T() *Tensor {
	return t.Transpose()
}

// Reshape gives t a new shape. One dimension may be -1.
func (t *Tensor) Reshape(shape ...int) *Tensor {
	return build(ops.Reshape(t.values, shape...), t)
}

// Flatten reshapes t to one dimension.
func (t *Tensor) Flatten() *Tensor {
	return build(ops.Flatten(t.values), t)
}

// Clip limits the values to [lo, hi]. Use math.Inf for an open side.
func (t *Tensor) Clip(lo, hi float64) *Tensor {
	return build(ops.Clip(t.values, lo, hi), t)
}

// Pad pads every axis with widths[i][0] elements before and widths[i][1]
// after.
func (t *Tensor) Pad(widths [][2]int, mode tensor.PadMode) *Tensor {
	return build(ops.Pad(t.values, widths, mode), t)
}

// Index selects elements with a key such as
//
//	x.Index(tensor.At(2))                           // x[2]
//	x.Index(tensor.All(), tensor.Range(1, 3))       // x[:, 1:3]
func (t *Tensor) Index(key ...tensor.Index) *Tensor {
	return build(ops.Index(t.values, key...), t)
}

// Comparisons are not differentiable: they return 0/1 masks.

// Greater returns the mask t > other.
func (t *Tensor) Greater(other *Tensor) *tensor.RawTensor {
	return t.values.Greater(other.values)
}

// GreaterEqual returns the mask t >= other.
func (t *Tensor) GreaterEqual(other *Tensor) *tensor.RawTensor {
	return t.values.GreaterEqual(other.values)
}

// Less returns the mask t < other.
func (t *Tensor) Less(other *Tensor) *tensor.RawTensor {
	return t.values.Less(other.values)
}

// LessEqual returns the mask t <= other.
func (t *Tensor) LessEqual(other *Tensor) *tensor.RawTensor {
	return t.values.LessEqual(other.values)
}
