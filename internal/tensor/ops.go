package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Element-wise arithmetic. All binary operations follow NumPy broadcasting
// and panic if the shapes are incompatible.

// sameShape returns a fresh output slice when a and b have identical shapes,
// or nil when broadcasting is needed.
func sameShape(a, b *RawTensor) []float64 {
	if !a.shape.Equal(b.shape) {
		return nil
	}
	return make([]float64, len(a.data))
}

// Add returns a + b.
func (r *RawTensor) Add(other *RawTensor) *RawTensor {
	dtype := Promote(r.dtype, other.dtype)
	if dst := sameShape(r, other); dst != nil {
		floats.AddTo(dst, r.data, other.data)
		return newRaw(dst, r.shape.Clone(), dtype)
	}
	return binary(r, other, dtype, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func (r *RawTensor) Sub(other *RawTensor) *RawTensor {
	dtype := Promote(r.dtype, other.dtype)
	if dst := sameShape(r, other); dst != nil {
		floats.SubTo(dst, r.data, other.data)
		return newRaw(dst, r.shape.Clone(), dtype)
	}
	return binary(r, other, dtype, func(x, y float64) float64 { return x - y })
}

// Mul returns the element-wise product a ✕ b.
func (r *RawTensor) Mul(other *RawTensor) *RawTensor {
	dtype := Promote(r.dtype, other.dtype)
	if dst := sameShape(r, other); dst != nil {
		floats.MulTo(dst, r.data, other.data)
		return newRaw(dst, r.shape.Clone(), dtype)
	}
	return binary(r, other, dtype, func(x, y float64) float64 { return x * y })
}

// Div returns a / b. Integer operands produce a Float64 result.
func (r *RawTensor) Div(other *RawTensor) *RawTensor {
	dtype := floatResult(Promote(r.dtype, other.dtype))
	if dst := sameShape(r, other); dst != nil {
		floats.DivTo(dst, r.data, other.data)
		return newRaw(dst, r.shape.Clone(), dtype)
	}
	return binary(r, other, dtype, func(x, y float64) float64 { return x / y })
}

// Pow returns a raised to the power b, element-wise.
func (r *RawTensor) Pow(other *RawTensor) *RawTensor {
	return binary(r, other, floatResult(Promote(r.dtype, other.dtype)), math.Pow)
}

// Maximum returns the element-wise maximum of a and b.
func (r *RawTensor) Maximum(other *RawTensor) *RawTensor {
	return binary(r, other, Promote(r.dtype, other.dtype), math.Max)
}

// Minimum returns the element-wise minimum of a and b.
func (r *RawTensor) Minimum(other *RawTensor) *RawTensor {
	return binary(r, other, Promote(r.dtype, other.dtype), math.Min)
}

// Neg returns -a.
func (r *RawTensor) Neg() *RawTensor {
	return r.MulScalar(-1)
}

// Exp returns e^a.
func (r *RawTensor) Exp() *RawTensor {
	return unary(r, floatResult(r.dtype), math.Exp)
}

// Log returns the natural logarithm of a.
func (r *RawTensor) Log() *RawTensor {
	return unary(r, floatResult(r.dtype), math.Log)
}

// Sqrt returns the element-wise square root.
func (r *RawTensor) Sqrt() *RawTensor {
	return unary(r, floatResult(r.dtype), math.Sqrt)
}

// AddScalar returns a + v.
func (r *RawTensor) AddScalar(v float64) *RawTensor {
	data := r.Data()
	floats.AddConst(v, data)
	return newRaw(data, r.shape.Clone(), r.dtype)
}

// MulScalar returns a ✕ v.
func (r *RawTensor) MulScalar(v float64) *RawTensor {
	data := r.Data()
	floats.Scale(v, data)
	return newRaw(data, r.shape.Clone(), r.dtype)
}

// Clip limits the values to [lo, hi]. Use math.Inf for an open bound.
func (r *RawTensor) Clip(lo, hi float64) *RawTensor {
	return unary(r, r.dtype, func(x float64) float64 {
		return math.Min(math.Max(x, lo), hi)
	})
}
