package tensor

import (
	"github.com/gomlx/exceptions"
)

// PadMode selects how padded positions are filled.
type PadMode int

// Supported padding modes.
const (
	// PadConstant fills with zeros.
	PadConstant PadMode = iota
	// PadEdge repeats the border value.
	PadEdge
	// PadReflect mirrors the values around the border, without repeating it.
	PadReflect
)

// String returns the mode name.
func (m PadMode) String() string {
	switch m {
	case PadConstant:
		return "constant"
	case PadEdge:
		return "edge"
	case PadReflect:
		return "reflect"
	default:
		return "unknown"
	}
}

// Pad adds widths[i][0] elements before and widths[i][1] elements after
// every axis i.
func (r *RawTensor) Pad(widths [][2]int, mode PadMode) *RawTensor {
	ndim := len(r.shape)
	if len(widths) != ndim {
		exceptions.Panicf("Pad: got %d pad widths for tensor of rank %d", len(widths), ndim)
	}
	outShape := make(Shape, ndim)
	for i, w := range widths {
		if w[0] < 0 || w[1] < 0 {
			exceptions.Panicf("Pad: negative pad width %v at axis %d", w, i)
		}
		if mode != PadConstant && r.shape[i] == 0 && w[0]+w[1] > 0 {
			exceptions.Panicf("Pad: cannot %s-pad empty axis %d", mode, i)
		}
		outShape[i] = r.shape[i] + w[0] + w[1]
	}

	n := outShape.NumElements()
	data := make([]float64, n)
	outStrides := outShape.ComputeStrides()
	inStrides := r.Strides()
	for i := 0; i < n; i++ {
		rem := i
		offset := 0
		inside := true
		for axis := 0; axis < ndim; axis++ {
			coord := rem / outStrides[axis]
			rem %= outStrides[axis]
			src, ok := padSource(coord-widths[axis][0], r.shape[axis], mode)
			if !ok {
				inside = false
				break
			}
			offset += src * inStrides[axis]
		}
		if inside {
			data[i] = r.data[offset]
		}
	}
	return &RawTensor{data: data, shape: outShape, dtype: r.dtype}
}

// padSource maps a (possibly out of range) coordinate to a source position.
// It returns false for positions that take the constant fill.
func padSource(c, dim int, mode PadMode) (int, bool) {
	if c >= 0 && c < dim {
		return c, true
	}
	switch mode {
	case PadEdge:
		return max(0, min(c, dim-1)), true
	case PadReflect:
		if dim == 1 {
			return 0, true
		}
		period := 2 * (dim - 1)
		c %= period
		if c < 0 {
			c += period
		}
		if c >= dim {
			c = period - c
		}
		return c, true
	default:
		return 0, false
	}
}
