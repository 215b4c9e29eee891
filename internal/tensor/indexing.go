package tensor

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// Index selects along one axis: either a single position, which drops the
// axis, or a strided range, which keeps it.
type Index struct {
	isPoint  bool
	pos      int
	start    int
	stop     int
	step     int
	hasStart bool
	hasStop  bool
}

// At selects a single position. Negative positions count from the end.
func At(i int) Index {
	return Index{isPoint: true, pos: i}
}

// Range selects [start, stop) with step 1.
func Range(start, stop int) Index {
	return RangeStep(start, stop, 1)
}

// RangeStep selects [start, stop) with the given positive step.
func RangeStep(start, stop, step int) Index {
	return Index{start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// From selects [start, end of axis).
func From(start int) Index {
	return Index{start: start, step: 1, hasStart: true}
}

// To selects [0, stop).
func To(stop int) Index {
	return Index{stop: stop, step: 1, hasStop: true}
}

// All selects the whole axis.
func All() Index {
	return Index{step: 1}
}

// String renders the index in slice notation.
func (ix Index) String() string {
	if ix.isPoint {
		return fmt.Sprint(ix.pos)
	}
	s := ""
	if ix.hasStart {
		s += fmt.Sprint(ix.start)
	}
	s += ":"
	if ix.hasStop {
		s += fmt.Sprint(ix.stop)
	}
	if ix.step != 1 {
		s += fmt.Sprintf(":%d", ix.step)
	}
	return s
}

// positions resolves the index against an axis of size dim.
func (ix Index) positions(dim, axis int) []int {
	if ix.isPoint {
		p := ix.pos
		if p < 0 {
			p += dim
		}
		if p < 0 || p >= dim {
			exceptions.Panicf("index %d is out of bounds for axis %d with size %d", ix.pos, axis, dim)
		}
		return []int{p}
	}
	if ix.step <= 0 {
		exceptions.Panicf("slice step must be positive, got %d", ix.step)
	}
	start, stop := 0, dim
	if ix.hasStart {
		start = clampBound(ix.start, dim)
	}
	if ix.hasStop {
		stop = clampBound(ix.stop, dim)
	}
	var out []int
	for p := start; p < stop; p += ix.step {
		out = append(out, p)
	}
	return out
}

func clampBound(b, dim int) int {
	if b < 0 {
		b += dim
	}
	return max(0, min(b, dim))
}

// selection is a resolved key: the chosen positions per axis and the output shape.
type selection struct {
	positions [][]int
	shape     Shape
}

func (r *RawTensor) resolve(key []Index) selection {
	if len(key) > len(r.shape) {
		exceptions.Panicf("too many indices for tensor of rank %d: got %d", len(r.shape), len(key))
	}
	sel := selection{positions: make([][]int, len(r.shape)), shape: Shape{}}
	for axis, dim := range r.shape {
		ix := All()
		if axis < len(key) {
			ix = key[axis]
		}
		sel.positions[axis] = ix.positions(dim, axis)
		if !ix.isPoint {
			sel.shape = append(sel.shape, len(sel.positions[axis]))
		}
	}
	return sel
}

// each calls fn with the source offset of every selected element, in
// row-major order of the selection.
func (sel selection) each(strides []int, fn func(i, offset int)) {
	if sel.shape.NumElements() == 0 {
		return
	}
	ndim := len(sel.positions)
	counter := make([]int, ndim)
	for i := 0; ; i++ {
		offset := 0
		for axis, c := range counter {
			offset += sel.positions[axis][c] * strides[axis]
		}
		fn(i, offset)

		axis := ndim - 1
		for ; axis >= 0; axis-- {
			counter[axis]++
			if counter[axis] < len(sel.positions[axis]) {
				break
			}
			counter[axis] = 0
		}
		if axis < 0 {
			return
		}
	}
}

// Slice returns the elements selected by key. Missing trailing indices
// select whole axes.
//
// Example:
//
//	x := tensor.Arange(0, 6).Reshape(2, 3)
//	x.Slice(tensor.At(1))                      // [3, 4, 5]
//	x.Slice(tensor.All(), tensor.Range(1, 3))  // [[1, 2], [4, 5]]
func (r *RawTensor) Slice(key ...Index) *RawTensor {
	sel := r.resolve(key)
	data := make([]float64, sel.shape.NumElements())
	sel.each(r.Strides(), func(i, offset int) {
		data[i] = r.data[offset]
	})
	return &RawTensor{data: data, shape: sel.shape, dtype: r.dtype}
}

// Scatter returns a copy of r where the elements selected by key are replaced
// by values, broadcast to the shape of the selection.
func (r *RawTensor) Scatter(key []Index, values *RawTensor) *RawTensor {
	sel := r.resolve(key)
	src := values.BroadcastTo(sel.shape)
	data := r.Data()
	sel.each(r.Strides(), func(i, offset int) {
		data[offset] = src.data[i]
	})
	return newRaw(data, r.shape.Clone(), Promote(r.dtype, values.dtype))
}
