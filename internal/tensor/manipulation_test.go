package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReshape(t *testing.T) {
	a := Arange(0, 6)

	r := a.Reshape(2, 3)
	assert.Equal(t, Shape{2, 3}, r.Shape())
	assert.Equal(t, 5.0, r.At(1, 2))

	r = a.Reshape(3, -1)
	assert.Equal(t, Shape{3, 2}, r.Shape())

	assert.Equal(t, Shape{6}, r.Ravel().Shape())
	assert.Equal(t, Shape{}, Scalar(1).Reshape().Shape())

	assert.Panics(t, func() { a.Reshape(4, -1) })
	assert.Panics(t, func() { a.Reshape(-1, -1) })
	assert.Panics(t, func() { a.Reshape(5) })
}

func TestTranspose(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	tr := a.Transpose()
	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())
	assert.True(t, tr.Transpose().Equal(a))

	b := Arange(0, 24).Reshape(2, 3, 4)
	p := b.Transpose(1, 2, 0)
	assert.Equal(t, Shape{3, 4, 2}, p.Shape())
	assert.Equal(t, b.At(1, 2, 3), p.At(2, 3, 1))
	assert.Equal(t, b.At(0, 1, 2), p.At(1, 2, 0))

	assert.Panics(t, func() { b.Transpose(0, 0, 1) })
	assert.Panics(t, func() { b.Transpose(0, 1) })
}

func TestExpandDimsAndSqueeze(t *testing.T) {
	a := Arange(0, 6).Reshape(2, 3)
	assert.Equal(t, Shape{1, 2, 3}, a.ExpandDims(0).Shape())
	assert.Equal(t, Shape{2, 1, 3}, a.ExpandDims(1).Shape())
	assert.Equal(t, Shape{2, 3, 1}, a.ExpandDims(-1).Shape())
	assert.Equal(t, Shape{2, 3}, a.ExpandDims(1).Squeeze(1).Shape())
	assert.Panics(t, func() { a.Squeeze(0) })
}

func TestRepeat(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, 1, 2)

	r := a.Repeat(3, 0)
	assert.Equal(t, Shape{3, 2}, r.Shape())
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, r.Data())

	r = a.Repeat(2, 1)
	assert.Equal(t, Shape{1, 4}, r.Shape())
	assert.Equal(t, []float64{1, 1, 2, 2}, r.Data())
}

func TestBroadcastTo(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, 3)
	b := a.BroadcastTo(Shape{2, 3})
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, b.Data())

	s := Scalar(4).BroadcastTo(Shape{2, 2})
	assert.Equal(t, []float64{4, 4, 4, 4}, s.Data())

	assert.Panics(t, func() { a.BroadcastTo(Shape{3, 2}) })
	assert.Panics(t, func() { Ones(Shape{2, 3}).BroadcastTo(Shape{3}) })
}

func TestPad(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, 3)

	assert.Equal(t, []float64{0, 1, 2, 3, 0, 0}, a.Pad([][2]int{{1, 2}}, PadConstant).Data())
	assert.Equal(t, []float64{1, 1, 2, 3, 3, 3}, a.Pad([][2]int{{1, 2}}, PadEdge).Data())
	assert.Equal(t, []float64{3, 2, 1, 2, 3, 2, 1}, a.Pad([][2]int{{2, 2}}, PadReflect).Data())

	m := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	p := m.Pad([][2]int{{1, 0}, {0, 1}}, PadConstant)
	assert.Equal(t, Shape{3, 3}, p.Shape())
	assert.Equal(t, []float64{0, 0, 0, 1, 2, 0, 3, 4, 0}, p.Data())

	assert.Panics(t, func() { a.Pad([][2]int{{1, 1}, {1, 1}}, PadConstant) })
	assert.Panics(t, func() { a.Pad([][2]int{{-1, 1}}, PadConstant) })
}
