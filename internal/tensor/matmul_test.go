package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatMul(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustNew(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)

	c := a.MatMul(b)
	assert.Equal(t, Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())

	// Inputs are not modified.
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, a.Data())
}

func TestMatMulVectors(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	v := mustNew(t, []float64{1, 1}, 2)

	mv := m.MatMul(v)
	assert.Equal(t, Shape{2}, mv.Shape())
	assert.Equal(t, []float64{3, 7}, mv.Data())

	vm := v.MatMul(m)
	assert.Equal(t, Shape{2}, vm.Shape())
	assert.Equal(t, []float64{4, 6}, vm.Data())

	vv := v.MatMul(v)
	assert.Equal(t, Shape{}, vv.Shape())
	assert.Equal(t, 2.0, vv.Item())
}

func TestMatMulErrors(t *testing.T) {
	a := Ones(Shape{2, 3})
	assert.Panics(t, func() { a.MatMul(Ones(Shape{2, 3})) })
	assert.Panics(t, func() { a.MatMul(Scalar(1)) })
	assert.Panics(t, func() { Ones(Shape{2, 2, 2}).MatMul(a) })
}

func TestMatMulEmpty(t *testing.T) {
	c := Ones(Shape{2, 0}).MatMul(Ones(Shape{0, 3}))
	assert.Equal(t, Shape{2, 3}, c.Shape())
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0}, c.Data())
}
