package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	a := Arange(0, 6).Reshape(2, 3)

	row := a.Slice(At(1))
	assert.Equal(t, Shape{3}, row.Shape())
	assert.Equal(t, []float64{3, 4, 5}, row.Data())

	last := a.Slice(At(-1), At(-1))
	assert.Equal(t, Shape{}, last.Shape())
	assert.Equal(t, 5.0, last.Item())

	cols := a.Slice(All(), Range(1, 3))
	assert.Equal(t, Shape{2, 2}, cols.Shape())
	assert.Equal(t, []float64{1, 2, 4, 5}, cols.Data())

	stepped := Arange(0, 10).Slice(RangeStep(1, 10, 3))
	assert.Equal(t, []float64{1, 4, 7}, stepped.Data())

	assert.Equal(t, []float64{8, 9}, Arange(0, 10).Slice(From(-2)).Data())
	assert.Equal(t, []float64{0, 1}, Arange(0, 10).Slice(To(2)).Data())

	// Slice bounds clamp.
	assert.Equal(t, []float64{3, 4}, Arange(0, 5).Slice(Range(3, 100)).Data())
	assert.Equal(t, Shape{0}, Arange(0, 5).Slice(Range(4, 2)).Shape())

	assert.Panics(t, func() { a.Slice(At(2)) })
	assert.Panics(t, func() { a.Slice(All(), All(), All()) })
	assert.Panics(t, func() { a.Slice(RangeStep(0, 2, 0)) })
}

func TestScatter(t *testing.T) {
	z := Zeros(Shape{5})
	s := z.Scatter([]Index{At(2)}, Scalar(1))
	assert.Equal(t, []float64{0, 0, 1, 0, 0}, s.Data())
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, z.Data())

	m := Zeros(Shape{2, 3})
	vals := mustNew(t, []float64{7, 8}, 2)
	s = m.Scatter([]Index{All(), Range(1, 3)}, mustNew(t, []float64{1, 2, 3, 4}, 2, 2))
	assert.Equal(t, []float64{0, 1, 2, 0, 3, 4}, s.Data())

	s = m.Scatter([]Index{At(0), To(2)}, vals)
	assert.Equal(t, []float64{7, 8, 0, 0, 0, 0}, s.Data())
}

func TestSliceScatterRoundTrip(t *testing.T) {
	a := Arange(0, 24).Reshape(2, 3, 4)
	key := []Index{All(), Range(0, 2), RangeStep(0, 4, 2)}
	part := a.Slice(key...)
	assert.Equal(t, Shape{2, 2, 2}, part.Shape())

	back := Zeros(a.Shape()).Scatter(key, part)
	assert.True(t, back.Slice(key...).Equal(part))
	assert.Equal(t, 0.0, back.At(0, 2, 0))
	assert.Equal(t, 0.0, back.At(1, 0, 1))
}

func TestIndexString(t *testing.T) {
	assert.Equal(t, "2", At(2).String())
	assert.Equal(t, "1:3", Range(1, 3).String())
	assert.Equal(t, "0:10:2", RangeStep(0, 10, 2).String())
	assert.Equal(t, ":", All().String())
	assert.Equal(t, "1:", From(1).String())
}
