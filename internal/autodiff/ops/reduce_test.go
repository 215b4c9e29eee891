package ops

import (
	"testing"

	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/stretchr/testify/assert"
)

func TestSumOp_All(t *testing.T) {
	x := tensor.Arange(0, 6).Reshape(2, 3)
	res := Sum(x)
	assert.Equal(t, 15.0, res.Values.Item())

	g := res.Grads[0].Backward(tensor.Scalar(2))
	assert.Equal(t, tensor.Shape{2, 3}, g.Shape())
	assert.Equal(t, []float64{2, 2, 2, 2, 2, 2}, g.Data())
}

func TestSumOp_Axis(t *testing.T) {
	x := tensor.Arange(0, 24).Reshape(2, 3, 4)

	res := SumAxis(x, 1)
	assert.Equal(t, tensor.Shape{2, 4}, res.Values.Shape())

	upstream := tensor.Arange(0, 8).Reshape(2, 4)
	g := res.Grads[0].Backward(upstream)
	assert.Equal(t, tensor.Shape{2, 3, 4}, g.Shape())
	for j := 0; j < 3; j++ {
		assert.Equal(t, upstream.At(1, 2), g.At(1, j, 2))
		assert.Equal(t, upstream.At(0, 3), g.At(0, j, 3))
	}

	res = SumAxis(x, -1)
	assert.Equal(t, tensor.Shape{2, 3}, res.Values.Shape())
	g = res.Grads[0].Backward(tensor.Ones(tensor.Shape{2, 3}))
	assert.Equal(t, tensor.Shape{2, 3, 4}, g.Shape())
}

func TestExtremeOp_Ties(t *testing.T) {
	x, _ := tensor.New([]float64{3, 1, 3, 2, 5, 0}, tensor.Shape{2, 3})

	res := Max(x)
	assert.Equal(t, 5.0, res.Values.Item())
	assert.Equal(t, []float64{0, 0, 0, 0, 1, 0}, res.Grads[0].Backward(tensor.Scalar(1)).Data())

	res = MaxAxis(x, 1)
	assert.Equal(t, []float64{3, 5}, res.Values.Data())
	g, _ := tensor.New([]float64{10, 20}, tensor.Shape{2})
	assert.Equal(t, []float64{10, 0, 10, 0, 20, 0}, res.Grads[0].Backward(g).Data())
	assert.Equal(t, KindMax, res.Grads[0].Kind())

	res = MinAxis(x, 0)
	assert.Equal(t, []float64{2, 1, 0}, res.Values.Data())
	g, _ = tensor.New([]float64{1, 2, 3}, tensor.Shape{3})
	assert.Equal(t, []float64{0, 2, 0, 1, 0, 3}, res.Grads[0].Backward(g).Data())

	res = Min(x)
	assert.Equal(t, 0.0, res.Values.Item())
	assert.Equal(t, KindMin, res.Grads[0].Kind())
}
