package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, data []float64, shape ...int) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.New(data, tensor.Shape(shape))
	require.NoError(t, err)
	return r
}

func TestNew_AllocatesGrad(t *testing.T) {
	p := autodiff.New(tensor.Ones(tensor.Shape{2, 3}), true)
	require.NotNil(t, p.Grad())
	assert.Equal(t, tensor.Shape{2, 3}, p.Grad().Shape())
	assert.Equal(t, 0.0, p.Grad().Sum().Item())
	assert.True(t, p.IsLeaf())

	c := autodiff.Const(tensor.Ones(tensor.Shape{2}))
	assert.False(t, c.RequiresGrad())
	assert.Nil(t, c.Grad())

	assert.Panics(t, func() { autodiff.New(nil, false) })
}

func TestRequiresGrad_OrSemantics(t *testing.T) {
	a := autodiff.Param(raw(t, []float64{1, 2}, 2))
	b := autodiff.Const(raw(t, []float64{3, 4}, 2))

	c := a.Add(b)
	assert.True(t, c.RequiresGrad())
	require.Len(t, c.Dependency(), 1)
	assert.Same(t, a, c.Dependency()[0].Source)
	assert.Equal(t, ops.KindAdd, c.Dependency()[0].Fn.Kind())

	d := b.Mul(a)
	require.Len(t, d.Dependency(), 1)
	assert.Same(t, a, d.Dependency()[0].Source)

	e := b.Add(b)
	assert.False(t, e.RequiresGrad())
	assert.Empty(t, e.Dependency())
	assert.Nil(t, e.Grad())

	f := a.Add(a)
	assert.Len(t, f.Dependency(), 2)
}

func TestZeroGrad(t *testing.T) {
	c := autodiff.Const(tensor.Ones(tensor.Shape{3}))
	c.ZeroGrad()
	assert.Nil(t, c.Grad())

	p := autodiff.Param(tensor.Ones(tensor.Shape{3}))
	p.Sum().Backward()
	assert.Equal(t, []float64{1, 1, 1}, p.Grad().Data())
	p.ZeroGrad()
	assert.Equal(t, []float64{0, 0, 0}, p.Grad().Data())
}

func TestSetValues_ClearsGrad(t *testing.T) {
	p := autodiff.Param(tensor.Ones(tensor.Shape{2}))
	require.NotNil(t, p.Grad())
	p.SetValues(tensor.Zeros(tensor.Shape{3}))
	assert.Nil(t, p.Grad())
	assert.Equal(t, tensor.Shape{3}, p.Shape())
	assert.True(t, p.RequiresGrad())
}

func TestInPlace_NoEdge(t *testing.T) {
	p := autodiff.Param(raw(t, []float64{1, 2}, 2))
	other := autodiff.Param(raw(t, []float64{10, 20}, 2))

	p.AddAssign(other)
	assert.Equal(t, []float64{11, 22}, p.Values().Data())
	assert.Empty(t, p.Dependency())
	assert.Nil(t, p.Grad())

	p.SubAssign(autodiff.Scalar(1)).MulAssign(autodiff.Scalar(2)).DivAssign(autodiff.Scalar(4))
	assert.Equal(t, []float64{5, 10.5}, p.Values().Data())

	p.PowAssign(autodiff.Scalar(2))
	assert.Equal(t, []float64{25, 110.25}, p.Values().Data())

	m := autodiff.Param(raw(t, []float64{1, 2, 3, 4}, 2, 2))
	m.MatMulAssign(autodiff.Const(tensor.Eye(2).MulScalar(2)))
	assert.Equal(t, []float64{2, 4, 6, 8}, m.Values().Data())
	assert.Empty(t, m.Dependency())
}

func TestOperatorValues(t *testing.T) {
	a := autodiff.Const(raw(t, []float64{1, 2, 4}, 3))
	b := autodiff.Const(raw(t, []float64{2, 2, 2}, 3))

	assert.Equal(t, []float64{3, 4, 6}, a.Add(b).Values().Data())
	assert.Equal(t, []float64{-1, 0, 2}, a.Sub(b).Values().Data())
	assert.Equal(t, []float64{2, 4, 8}, a.Mul(b).Values().Data())
	assert.Equal(t, []float64{0.5, 1, 2}, a.Div(b).Values().Data())
	assert.Equal(t, []float64{1, 4, 16}, a.Pow(b).Values().Data())
	assert.Equal(t, []float64{2, 2, 4}, a.Maximum(b).Values().Data())
	assert.Equal(t, []float64{1, 2, 2}, a.Minimum(b).Values().Data())
	assert.Equal(t, 14.0, a.MatMul(b).Item())

	assert.Equal(t, []float64{0, 1, 3}, a.SubScalar(1).Values().Data())
	assert.Equal(t, []float64{3, 2, 0}, a.RSubScalar(4).Values().Data())
	assert.Equal(t, []float64{4, 2, 1}, a.RDivScalar(4).Values().Data())
	assert.Equal(t, []float64{2, 4, 16}, a.RPowScalar(2).Values().Data())
	assert.Equal(t, 7.0, a.Sum().Item())
	assert.Equal(t, 4.0, a.Max().Item())
	assert.Equal(t, 1.0, a.Min().Item())
	assert.InDelta(t, 7.0/3.0, a.Mean().Item(), 1e-12)
	assert.Equal(t, 3, a.Len())

	assert.Equal(t, []float64{0, 0, 1}, a.Greater(b).Data())
	assert.Equal(t, []float64{0, 1, 1}, a.GreaterEqual(b).Data())
	assert.Equal(t, []float64{1, 0, 0}, a.Less(b).Data())
	assert.Equal(t, []float64{1, 1, 0}, a.LessEqual(b).Data())

	assert.Panics(t, func() { a.Sum(0, 1) })
	assert.Panics(t, func() { autodiff.Scalar(1).Len() })
}

func TestString(t *testing.T) {
	c := autodiff.Const(raw(t, []float64{1, 2}, 2))
	assert.Equal(t, "Tensor(values = [1 2], shape=(2,), requires_grad=false)", c.String())
}

func TestToTensor(t *testing.T) {
	p := autodiff.Param(tensor.Ones(tensor.Shape{2}))
	got, err := autodiff.ToTensor(p)
	require.NoError(t, err)
	assert.Same(t, p, got)

	got, err = autodiff.ToTensor([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
	assert.False(t, got.RequiresGrad())

	got, err = autodiff.ToTensor(3)
	require.NoError(t, err)
	assert.Equal(t, tensor.Int64, got.Values().DType())

	got, err = autodiff.ToTensor(3, tensor.WithDType(tensor.Float32))
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, got.Values().DType())

	_, err = autodiff.ToTensor("three")
	assert.Error(t, err)
	_, err = autodiff.ToTensor([][]float64{{1}, {2, 3}})
	assert.Error(t, err)
	_, err = autodiff.ToTensor((*autodiff.Tensor)(nil))
	assert.Error(t, err)

	assert.Panics(t, func() { autodiff.MustTensor(struct{}{}) })
}

func TestDetach(t *testing.T) {
	p := autodiff.Param(tensor.Ones(tensor.Shape{2}))
	y := p.MulScalar(2)
	d := y.Detach()
	assert.False(t, d.RequiresGrad())
	assert.True(t, d.IsLeaf())
	assert.Same(t, y.Values(), d.Values())
}

func TestFormatGraph(t *testing.T) {
	a := autodiff.Param(tensor.Scalar(1))
	c := a.Add(a).MulScalar(3)
	want := "(): requires_grad\n" +
		"  mul <- (): requires_grad\n" +
		"    add <- (): requires_grad, leaf\n" +
		"    add <- (): requires_grad, leaf\n"
	assert.Equal(t, want, autodiff.FormatGraph(c))
}
