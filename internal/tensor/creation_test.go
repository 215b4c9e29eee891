package tensor

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, data []float64, shape ...int) *RawTensor {
	t.Helper()
	r, err := New(data, Shape(shape))
	require.NoError(t, err)
	return r
}

func TestNew(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	r, err := New(data, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, r.Shape())
	assert.Equal(t, Float64, r.DType())
	assert.Equal(t, 2, r.NDim())
	assert.Equal(t, 6, r.Size())

	// The input slice is copied.
	data[0] = 100
	assert.Equal(t, 1.0, r.At(0, 0))

	// So is the output of Data.
	out := r.Data()
	out[1] = 100
	assert.Equal(t, 2.0, r.At(0, 1))

	_, err = New([]float64{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)
	_, err = New(nil, Shape{-1})
	assert.Error(t, err)
}

func TestFromSlice(t *testing.T) {
	ints, err := FromSlice([]int{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, Int64, ints.DType())
	assert.Equal(t, 4.0, ints.At(1, 1))

	f32, err := FromSlice([]float32{0.5, 1.5}, Shape{2})
	require.NoError(t, err)
	assert.Equal(t, Float64, f32.DType())
	assert.Equal(t, []float64{0.5, 1.5}, f32.Data())

	asFloat, err := FromSlice([]int{1, 2}, Shape{2}, WithDType(Float32))
	require.NoError(t, err)
	assert.Equal(t, Float32, asFloat.DType())
}

func TestFromValue(t *testing.T) {
	t.Run("scalar", func(t *testing.T) {
		r, err := FromValue(2.5)
		require.NoError(t, err)
		assert.Equal(t, Shape{}, r.Shape())
		assert.Equal(t, 2.5, r.Item())
	})

	t.Run("nested", func(t *testing.T) {
		r, err := FromValue([][]float64{{1, 2, 3}, {4, 5, 6}})
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3}, r.Shape())
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, r.Data())
	})

	t.Run("any", func(t *testing.T) {
		r, err := FromValue([]any{[]any{1, 2.5}, []any{3, 4}})
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 2}, r.Shape())
		assert.Equal(t, Float64, r.DType())
	})

	t.Run("integers", func(t *testing.T) {
		r, err := FromValue([]int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, Int64, r.DType())
	})

	t.Run("dtype", func(t *testing.T) {
		r, err := FromValue([]float64{1.1, 2.2}, WithDType(Int64))
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, r.Data())
	})

	t.Run("ragged", func(t *testing.T) {
		_, err := FromValue([][]float64{{1, 2}, {3}})
		assert.Error(t, err)
		_, err = FromValue([]any{[]float64{1, 2}, 3.0})
		assert.Error(t, err)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := FromValue("abc")
		assert.Error(t, err)
		_, err = FromValue(nil)
		assert.Error(t, err)
	})

	t.Run("raw", func(t *testing.T) {
		src := Ones(Shape{2})
		r, err := FromValue(src)
		require.NoError(t, err)
		assert.Same(t, src, r)
	})
}

func TestCreationHelpers(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Zeros(Shape{3}).Data())
	assert.Equal(t, []float64{1, 1}, Ones(Shape{2}).Data())
	assert.Equal(t, []float64{7, 7}, Full(Shape{2}, 7).Data())
	assert.Equal(t, []float64{2, 3, 4}, Arange(2, 5).Data())
	assert.Equal(t, []float64{1, 0, 0, 1}, Eye(2).Data())
	assert.Equal(t, 3.0, Scalar(3).Item())
	assert.Equal(t, Shape{2, 3}, ZerosLike(Ones(Shape{2, 3})).Shape())
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	u := Uniform(rng, Shape{100}, -1, 1)
	for _, v := range u.Data() {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}

	n := Randn(rand.New(rand.NewPCG(1, 2)), Shape{1000}, 5, 0.1)
	assert.InDelta(t, 5.0, n.Mean().Item(), 0.05)
}

func TestDTypeRounding(t *testing.T) {
	r, err := New([]float64{0.1, 1.5, -2.7}, Shape{3}, WithDType(Float16))
	require.NoError(t, err)
	assert.Equal(t, Float16, r.DType())
	assert.InDelta(t, 0.1, r.At(0), 1e-3)
	assert.NotEqual(t, 0.1, r.At(0))

	i := r.AsType(Int64)
	assert.Equal(t, []float64{0, 1, -2}, i.Data())

	assert.Equal(t, Float32, Promote(Float32, Int64))
	assert.Equal(t, Float64, Promote(Float32, Float64))
	assert.Equal(t, Float64, i.Div(i).DType())
}

func TestString(t *testing.T) {
	r := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	assert.Equal(t, "[[1 2]\n [3 4]]", r.String())
	assert.Equal(t, "3.5", Scalar(3.5).String())
}
