package ops

import (
	"testing"

	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceBroadcast(t *testing.T) {
	grad := tensor.Arange(1, 16).Reshape(5, 3) // [[1,2,3],[4,5,6],...,[13,14,15]]

	tests := []struct {
		name   string
		target tensor.Shape
		want   []float64
	}{
		{"leading axis", tensor.Shape{3}, []float64{35, 40, 45}},
		{"keep row", tensor.Shape{1, 3}, []float64{35, 40, 45}},
		{"keep column", tensor.Shape{5, 1}, []float64{6, 15, 24, 33, 42}},
		{"scalar", tensor.Shape{}, []float64{120}},
		{"one by one", tensor.Shape{1, 1}, []float64{120}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReduceBroadcast(grad, tt.target)
			require.Equal(t, tt.target, got.Shape())
			assert.Equal(t, tt.want, got.Data())
		})
	}
}

func TestReduceBroadcast_Idempotent(t *testing.T) {
	grad := tensor.Arange(0, 6).Reshape(2, 3)
	assert.Same(t, grad, ReduceBroadcast(grad, tensor.Shape{2, 3}))

	once := ReduceBroadcast(grad, tensor.Shape{1, 3})
	assert.Same(t, once, ReduceBroadcast(once, tensor.Shape{1, 3}))
}

func TestReduceBroadcast_Invalid(t *testing.T) {
	assert.Panics(t, func() { ReduceBroadcast(tensor.Ones(tensor.Shape{3}), tensor.Shape{2, 3}) })
	assert.Panics(t, func() { ReduceBroadcast(tensor.Ones(tensor.Shape{2, 3}), tensor.Shape{2}) })
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "add", KindAdd.String())
	assert.Equal(t, "getitem", KindIndex.String())
	assert.Equal(t, "pad", KindPad.String())
	assert.Equal(t, "unknown", Kind(-1).String())
	assert.Equal(t, "unknown", Kind(100).String())
}
