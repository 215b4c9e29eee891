// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/nn"
	"github.com/born-ml/minigrad/optim"
	"github.com/born-ml/minigrad/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingStep(t *testing.T) {
	dense := nn.NewDense(1, nn.DenseConfig{
		NumIn:      1,
		WeightInit: nn.Zeros{},
		BiasInit:   nn.Constant{Value: 0},
	})
	model := nn.NewSequential(dense)
	var opt optim.Optimizer = optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})

	x := autodiff.MustTensor([][]float64{{1}, {2}})
	y := autodiff.MustTensor([][]float64{{2}, {4}})

	opt.ZeroGrad()
	loss := nn.NewMSELoss().Forward(model.Forward(x), y)
	assert.InDelta(t, 10.0, loss.Item(), 1e-12)
	loss.Backward()

	// dL/dW = mean(2*(pred-y)*x) = -10, dL/db = mean(2*(pred-y)) = -6.
	assert.InDeltaSlice(t, []float64{-10}, dense.Weight().Grad().Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{-6}, dense.Bias().Grad().Data(), 1e-12)

	opt.Step()
	assert.InDeltaSlice(t, []float64{1}, dense.Weight().Tensor().Values().Data(), 1e-12)
	assert.InDeltaSlice(t, []float64{0.6}, dense.Bias().Tensor().Values().Data(), 1e-12)
}

func TestPhase(t *testing.T) {
	model := nn.NewSequential(nn.NewDense(2, nn.DenseConfig{}), nn.NewTanh(), nn.NewSigmoid())
	assert.True(t, model.IsTraining())
	model.SetPhase(nn.Eval)
	assert.False(t, model.IsTraining())
	assert.Empty(t, model.Parameters())

	p := nn.NewParameter("w", tensor.Ones(tensor.Shape{2, 2}))
	require.Equal(t, 4, p.NumElements())
	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{})
	assert.Greater(t, opt.GetLR(), 0.0)
}
