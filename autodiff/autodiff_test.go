// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"testing"

	"github.com/born-ml/minigrad/autodiff"
	"github.com/born-ml/minigrad/tensor"
	"github.com/stretchr/testify/assert"
)

func TestPublicAPI(t *testing.T) {
	w := autodiff.Param(tensor.Ones(tensor.Shape{3, 1}))
	x := autodiff.MustTensor([][]float64{{1, 2, 3}})

	loss := x.MatMul(w).Sum()
	loss.Backward()
	assert.Equal(t, []float64{1, 2, 3}, w.Grad().Data())
	assert.Contains(t, autodiff.FormatGraph(loss), "dot <- (3, 1): requires_grad, leaf")

	w.SubAssign(autodiff.Const(w.Grad().MulScalar(0.1)))
	assert.InDeltaSlice(t, []float64{0.9, 0.8, 0.7}, w.Values().Data(), 1e-12)
	assert.Nil(t, w.Grad())
}
