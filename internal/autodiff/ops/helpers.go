package ops

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// ReduceBroadcast reduces a gradient to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Leading axes that broadcasting added are summed away, then every axis
// where the target has size 1 but the gradient is larger is summed with the
// axis kept. If the shapes already match the gradient is returned as is.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along axis 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along axis 1)
func ReduceBroadcast(grad *tensor.RawTensor, target tensor.Shape) *tensor.RawTensor {
	gradShape := grad.Shape()
	if gradShape.Equal(target) {
		return grad
	}

	extra := len(gradShape) - len(target)
	if extra < 0 {
		exceptions.Panicf("ReduceBroadcast: gradient %v has lower rank than target %v", gradShape, target)
	}
	for i := 0; i < extra; i++ {
		grad = grad.SumAxis(0, false)
	}

	gradShape = grad.Shape()
	for i, dim := range target {
		if dim == 1 && gradShape[i] != 1 {
			grad = grad.SumAxis(i, true)
		}
	}

	if !grad.Shape().Equal(target) {
		exceptions.Panicf("ReduceBroadcast: cannot reduce gradient %v to %v", gradShape, target)
	}
	return grad
}
