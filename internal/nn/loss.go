package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Example:
//
//	mse := nn.NewMSELoss()
//	loss := mse.Forward(model.Forward(x), y)
//	loss.Backward()
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward returns the 0-d mean squared error. Shapes must match exactly.
func (m *MSELoss) Forward(predictions, targets *autodiff.Tensor) *autodiff.Tensor {
	if !predictions.Shape().Equal(targets.Shape()) {
		exceptions.Panicf("MSELoss: predictions shape %v and targets shape %v differ",
			predictions.Shape(), targets.Shape())
	}
	diff := predictions.Sub(targets)
	return diff.Mul(diff).Mean()
}
