// Package nn implements neural network layers on top of autodiff tensors.
//
// This package provides building blocks for constructing neural networks:
//   - Layer interface: Base interface for all NN components
//   - Parameter: Trainable tensors with gradient accumulators
//   - Dense: Fully connected layer with lazy parameter materialization
//   - Activations: ReLU, Sigmoid, Tanh, Softmax
//   - Loss functions: MSE
//   - Sequential: Container for stacking layers
//
// Every layer is a plain composition of autodiff operations, so gradients
// flow through it without layer-specific backward code.
package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
)

// Phase selects training or evaluation behavior.
type Phase int

const (
	// Train is the default phase.
	Train Phase = iota
	// Eval is the inference phase.
	Eval
)

// String returns "TRAIN" or "EVAL".
func (p Phase) String() string {
	if p == Eval {
		return "EVAL"
	}
	return "TRAIN"
}

// Layer is the base interface for all neural network components.
//
// Layers can be composed to build complex architectures:
//
//	model := nn.NewSequential(
//	    nn.NewDense(16, nn.DenseConfig{NumIn: 3}),
//	    nn.NewReLU(),
//	    nn.NewDense(1, nn.DenseConfig{}),
//	)
type Layer interface {
	// Name identifies the layer kind, e.g. "Linear" or "ReLU".
	Name() string

	// Forward computes the output of the layer given an input tensor.
	Forward(input *autodiff.Tensor) *autodiff.Tensor

	// Parameters returns all trainable parameters of this layer.
	//
	// Returns nil for layers without trainable parameters, and for layers
	// whose parameters have not been materialized yet.
	Parameters() []*Parameter

	// SetPhase switches between training and evaluation.
	SetPhase(phase Phase)

	// IsTraining reports whether the layer is in the Train phase.
	IsTraining() bool
}

// base holds the state shared by every layer.
type base struct {
	name  string
	phase Phase
}

func (b *base) Name() string { return b.name }

func (b *base) SetPhase(phase Phase) { b.phase = phase }

func (b *base) IsTraining() bool { return b.phase == Train }

func (b *base) Parameters() []*Parameter { return nil }
