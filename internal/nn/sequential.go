package nn

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/gomlx/exceptions"
)

// Sequential is a container layer that chains multiple layers together.
//
// Each layer's output becomes the next layer's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(16, nn.DenseConfig{NumIn: 3}),
//	    nn.NewTanh(),
//	    nn.NewDense(1, nn.DenseConfig{}),
//	)
//
//	output := model.Forward(input)
type Sequential struct {
	base
	layers []Layer
}

// NewSequential creates a new Sequential container.
func NewSequential(layers ...Layer) *Sequential {
	return &Sequential{
		base:   base{name: "Sequential"},
		layers: layers,
	}
}

// Forward applies all layers in sequence.
func (s *Sequential) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	output := input
	for _, layer := range s.layers {
		output = layer.Forward(output)
	}
	return output
}

// Parameters returns the parameters of all layers, in layer order.
//
// Lazily initialized layers contribute nothing until their first Forward.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range s.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// SetPhase sets the phase of the container and of every layer.
func (s *Sequential) SetPhase(phase Phase) {
	s.base.SetPhase(phase)
	for _, layer := range s.layers {
		layer.SetPhase(phase)
	}
}

// Add appends a layer to the sequence.
func (s *Sequential) Add(layer Layer) {
	s.layers = append(s.layers, layer)
}

// Len returns the number of layers in the sequence.
func (s *Sequential) Len() int {
	return len(s.layers)
}

// Layer returns the layer at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Layer(index int) Layer {
	if index < 0 || index >= len(s.layers) {
		exceptions.Panicf("Sequential.Layer: index %d out of bounds for %d layers", index, len(s.layers))
	}
	return s.layers[index]
}
