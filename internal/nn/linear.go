package nn

import (
	"math/rand/v2"

	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// DenseConfig configures a Dense layer. The zero value is usable.
type DenseConfig struct {
	// NumIn is the number of input features. Zero defers parameter creation
	// to the first Forward call, which reads it from the input.
	NumIn int

	// WeightInit initializes the weights. Defaults to XavierUniform{}.
	WeightInit Initializer

	// BiasInit initializes the bias. Defaults to Zeros{}.
	BiasInit Initializer

	// RNG feeds the initializers. Defaults to a randomly seeded generator.
	RNG *rand.Rand
}

// Dense implements a fully connected layer.
//
// Performs the transformation: y = x @ W + b
// where:
//   - x is the input tensor with shape [batch_size, num_in]
//   - W is the weight matrix with shape [num_in, num_out]
//   - b is the bias row with shape [1, num_out], broadcast over the batch
//   - y is the output tensor with shape [batch_size, num_out]
//
// Example:
//
//	layer := nn.NewDense(128, nn.DenseConfig{})
//	output := layer.Forward(input) // parameters created here from input.Shape()[1]
type Dense struct {
	base
	numIn, numOut int
	weightInit    Initializer
	biasInit      Initializer
	rng           *rand.Rand
	weight        *Parameter // [num_in, num_out]
	bias          *Parameter // [1, num_out]
}

// NewDense creates a Dense layer with numOut output features.
func NewDense(numOut int, cfg DenseConfig) *Dense {
	if numOut <= 0 {
		exceptions.Panicf("NewDense: numOut must be positive, got %d", numOut)
	}
	if cfg.NumIn < 0 {
		exceptions.Panicf("NewDense: NumIn must not be negative, got %d", cfg.NumIn)
	}
	d := &Dense{
		base:       base{name: "Linear"},
		numOut:     numOut,
		weightInit: cfg.WeightInit,
		biasInit:   cfg.BiasInit,
		rng:        cfg.RNG,
	}
	if d.weightInit == nil {
		d.weightInit = XavierUniform{}
	}
	if d.biasInit == nil {
		d.biasInit = Zeros{}
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.NumIn > 0 {
		d.initParameters(cfg.NumIn)
	}
	return d
}

func (d *Dense) initParameters(numIn int) {
	d.numIn = numIn
	d.weight = NewParameter("w", d.weightInit.Init(d.rng, tensor.Shape{numIn, d.numOut}))
	d.bias = NewParameter("b", d.biasInit.Init(d.rng, tensor.Shape{1, d.numOut}))
	klog.V(1).Infof("Dense: initialized parameters w%s b%s",
		d.weight.Tensor().Shape(), d.bias.Tensor().Shape())
}

// Forward computes x @ W + b, creating the parameters first if needed.
func (d *Dense) Forward(input *autodiff.Tensor) *autodiff.Tensor {
	shape := input.Shape()
	if len(shape) != 2 {
		exceptions.Panicf("Dense.Forward: expected 2D input [batch, features], got shape %v", shape)
	}
	if d.weight == nil {
		d.initParameters(shape[1])
	}
	if shape[1] != d.numIn {
		exceptions.Panicf("Dense.Forward: expected input with %d features, got %d", d.numIn, shape[1])
	}
	return input.MatMul(d.weight.Tensor()).Add(d.bias.Tensor())
}

// Parameters returns [w, b], or nil before the parameters are materialized.
func (d *Dense) Parameters() []*Parameter {
	if d.weight == nil {
		return nil
	}
	return []*Parameter{d.weight, d.bias}
}

// Initialized reports whether the parameters exist.
func (d *Dense) Initialized() bool {
	return d.weight != nil
}

// Weight returns the weight parameter, nil before initialization.
func (d *Dense) Weight() *Parameter {
	return d.weight
}

// Bias returns the bias parameter, nil before initialization.
func (d *Dense) Bias() *Parameter {
	return d.bias
}

// NumIn returns the number of input features, 0 before initialization.
func (d *Dense) NumIn() int {
	return d.numIn
}

// NumOut returns the number of output features.
func (d *Dense) NumOut() int {
	return d.numOut
}
