package nn

import (
	"math"
	"math/rand/v2"

	"github.com/born-ml/minigrad/internal/tensor"
)

// Initializer creates the initial values of a parameter.
type Initializer interface {
	Init(rng *rand.Rand, shape tensor.Shape) *tensor.RawTensor
}

// XavierUniform (Glorot) initialization for weights.
//
// Values are drawn from U(-a, a) with a = Gain * sqrt(6/(fan_in + fan_out)),
// where fan_in and fan_out are the first two dimensions of the shape.
// A zero Gain means 1.
type XavierUniform struct {
	Gain float64
}

// Init implements Initializer.
func (x XavierUniform) Init(rng *rand.Rand, shape tensor.Shape) *tensor.RawTensor {
	fanIn, fanOut := fans(shape)
	gain := x.Gain
	if gain == 0 {
		gain = 1
	}
	bound := gain * math.Sqrt(6.0/float64(fanIn+fanOut))
	return tensor.Uniform(rng, shape, -bound, bound)
}

// fans returns the input and output sizes of a weight shape.
func fans(shape tensor.Shape) (fanIn, fanOut int) {
	switch len(shape) {
	case 0:
		return 1, 1
	case 1:
		return shape[0], shape[0]
	default:
		return shape[0], shape[1]
	}
}

// Normal draws values from N(Mean, Std²).
type Normal struct {
	Mean, Std float64
}

// Init implements Initializer.
func (n Normal) Init(rng *rand.Rand, shape tensor.Shape) *tensor.RawTensor {
	return tensor.Randn(rng, shape, n.Mean, n.Std)
}

// Zeros fills the tensor with zeros. It is the usual bias initializer.
type Zeros struct{}

// Init implements Initializer.
func (Zeros) Init(_ *rand.Rand, shape tensor.Shape) *tensor.RawTensor {
	return tensor.Zeros(shape)
}

// Constant fills the tensor with Value.
type Constant struct {
	Value float64
}

// Init implements Initializer.
func (c Constant) Init(_ *rand.Rand, shape tensor.Shape) *tensor.RawTensor {
	return tensor.Full(shape, c.Value)
}
