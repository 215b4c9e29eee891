// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network layers built from autodiff operations.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewDense(16, nn.DenseConfig{NumIn: 3}),
//	    nn.NewReLU(),
//	    nn.NewDense(1, nn.DenseConfig{}),
//	)
//	loss := nn.NewMSELoss().Forward(model.Forward(x), y)
//	loss.Backward()
package nn

import (
	"github.com/born-ml/minigrad/internal/nn"
	"github.com/born-ml/minigrad/tensor"
)

// Layer is the interface implemented by every layer.
type Layer = nn.Layer

// Phase selects training or evaluation behavior.
type Phase = nn.Phase

// Phases.
const (
	Train Phase = nn.Train
	Eval  Phase = nn.Eval
)

// Parameter is a named trainable tensor.
type Parameter = nn.Parameter

// NewParameter wraps values in a trainable parameter.
func NewParameter(name string, values *tensor.RawTensor) *Parameter {
	return nn.NewParameter(name, values)
}

// Layers.
type (
	Dense       = nn.Dense
	DenseConfig = nn.DenseConfig
	ReLU        = nn.ReLU
	Sigmoid     = nn.Sigmoid
	Tanh        = nn.Tanh
	Softmax     = nn.Softmax
	Sequential  = nn.Sequential
	MSELoss     = nn.MSELoss
)

// NewDense creates a fully connected layer with numOut outputs.
func NewDense(numOut int, cfg DenseConfig) *Dense { return nn.NewDense(numOut, cfg) }

// NewReLU creates a ReLU activation.
func NewReLU() *ReLU { return nn.NewReLU() }

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() *Sigmoid { return nn.NewSigmoid() }

// NewTanh creates a Tanh activation.
func NewTanh() *Tanh { return nn.NewTanh() }

// NewSoftmax creates a Softmax over the last axis.
func NewSoftmax() *Softmax { return nn.NewSoftmax() }

// NewSequential chains layers.
func NewSequential(layers ...Layer) *Sequential { return nn.NewSequential(layers...) }

// NewMSELoss creates a mean squared error loss.
func NewMSELoss() *MSELoss { return nn.NewMSELoss() }

// Initializers.
type (
	Initializer   = nn.Initializer
	XavierUniform = nn.XavierUniform
	Normal        = nn.Normal
	Zeros         = nn.Zeros
	Constant      = nn.Constant
)
