// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides eager reverse-mode automatic differentiation.
//
// Operations on tensors run immediately and record, on their result, an edge
// to every operand that requires gradients. Backward walks those edges from
// a result and accumulates gradients into every tensor it reaches.
//
// Example:
//
//	import (
//	    "github.com/born-ml/minigrad/autodiff"
//	    "github.com/born-ml/minigrad/tensor"
//	)
//
//	func main() {
//	    w := autodiff.Param(tensor.Ones(tensor.Shape{3, 1}))
//	    x := autodiff.MustTensor([][]float64{{1, 2, 3}})
//
//	    loss := x.MatMul(w).Sum()
//	    loss.Backward()
//	    fmt.Println(w.Grad()) // [[1] [2] [3]]
//
//	    w.SubAssign(autodiff.Const(w.Grad().MulScalar(0.1)))
//	}
package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff"
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/tensor"
)

// Tensor is a node of the computation graph.
type Tensor = autodiff.Tensor

// Edge connects a result to one of its operands.
type Edge = autodiff.Edge

// GradFn maps the gradient of a result to the gradient of one operand.
type GradFn = ops.GradFn

// New creates a tensor, allocating a zero gradient if requiresGrad is set.
func New(values *tensor.RawTensor, requiresGrad bool, dependency ...Edge) *Tensor {
	return autodiff.New(values, requiresGrad, dependency...)
}

// Scalar creates a 0-d tensor that does not require gradients.
func Scalar(v float64) *Tensor { return autodiff.Scalar(v) }

// Const wraps values in a tensor that does not require gradients.
func Const(values *tensor.RawTensor) *Tensor { return autodiff.Const(values) }

// Param wraps values in a tensor that requires gradients.
func Param(values *tensor.RawTensor) *Tensor { return autodiff.Param(values) }

// ToTensor converts a *Tensor, *tensor.RawTensor, number or nested slice of
// numbers into a Tensor.
func ToTensor(v any, opts ...tensor.Option) (*Tensor, error) {
	return autodiff.ToTensor(v, opts...)
}

// MustTensor is ToTensor that panics on error.
func MustTensor(v any, opts ...tensor.Option) *Tensor {
	return autodiff.MustTensor(v, opts...)
}

// FormatGraph renders the dependency graph below t for debugging.
func FormatGraph(t *Tensor) string {
	return autodiff.FormatGraph(t)
}
