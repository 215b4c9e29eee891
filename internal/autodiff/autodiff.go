// Package autodiff implements eager reverse-mode automatic differentiation.
//
// A Tensor wraps an immutable tensor.RawTensor and, when it requires
// gradients, a gradient accumulator. Every operation on tensors runs
// immediately and records, on its result, one dependency Edge per operand
// that requires gradients. The edges form a DAG from results to operands
// that Backward walks to accumulate gradients.
//
// Architecture:
//   - Operation registry: package ops computes forward values and gradient records
//   - Tensor methods: coerce operands and build results through a single builder
//   - Backward engine: depth-first traversal of the edges in operand order,
//     summing the contribution of every path
//
// Usage:
//
//	x := autodiff.New(tensor.Scalar(2), true)
//	y := x.Mul(x) // y = x²
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4
//
// The graph is rebuilt by every forward pass. Gradients are not reset
// automatically: call ZeroGrad before each backward pass.
package autodiff

import (
	"fmt"

	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/gomlx/exceptions"
)

// Edge connects a result to one of its operands.
type Edge struct {
	// Source is the operand. It is shared, not owned: several results may
	// point to the same operand.
	Source *Tensor

	// Fn maps the gradient of the result to the gradient of Source.
	Fn ops.GradFn
}

// Tensor is a node of the computation graph.
type Tensor struct {
	values       *tensor.RawTensor
	requiresGrad bool
	grad         *tensor.RawTensor
	dependency   []Edge
}

// New creates a tensor. If requiresGrad is set, a zero gradient accumulator
// of the same shape is allocated.
//
// Leaves are created without dependencies; operations pass the edges to
// their operands.
func New(values *tensor.RawTensor, requiresGrad bool, dependency ...Edge) *Tensor {
	if values == nil {
		exceptions.Panicf("autodiff.New: nil values")
	}
	t := &Tensor{
		values:       values,
		requiresGrad: requiresGrad,
		dependency:   dependency,
	}
	if requiresGrad {
		t.ZeroGrad()
	}
	return t
}

// Scalar creates a 0-d leaf that does not require gradients.
func Scalar(v float64) *Tensor {
	return New(tensor.Scalar(v), false)
}

// Const wraps values in a leaf that does not require gradients.
func Const(values *tensor.RawTensor) *Tensor {
	return New(values, false)
}

// Param wraps values in a leaf that requires gradients.
func Param(values *tensor.RawTensor) *Tensor {
	return New(values, true)
}

// Values returns the current values.
func (t *Tensor) Values() *tensor.RawTensor {
	return t.values
}

// SetValues replaces the values and clears the gradient accumulator.
// No dependency edge is recorded.
func (t *Tensor) SetValues(values *tensor.RawTensor) {
	if values == nil {
		exceptions.Panicf("SetValues: nil values")
	}
	t.values = values
	t.grad = nil
}

// Shape returns the shape of the values.
func (t *Tensor) Shape() tensor.Shape {
	return t.values.Shape()
}

// Len returns the size of the first axis.
func (t *Tensor) Len() int {
	if t.values.NDim() == 0 {
		exceptions.Panicf("Len: 0-d tensor has no length")
	}
	return t.values.Shape()[0]
}

// RequiresGrad reports whether the tensor takes part in differentiation.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Grad returns the accumulated gradient. It is nil if the tensor does not
// require gradients, or if its values were reassigned since the last
// ZeroGrad or Backward.
func (t *Tensor) Grad() *tensor.RawTensor {
	return t.grad
}

// ZeroGrad resets the gradient accumulator to zeros of the current shape.
// It does nothing on tensors that do not require gradients.
func (t *Tensor) ZeroGrad() {
	if !t.requiresGrad {
		return
	}
	t.grad = tensor.Zeros(t.values.Shape())
}

// Dependency returns the edges to the operands this tensor was computed from.
func (t *Tensor) Dependency() []Edge {
	return t.dependency
}

// IsLeaf reports whether the tensor was created directly rather than by an
// operation on tensors requiring gradients.
func (t *Tensor) IsLeaf() bool {
	return len(t.dependency) == 0
}

// Detach returns a new leaf sharing the values but outside the graph.
func (t *Tensor) Detach() *Tensor {
	return New(t.values, false)
}

// Item returns the value of a single-element tensor.
func (t *Tensor) Item() float64 {
	return t.values.Item()
}

// String implements fmt.Stringer.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor(values = %s, shape=%s, requires_grad=%t)",
		t.values, t.values.Shape(), t.requiresGrad)
}

// build creates the result of an operation. The result requires gradients if
// any operand does, and only those operands get an edge.
func build(res ops.Result, operands ...*Tensor) *Tensor {
	if len(res.Grads) != len(operands) {
		exceptions.Panicf("build: %d gradient records for %d operands", len(res.Grads), len(operands))
	}
	requiresGrad := false
	var deps []Edge
	for i, operand := range operands {
		if operand.requiresGrad {
			requiresGrad = true
			deps = append(deps, Edge{Source: operand, Fn: res.Grads[i]})
		}
	}
	return New(res.Values, requiresGrad, deps...)
}
