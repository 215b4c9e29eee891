package autodiff

import (
	"github.com/born-ml/minigrad/internal/autodiff/ops"
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// pending is a gradient waiting to be pushed into node: fn (nil for the root)
// maps upstream to node's gradient.
type pending struct {
	node     *Tensor
	fn       ops.GradFn
	upstream *tensor.RawTensor
}

// Backward accumulates gradients into every tensor reachable from t.
//
// With no argument t must hold a single element and the gradient is 1.
// Otherwise the single argument is the gradient of t and must match its
// shape exactly.
//
// The gradient is added to t's accumulator, then each dependency edge, in
// operand order, maps it to its operand and the walk continues depth-first
// from there. A tensor reachable through several paths is visited once per
// path and sums the contributions. An accumulator cleared by SetValues or
// in-place arithmetic starts again from zero.
//
// Backward panics if t does not require gradients.
//
// Example:
//
//	a := autodiff.Param(tensor.Scalar(1))
//	b := a.Add(a)
//	c := b.MulScalar(3)
//	c.Backward()
//	a.Grad() // 6
func (t *Tensor) Backward(grad ...*tensor.RawTensor) {
	if !t.requiresGrad {
		exceptions.Panicf("Backward called on a tensor that does not require grad")
	}

	var g *tensor.RawTensor
	switch len(grad) {
	case 0:
		if t.values.NumElements() != 1 {
			exceptions.Panicf("Backward without a gradient requires a single-element tensor, got shape %v; pass the gradient explicitly",
				t.values.Shape())
		}
		g = tensor.Ones(t.values.Shape())
	case 1:
		g = grad[0]
		if !g.Shape().Equal(t.values.Shape()) {
			exceptions.Panicf("Backward: gradient shape %v does not match tensor shape %v", g.Shape(), t.values.Shape())
		}
	default:
		exceptions.Panicf("Backward: expected at most one gradient, got %d", len(grad))
	}

	// Explicit LIFO worklist. Edges are pushed in reverse so they pop in
	// operand order, which is the order a recursive walk would take.
	stack := []pending{{node: t, upstream: g}}
	visits := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visits++

		local := p.upstream
		if p.fn != nil {
			local = p.fn.Backward(p.upstream)
		}
		p.node.accumulate(local)

		deps := p.node.dependency
		for i := len(deps) - 1; i >= 0; i-- {
			stack = append(stack, pending{node: deps[i].Source, fn: deps[i].Fn, upstream: local})
		}
	}

	if klog.V(2).Enabled() {
		klog.Infof("backward from tensor of shape %v: %d node visits", t.values.Shape(), visits)
	}
}

// accumulate adds g to the gradient accumulator.
func (t *Tensor) accumulate(g *tensor.RawTensor) {
	if !g.Shape().Equal(t.values.Shape()) {
		exceptions.Panicf("gradient of shape %v does not match tensor of shape %v", g.Shape(), t.values.Shape())
	}
	if t.grad == nil {
		t.ZeroGrad()
	}
	t.grad = t.grad.Add(g)
}

// TryBackward is Backward returning the failure as an error instead of
// panicking.
func (t *Tensor) TryBackward(grad ...*tensor.RawTensor) error {
	return exceptions.TryCatch[error](func() { t.Backward(grad...) })
}
