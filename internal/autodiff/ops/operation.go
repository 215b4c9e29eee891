// Package ops is the operation registry of the autodiff engine.
//
// Each operation is a pure function over numeric buffers that returns the
// forward values together with one gradient record per operand:
//   - Forward pass: computed eagerly with tensor.RawTensor arithmetic
//   - Backward pass: GradFn.Backward maps the gradient of the output to the
//     gradient of one operand, already reduced to that operand's shape
//
// Gradient records hold snapshots of the values they need. Buffers are
// immutable, so a snapshot is just a pointer taken at forward time.
//
// Supported operations:
//   - Add: d(a+b)/da = 1, d(a+b)/db = 1
//   - Mul: d(a*b)/da = b, d(a*b)/db = a
//   - Div: d(a/b)/da = 1/b, d(a/b)/db = -a/b²
//   - Pow: d(a^b)/da = b*a^(b-1), d(a^b)/db = ln(a)*a^b
//   - Dot: d(A@B)/dA = grad@B^T, d(A@B)/dB = A^T@grad
//   - Maximum, Minimum, Clip: gradient masked to the selected elements
//   - Exp, Log, Neg
//   - Sum, Max, Min (whole tensor or along one axis)
//   - Transpose, Reshape, Flatten, Index, Pad
package ops

import "github.com/born-ml/minigrad/internal/tensor"

// Kind identifies the operation that produced a gradient record.
type Kind int

// Operation kinds.
const (
	KindAdd Kind = iota
	KindMul
	KindDiv
	KindPow
	KindDot
	KindMaximum
	KindMinimum
	KindExp
	KindLog
	KindNeg
	KindSum
	KindMax
	KindMin
	KindTranspose
	KindReshape
	KindFlatten
	KindIndex
	KindClip
	KindPad
)

var kindNames = [...]string{
	KindAdd:       "add",
	KindMul:       "mul",
	KindDiv:       "div",
	KindPow:       "pow",
	KindDot:       "dot",
	KindMaximum:   "maximum",
	KindMinimum:   "minimum",
	KindExp:       "exp",
	KindLog:       "log",
	KindNeg:       "neg",
	KindSum:       "sum",
	KindMax:       "max",
	KindMin:       "min",
	KindTranspose: "transpose",
	KindReshape:   "reshape",
	KindFlatten:   "flatten",
	KindIndex:     "getitem",
	KindClip:      "clip",
	KindPad:       "pad",
}

// String returns the operation name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// GradFn computes the gradient of one operand from the gradient of the output.
type GradFn interface {
	// Kind returns the operation this record belongs to.
	Kind() Kind

	// Backward maps the output gradient to the gradient with respect to the
	// operand, with the operand's original (pre-broadcast) shape.
	//
	// Example for Add with a[3] + b[2,3]:
	//   grad: dL/d(a+b), shape (2, 3)
	//   returns for a: sum of grad over axis 0, shape (3,)
	Backward(grad *tensor.RawTensor) *tensor.RawTensor
}

// Result is the output of an operation: the forward values and one gradient
// record per operand, in operand order.
type Result struct {
	Values *tensor.RawTensor
	Grads  []GradFn
}

func unaryResult(values *tensor.RawTensor, fn GradFn) Result {
	return Result{Values: values, Grads: []GradFn{fn}}
}

func binaryResult(values *tensor.RawTensor, lhs, rhs GradFn) Result {
	return Result{Values: values, Grads: []GradFn{lhs, rhs}}
}
