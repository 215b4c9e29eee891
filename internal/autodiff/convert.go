package autodiff

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
)

// ToTensor converts v into a Tensor.
//
// A *Tensor is returned unchanged. A *tensor.RawTensor, a Go number or a
// (nested) slice of numbers becomes a leaf that does not require gradients.
// Anything else is an error.
func ToTensor(v any, opts ...tensor.Option) (*Tensor, error) {
	switch x := v.(type) {
	case *Tensor:
		if x == nil {
			return nil, errors.New("cannot convert a nil *Tensor")
		}
		return x, nil
	case *tensor.RawTensor:
		if x == nil {
			return nil, errors.New("cannot convert a nil *RawTensor")
		}
	}
	values, err := tensor.FromValue(v, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot convert %T to a Tensor", v)
	}
	return Const(values), nil
}

// MustTensor is ToTensor that panics on error.
func MustTensor(v any, opts ...tensor.Option) *Tensor {
	return must.M1(ToTensor(v, opts...))
}
