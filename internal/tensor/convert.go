package tensor

import (
	"reflect"

	"github.com/pkg/errors"
)

// FromValue converts a Go value into a buffer.
//
// Accepted inputs are *RawTensor, Go numbers (0-d result) and slices or arrays
// of numbers nested to any depth. Nested inputs must be rectangular. Integer
// inputs default to Int64 and floating point inputs to Float64 unless
// WithDType is given.
func FromValue(v any, opts ...Option) (*RawTensor, error) {
	if v == nil {
		return nil, errors.New("cannot convert nil to a tensor")
	}
	if raw, ok := v.(*RawTensor); ok {
		if len(opts) == 0 {
			return raw, nil
		}
		return raw.AsType(newOptions(opts).dtype), nil
	}

	rv := reflect.ValueOf(v)
	shape := shapeOf(rv)
	isInt := true
	data, err := flatten(rv, shape, make([]float64, 0, shape.NumElements()), &isInt)
	if err != nil {
		return nil, err
	}
	if isInt && len(data) > 0 {
		opts = append([]Option{WithDType(Int64)}, opts...)
	}
	return newRaw(data, shape, newOptions(opts).dtype), nil
}

// shapeOf walks the first element of every nesting level.
func shapeOf(rv reflect.Value) Shape {
	shape := Shape{}
	for rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		shape = append(shape, rv.Len())
		if rv.Len() == 0 {
			break
		}
		rv = rv.Index(0)
		for rv.Kind() == reflect.Interface {
			rv = rv.Elem()
		}
	}
	return shape
}

func flatten(rv reflect.Value, shape Shape, out []float64, isInt *bool) ([]float64, error) {
	for rv.Kind() == reflect.Interface {
		rv = rv.Elem()
	}
	if len(shape) == 0 {
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return append(out, float64(rv.Int())), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return append(out, float64(rv.Uint())), nil
		case reflect.Float32, reflect.Float64:
			*isInt = false
			return append(out, rv.Float()), nil
		case reflect.Slice, reflect.Array:
			return nil, errors.Errorf("ragged nested sequence: unexpected sequence of length %d where a number was expected", rv.Len())
		case reflect.Invalid:
			return nil, errors.New("cannot convert nil element to a tensor")
		default:
			return nil, errors.Errorf("unsupported element type %s", rv.Type())
		}
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, errors.Errorf("ragged nested sequence: expected a sequence of length %d, got %s", shape[0], rv.Type())
	}
	if rv.Len() != shape[0] {
		return nil, errors.Errorf("ragged nested sequence: expected length %d, got %d", shape[0], rv.Len())
	}
	var err error
	for i := 0; i < rv.Len(); i++ {
		out, err = flatten(rv.Index(i), shape[1:], out, isInt)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
