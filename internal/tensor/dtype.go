// Package tensor provides the dense numeric buffer used by the autodiff engine.
//
// A RawTensor is an immutable, row-major, N-dimensional array of real numbers.
// Every operation returns a new buffer, so a *RawTensor captured at some point
// in time keeps its values forever. The autodiff package relies on this to
// snapshot operands for gradient computation.
package tensor

import (
	"math"

	"github.com/x448/float16"
)

// DataType is the element type of a buffer.
//
// Values are always stored as float64; the data type determines the precision
// they are rounded to when a buffer is produced.
type DataType int

// Supported element types. Float64 is the zero value and the default.
const (
	Float64 DataType = iota
	Float32
	Float16
	Int64
)

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Float16:
		return "float16"
	case Int64:
		return "int64"
	default:
		return "unknown"
	}
}

// Round converts v to the precision of the data type.
func (dt DataType) Round(v float64) float64 {
	switch dt {
	case Float32:
		return float64(float32(v))
	case Float16:
		return float64(float16.Fromfloat32(float32(v)).Float32())
	case Int64:
		return math.Trunc(v)
	default:
		return v
	}
}

// IsFloat reports whether dt is a floating point type.
func (dt DataType) IsFloat() bool {
	return dt != Int64
}

// rank orders data types by width for promotion.
func (dt DataType) rank() int {
	switch dt {
	case Int64:
		return 0
	case Float16:
		return 1
	case Float32:
		return 2
	default:
		return 3
	}
}

// Promote returns the wider of two data types.
func Promote(a, b DataType) DataType {
	if a.rank() >= b.rank() {
		return a
	}
	return b
}

// floatResult returns dt, or Float64 if dt is an integer type.
func floatResult(dt DataType) DataType {
	if dt.IsFloat() {
		return dt
	}
	return Float64
}
