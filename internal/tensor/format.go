package tensor

import (
	"strconv"
	"strings"
)

// String renders the values as nested brackets, one row per line.
func (r *RawTensor) String() string {
	if len(r.shape) == 0 {
		return r.formatValue(r.data[0])
	}
	var sb strings.Builder
	r.format(&sb, 0, 0, r.Strides())
	return sb.String()
}

func (r *RawTensor) format(sb *strings.Builder, axis, offset int, strides []int) {
	sb.WriteByte('[')
	dim := r.shape[axis]
	last := axis == len(r.shape)-1
	for i := 0; i < dim; i++ {
		if i > 0 {
			if last {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(strings.Repeat("\n", len(r.shape)-1-axis))
				sb.WriteString(strings.Repeat(" ", axis+1))
			}
		}
		if last {
			sb.WriteString(r.formatValue(r.data[offset+i]))
		} else {
			r.format(sb, axis+1, offset+i*strides[axis], strides)
		}
	}
	sb.WriteByte(']')
}

func (r *RawTensor) formatValue(v float64) string {
	if r.dtype == Int64 {
		return strconv.FormatInt(int64(v), 10)
	}
	prec := 64
	if r.dtype != Float64 {
		prec = 32
	}
	return strconv.FormatFloat(v, 'g', -1, prec)
}
