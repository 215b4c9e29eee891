package autodiff

import (
	"fmt"
	"strings"
)

// FormatGraph renders the dependency graph below t, one edge per line.
// Shared operands appear once per path, as Backward visits them.
//
// Example output for c = (a + a) * 3:
//
//	(): requires_grad
//	  mul <- (): requires_grad
//	    add <- (): requires_grad, leaf
//	    add <- (): requires_grad, leaf
func FormatGraph(t *Tensor) string {
	var sb strings.Builder
	sb.WriteString(describe(t))
	sb.WriteByte('\n')
	formatEdges(&sb, t, 1)
	return sb.String()
}

func formatEdges(sb *strings.Builder, t *Tensor, depth int) {
	for _, e := range t.dependency {
		fmt.Fprintf(sb, "%s%s <- %s\n", strings.Repeat("  ", depth), e.Fn.Kind(), describe(e.Source))
		formatEdges(sb, e.Source, depth+1)
	}
}

func describe(t *Tensor) string {
	s := t.values.Shape().String()
	if t.requiresGrad {
		s += ": requires_grad"
	}
	if t.IsLeaf() && t.requiresGrad {
		s += ", leaf"
	}
	return s
}
