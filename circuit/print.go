package circuit

import (
	"strconv"
	"strings"
)

// Resolver allows pretty printing of nodes with caller defined names.
type Resolver interface {
	NodeToString(id NodeID) string
}

// StringBuilder is a helper to build strings from nodes. It embeds a
// strings.Builder object for convenience.
type StringBuilder struct {
	strings.Builder
	Resolver
}

// NewStringBuilder returns a new StringBuilder.
func NewStringBuilder(r Resolver) *StringBuilder {
	return &StringBuilder{Resolver: r}
}

// WriteNode appends a human readable form of the node to the current buffer,
// like "v2 = v0 ⋅ v1".
func (sbb *StringBuilder) WriteNode(n Node, id NodeID) {
	sbb.WriteString(sbb.NodeToString(id))
	sbb.WriteString(" = ")
	switch n.Kind {
	case KindInput:
		sbb.WriteString("input")
	case KindConstant:
		sbb.WriteString(n.Constant.String())
	case KindAdd:
		sbb.WriteOperands(n.Operands, " + ")
	case KindMul:
		sbb.WriteOperands(n.Operands, " ⋅ ")
	case KindHint:
		sbb.WriteString("hint(")
		sbb.WriteOperands(n.Operands, ", ")
		sbb.WriteByte(')')
	default:
		sbb.WriteString(n.Kind.String())
	}
}

// WriteOperands appends the operand names separated by sep to the current buffer.
func (sbb *StringBuilder) WriteOperands(operands []NodeID, sep string) {
	for i, o := range operands {
		if i > 0 {
			sbb.WriteString(sep)
		}
		sbb.WriteString(sbb.NodeToString(o))
	}
}

// NodeToString implements Resolver. Constants are rendered as their literal
// value, other nodes as v<id>.
func (g *Graph) NodeToString(id NodeID) string {
	if int(id) < len(g.Nodes) && g.Nodes[id].Kind == KindConstant {
		return g.Nodes[id].Constant.String()
	}
	return "v" + strconv.Itoa(int(id))
}

// String renders the graph with one line per node, operands before consumers.
// Constants are inlined in the nodes consuming them; marked outputs and
// recorded assertions are listed at the end.
func (g *Graph) String() string {
	sbb := NewStringBuilder(g)
	for i := range g.Nodes {
		if g.Nodes[i].Kind == KindConstant {
			continue
		}
		sbb.WriteNode(g.Nodes[i], NodeID(i))
		sbb.WriteByte('\n')
	}
	for _, o := range g.outputs {
		sbb.WriteString("output: ")
		sbb.WriteString(sbb.NodeToString(o))
		sbb.WriteByte('\n')
	}
	for _, a := range g.assertions {
		sbb.WriteString("assert ")
		sbb.WriteString(sbb.NodeToString(a[0]))
		sbb.WriteString(" == ")
		sbb.WriteString(sbb.NodeToString(a[1]))
		sbb.WriteByte('\n')
	}
	return sbb.String()
}
