// Package circuit defines an arithmetic computation graph.
//
// A graph is an append only arena of nodes; a node is an input, a constant or
// an operation over previously created nodes. Node identities are allocated
// in creation order and are never reused, so a graph is acyclic by
// construction. The package only describes computations; evaluating a graph
// against concrete input values is the job of the solver package.
package circuit

import (
	"errors"
	"math/big"
)

// ErrUnknownNode is returned when an operation references a node identity
// that is not in the graph.
var ErrUnknownNode = errors.New("unknown node id")

// NodeID is the identity of a node; it is the node index in the graph arena.
type NodeID uint32

// Kind encodes the nature of a node.
type Kind uint8

const (
	KindUnset Kind = iota
	KindInput
	KindConstant
	KindAdd
	KindMul
	KindHint
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindConstant:
		return "constant"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindHint:
		return "hint"
	default:
		return "unset"
	}
}

// Node is a vertex of the computation graph. Operands always reference nodes
// created before this one; a node never references itself or later nodes.
type Node struct {
	Kind     Kind
	Operands []NodeID // nil for inputs and constants
	Constant *big.Int // set for constant nodes only
}
