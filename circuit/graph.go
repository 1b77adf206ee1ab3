// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package circuit

import (
	"fmt"
	"math/big"

	"github.com/consensys/circuitgraph/internal/utils"
	"github.com/consensys/circuitgraph/profile"
)

// Graph is an append only arena of nodes. The zero value is an empty graph
// ready to use; NewGraph pre-allocates the arena.
//
// Graphs are not safe for concurrent construction. Once built, a graph is
// read only and may be shared by concurrent evaluations.
type Graph struct {
	// Nodes is the arena; the identity of a node is its index here.
	// It is exported for the solver; do not modify it directly.
	Nodes []Node

	nbInputs   int
	outputs    []NodeID
	assertions [][2]NodeID
}

// NewGraph returns an empty graph with capacity for the given number of nodes.
func NewGraph(capacity int) *Graph {
	return &Graph{
		Nodes: make([]Node, 0, capacity),
	}
}

func (g *Graph) addNode(n Node) NodeID {
	profile.RecordNode()
	id := NodeID(len(g.Nodes))
	g.Nodes = append(g.Nodes, n)
	return id
}

// checkOperands returns ErrUnknownNode if one of the ids is not in the graph.
func (g *Graph) checkOperands(ids []NodeID) error {
	for _, id := range ids {
		if int(id) >= len(g.Nodes) {
			return fmt.Errorf("operand %d: %w", id, ErrUnknownNode)
		}
	}
	return nil
}

// AddInput appends an input node. Its value is provided by the assignment at
// fill time.
func (g *Graph) AddInput() NodeID {
	g.nbInputs++
	return g.addNode(Node{Kind: KindInput})
}

// AddConstant appends a constant node. value is converted with
// utils.FromInterface and must be a primitive (uintXX, intXX, []byte, string)
// or a big.Int; AddConstant panics on any other type.
func (g *Graph) AddConstant(value interface{}) NodeID {
	c := utils.FromInterface(value)
	return g.addNode(Node{Kind: KindConstant, Constant: &c})
}

// Add appends a node computing a+b. The graph is left unchanged if an operand
// is unknown.
func (g *Graph) Add(a, b NodeID) (NodeID, error) {
	if err := g.checkOperands([]NodeID{a, b}); err != nil {
		return 0, err
	}
	return g.addNode(Node{Kind: KindAdd, Operands: []NodeID{a, b}}), nil
}

// Mul appends a node computing a*b. The graph is left unchanged if an operand
// is unknown.
func (g *Graph) Mul(a, b NodeID) (NodeID, error) {
	if err := g.checkOperands([]NodeID{a, b}); err != nil {
		return 0, err
	}
	return g.addNode(Node{Kind: KindMul, Operands: []NodeID{a, b}}), nil
}

// AddHint appends a hint node taking the given inputs. Hint nodes reserve a
// spot for values computed outside the graph; the solver does not know how to
// fill them yet and fails when one is reachable from a fill target.
func (g *Graph) AddHint(inputs ...NodeID) (NodeID, error) {
	if err := g.checkOperands(inputs); err != nil {
		return 0, err
	}
	operands := append([]NodeID(nil), inputs...)
	return g.addNode(Node{Kind: KindHint, Operands: operands}), nil
}

// MarkOutput flags a node as an output of the graph. Fills target the marked
// outputs by default. Marking a node twice is a no-op.
func (g *Graph) MarkOutput(id NodeID) error {
	if int(id) >= len(g.Nodes) {
		return fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	for _, o := range g.outputs {
		if o == id {
			return nil
		}
	}
	g.outputs = append(g.outputs, id)
	return nil
}

// AssertEqual records an equality assertion between two nodes. Assertions are
// checked by the solver once the nodes are filled.
func (g *Graph) AssertEqual(a, b NodeID) error {
	if err := g.checkOperands([]NodeID{a, b}); err != nil {
		return err
	}
	g.assertions = append(g.assertions, [2]NodeID{a, b})
	return nil
}

// GetNode returns a copy of the node with the given identity.
func (g *Graph) GetNode(id NodeID) (Node, error) {
	if int(id) >= len(g.Nodes) {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	n := g.Nodes[id]
	if n.Operands != nil {
		n.Operands = append([]NodeID(nil), n.Operands...)
	}
	if n.Constant != nil {
		n.Constant = new(big.Int).Set(n.Constant)
	}
	return n, nil
}

// GetNbNodes returns the number of nodes in the graph.
func (g *Graph) GetNbNodes() int {
	return len(g.Nodes)
}

// GetNbInputs returns the number of input nodes in the graph.
func (g *Graph) GetNbInputs() int {
	return g.nbInputs
}

// Outputs returns the marked outputs, in marking order.
func (g *Graph) Outputs() []NodeID {
	return append([]NodeID(nil), g.outputs...)
}

// Assertions returns the recorded equality assertions, in recording order.
func (g *Graph) Assertions() [][2]NodeID {
	return append([][2]NodeID(nil), g.assertions...)
}

// TopologicalOrder returns every node identity exactly once, operands before
// the nodes consuming them. Nodes only reference previously created nodes, so
// the creation order is such an order; callers should rely on this query
// rather than on identity numbering.
func (g *Graph) TopologicalOrder() []NodeID {
	r := make([]NodeID, len(g.Nodes))
	for i := range r {
		r[i] = NodeID(i)
	}
	return r
}
