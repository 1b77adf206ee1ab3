// Package solver evaluates a computation graph by propagating input and
// constant values through its operation nodes.
//
// Values are arbitrary precision integers (math/big); additions and
// multiplications are exact, there is no modular reduction.
package solver

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/circuitgraph/circuit"
	"github.com/consensys/circuitgraph/internal/utils"
)

var (
	// ErrMissingInput is returned by Fill when a reachable input node has no
	// value in the assignment.
	ErrMissingInput = errors.New("input is not set")

	// ErrUnsupportedNodeKind is returned by Fill when it reaches a node it
	// cannot compute, like a hint.
	ErrUnsupportedNodeKind = errors.New("node kind is not supported by the solver")

	// ErrUnsatisfiedConstraint is returned by Fill when an equality assertion
	// does not hold on the computed values.
	ErrUnsatisfiedConstraint = errors.New("constraint is not satisfied")
)

// Assignment maps input node identities to concrete values for one
// evaluation. Entries keyed by non input identities are ignored by the
// solver.
type Assignment map[circuit.NodeID]big.Int

// NewAssignment returns an empty assignment.
func NewAssignment() Assignment {
	return make(Assignment)
}

// Assign sets the value of the given input node. value is converted with
// utils.FromInterface and must be a primitive (uintXX, intXX, []byte, string)
// or a big.Int.
func (a Assignment) Assign(id circuit.NodeID, value interface{}) {
	a[id] = utils.FromInterface(value)
}

// Fill computes the value of every node the fill targets depend on and
// returns them in a Solution.
//
// Targets default to the graph outputs; if the graph has no marked output,
// every node is a target. Operands of recorded equality assertions always
// count as targets, so assertions are checked on every fill. Nodes that no
// target depends on are not visited; their inputs may be left out of the
// assignment.
//
// The fill is all or nothing: on the first missing input, unsupported node or
// unsatisfied assertion, Fill returns a nil Solution and an error wrapping
// the matching sentinel (ErrMissingInput, ErrUnsupportedNodeKind,
// ErrUnsatisfiedConstraint).
func Fill(g *circuit.Graph, assignment Assignment, opts ...Option) (*Solution, error) {
	start := time.Now()

	opt, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	log := opt.Logger

	targets := opt.Targets
	if len(targets) == 0 {
		targets = g.Outputs()
	}
	if len(targets) == 0 {
		// no marked output; every node is a target
		targets = g.TopologicalOrder()
	}
	for _, target := range targets {
		if int(target) >= g.GetNbNodes() {
			return nil, fmt.Errorf("target %d: %w", target, circuit.ErrUnknownNode)
		}
	}

	log.Info().Int("nbNodes", g.GetNbNodes()).Int("nbTargets", len(targets)).Msg("filling graph")

	asserted := g.Assertions()
	seeds := make([]circuit.NodeID, 0, len(targets)+2*len(asserted))
	seeds = append(seeds, targets...)
	for _, pair := range asserted {
		seeds = append(seeds, pair[0], pair[1])
	}

	toVisit := reach(g, seeds)
	s := newSolution(g.GetNbNodes())

	// operands always carry a smaller identity than their consumers, so a
	// single ascending pass fills operands first
	for i, ok := toVisit.NextSet(0); ok; i, ok = toVisit.NextSet(i + 1) {
		id := circuit.NodeID(i)
		node := &g.Nodes[i]

		var v big.Int
		switch node.Kind {
		case circuit.KindInput:
			val, ok := assignment[id]
			if !ok {
				return nil, fmt.Errorf("input %d: %w", id, ErrMissingInput)
			}
			v.Set(&val)
		case circuit.KindConstant:
			v.Set(node.Constant)
		case circuit.KindAdd:
			v.Add(s.value(node.Operands[0]), s.value(node.Operands[1]))
		case circuit.KindMul:
			v.Mul(s.value(node.Operands[0]), s.value(node.Operands[1]))
		default:
			return nil, fmt.Errorf("node %d (%s): %w", id, node.Kind, ErrUnsupportedNodeKind)
		}
		s.set(id, &v)

		log.Debug().Uint32("node", uint32(id)).Stringer("kind", node.Kind).Str("value", v.String()).Msg("filled node")
	}

	for _, pair := range asserted {
		a, b := s.value(pair[0]), s.value(pair[1])
		if a.Cmp(b) != 0 {
			return nil, fmt.Errorf("%w: %q != %q", ErrUnsatisfiedConstraint, a.String(), b.String())
		}
	}

	log.Info().Int("nbFilled", s.NbFilled()).Dur("took", time.Since(start)).Msg("graph filled")

	return s, nil
}

// reach returns the set of nodes the seeds transitively depend on, seeds
// included.
func reach(g *circuit.Graph, seeds []circuit.NodeID) *bitset.BitSet {
	visited := bitset.New(uint(g.GetNbNodes()))
	stack := append([]circuit.NodeID(nil), seeds...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited.Test(uint(id)) {
			continue
		}
		visited.Set(uint(id))
		stack = append(stack, g.Nodes[id].Operands...)
	}
	return visited
}
