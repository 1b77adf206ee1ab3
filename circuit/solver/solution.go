package solver

import (
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/circuitgraph/circuit"
	"github.com/consensys/circuitgraph/debug"
)

// Solution holds the values computed by one Fill call, one value per visited
// node. It is independent from the graph it was computed from; concurrent
// fills of the same graph produce distinct Solutions.
type Solution struct {
	values []big.Int
	filled *bitset.BitSet
}

func newSolution(nbNodes int) *Solution {
	return &Solution{
		values: make([]big.Int, nbNodes),
		filled: bitset.New(uint(nbNodes)),
	}
}

func (s *Solution) set(id circuit.NodeID, v *big.Int) {
	debug.Assert(!s.filled.Test(uint(id)), "node filled twice")
	s.values[id] = *v
	s.filled.Set(uint(id))
}

// value returns the stored value of a filled node without copying.
func (s *Solution) value(id circuit.NodeID) *big.Int {
	debug.Assert(s.filled.Test(uint(id)), "reading a node that is not filled")
	return &s.values[id]
}

// Value returns a copy of the value of the given node, and whether the fill
// visited it.
func (s *Solution) Value(id circuit.NodeID) (*big.Int, bool) {
	if int(id) >= len(s.values) || !s.filled.Test(uint(id)) {
		return nil, false
	}
	return new(big.Int).Set(&s.values[id]), true
}

// NbFilled returns the number of nodes the fill visited.
func (s *Solution) NbFilled() int {
	return int(s.filled.Count())
}

// Values returns a copy of the computed values keyed by node identity, one
// entry per visited node.
func (s *Solution) Values() map[circuit.NodeID]*big.Int {
	r := make(map[circuit.NodeID]*big.Int, s.NbFilled())
	for i, ok := s.filled.NextSet(0); ok; i, ok = s.filled.NextSet(i + 1) {
		r[circuit.NodeID(i)] = new(big.Int).Set(&s.values[i])
	}
	return r
}
