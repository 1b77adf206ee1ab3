package circuit_test

import (
	"fmt"
	"testing"

	"github.com/consensys/circuitgraph/circuit"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestGraphBuild(t *testing.T) {
	assert := require.New(t)

	g := circuit.NewGraph(8)
	x := g.AddInput()
	c := g.AddConstant(3)
	xx, err := g.Mul(x, x)
	assert.NoError(err)
	y, err := g.Add(xx, c)
	assert.NoError(err)
	assert.NoError(g.MarkOutput(y))

	assert.Equal(4, g.GetNbNodes())
	assert.Equal(1, g.GetNbInputs())
	assert.Equal([]circuit.NodeID{y}, g.Outputs())

	n, err := g.GetNode(xx)
	assert.NoError(err)
	assert.Equal(circuit.KindMul, n.Kind)
	assert.Equal([]circuit.NodeID{x, x}, n.Operands)

	n, err = g.GetNode(c)
	assert.NoError(err)
	assert.Equal(circuit.KindConstant, n.Kind)
	assert.Equal(int64(3), n.Constant.Int64())

	n, err = g.GetNode(x)
	assert.NoError(err)
	assert.Equal(circuit.KindInput, n.Kind)
	assert.Nil(n.Operands)
}

func TestGraphUnknownOperand(t *testing.T) {
	assert := require.New(t)

	g := circuit.NewGraph(4)
	x := g.AddInput()

	_, err := g.Add(x, circuit.NodeID(42))
	assert.ErrorIs(err, circuit.ErrUnknownNode)
	assert.Equal(1, g.GetNbNodes())

	_, err = g.Mul(circuit.NodeID(7), x)
	assert.ErrorIs(err, circuit.ErrUnknownNode)

	_, err = g.AddHint(x, circuit.NodeID(5))
	assert.ErrorIs(err, circuit.ErrUnknownNode)

	assert.ErrorIs(g.MarkOutput(circuit.NodeID(3)), circuit.ErrUnknownNode)
	assert.ErrorIs(g.AssertEqual(x, circuit.NodeID(9)), circuit.ErrUnknownNode)

	// failed operations must leave the graph unchanged
	assert.Equal(1, g.GetNbNodes())
	assert.Empty(g.Outputs())
	assert.Empty(g.Assertions())

	_, err = g.GetNode(circuit.NodeID(1))
	assert.ErrorIs(err, circuit.ErrUnknownNode)
}

func TestMarkOutputIdempotent(t *testing.T) {
	assert := require.New(t)

	g := circuit.NewGraph(2)
	x := g.AddInput()
	y, err := g.Add(x, x)
	assert.NoError(err)

	assert.NoError(g.MarkOutput(y))
	assert.NoError(g.MarkOutput(y))
	assert.NoError(g.MarkOutput(x))

	assert.Equal([]circuit.NodeID{y, x}, g.Outputs())
}

func TestGetNodeIsACopy(t *testing.T) {
	assert := require.New(t)

	g := circuit.NewGraph(4)
	x := g.AddInput()
	c := g.AddConstant(7)
	s, err := g.Add(x, c)
	assert.NoError(err)

	n, err := g.GetNode(s)
	assert.NoError(err)
	n.Operands[0] = circuit.NodeID(99)

	n2, err := g.GetNode(s)
	assert.NoError(err)
	assert.Equal([]circuit.NodeID{x, c}, n2.Operands)

	n, err = g.GetNode(c)
	assert.NoError(err)
	n.Constant.SetInt64(8)

	n2, err = g.GetNode(c)
	assert.NoError(err)
	assert.Equal(int64(7), n2.Constant.Int64())
}

// buildRecipeGraph appends one node per byte of the recipe; the byte value
// selects the node kind and the operand identities. Operands are always
// reduced modulo the current node count, so construction never fails.
func buildRecipeGraph(recipe []byte) *circuit.Graph {
	g := circuit.NewGraph(len(recipe) + 1)
	g.AddInput()
	for _, b := range recipe {
		a := circuit.NodeID(int(b) % g.GetNbNodes())
		c := circuit.NodeID(int(b/3) % g.GetNbNodes())
		switch b % 4 {
		case 0:
			g.AddInput()
		case 1:
			g.AddConstant(int(b))
		case 2:
			_, _ = g.Mul(a, c)
		default:
			_, _ = g.Add(a, c)
		}
	}
	return g
}

func TestTopologicalOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("every node appears once, operands before consumers", prop.ForAll(
		func(recipe []uint8) bool {
			g := buildRecipeGraph(recipe)
			order := g.TopologicalOrder()
			if len(order) != g.GetNbNodes() {
				return false
			}
			position := make(map[circuit.NodeID]int, len(order))
			for i, id := range order {
				if _, seen := position[id]; seen {
					return false
				}
				position[id] = i
			}
			for _, id := range order {
				n, err := g.GetNode(id)
				if err != nil {
					return false
				}
				for _, o := range n.Operands {
					if position[o] >= position[id] {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func ExampleGraph_String() {
	g := circuit.NewGraph(8)
	x := g.AddInput()
	x2, _ := g.Mul(x, x)
	x3, _ := g.Mul(x2, x)
	five := g.AddConstant(5)
	t, _ := g.Add(x3, x)
	y, _ := g.Add(t, five)
	_ = g.MarkOutput(y)

	fmt.Println(g)
	// Output:
	// v0 = input
	// v1 = v0 ⋅ v0
	// v2 = v1 ⋅ v0
	// v4 = v2 + v0
	// v5 = v4 + 5
	// output: v5
}
