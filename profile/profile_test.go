//go:build !windows

package profile_test

import (
	"strings"
	"testing"

	"github.com/consensys/circuitgraph/circuit"
	"github.com/consensys/circuitgraph/profile"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	assert := require.New(t)

	// overlapping profiles are allowed; start/stop and node creation must
	// happen in the same go routine.
	p := profile.Start(profile.WithNoOutput())

	g := circuit.NewGraph(4)
	x := g.AddInput()
	x2, err := g.Mul(x, x)
	assert.NoError(err)
	three := g.AddConstant(3)
	_, err = g.Add(x2, three)
	assert.NoError(err)

	p.Stop()

	assert.Equal(4, p.NbNodes())

	top := p.Top()
	assert.Contains(top, "Showing nodes accounting for 4, 100% of 4 total")
	assert.Contains(top, "circuit.(*Graph).Mul")
	assert.Contains(top, "circuit.(*Graph).AddInput")
	assert.Contains(top, "profile_test.TestProfile")
}

func TestProfileMultiSessions(t *testing.T) {
	assert := require.New(t)

	p1 := profile.Start(profile.WithNoOutput())

	g := circuit.NewGraph(8)
	a := g.AddInput()
	b := g.AddInput()
	ab, err := g.Mul(a, b)
	assert.NoError(err)

	p2 := profile.Start(profile.WithNoOutput())
	_, err = g.Add(ab, a)
	assert.NoError(err)
	p2.Stop()

	p1.Stop()

	// creating nodes with no active session is a no-op.
	g.AddInput()

	assert.Equal(4, p1.NbNodes())
	assert.Equal(1, p2.NbNodes())
	assert.True(strings.Contains(p2.Top(), "circuit.(*Graph).Add "))
}
