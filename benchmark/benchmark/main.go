// Package benchmark internal benchmarks
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/consensys/circuitgraph/circuit"
	"github.com/consensys/circuitgraph/circuit/solver"
	"github.com/pkg/profile"
)

const benchCount = 10

var nbNodes = []int{20000} //1000, 10000, 40000} //, 100000, 1000000, 10000000}

// /!\ internal use /!\
// running it with "trace" will output trace.out file
// else will output average fill times, in csv format
func main() {
	mode := "time"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	for _, n := range nbNodes {
		g, assignment := generateGraph(n)
		runtime.GC()
		if mode != "trace" {
			start := time.Now()
			for i := 0; i < benchCount; i++ {
				if _, err := solver.Fill(g, assignment); err != nil {
					panic(err)
				}
			}
			duration := time.Since(start)
			duration = time.Duration(int64(duration) / int64(benchCount))
			fmt.Printf("%d,%d\n", g.GetNbNodes(), duration.Milliseconds())
		} else {
			p := profile.Start(profile.TraceProfile, profile.ProfilePath("."))
			for i := 0; i < benchCount; i++ {
				_, _ = solver.Fill(g, assignment)
			}
			p.Stop()
		}

	}
}

// generateGraph builds a chain of nbNodes alternating add and mul nodes.
// With x assigned to 1 every value stays single word, so the timing tracks
// graph traversal rather than bigint growth.
func generateGraph(nbNodes int) (*circuit.Graph, solver.Assignment) {
	g := circuit.NewGraph(nbNodes + 1)

	x := g.AddInput()
	acc := x
	for i := 0; i < nbNodes; i++ {
		var err error
		if i%2 == 0 {
			acc, err = g.Add(acc, x)
		} else {
			acc, err = g.Mul(acc, x)
		}
		if err != nil {
			panic(err)
		}
	}
	g.MarkOutput(acc)

	assignment := solver.NewAssignment()
	assignment.Assign(x, 1)

	return g, assignment
}
