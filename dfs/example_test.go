package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/icurves/core"
	"github.com/katalvlaran/icurves/dfs"
)

// ExampleCycles finds the shortest cycle through vertex "D" of a bowtie.
//
//	A   D
//	|\ /|
//	| C |
//	|/ \|
//	B   E
func ExampleCycles() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}, {"D", "E"}, {"E", "C"}} {
		_, _ = g.AddEdge(e[0], e[1])
	}

	_ = dfs.Cycles(g, func(c []string) bool {
		if dfs.IndexOf(c, "D") < 0 {
			return true // keep looking
		}
		fmt.Println(c)
		return false
	})

	// Output:
	// [C D E]
}
