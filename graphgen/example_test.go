package graphgen_test

import (
	"fmt"

	"github.com/katalvlaran/pmapbench/graphgen"
)

// ExampleGenerate builds the five-node benchmark graph: a chain 0→1→…→4
// followed by extra edges drawn from the same LCG stream.
func ExampleGenerate() {
	g, err := graphgen.Generate(5, 4, graphgen.SeedFor(42, 5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(g.Edges), g.Edges[0], g.Edges[3])
	fmt.Println(len(g.Adjacency()), "source nodes")
	// Output:
	// 15 {0 1 9} {3 4 2}
	// 5 source nodes
}
