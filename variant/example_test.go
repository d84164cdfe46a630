package variant_test

import (
	"fmt"

	"github.com/katalvlaran/pmapbench/graphgen"
	"github.com/katalvlaran/pmapbench/pmap"
	"github.com/katalvlaran/pmapbench/relax"
	"github.com/katalvlaran/pmapbench/variant"
)

func ExampleAssemble() {
	g, _ := graphgen.Generate(5, 4, 47)
	v := variant.Variant{Representation: pmap.Radix4, Algorithm: relax.BellmanFord, Early: true}

	p, err := variant.Assemble(g, v)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Name, p.Depth, p.Expected)
	// Output: bf_q4_et_5 2 10
}
