package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordchain/core"
)

// ExampleDictionary_NeighborsOf lists the single-substitution neighbors of a word.
func ExampleDictionary_NeighborsOf() {
	d := core.NewDictionary("cat", "cot", "cut", "bat", "cab", "dog")

	// Letter-major order: 'b'@0, 'b'@2, 'o'@1, 'u'@1.
	fmt.Println(d.NeighborsOf("cat"))
	// Output:
	// [bat cab cot cut]
}

// ExampleGraph_NextLayer shows how same-layer edges are ignored.
func ExampleGraph_NextLayer() {
	d := core.NewDictionary("cat", "cot", "cog")
	g := core.NewGraph(d, 3)

	_ = g.SetDistance("cat", 0)
	_ = g.SetDistance("cot", 1)
	_ = g.SetDistance("cog", 1)
	_ = g.Connect("cat", "cot")
	_ = g.Connect("cot", "cog") // same layer

	fmt.Println(g.NextLayer("cat"), g.NextLayer("cot"))
	// Output:
	// [cot] []
}
