package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/core"
)

// ExampleBuild shows the layers assigned on a small dictionary.
// cat reaches dog through two middle words on layer 1 and 2.
func ExampleBuild() {
	d := core.NewDictionary("cat", "cot", "cog", "dog")

	g, err := bfs.Build("cat", "dog", d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, w := range []string{"cat", "cot", "cog", "dog"} {
		dist, _ := g.Distance(w)
		fmt.Printf("%s@%d ", w, dist)
	}
	fmt.Println()
	// Output:
	// cat@0 cot@1 cog@2 dog@3
}

// ExampleBuild_levelComplete demonstrates that the end word's layer is
// finished after the end word is found: both cot and dat record an edge to dot.
func ExampleBuild_levelComplete() {
	d := core.NewDictionary("cat", "cot", "dat", "dot")

	g, err := bfs.Build("cat", "dot", d)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.NextLayer("cat"))
	fmt.Println(g.NextLayer("dat"), g.NextLayer("cot"))
	// Output:
	// [dat cot]
	// [dot] [dot]
}
