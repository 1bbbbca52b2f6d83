// Package wordchain finds every shortest word chain between two words of
// equal length, where each step changes exactly one character and every
// intermediate word belongs to a dictionary.
//
// What is a word chain?
//
//	cat → cot → cog → dog
//
// Each arrow substitutes a single letter, and cot and cog must be dictionary
// words. Resolve returns all chains of minimal length, never longer ones.
//
// How it works:
//
//	core/ : Dictionary, layered Graph, Chain, single-character neighbor discovery
//	bfs/  : breadth-first builder of the layered graph (distances + edges)
//	dfs/  : depth-first enumeration of every start→end path through the layers
//
// Resolve wires the three together:
//
//	dict := core.NewDictionary("cat", "cot", "cog", "dog")
//	chains, err := wordchain.Resolve("cat", "dog", dict)
//	// chains == []core.Chain{{"cat", "cot", "cog", "dog"}}
//
// An empty result is a normal outcome: the words are missing from the
// dictionary, differ in length, or are not connected. Only absent arguments
// (empty words, nil dictionary) are errors.
//
// The command-line tool, dictionary loader and HTTP service live under cmd/
// and internal/.
//
//	go install github.com/katalvlaran/wordchain/cmd/wordchain@latest
package wordchain
