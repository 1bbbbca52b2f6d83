// Package dfs enumerates all shortest word chains through a layered graph
// produced by package bfs.
//
// The walker keeps one mutable path stack. At every vertex it pushes the
// word, and either snapshots the path as a core.Chain (when the word is the
// end word) or recurses into every neighbor on the next distance layer. The
// word is popped on the way back, so the path always describes the branch
// currently being explored.
//
// Only core.Graph.NextLayer edges are followed: distance(next) must equal
// distance(current)+1. Edges recorded by the builder towards same-layer or
// earlier words are skipped, which is what guarantees that every returned
// chain is a shortest chain and that no chain is returned twice.
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithOnChain(fn)       hook per complete chain; error aborts enumeration.
//   - WithMaxChains(n)      stop after n chains (0 = unlimited, the default).
//
// Recursion depth equals the chain length, which is bounded by the number of
// same-length words in the dictionary.
package dfs
