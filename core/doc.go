// Package core defines the word-level primitives shared by the chain resolver:
// the Dictionary of valid words, the layered Graph built over it, and the
// Chain result type.
//
// The model is deliberately small:
//
//   - Words are plain strings, compared and hashed by value. Word length is
//     measured in characters (runes), not bytes.
//   - A Dictionary is a read-only set of words once built. Concurrent readers
//     are safe; Add must not race with readers.
//   - A Graph holds, for every dictionary word of one fixed length, the ordered
//     list of neighbors discovered for it and its breadth-first distance from
//     a start word. A missing distance means "not yet visited".
//   - A Chain is an ordered sequence of words from a start word to an end word.
//
// Neighbor discovery (Dictionary.NeighborsOf) substitutes exactly one
// character with a lowercase letter 'a'..'z'. Iteration is letter-major:
//
//	for L in 'a'..'z':
//	    for i in 0..len(word)-1:
//	        if word[i] != L: try word[:i] + L + word[i+1:]
//
// That order determines the order in which edges are recorded and therefore
// the order in which chains are discovered downstream.
//
// Graph.NextLayer filters a vertex's recorded edges down to those that
// advance exactly one distance layer. Edges recorded towards vertices on the
// same layer (or an earlier one) stay in the graph but are never followed.
//
// Complexity (L = word length, V = vertices, E = recorded edges):
//
//   - NeighborsOf:   O(26·L) dictionary probes, each O(L) for the candidate.
//   - NewGraph:      O(|dict| log |dict|) for the sorted vertex list.
//   - Connect:       O(1) amortized.
//   - NextLayer:     O(deg(v)).
//
// Errors:
//
//	ErrVertexNotFound    - the word is not a vertex of the graph.
//	ErrNegativeDistance  - a negative layer distance was supplied.
package core
