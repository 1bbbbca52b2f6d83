package core

import (
	"errors"
	"unicode/utf8"
)

// Sentinel errors for core operations.
var (
	// ErrVertexNotFound indicates an operation referenced a word that is not a vertex of the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeDistance indicates a negative layer distance was supplied.
	ErrNegativeDistance = errors.New("core: negative distance")
)

// Alphabet bounds used for single-character substitution.
const (
	FirstLetter = 'a'
	LastLetter  = 'z'
)

// Dictionary is a set of valid words.
//
// The zero value is not usable; build one with NewDictionary.
// A Dictionary is safe for concurrent readers once no more words are added.
type Dictionary struct {
	words map[string]struct{}
}

// Graph is the layered word graph produced by a breadth-first search.
//
// Vertices are fixed at construction: every dictionary word of one length.
// adjacency keeps each vertex's recorded neighbors in discovery order;
// distance holds the BFS layer of every visited vertex.
//
// A Graph is owned by a single resolution and is not safe for concurrent mutation.
type Graph struct {
	length    int                 // word length shared by every vertex
	vertices  []string            // sorted vertex list
	adjacency map[string][]string // vertex → neighbors in discovery order
	distance  map[string]int      // vertex → BFS layer; absent = unvisited
	edges     int                 // total recorded edges
}

// Chain is an ordered sequence of words from a start word to an end word inclusive.
type Chain []string

// WordLen returns the length of w in characters.
func WordLen(w string) int {
	return utf8.RuneCountInString(w)
}

// Adjacent reports whether a and b have the same length and differ in exactly one position.
// Characters are compared by their bytes, so distinct invalid UTF-8 bytes differ.
// Complexity: O(L).
func Adjacent(a, b string) bool {
	if WordLen(a) != WordLen(b) {
		return false
	}
	diff := 0
	for i, j := 0, 0; i < len(a); {
		_, na := utf8.DecodeRuneInString(a[i:])
		_, nb := utf8.DecodeRuneInString(b[j:])
		if a[i:i+na] != b[j:j+nb] {
			diff++
			if diff > 1 {
				return false
			}
		}
		i, j = i+na, j+nb
	}

	return diff == 1
}
